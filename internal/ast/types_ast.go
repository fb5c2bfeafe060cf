package ast

import "strings"

// --- type-construct family (spec §3) ---

// SubtypeIndication is a type mark plus an optional constraint, the form
// used wherever Ada allows "TypeName [constraint]" (object decls, subtype
// decls, component decls, parameter specs).
type SubtypeIndication struct {
	Base
	TypeMark   string
	Constraint Node // *RangeConstraint, *IndexConstraint, *DiscriminantConstraint, or nil
}

func (n *SubtypeIndication) typeNode() {}
func (n *SubtypeIndication) String() string {
	if n.Constraint != nil {
		return n.TypeMark + " " + n.Constraint.String()
	}
	return n.TypeMark
}

// RangeConstraint is "range Low .. High".
type RangeConstraint struct {
	Base
	Range *RangeExpr
}

func (n *RangeConstraint) String() string { return "range " + n.Range.String() }

// IndexConstraint is "(discrete_range, ...)" applied to an unconstrained
// array subtype.
type IndexConstraint struct {
	Base
	Ranges []Expr
}

func (n *IndexConstraint) String() string { return "(" + joinExprs(n.Ranges) + ")" }

// DiscriminantConstraint is "(name => value, ...)" applied to a record
// subtype with discriminants.
type DiscriminantConstraint struct {
	Base
	Values []*Association
}

func (n *DiscriminantConstraint) String() string {
	parts := make([]string, len(n.Values))
	for i, v := range n.Values {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// EnumerationTypeDef lists the literals of an enumeration type in
// declaration order; that order is also the type's ordinal order (spec
// §4.6).
type EnumerationTypeDef struct {
	Base
	Literals []*Identifier
}

func (n *EnumerationTypeDef) typeNode() {}
func (n *EnumerationTypeDef) String() string {
	parts := make([]string, len(n.Literals))
	for i, l := range n.Literals {
		parts[i] = l.Name
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// IntegerTypeDef is "range Low .. High" in a full type declaration,
// defining a new signed-integer type.
type IntegerTypeDef struct {
	Base
	Range *RangeExpr
}

func (n *IntegerTypeDef) typeNode()      {}
func (n *IntegerTypeDef) String() string { return "range " + n.Range.String() }

// FloatTypeDef is "digits N [range Low .. High]".
type FloatTypeDef struct {
	Base
	Digits Expr
	Range  *RangeExpr // optional
}

func (n *FloatTypeDef) typeNode() {}
func (n *FloatTypeDef) String() string {
	s := "digits " + n.Digits.String()
	if n.Range != nil {
		s += " range " + n.Range.String()
	}
	return s
}

// FixedTypeDef is "delta D [range Low .. High]".
type FixedTypeDef struct {
	Base
	Delta Expr
	Range *RangeExpr // optional
}

func (n *FixedTypeDef) typeNode() {}
func (n *FixedTypeDef) String() string {
	s := "delta " + n.Delta.String()
	if n.Range != nil {
		s += " range " + n.Range.String()
	}
	return s
}

// ArrayTypeDef is "array (index_subtype, ...) of component_subtype",
// constrained or unconstrained per IndexRanges containing Box markers.
type ArrayTypeDef struct {
	Base
	IndexSubtypes []*SubtypeIndication // constrained form
	IndexRanges   []Expr               // unconstrained form (box or discrete range)
	Unconstrained bool
	Component     *SubtypeIndication
}

func (n *ArrayTypeDef) typeNode() {}
func (n *ArrayTypeDef) String() string {
	return "array (...) of " + n.Component.String()
}

// RecordTypeDef lists a record's discriminants and component declarations;
// Variant holds the optional "case ... end case" variant part.
type RecordTypeDef struct {
	Base
	Discriminants []*ObjectDecl
	Components    []*ObjectDecl
	Variant       *VariantPart
}

func (n *RecordTypeDef) typeNode()      {}
func (n *RecordTypeDef) String() string { return "record ... end record" }

// VariantPart is "case Selector is when Choices => Components ... end
// case".
type VariantPart struct {
	Base
	Selector string
	Variants []*Variant
}

func (n *VariantPart) String() string { return "case " + n.Selector + " is ... end case" }

// Variant is one "when Choices => Components" alternative of a variant
// part.
type Variant struct {
	Base
	Choices    []Expr
	Components []*ObjectDecl
}

func (n *Variant) String() string { return "when ..." }

// AccessTypeDef is "access Subtype", a pointer type.
type AccessTypeDef struct {
	Base
	DesignatedName string
}

func (n *AccessTypeDef) typeNode()      {}
func (n *AccessTypeDef) String() string { return "access " + n.DesignatedName }

// DerivedTypeDef is "new Parent [constraint]".
type DerivedTypeDef struct {
	Base
	Parent *SubtypeIndication
}

func (n *DerivedTypeDef) typeNode()      {}
func (n *DerivedTypeDef) String() string { return "new " + n.Parent.String() }

// PrivateTypeDef marks a private (and optionally limited private) type
// declared in a package's visible part.
type PrivateTypeDef struct {
	Base
	Limited bool
}

func (n *PrivateTypeDef) typeNode() {}
func (n *PrivateTypeDef) String() string {
	if n.Limited {
		return "limited private"
	}
	return "private"
}

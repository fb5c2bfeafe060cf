package ast

import "strings"

// --- declaration family (spec §3) ---

// ObjectDecl is a variable/constant/component/discriminant/parameter
// declaration: "Names : [constant] Subtype [:= Init]". Mode is set only
// for parameter specs (spec §4.3).
type ObjectDecl struct {
	Base
	Names    []string
	Constant bool
	Subtype  *SubtypeIndication
	Init     Expr // optional
	Mode     ParamMode

	// Syms holds the resolved *symtab.Symbol for each entry of Names, in
	// the same order, filled in by the resolver. Carried as `any` to
	// avoid an import cycle with symtab; the evaluator is the only
	// consumer (spec §3: AST-embedded symbol back-references).
	Syms []any
}

func (n *ObjectDecl) declNode() {}
func (n *ObjectDecl) String() string {
	s := strings.Join(n.Names, ", ") + " : "
	if n.Constant {
		s += "constant "
	}
	s += n.Subtype.String()
	if n.Init != nil {
		s += " := " + n.Init.String()
	}
	return s
}

// ParamMode is a parameter's passing mode.
type ParamMode int

const (
	ModeIn ParamMode = iota
	ModeOut
	ModeInOut
)

func (m ParamMode) String() string {
	switch m {
	case ModeOut:
		return "out"
	case ModeInOut:
		return "in out"
	default:
		return "in"
	}
}

// TypeDecl is "type Name [(discriminants)] is Definition;".
type TypeDecl struct {
	Base
	Name          string
	Discriminants []*ObjectDecl
	Def           TypeNode
}

func (n *TypeDecl) declNode()      {}
func (n *TypeDecl) String() string { return "type " + n.Name + " is " + n.Def.String() }

// IncompleteTypeDecl is "type Name;", used to declare a type ahead of its
// full recursive (typically access) definition.
type IncompleteTypeDecl struct {
	Base
	Name string
}

func (n *IncompleteTypeDecl) declNode()      {}
func (n *IncompleteTypeDecl) String() string { return "type " + n.Name + ";" }

// SubtypeDecl is "subtype Name is SubtypeIndication;".
type SubtypeDecl struct {
	Base
	Name    string
	Subtype *SubtypeIndication
}

func (n *SubtypeDecl) declNode()      {}
func (n *SubtypeDecl) String() string { return "subtype " + n.Name + " is " + n.Subtype.String() }

// ExceptionDecl is "Names : exception;".
type ExceptionDecl struct {
	Base
	Names []string
}

func (n *ExceptionDecl) declNode() {}
func (n *ExceptionDecl) String() string {
	return strings.Join(n.Names, ", ") + " : exception"
}

// RenamingDecl covers object, exception and subprogram renaming
// declarations: "Name : Subtype renames Existing;" or "procedure Name (...)
// renames Existing;".
type RenamingDecl struct {
	Base
	Name     string
	Subtype  *SubtypeIndication // nil for subprogram renaming
	Renamed  Expr
	IsSubNam bool // true when renaming a subprogram rather than an object
}

func (n *RenamingDecl) declNode()      {}
func (n *RenamingDecl) String() string { return n.Name + " renames " + n.Renamed.String() }

// SubprogramSpec is a procedure or function signature shared by
// declarations, bodies and renamings.
type SubprogramSpec struct {
	Base
	Name       string
	Params     []*ObjectDecl
	ReturnType string // empty for a procedure
	IsFunction bool
}

func (n *SubprogramSpec) declNode() {}
func (n *SubprogramSpec) String() string {
	kind := "procedure"
	if n.IsFunction {
		kind = "function"
	}
	s := kind + " " + n.Name
	if len(n.Params) > 0 {
		parts := make([]string, len(n.Params))
		for i, p := range n.Params {
			parts[i] = p.String()
		}
		s += " (" + strings.Join(parts, "; ") + ")"
	}
	if n.IsFunction {
		s += " return " + n.ReturnType
	}
	return s
}

// SubprogramBody is a spec plus its declarative part and handled sequence
// of statements.
type SubprogramBody struct {
	Base
	Spec         *SubprogramSpec
	Decls        []Decl
	Stmts        []Stmt
	Handlers     []*ExceptionHandler
	EndName      string
}

func (n *SubprogramBody) declNode()      {}
func (n *SubprogramBody) String() string { return n.Spec.String() + " is ... end " + n.EndName }

// PackageSpec is a package's visible and private parts.
type PackageSpec struct {
	Base
	Name     string
	Visible  []Decl
	Private  []Decl
}

func (n *PackageSpec) declNode()      {}
func (n *PackageSpec) String() string { return "package " + n.Name + " is ... end " + n.Name }

// PackageBody is a package's body: declarations plus an optional
// initialization sequence of statements.
type PackageBody struct {
	Base
	Name  string
	Decls []Decl
	Stmts []Stmt
}

func (n *PackageBody) declNode()      {}
func (n *PackageBody) String() string { return "package body " + n.Name + " is ... end " + n.Name }

// PragmaDecl is "pragma Name [(Args)];"; pragmas that are not recognized
// are accepted and ignored per Ada 83's pragma rules (spec §4.3 Non-goals).
type PragmaDecl struct {
	Base
	Name string
	Args []Expr
}

func (n *PragmaDecl) declNode() {}
func (n *PragmaDecl) String() string {
	if len(n.Args) == 0 {
		return "pragma " + n.Name
	}
	return "pragma " + n.Name + "(" + joinExprs(n.Args) + ")"
}

// EntryDecl is "entry Name [(formal_part)];", a task's rendezvous point.
// The core parses entries for completeness but never schedules a
// rendezvous (spec §1 Non-goal: no task scheduling).
type EntryDecl struct {
	Base
	Name   string
	Params []*ObjectDecl
}

func (n *EntryDecl) declNode()      {}
func (n *EntryDecl) String() string { return "entry " + n.Name }

// TaskDecl is a task specification or body: "task [type] Name [is
// Entries end [Name]];" or "task body Name is Decls begin Stmts end
// [Name];". IsBody distinguishes the two; a spec has only Entries set.
type TaskDecl struct {
	Base
	Name    string
	IsBody  bool
	Entries []*EntryDecl
	Decls   []Decl
	Stmts   []Stmt
}

func (n *TaskDecl) declNode()      {}
func (n *TaskDecl) String() string { return "task " + n.Name }

// GenericDecl is "generic Formals Template", where Template is the
// templated procedure/function/package specification. Per the core's
// Non-goal, generics are parsed and their formal list checked
// well-formed but never instantiated (no substitution mechanism).
type GenericDecl struct {
	Base
	Formals  []Decl
	Template Decl
}

func (n *GenericDecl) declNode()      {}
func (n *GenericDecl) String() string { return "generic ... " + n.Template.String() }

// GenericInstantiationDecl is "... is new Generic_Name(actuals);": a
// procedure, function, or package declared as an instance of a generic
// unit. The core parses instantiations but does not substitute formals
// (spec §1 Non-goal); the resolver resolves each actual and declares
// the instance's name, without checking the actuals against the
// generic's formals.
type GenericInstantiationDecl struct {
	Base
	Name        string
	GenericName string
	Actuals     []*Association
}

func (n *GenericInstantiationDecl) declNode() {}
func (n *GenericInstantiationDecl) String() string {
	return n.Name + " is new " + n.GenericName
}

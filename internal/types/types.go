// Package types implements the type descriptor used by the resolver and
// evaluator: a single shared, interned shape with the fields named in the
// core's type model, rather than one Go struct per Ada type kind. Kind
// distinguishes the variants; unused fields for a given kind are simply
// left at their zero value.
package types

import "strings"

// Kind tags which variant of type descriptor a *Type is.
type Kind int

const (
	Void Kind = iota
	UniversalInteger
	UniversalReal
	Integer
	Boolean
	Character
	Float
	Fixed
	Enumeration
	Array
	Record
	Access
	Task
	Private
	File
)

func (k Kind) String() string {
	switch k {
	case Void:
		return "void"
	case UniversalInteger:
		return "universal_integer"
	case UniversalReal:
		return "universal_real"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	case Character:
		return "character"
	case Float:
		return "float"
	case Fixed:
		return "fixed"
	case Enumeration:
		return "enumeration"
	case Array:
		return "array"
	case Record:
		return "record"
	case Access:
		return "access"
	case Task:
		return "task"
	case Private:
		return "private"
	case File:
		return "file"
	default:
		return "?"
	}
}

// Component is one record field: name plus subtype, with a freeze-time
// byte offset.
type Component struct {
	Name    string
	Type    *Type
	Offset  int
	IsDiscr bool
}

// Type is the core's shared type descriptor (spec §3 "Type descriptor").
// Instances live on the ordinary garbage-collected heap and are never
// individually freed; equality is pointer identity.
type Type struct {
	Kind Kind
	Name string

	BaseType   *Type // subtype's immediate base
	ParentType *Type // derived type's parent

	ElementType *Type // array component type, access designated type
	IndexType   *Type // array index subtype

	Low, High int64 // scalar bounds; also array index bounds once frozen

	Components    []*Component
	Discriminants []*Component

	// Literals holds each enumeration literal's symbol, in declaration
	// (and therefore ordinal) order. The symbol type is carried as `any`
	// to avoid an import cycle with symtab (symtab.Symbol embeds a
	// *Type back-reference).
	Literals []any

	Size      int
	Alignment int
	Frozen    bool

	// Synthetic routines materialized at freeze time; carried as `any`
	// to avoid an import cycle with ast (an *ast.SubprogramBody).
	EqualityFunc   any
	AssignFunc     any
	DefaultInitFn  any
}

// New returns a descriptor of the given kind and display name with the
// default 8-byte size/alignment (spec §4.6).
func New(kind Kind, name string) *Type {
	return &Type{Kind: kind, Name: name, Size: 8, Alignment: 8}
}

// BaseTypeOf walks base-type pointers to a fixed point.
func BaseTypeOf(t *Type) *Type {
	for t.BaseType != nil {
		t = t.BaseType
	}
	return t
}

// Registry owns the predefined type descriptors and any types discovered
// while analyzing a compilation; it is the `initialize`d table spec §4.6
// describes.
type Registry struct {
	predefined map[string]*Type
}

// NewRegistry builds a registry with the predefined types of spec §4.6
// populated: UniversalInteger, UniversalReal, Integer, Boolean,
// Character, Float, and the Void/no-value marker used by procedures.
func NewRegistry() *Registry {
	r := &Registry{predefined: make(map[string]*Type)}
	r.define(New(UniversalInteger, "universal_integer"))
	r.define(New(UniversalReal, "universal_real"))
	r.define(New(Integer, "integer"))
	r.define(New(Boolean, "boolean"))
	r.define(New(Character, "character"))
	r.define(New(Float, "float"))
	r.define(New(Void, "void"))
	return r
}

func (r *Registry) define(t *Type) { r.predefined[strings.ToLower(t.Name)] = t }

// Define registers a newly declared type (or subtype) so later subtype
// indications can look it up by name.
func (r *Registry) Define(t *Type) { r.define(t) }

// Lookup returns a registered type, predefined or added by Define, by
// case-insensitive name.
func (r *Registry) Lookup(name string) (*Type, bool) {
	t, ok := r.predefined[strings.ToLower(name)]
	return t, ok
}

// Integer, Boolean, etc. are convenience accessors for the predefined
// scalar types used pervasively by the resolver and evaluator.
func (r *Registry) Integer() *Type          { t, _ := r.Lookup("integer"); return t }
func (r *Registry) Boolean() *Type          { t, _ := r.Lookup("boolean"); return t }
func (r *Registry) Character() *Type        { t, _ := r.Lookup("character"); return t }
func (r *Registry) Float() *Type            { t, _ := r.Lookup("float"); return t }
func (r *Registry) Void() *Type             { t, _ := r.Lookup("void"); return t }
func (r *Registry) UniversalInteger() *Type { t, _ := r.Lookup("universal_integer"); return t }
func (r *Registry) UniversalReal() *Type    { t, _ := r.Lookup("universal_real"); return t }

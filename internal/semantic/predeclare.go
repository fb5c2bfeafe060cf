package semantic

import (
	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
	"github.com/AdaDoom3/Ada83-sub006/internal/ident"
	"github.com/AdaDoom3/Ada83-sub006/internal/symtab"
	"github.com/AdaDoom3/Ada83-sub006/internal/types"
)

// predefinedExceptions lists the minimum named runtime exceptions spec §7
// requires. They are installed as ordinary KindException symbols at
// global scope so "raise CONSTRAINT_ERROR;" and "when NAME_ERROR =>"
// resolve exactly like a user-declared exception.
var predefinedExceptions = []string{
	"CONSTRAINT_ERROR", "PROGRAM_ERROR", "STORAGE_ERROR", "TASKING_ERROR",
	"USE_ERROR", "NAME_ERROR", "STATUS_ERROR", "MODE_ERROR", "END_ERROR",
	"DATA_ERROR", "DEVICE_ERROR", "LAYOUT_ERROR",
}

// predeclare installs the core's Standard-package-equivalent environment:
// the scalar type names as directly-visible type symbols (so "Integer(X)"
// resolves as a type conversion the way any user-declared type would),
// the predefined exceptions of §7, and the minimal Text_IO-shaped output
// subprograms §8's end-to-end scenarios call unqualified (PUT_LINE, PUT,
// NEW_LINE, GET). Ada normally requires "with Ada.Text_IO; use
// Ada.Text_IO;" for the last group; this module installs them as always
// directly visible instead, since §8's literal test programs omit the
// with/use clause and §9 leaves library binding out of the core's strict
// scope (§1 Non-goal: "separate compilation and library binding beyond
// textual with-file lookup").
func (r *Resolver) predeclare() {
	r.predeclareType("INTEGER", r.Types.Integer())
	r.predeclareType("BOOLEAN", r.Types.Boolean())
	r.predeclareType("CHARACTER", r.Types.Character())
	r.predeclareType("FLOAT", r.Types.Float())

	str := types.New(types.Array, "STRING")
	str.ElementType = r.Types.Character()
	str.IndexType = r.Types.Integer()
	str.Low, str.High = 1, 0
	r.Types.Define(str)
	r.predeclareType("STRING", str)

	for _, name := range predefinedExceptions {
		r.Symbols.Define(name, symtab.KindException, nil, nil, ident.Loc{})
	}

	r.predeclareProcedure("PUT_LINE", []string{"STRING"})
	r.predeclareProcedure("PUT", []string{"STRING"})
	r.predeclareProcedure("NEW_LINE", nil)
	r.predeclareProcedure("GET", []string{"STRING"})
}

func (r *Resolver) predeclareType(name string, t *types.Type) {
	r.Symbols.Define(name, symtab.KindType, t, nil, ident.Loc{})
}

// predeclareProcedure installs a builtin procedure as a KindProcedure
// symbol whose defining node is a bare *ast.SubprogramSpec (no body).
// internal/interp recognizes a subprogram symbol with a spec but no body
// as a builtin and dispatches it by name instead of executing statements.
func (r *Resolver) predeclareProcedure(name string, paramTypes []string) {
	spec := &ast.SubprogramSpec{Name: name}
	for i, tn := range paramTypes {
		spec.Params = append(spec.Params, &ast.ObjectDecl{
			Names:   []string{"Item"},
			Subtype: &ast.SubtypeIndication{TypeMark: tn},
		})
		_ = i
	}
	r.Symbols.Define(name, symtab.KindProcedure, r.Types.Void(), spec, ident.Loc{})
}

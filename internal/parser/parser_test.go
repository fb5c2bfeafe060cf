package parser

import (
	"testing"

	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
)

func mustParse(t *testing.T, src string) *ast.CompilationUnit {
	t.Helper()
	return Parse(src, "test.adb")
}

func TestParseSimpleProcedureBody(t *testing.T) {
	src := `
procedure Hello is
begin
   null;
end Hello;
`
	cu := mustParse(t, src)
	body, ok := cu.Library.(*ast.SubprogramBody)
	if !ok {
		t.Fatalf("expected *ast.SubprogramBody, got %T", cu.Library)
	}
	if body.Spec.Name != "Hello" {
		t.Fatalf("expected name Hello, got %s", body.Spec.Name)
	}
	if len(body.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(body.Stmts))
	}
	if _, ok := body.Stmts[0].(*ast.NullStmt); !ok {
		t.Fatalf("expected NullStmt, got %T", body.Stmts[0])
	}
}

func TestParseWithAndUseClauses(t *testing.T) {
	src := `
with Ada.Text_IO;
use Ada.Text_IO;
procedure Greet is
begin
   null;
end Greet;
`
	cu := mustParse(t, src)
	if len(cu.WithClauses) != 1 || len(cu.UseClauses) != 1 {
		t.Fatalf("expected one with-clause and one use-clause, got %d/%d", len(cu.WithClauses), len(cu.UseClauses))
	}
	if cu.WithClauses[0].Names[0].Name != "Ada.Text_IO" {
		t.Fatalf("expected Ada.Text_IO, got %s", cu.WithClauses[0].Names[0].Name)
	}
}

func TestParseFunctionWithParamsAndReturn(t *testing.T) {
	src := `
function Add (X : Integer; Y : Integer) return Integer is
begin
   return X + Y;
end Add;
`
	cu := mustParse(t, src)
	body := cu.Library.(*ast.SubprogramBody)
	if !body.Spec.IsFunction || body.Spec.ReturnType != "Integer" {
		t.Fatalf("expected function returning Integer, got %+v", body.Spec)
	}
	if len(body.Spec.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(body.Spec.Params))
	}
	ret, ok := body.Stmts[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected ReturnStmt, got %T", body.Stmts[0])
	}
	bin, ok := ret.Value.(*ast.BinaryExpr)
	if !ok || bin.Op != "+" {
		t.Fatalf("expected binary + expression, got %+v", ret.Value)
	}
}

func TestParseDeclarationsVarietyAndBlock(t *testing.T) {
	src := `
procedure P is
   X : Integer := 0;
   type Color is (Red, Green, Blue);
   subtype Small is Integer range 0 .. 9;
   Bad : exception;
begin
   declare
      Y : Integer := X;
   begin
      Y := Y + 1;
   exception
      when Bad =>
         null;
   end;
end P;
`
	cu := mustParse(t, src)
	body := cu.Library.(*ast.SubprogramBody)
	if len(body.Decls) != 4 {
		t.Fatalf("expected 4 declarations, got %d", len(body.Decls))
	}
	if _, ok := body.Decls[0].(*ast.ObjectDecl); !ok {
		t.Fatalf("expected ObjectDecl, got %T", body.Decls[0])
	}
	typeDecl, ok := body.Decls[1].(*ast.TypeDecl)
	if !ok {
		t.Fatalf("expected TypeDecl, got %T", body.Decls[1])
	}
	if _, ok := typeDecl.Def.(*ast.EnumerationTypeDef); !ok {
		t.Fatalf("expected EnumerationTypeDef, got %T", typeDecl.Def)
	}
	if _, ok := body.Decls[2].(*ast.SubtypeDecl); !ok {
		t.Fatalf("expected SubtypeDecl, got %T", body.Decls[2])
	}
	if _, ok := body.Decls[3].(*ast.ExceptionDecl); !ok {
		t.Fatalf("expected ExceptionDecl, got %T", body.Decls[3])
	}
	block, ok := body.Stmts[0].(*ast.BlockStmt)
	if !ok {
		t.Fatalf("expected BlockStmt, got %T", body.Stmts[0])
	}
	if len(block.Handlers) != 1 {
		t.Fatalf("expected 1 exception handler, got %d", len(block.Handlers))
	}
}

func TestParseIfCaseLoop(t *testing.T) {
	src := `
procedure P is
begin
   if X > 0 then
      null;
   elsif X < 0 then
      null;
   else
      null;
   end if;

   case X is
      when 1 | 2 =>
         null;
      when others =>
         null;
   end case;

   for I in 1 .. 10 loop
      exit when I = 5;
   end loop;

   while X > 0 loop
      null;
   end loop;
end P;
`
	cu := mustParse(t, src)
	body := cu.Library.(*ast.SubprogramBody)
	if len(body.Stmts) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(body.Stmts))
	}
	ifStmt, ok := body.Stmts[0].(*ast.IfStmt)
	if !ok || len(ifStmt.Elsifs) != 1 || ifStmt.Else == nil {
		t.Fatalf("expected if/elsif/else, got %+v", ifStmt)
	}
	caseStmt, ok := body.Stmts[1].(*ast.CaseStmt)
	if !ok || len(caseStmt.Alternatives) != 2 {
		t.Fatalf("expected case with 2 alternatives, got %+v", caseStmt)
	}
	if len(caseStmt.Alternatives[0].Choices) != 2 {
		t.Fatalf("expected 2 choices in first alternative, got %d", len(caseStmt.Alternatives[0].Choices))
	}
	forLoop, ok := body.Stmts[2].(*ast.LoopStmt)
	if !ok || forLoop.ForSpec == nil {
		t.Fatalf("expected for-loop, got %+v", forLoop)
	}
	whileLoop, ok := body.Stmts[3].(*ast.LoopStmt)
	if !ok || whileLoop.Cond == nil {
		t.Fatalf("expected while-loop, got %+v", whileLoop)
	}
}

func TestParsePackageSpecAndBody(t *testing.T) {
	src := `
package Stack_Pkg is
   procedure Push (X : Integer);
   function Pop return Integer;
private
   Max : constant Integer := 100;
end Stack_Pkg;
`
	cu := mustParse(t, src)
	spec, ok := cu.Library.(*ast.PackageSpec)
	if !ok {
		t.Fatalf("expected *ast.PackageSpec, got %T", cu.Library)
	}
	if len(spec.Visible) != 2 || len(spec.Private) != 1 {
		t.Fatalf("expected 2 visible and 1 private decl, got %d/%d", len(spec.Visible), len(spec.Private))
	}

	bodySrc := `
package body Stack_Pkg is
   procedure Push (X : Integer) is
   begin
      null;
   end Push;

   function Pop return Integer is
   begin
      return 0;
   end Pop;
end Stack_Pkg;
`
	cu2 := mustParse(t, bodySrc)
	body, ok := cu2.Library.(*ast.PackageBody)
	if !ok {
		t.Fatalf("expected *ast.PackageBody, got %T", cu2.Library)
	}
	if len(body.Decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(body.Decls))
	}
}

func TestParseArrayAndRecordTypes(t *testing.T) {
	src := `
procedure P is
   type Vector is array (1 .. 10) of Integer;
   type Point is record
      X : Integer;
      Y : Integer;
   end record;
begin
   null;
end P;
`
	cu := mustParse(t, src)
	body := cu.Library.(*ast.SubprogramBody)
	vecDecl := body.Decls[0].(*ast.TypeDecl)
	arrDef, ok := vecDecl.Def.(*ast.ArrayTypeDef)
	if !ok || arrDef.Unconstrained {
		t.Fatalf("expected constrained ArrayTypeDef, got %+v", vecDecl.Def)
	}
	ptDecl := body.Decls[1].(*ast.TypeDecl)
	recDef, ok := ptDecl.Def.(*ast.RecordTypeDef)
	if !ok || len(recDef.Components) != 2 {
		t.Fatalf("expected RecordTypeDef with 2 components, got %+v", ptDecl.Def)
	}
}

func TestParseAggregateAndAttribute(t *testing.T) {
	src := `
procedure P is
   A : Integer := Integer'Last;
begin
   null;
end P;
`
	cu := mustParse(t, src)
	body := cu.Library.(*ast.SubprogramBody)
	obj := body.Decls[0].(*ast.ObjectDecl)
	attr, ok := obj.Init.(*ast.AttributeExpr)
	if !ok || attr.Designator != "Last" {
		t.Fatalf("expected AttributeExpr 'Last, got %+v", obj.Init)
	}
}

func TestParseGenericAndInstantiation(t *testing.T) {
	src := `
generic
   type Item is private;
   with function Equal (L, R : Item) return Boolean;
procedure Swap (A, B : in out Item);
`
	cu := mustParse(t, src)
	gen, ok := cu.Library.(*ast.GenericDecl)
	if !ok {
		t.Fatalf("expected *ast.GenericDecl, got %T", cu.Library)
	}
	if len(gen.Formals) != 2 {
		t.Fatalf("expected 2 formals, got %d", len(gen.Formals))
	}

	instSrc := `
procedure Swap_Ints is new Swap (Integer);
`
	cu2 := mustParse(t, instSrc)
	inst, ok := cu2.Library.(*ast.GenericInstantiationDecl)
	if !ok {
		t.Fatalf("expected *ast.GenericInstantiationDecl, got %T", cu2.Library)
	}
	if inst.GenericName != "Swap" || len(inst.Actuals) != 1 {
		t.Fatalf("expected instantiation of Swap with 1 actual, got %+v", inst)
	}
}

func TestParseTaskDeclAndBody(t *testing.T) {
	src := `
procedure P is
   task Worker is
      entry Start;
      entry Stop (Code : Integer);
   end Worker;

   task body Worker is
   begin
      accept Start;
      select
         accept Stop (Code : Integer) do
            null;
         end Stop;
      or
         terminate;
      end select;
   end Worker;
begin
   null;
end P;
`
	cu := mustParse(t, src)
	body := cu.Library.(*ast.SubprogramBody)
	taskSpec, ok := body.Decls[0].(*ast.TaskDecl)
	if !ok || taskSpec.IsBody || len(taskSpec.Entries) != 2 {
		t.Fatalf("expected task spec with 2 entries, got %+v", body.Decls[0])
	}
	taskBody, ok := body.Decls[1].(*ast.TaskDecl)
	if !ok || !taskBody.IsBody {
		t.Fatalf("expected task body, got %+v", body.Decls[1])
	}
	if _, ok := taskBody.Stmts[0].(*ast.AcceptStmt); !ok {
		t.Fatalf("expected AcceptStmt, got %T", taskBody.Stmts[0])
	}
	sel, ok := taskBody.Stmts[1].(*ast.SelectStmt)
	if !ok || len(sel.Alternatives) != 2 {
		t.Fatalf("expected SelectStmt with 2 alternatives, got %+v", taskBody.Stmts[1])
	}
}

func TestParseDelayAndAbort(t *testing.T) {
	src := `
procedure P is
   T : Worker_Type;
begin
   delay 1.0;
   abort T;
end P;
`
	cu := mustParse(t, src)
	body := cu.Library.(*ast.SubprogramBody)
	if _, ok := body.Stmts[0].(*ast.DelayStmt); !ok {
		t.Fatalf("expected DelayStmt, got %T", body.Stmts[0])
	}
	abortStmt, ok := body.Stmts[1].(*ast.AbortStmt)
	if !ok || len(abortStmt.Names) != 1 || abortStmt.Names[0].Name != "T" {
		t.Fatalf("expected AbortStmt naming T, got %+v", body.Stmts[1])
	}
}

func TestParseSelectedNameAndCall(t *testing.T) {
	src := `
procedure P is
begin
   Ada.Text_IO.Put_Line ("hello");
end P;
`
	cu := mustParse(t, src)
	body := cu.Library.(*ast.SubprogramBody)
	callStmt, ok := body.Stmts[0].(*ast.CallStmt)
	if !ok {
		t.Fatalf("expected CallStmt, got %T", body.Stmts[0])
	}
	sel, ok := callStmt.Call.Callee.(*ast.SelectedExpr)
	if !ok || sel.Selector != "Put_Line" {
		t.Fatalf("expected selected name Put_Line, got %+v", callStmt.Call.Callee)
	}
	if len(callStmt.Call.Args) != 1 {
		t.Fatalf("expected 1 argument, got %d", len(callStmt.Call.Args))
	}
}

package interp

import (
	"strings"

	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
)

// callBuiltin dispatches the predeclared I/O procedures installed by
// the resolver's predeclare step (internal/semantic/predeclare.go): a
// symbol whose Node is a bare *ast.SubprogramSpec with no matching
// *ast.SubprogramBody names one of these rather than a user-defined
// subprogram. Taking the raw actual-argument expressions (rather than
// pre-evaluated values) lets GET write its result back into its
// caller's variable the same way an ordinary out parameter would.
func callBuiltin(ctx *Context, name string, args []*ast.Association) Value {
	switch strings.ToUpper(name) {
	case "PUT_LINE":
		if len(args) > 0 {
			ctx.bufOut.WriteString(Eval(ctx, args[0].Value).Text())
		}
		ctx.bufOut.WriteByte('\n')
	case "PUT":
		if len(args) > 0 {
			ctx.bufOut.WriteString(Eval(ctx, args[0].Value).Text())
		}
	case "NEW_LINE":
		ctx.bufOut.WriteByte('\n')
	case "GET":
		line, err := ctx.In.ReadString('\n')
		if err != nil && line == "" {
			raise(EndError, "end of input")
		}
		line = strings.TrimRight(line, "\r\n")
		if len(args) > 0 {
			t := resolvedType(ctx, args[0].Value)
			assignTarget(ctx, args[0].Value, NewString(line, t))
		}
	}
	return None
}

package interp

import "github.com/AdaDoom3/Ada83-sub006/internal/symtab"

// Unhandled reports a predefined or user exception that propagated out
// of the whole program with no handler left to catch it (spec §7: an
// unhandled exception terminates the program and is reported by name).
type Unhandled struct {
	Name    string
	Message string
}

func (u *Unhandled) Error() string {
	if u.Message == "" {
		return u.Name
	}
	return u.Name + ": " + u.Message
}

// Run interprets main (the compilation's library-unit procedure) to
// completion, returning the unhandled exception that terminated it, if
// any. ctx.Flush should be called once Run returns regardless of
// outcome, since PUT/PUT_LINE output is buffered.
func Run(ctx *Context, main *symtab.Symbol) (result *Unhandled) {
	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(*exceptionSignal)
			if !ok {
				panic(r)
			}
			result = &Unhandled{Name: sig.Name, Message: sig.Message}
		}
	}()
	execCall(ctx, main, nil)
	return nil
}

package interp

import (
	"bufio"
	"io"

	"github.com/AdaDoom3/Ada83-sub006/internal/ast"
	"github.com/AdaDoom3/Ada83-sub006/internal/symtab"
	"github.com/AdaDoom3/Ada83-sub006/internal/types"
)

// maxCallDepth bounds the call stack (§3: "a call stack (bounded,
// default 256 frames)"); exceeding it raises STORAGE_ERROR rather than
// returning a Go error value.
const maxCallDepth = 256

// Frame is a binding frame: symbol-keyed storage for one lexical
// contour's variables (spec §3 "a binding frame type"). Keyed by
// *symtab.Symbol rather than name, since every declaration already owns
// a distinct Symbol and name-based shadowing is already resolved at
// analysis time.
type Frame struct {
	cells map[*symtab.Symbol]*Value
}

// NewFrame returns an empty binding frame.
func NewFrame() *Frame { return &Frame{cells: make(map[*symtab.Symbol]*Value)} }

// Get returns the cell bound to sym in this frame, or nil if absent.
func (f *Frame) Get(sym *symtab.Symbol) *Value { return f.cells[sym] }

// Bind installs cell as sym's binding, replacing any existing one.
func (f *Frame) Bind(sym *symtab.Symbol, cell *Value) { f.cells[sym] = cell }

// CallFrame is one entry of the evaluation context's call stack (spec
// §3): the callee's AST, its locals, a return-value slot, and the
// has-returned flag.
type CallFrame struct {
	Callee   *ast.SubprogramBody
	Name     string
	Locals   *Frame
	Return   Value
	Returned bool
}

// Context is the core's evaluation context (spec §3). One Context serves
// one compilation's interpretation; nothing is shared between concurrent
// compilations (spec §5).
type Context struct {
	Symbols *symtab.Table
	Types   *types.Registry

	Globals *Frame
	Stack   []*CallFrame

	Out io.Writer
	In  *bufio.Reader

	bufOut *bufio.Writer

	// currentException is the exception a "raise;" bare re-raise (spec
	// §4.9) resolves against: the signal runHandled is actively matching
	// against handlers for, non-nil only while inside a handler's own
	// statement sequence.
	currentException *exceptionSignal
}

// New returns an evaluation context writing program output to out and
// reading program input from in.
func New(symbols *symtab.Table, registry *types.Registry, out io.Writer, in io.Reader) *Context {
	bw := bufio.NewWriter(out)
	return &Context{
		Symbols: symbols,
		Types:   registry,
		Globals: NewFrame(),
		Out:     bw,
		In:      bufio.NewReader(in),
		bufOut:  bw,
	}
}

// Flush flushes any buffered program output; the driver calls this once
// after interpretation completes (or before a top-level fatal exits the
// process).
func (ctx *Context) Flush() { ctx.bufOut.Flush() }

// Current returns the innermost active call frame, or nil at the top
// level (spec §3's evaluation context has no implicit top-level frame;
// Run's call of the program's main procedure pushes the first one).
func (ctx *Context) Current() *CallFrame {
	if len(ctx.Stack) == 0 {
		return nil
	}
	return ctx.Stack[len(ctx.Stack)-1]
}

// Push installs a new call frame, raising STORAGE_ERROR if doing so would
// exceed maxCallDepth (spec §4.9: "call-depth exceeding the stack bound
// raises storage error").
func (ctx *Context) Push(callee *ast.SubprogramBody, name string) *CallFrame {
	if len(ctx.Stack) >= maxCallDepth {
		raise(StorageError, "call stack exceeded %d frames", maxCallDepth)
	}
	f := &CallFrame{Callee: callee, Name: name, Locals: NewFrame()}
	ctx.Stack = append(ctx.Stack, f)
	return f
}

// Pop removes the innermost call frame.
func (ctx *Context) Pop() {
	if len(ctx.Stack) > 0 {
		ctx.Stack = ctx.Stack[:len(ctx.Stack)-1]
	}
}

// cell finds the binding cell for sym, searching the active call
// frames' locals from the innermost outward, then the globals frame,
// per spec §4.9: "Assignment
// mutates the binding in the innermost frame that owns the target
// symbol; a new global binding is created if none exists." Lookup uses
// the same search order.
func (ctx *Context) cell(sym *symtab.Symbol) *Value {
	for i := len(ctx.Stack) - 1; i >= 0; i-- {
		if c := ctx.Stack[i].Locals.Get(sym); c != nil {
			return c
		}
	}
	return ctx.Globals.Get(sym)
}

// bindLocal installs a fresh cell for sym in the innermost active frame
// (a call frame's locals if one is active, else the globals frame),
// matching how object declarations are elaborated depending on whether
// they sit inside a subprogram body or directly in a package/library
// unit's own declarative part.
func (ctx *Context) bindLocal(sym *symtab.Symbol, v Value) *Value {
	cell := &Value{}
	*cell = v
	if f := ctx.Current(); f != nil {
		f.Locals.Bind(sym, cell)
	} else {
		ctx.Globals.Bind(sym, cell)
	}
	return cell
}

// assign mutates sym's existing binding, or creates a new global one if
// sym has never been bound (spec §4.9).
func (ctx *Context) assign(sym *symtab.Symbol, v Value) {
	if c := ctx.cell(sym); c != nil {
		*c = v
		return
	}
	ctx.Globals.Bind(sym, &v)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

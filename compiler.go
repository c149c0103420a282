package tapec

import "github.com/golang/glog"

// CompilerConfig carries the caller-facing toggles of the compiler. It is
// a plain struct rather than a dynamic key/value store since the set of
// knobs this compiler exposes is small and fixed.
type CompilerConfig struct {
	// Verbose turns on glog diagnostics at V(1) for each user-defined
	// function call.
	Verbose bool
	// DisableMainCheck skips Compile's upfront check that a `main`
	// function is registered, surfacing the plain UnknownIntrinsic fault
	// from the call site instead of the friendlier pre-check message.
	DisableMainCheck bool
}

// Compiler owns every piece of compile-time state: the emitter, the cell
// allocator, and the intrinsic table that user-defined functions are
// registered into alongside the built-ins. All of it is single-threaded
// and confined to one Compiler instance.
type Compiler struct {
	em         *emitter
	alloc      *allocator
	intrinsics *intrinsicTable
	cfg        CompilerConfig
}

// NewCompiler constructs a Compiler with the built-in intrinsic table
// already registered.
func NewCompiler(cfg CompilerConfig) *Compiler {
	c := &Compiler{
		em:         newEmitter(),
		alloc:      newAllocator(),
		intrinsics: newIntrinsicTable(),
		cfg:        cfg,
	}
	registerBuiltins(c.intrinsics)
	return c
}

// RegisterFunctions binds every user-defined function into the shared
// intrinsic table, keyed by (name, parameter-type-tuple) exactly like a
// built-in. A call site cannot tell the two apart.
func (c *Compiler) RegisterFunctions(defs []*FunctionDefNode) {
	for _, def := range defs {
		def := def // capture
		types := make([]Type, len(def.Params))
		for i, p := range def.Params {
			types[i] = p.Typ
		}
		c.intrinsics.register(def.Name, types, c.makeFunctionCall(def))
	}
}

// makeFunctionCall builds the intrinsicFunc that calls a user-defined
// function: a fresh Environment is bound from parameter names to the
// evaluated, owned argument Values, the body runs against it, and the
// optional return expression is evaluated in that same environment before
// it is discarded.
func (c *Compiler) makeFunctionCall(def *FunctionDefNode) intrinsicFunc {
	return func(c *Compiler, args []Value) (Value, error) {
		if c.cfg.Verbose {
			glog.V(1).Infof("call %s with %d argument(s)", def.Name, len(args))
		}
		env := make(Environment, len(def.Params))
		for i, p := range def.Params {
			env[p.Name] = args[i]
		}
		if err := c.evalCode(def.Body, env); err != nil {
			return nil, err
		}
		if def.Return == nil {
			return nil, nil
		}
		return c.evalExpr(def.Return, env)
	}
}

// Compile is the single entry point: it locates the `main` function
// (already registered via RegisterFunctions), invokes it with no
// arguments against an empty environment, and returns the accumulated
// emitted program.
func Compile(defs []*FunctionDefNode, cfg CompilerConfig) (string, error) {
	c := NewCompiler(cfg)
	c.RegisterFunctions(defs)

	if !cfg.DisableMainCheck {
		if _, err := c.intrinsics.lookup("main", nil); err != nil {
			return "", newFault(UnknownIntrinsic, "no `main` function defined")
		}
	}

	call := &CallNode{Name: "main"}
	if _, err := c.evalExpr(call, Environment{}); err != nil {
		return "", err
	}
	return c.em.program(), nil
}

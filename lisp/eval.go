package lisp

// Eval reduces v to a value in the context (scope) of env.  Quotes shed
// one layer, atoms resolve through the environment, and non-empty lists
// become calls.  Everything else evaluates to itself.
func (env *Env) Eval(v *Value) (*Value, error) {
	switch v.Type {
	case VQuote:
		return v.Cells[0], nil
	case VAtom:
		return env.Get(v.Str)
	case VList:
		if len(v.Cells) == 0 {
			return nil, &Error{Kind: EvalEmptyList, Cause: v, Env: env}
		}
		fn, err := env.Eval(v.Cells[0])
		if err != nil {
			return nil, err
		}
		args := make([]*Value, len(v.Cells)-1)
		if fn.Type == VBuiltin {
			// Builtins can be special forms, so their arguments are
			// passed unevaluated and each builtin evaluates its own.
			copy(args, v.Cells[1:])
		} else {
			for i, c := range v.Cells[1:] {
				args[i], err = env.Eval(c)
				if err != nil {
					return nil, err
				}
			}
		}
		return env.Call(fn, args)
	default:
		return v, nil
	}
}

// Call applies fn to args.  A lambda is applied in a copy of its captured
// scope whose parent is set to the calling environment for the duration of
// the body evaluation.
func (env *Env) Call(fn *Value, args []*Value) (*Value, error) {
	switch fn.Type {
	case VLambda:
		formals := fn.Cells[0].Cells
		if len(formals) > len(args) {
			return nil, &Error{Kind: TooFewArgs, Cause: List(args), Env: env}
		}
		if len(formals) < len(args) {
			return nil, &Error{Kind: TooManyArgs, Cause: List(args), Env: env}
		}
		scope := fn.Scope.Copy()
		if scope == nil {
			scope = NewEnv(nil)
		}
		scope.Parent = env
		for i, formal := range formals {
			if formal.Type != VAtom {
				return nil, &Error{Kind: InvalidLambda, Cause: fn, Env: env}
			}
			scope.Put(formal.Str, args[i])
		}
		return scope.Eval(fn.Cells[1])
	case VBuiltin:
		return fn.Builtin.fn(env, args)
	default:
		return nil, &Error{Kind: CallNonFunction, Cause: fn, Env: env}
	}
}

// Run parses code and evaluates each expression in order against env,
// returning the value of the last.  Intermediate results are discarded.
func Run(code string, env *Env) (*Value, error) {
	reader := env.root().Reader
	if reader == nil {
		return nil, &Error{Kind: InternalError}
	}
	parsed, err := reader.Read(code)
	if err != nil {
		return nil, err
	}
	result := Unit()
	for _, v := range parsed {
		result, err = env.Eval(v)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// captureScope collects every atom name referenced in body and copies the
// bindings that exist in env into a fresh parentless scope.  The walk
// recurses through lists, quotes, and nested lambda forms without treating
// inner parameters as binding; capturing an unused name costs memory, not
// correctness.  Builtin names never satisfy Has and are resolved at call
// time instead.
func captureScope(body *Value, env *Env) *Env {
	scope := NewEnv(nil)
	names := make(map[string]bool)
	collectAtoms(body, names)
	for name := range names {
		if v, ok := lookupChain(env, name); ok {
			scope.Scope[name] = v.Copy()
		}
	}
	return scope
}

func collectAtoms(v *Value, names map[string]bool) {
	if v.Type == VAtom {
		names[v.Str] = true
		return
	}
	for _, c := range v.Cells {
		collectAtoms(c, names)
	}
}

func lookupChain(env *Env, name string) (*Value, bool) {
	for ; env != nil; env = env.Parent {
		if v, ok := env.Scope[name]; ok {
			return v, true
		}
	}
	return nil, false
}

package lisp

// The special forms.  Like every builtin they receive their arguments
// unevaluated; unlike ordinary builtins they never call evalArgs up front
// and decide themselves what to evaluate.
var langSpecialForms = []*BuiltinDef{
	{"do", opDo},
	{"if", opIf},
	{"for", opFor},
	{"while", opWhile},
	{"scope", opScope},
	{"quote", opQuote},
	{"defun", opDefun},
	{"define", opDefine},
	{"lambda", opLambda},
}

// (lambda (params) body)
func opLambda(env *Env, args []*Value) (*Value, error) {
	if len(args) < 2 {
		return nil, berr("lambda", env, TooFewArgs)
	}
	if args[0].Type != VList {
		return nil, berr("lambda", env, InvalidLambda)
	}
	return Lambda(args[0], args[1], captureScope(args[1], env)), nil
}

// (define name expr)
func opDefine(env *Env, args []*Value) (*Value, error) {
	if err := checkArity("define", env, args, 2); err != nil {
		return nil, err
	}
	result, err := env.Eval(args[1])
	if err != nil {
		return nil, err
	}
	env.Put(args[0].Display(), result)
	return result, nil
}

// (defun name (params) body)
func opDefun(env *Env, args []*Value) (*Value, error) {
	if err := checkArity("defun", env, args, 3); err != nil {
		return nil, err
	}
	if args[1].Type != VList {
		return nil, berr("defun", env, InvalidLambda)
	}
	fn := Lambda(args[1], args[2], captureScope(args[2], env))
	env.Put(args[0].Display(), fn)
	return fn, nil
}

// (if cond then else)
func opIf(env *Env, args []*Value) (*Value, error) {
	if err := checkArity("if", env, args, 3); err != nil {
		return nil, err
	}
	cond, err := env.Eval(args[0])
	if err != nil {
		return nil, err
	}
	if cond.Bool() {
		return env.Eval(args[1])
	}
	return env.Eval(args[2])
}

// (do e1 ... en) evaluates each expression in the current scope.
func opDo(env *Env, args []*Value) (*Value, error) {
	result := Unit()
	var err error
	for _, a := range args {
		result, err = env.Eval(a)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// (scope e1 ... en) evaluates each expression in a copy of the current
// scope, so definitions made inside do not leak out.
func opScope(env *Env, args []*Value) (*Value, error) {
	return opDo(env.Copy(), args)
}

// (quote e1 ... en) returns its arguments verbatim as a list.  Distinct
// from the ' reader syntax, which wraps a single expression in a quote.
func opQuote(env *Env, args []*Value) (*Value, error) {
	cells := make([]*Value, len(args))
	copy(cells, args)
	return List(cells), nil
}

// (while cond e1 ... en)
func opWhile(env *Env, args []*Value) (*Value, error) {
	if len(args) < 1 {
		return nil, berr("while", env, TooFewArgs)
	}
	result := Unit()
	for {
		cond, err := env.Eval(args[0])
		if err != nil {
			return nil, err
		}
		if !cond.Bool() {
			return result, nil
		}
		for _, a := range args[1:] {
			result, err = env.Eval(a)
			if err != nil {
				return nil, err
			}
		}
	}
}

// (for name list e1 ... en) binds name in the current scope, so the loop
// variable remains defined after the loop.
func opFor(env *Env, args []*Value) (*Value, error) {
	if len(args) < 2 {
		return nil, berr("for", env, TooFewArgs)
	}
	list, err := env.Eval(args[1])
	if err != nil {
		return nil, err
	}
	if list.Type != VList {
		return nil, &Error{Kind: MismatchedTypes, Cause: list, Env: env}
	}
	name := args[0].Display()
	result := Unit()
	for _, x := range list.Cells {
		env.Put(name, x)
		for _, a := range args[2:] {
			result, err = env.Eval(a)
			if err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

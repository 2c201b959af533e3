package eval

import (
	"fmt"
	"strconv"

	"github.com/signadot/resval/debug"
	"github.com/signadot/resval/value"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env maps names used in expressions to values.
type Env map[string]*value.Value

func (e Env) exprEnv() map[string]any {
	res := make(map[string]any, len(e))
	for k, v := range e {
		res[k] = v
	}
	return res
}

// Program is a compiled expression. It may be run with any Env binding
// the same names to values.
type Program struct {
	src  string
	prog *vm.Program
}

// Compile compiles src, checking names and operand types against env.
func Compile(src string, env Env) (*Program, error) {
	opts := append([]expr.Option{expr.Env(env.exprEnv())}, exprOpts()...)
	prog, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, src, err)
	}
	if debug.Eval() {
		debug.Logf("eval compiled %q\n", src)
	}
	return &Program{src: src, prog: prog}, nil
}

func (p *Program) String() string {
	return p.src
}

func (p *Program) Run(env Env) (*value.Value, error) {
	res, err := expr.Run(p.prog, env.exprEnv())
	if err != nil {
		return nil, fmt.Errorf("%w: running %q: %w", ErrEval, p.src, err)
	}
	v, err := toValue(res)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrEval, p.src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q = %s\n", p.src, v)
	}
	return v, nil
}

// Eval compiles and runs src against env.
func Eval(src string, env Env) (*value.Value, error) {
	p, err := Compile(src, env)
	if err != nil {
		return nil, err
	}
	return p.Run(env)
}

func toValue(res any) (*value.Value, error) {
	switch x := res.(type) {
	case *value.Value:
		if x == nil {
			return nil, fmt.Errorf("%w: nil value", ErrResult)
		}
		return x, nil
	case bool:
		return value.FromText(strconv.FormatBool(x)), nil
	case int:
		return value.FromScalar(float64(x)), nil
	case float64:
		return value.FromScalar(x), nil
	case string:
		return value.FromText(x), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrResult, res)
}

package eval

import (
	"fmt"

	"github.com/signadot/resval/parse"
	"github.com/signadot/resval/value"

	"github.com/expr-lang/expr"
)

func valueArgs(name string, params []any) ([]*value.Value, error) {
	res := make([]*value.Value, len(params))
	for i, p := range params {
		v, ok := p.(*value.Value)
		if !ok || v == nil {
			return nil, fmt.Errorf("%w: %s argument %d is %T, not a value", ErrEval, name, i+1, p)
		}
		res[i] = v
	}
	return res, nil
}

func binary(name string, f func(a, b *value.Value) (any, error)) func(params ...any) (any, error) {
	return func(params ...any) (any, error) {
		args, err := valueArgs(name, params)
		if err != nil {
			return nil, err
		}
		return f(args[0], args[1])
	}
}

func exprOpts() []expr.Option {
	union := binary("union", func(a, b *value.Value) (any, error) {
		return value.Add(a, b)
	})
	difference := binary("difference", func(a, b *value.Value) (any, error) {
		return value.Subtract(a, b)
	})
	return []expr.Option{
		expr.Function("union", union,
			new(func(*value.Value, *value.Value) *value.Value)),
		expr.Function("difference", difference,
			new(func(*value.Value, *value.Value) *value.Value)),
		expr.Operator("+", "union"),
		expr.Operator("-", "difference"),
		expr.Function("equal", binary("equal", func(a, b *value.Value) (any, error) {
			return value.Equal(a, b), nil
		}),
			new(func(*value.Value, *value.Value) bool)),
		expr.Function("subset", binary("subset", func(a, b *value.Value) (any, error) {
			return value.LessEqual(a, b)
		}),
			new(func(*value.Value, *value.Value) bool)),
		expr.Function("parse", func(params ...any) (any, error) {
			return parse.Parse(params[0].(string))
		},
			new(func(string) *value.Value)),
		expr.Function("coalesce", func(params ...any) (any, error) {
			args, err := valueArgs("coalesce", params)
			if err != nil {
				return nil, err
			}
			if args[0].Type != value.RangesType {
				return nil, fmt.Errorf("%w: coalesce of %s: %w", ErrEval, args[0].Type, value.ErrUnsupported)
			}
			return value.FromRanges(value.Coalesce(args[0].Ranges)...), nil
		},
			new(func(*value.Value) *value.Value)),
	}
}

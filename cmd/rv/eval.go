package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/signadot/resval/encode"
	"github.com/signadot/resval/eval"
	"github.com/signadot/resval/parse"
	"github.com/signadot/resval/value"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func evalExpr(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := strings.Join(args, " ")
	v, err := eval.Eval(src, cfg.Env)
	if err != nil {
		return err
	}
	return encode.Encode(v, cc.Out, cfg.MainConfig.encOpts(cc.Out)...)
}

func envFunc(env eval.Env, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected name=val", cli.ErrUsage, a)
	}
	v, err := parse.Parse(val)
	if err != nil {
		return fmt.Errorf("error parsing value of %q: %w", key, err)
	}
	env[key] = v
	return nil
}

// envFile binds the top level keys of a yaml or json mapping.  String and
// number entries are parsed as values, lists become sets.
func envFile(env eval.Env, file string) error {
	d, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", file, err)
	}
	m := map[string]any{}
	if err := yaml.Unmarshal(d, &m); err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	for k, x := range m {
		v, err := envValue(x)
		if err != nil {
			return fmt.Errorf("%s: %q: %w", file, k, err)
		}
		env[k] = v
	}
	return nil
}

func envValue(x any) (*value.Value, error) {
	switch y := x.(type) {
	case []any:
		items := make([]string, len(y))
		for i, item := range y {
			items[i] = fmt.Sprint(item)
		}
		return value.FromSet(items...), nil
	case map[string]any:
		return nil, fmt.Errorf("unexpected mapping")
	case nil:
		return nil, fmt.Errorf("unexpected null")
	}
	return parse.Parse(fmt.Sprint(x))
}

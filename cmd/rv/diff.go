package main

import (
	"fmt"
	"io"

	"github.com/signadot/resval/libdiff"
	"github.com/signadot/resval/value"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := cfg.decode(args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := cfg.decode(args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		a, b = b, a
	}
	differs, err := diffValues(cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffValues(w io.Writer, a, b *value.Value) (bool, error) {
	d, err := libdiff.Compute(a, b)
	if err != nil {
		return false, err
	}
	if d.Empty() {
		return false, nil
	}
	if _, err := io.WriteString(w, d.String()); err != nil {
		return false, fmt.Errorf("unable to write diff: %w", err)
	}
	return true, nil
}

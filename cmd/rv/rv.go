package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/resval/format"

	"github.com/scott-cotton/cli"
)

func rvMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer cfg.closeOut()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.check(); err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		return cli.ExitCodeErr(sub.Exit(cc, err))
	}
	return err
}

// check rejects format options which contradict each other: at most one
// of -t, -j and -y, and -I or -O only when they agree with it.
func (cfg *MainConfig) check() error {
	var (
		n    int
		flag string
		ff   format.Format
	)
	for _, x := range []struct {
		set  bool
		name string
		f    format.Format
	}{
		{cfg.T, "-t", format.TextFormat},
		{cfg.J, "-j", format.JSONFormat},
		{cfg.Y, "-y", format.YAMLFormat},
	} {
		if x.set {
			n++
			flag, ff = x.name, x.f
		}
	}
	switch {
	case n > 1:
		return fmt.Errorf("%w: must specify at most one of -t[ext] -j[son] -y[aml]", cli.ErrUsage)
	case n == 0:
		return nil
	case cfg.AutoIn:
		return fmt.Errorf("%w: -I auto conflicts with %s", cli.ErrUsage, flag)
	case cfg.InFormat != nil && *cfg.InFormat != ff:
		return fmt.Errorf("%w: -I %s conflicts with %s", cli.ErrUsage, *cfg.InFormat, flag)
	case cfg.OutFormat != nil && *cfg.OutFormat != ff:
		return fmt.Errorf("%w: -O %s conflicts with %s", cli.ErrUsage, *cfg.OutFormat, flag)
	}
	return nil
}

// outOpt sends output to a file, "-" meaning stdout.
func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	if a == "" {
		return nil, fmt.Errorf("%w: -o requires a file", cli.ErrUsage)
	}
	cfg.closeOut()
	cfg.Out = a
	if a == "-" {
		cc.Out = os.Stdout
		return a, nil
	}
	f, err := os.Create(a)
	if err != nil {
		return nil, fmt.Errorf("could not create %q: %w", a, err)
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return a, nil
}

func (cfg *MainConfig) closeOut() {
	if cfg.CloseOut == nil {
		return
	}
	cfg.CloseOut()
	cfg.CloseOut = nil
}

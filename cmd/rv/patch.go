package main

import (
	"fmt"
	"io"

	"github.com/signadot/resval/encode"
	"github.com/signadot/resval/libdiff"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	p := []byte(args[0])
	for _, arg := range args[1:] {
		if err := patchOne(cfg, cc.Out, p, arg); err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
	}
	return nil
}

func patchOne(cfg *PatchConfig, w io.Writer, p []byte, in string) error {
	v, err := cfg.decode(in)
	if err != nil {
		return err
	}
	if cfg.Merge {
		v, err = libdiff.MergePatch(v, p)
	} else {
		v, err = libdiff.JSONPatch(v, p)
	}
	if err != nil {
		return err
	}
	return encode.Encode(v, w, cfg.encOpts(w)...)
}

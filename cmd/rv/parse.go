package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/resval/encode"

	"github.com/scott-cotton/cli"
)

func parseValues(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return parseReader(cfg, cc.Out, cc.In)
	}
	for i, arg := range args {
		if err := parseOne(cfg, cc.Out, arg); err != nil {
			return fmt.Errorf("error processing argument %d: %w", i, err)
		}
	}
	return nil
}

// parseReader decodes r as one document, or as one text value per line.
func parseReader(cfg *ParseConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	if !cfg.inFormat(string(in)).IsText() {
		return parseOne(cfg, w, string(in))
	}
	scanner := bufio.NewScanner(bytes.NewReader(in))
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := parseOne(cfg, w, line); err != nil {
			return fmt.Errorf("error processing line %d: %w", n, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	return nil
}

func parseOne(cfg *ParseConfig, w io.Writer, in string) error {
	v, err := cfg.decode(in)
	if err != nil {
		return err
	}
	return encode.Encode(v, w, cfg.encOpts(w)...)
}

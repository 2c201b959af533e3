package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/resval/encode"
	"github.com/signadot/resval/eval"
	"github.com/signadot/resval/format"
	"github.com/signadot/resval/parse"
	"github.com/signadot/resval/value"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color     bool `cli:"name=color desc='encode with color'"`
	WireOut   bool `cli:"name=wire desc='output in compact format'"`
	Canonical bool `cli:"name=c aliases=canonical desc='coalesce ranges before encoding'"`

	T bool `cli:"name=t aliases=text desc='do i/o in text'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format
	// AutoIn detects the input format of each value, see format.Detect.
	AutoIn bool

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFmtOpt is like fmtFunc but also accepts "auto".
func (cfg *MainConfig) inFmtOpt(cc *cli.Context, v string) (any, error) {
	if v == "a" || v == "auto" {
		cfg.AutoIn = true
		cfg.InFormat = nil
		return v, nil
	}
	cfg.AutoIn = false
	return cfg.fmtFunc(&cfg.InFormat)(cc, v)
}

func (cfg *MainConfig) flagFormat() format.Format {
	switch {
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	}
	return format.TextFormat
}

func (cfg *MainConfig) inFormat(in string) format.Format {
	if cfg.AutoIn {
		return format.Detect([]byte(in))
	}
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return cfg.flagFormat()
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmt := cfg.flagFormat()
	if cfg.OutFormat != nil {
		fmt = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmt),
		encode.EncodeWire(cfg.WireOut),
		encode.EncodeCanonical(cfg.Canonical),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorsSet = opt.Value != nil
			break
		}
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// decode reads one value in the configured input format.
func (cfg *MainConfig) decode(in string) (*value.Value, error) {
	f := cfg.inFormat(in)
	if f.IsText() {
		return parse.Parse(in)
	}
	return encode.Decode([]byte(in), f)
}

type ParseConfig struct {
	*MainConfig
	Raw    bool `cli:"name=raw desc='keep ranges as written'"`
	Expect *value.Type

	Parse *cli.Command
}

func (cfg *ParseConfig) expectOpt(_ *cli.Context, a string) (any, error) {
	var t value.Type
	if err := t.UnmarshalText([]byte(strings.ToUpper(a))); err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Expect = &t
	return t, nil
}

// decode is MainConfig.decode honoring -raw and -expect. Documents keep
// their ranges as written, so they are coalesced here unless -raw is set.
func (cfg *ParseConfig) decode(in string) (*value.Value, error) {
	f := cfg.inFormat(in)
	if f.IsText() {
		return parse.Parse(in, cfg.parseOpts()...)
	}
	v, err := encode.Decode([]byte(in), f)
	if err != nil {
		return nil, err
	}
	if cfg.Expect != nil && v.Type != *cfg.Expect {
		return nil, fmt.Errorf("%w: expected %s got %s %q",
			parse.ErrUnexpectedType, *cfg.Expect, v.Type, v.String())
	}
	if !cfg.Raw && v.Type == value.RangesType {
		v.Ranges = value.Coalesce(v.Ranges)
	}
	return v, nil
}

func (cfg *ParseConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.Raw {
		res = append(res, parse.NoCoalesce())
	}
	if cfg.Expect != nil {
		res = append(res, parse.ParseExpect(*cfg.Expect))
	}
	return res
}

type EvalConfig struct {
	*MainConfig
	Env eval.Env

	Eval *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r aliases=reverse desc='diff b against a'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='treat the patch as a json merge patch'"`

	Patch *cli.Command
}

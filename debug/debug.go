// Package debug provides environment controlled debug tracing.
//
// Each switch is read once at startup from the environment:
//
//	RV_DEBUG_PARSE     parser decisions
//	RV_DEBUG_COALESCE  canonicalizer input and output
//	RV_DEBUG_EVAL      expression compilation and results
//	RV_DEBUG_PATCH     json patch input and output documents
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse    bool
	Coalesce bool
	Eval     bool
	Patch    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("RV_DEBUG_PARSE")
	d.Coalesce = boolEnv("RV_DEBUG_COALESCE")
	d.Eval = boolEnv("RV_DEBUG_EVAL")
	d.Patch = boolEnv("RV_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Coalesce() bool {
	return d.Coalesce
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}

// Set overrides the switches read from the environment, returning a
// function which restores them.
func Set(parse, coalesce, eval, patch bool) func() {
	old := *d
	d.Parse, d.Coalesce, d.Eval, d.Patch = parse, coalesce, eval, patch
	return func() { *d = old }
}

// Package eval evaluates expressions over named resource values.
//
//	env := eval.Env{
//	    "offered": parse.MustParse("[31000-32000]"),
//	    "used":    parse.MustParse("[31000-31010, 31500-31500]"),
//	}
//	free, err := eval.Eval("offered - used", env)
//
// The + and - operators map to value addition and subtraction. The
// following functions are available:
//
//	union(a, b)       a + b
//	difference(a, b)  a - b
//	equal(a, b)       value equality
//	subset(a, b)      a <= b
//	parse(s)          parse s as a value
//	coalesce(a)       canonical form of a ranges value
//
// Boolean results are returned as the text values "true" and "false", and
// numeric results as scalars.
package eval

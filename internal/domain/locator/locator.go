// Package locator finds test-case declarations in a syntax tree.
package locator

import (
	"github.com/openkraft/readability/internal/domain/syntax"
)

const (
	funcTest     = "test"
	funcIt       = "it"
	propDescribe = "describe"

	// UnnamedTest is used when the name argument has neither a decoded
	// value nor raw source text.
	UnnamedTest = "unnamed"
)

// TestFact is the raw information extracted for one test case.
type TestFact struct {
	Name            string
	DeclarationLine int
	BodyLineCount   int
	BodyText        string
}

// Locate walks root and returns one fact per test-case call, in source order.
// Matching calls are still descended into so nested declarations are found.
func Locate(root syntax.Node, source string) []TestFact {
	var facts []TestFact

	syntax.Walk(root, func(n syntax.Node) bool {
		call, ok := n.(*syntax.CallExpr)
		if !ok || !IsTestCallee(call.Callee) {
			return true
		}
		if fact, ok := extract(call, source); ok {
			facts = append(facts, fact)
		}
		return true
	})

	return facts
}

// IsTestCallee reports whether callee names a test case: the identifiers
// test and it, or any member of test other than describe.
func IsTestCallee(callee syntax.Node) bool {
	switch c := callee.(type) {
	case *syntax.Ident:
		return c.Name == funcTest || c.Name == funcIt
	case *syntax.MemberExpr:
		obj, ok := c.Object.(*syntax.Ident)
		if !ok || obj.Name != funcTest {
			return false
		}
		return c.Property == nil || c.Property.Name != propDescribe
	default:
		return false
	}
}

func extract(call *syntax.CallExpr, source string) (TestFact, bool) {
	// A name and a body: one-argument hooks such as test.beforeEach are not tests.
	if len(call.Args) < 2 {
		return TestFact{}, false
	}
	fn := findCallback(call.Args)
	if fn == nil {
		return TestFact{}, false
	}

	return TestFact{
		Name:            testName(call.Args[0]),
		DeclarationLine: call.StartLine(),
		BodyLineCount:   fn.EndLine() - fn.StartLine() + 1,
		BodyText:        bodyText(fn, source),
	}, true
}

func findCallback(args []syntax.Node) *syntax.FuncExpr {
	for _, arg := range args {
		if fn, ok := arg.(*syntax.FuncExpr); ok {
			return fn
		}
	}
	return nil
}

// testName prefers the decoded literal value, then the raw source text.
func testName(arg syntax.Node) string {
	var value, raw string
	switch a := arg.(type) {
	case *syntax.StringLit:
		value, raw = a.Value, a.Raw
	case *syntax.TemplateLit:
		if !a.HasSubstitutions {
			value = a.Value
		}
		raw = a.Raw
	case *syntax.NumberLit:
		raw = a.Raw
	}

	switch {
	case value != "":
		return value
	case raw != "":
		return raw
	default:
		return UnnamedTest
	}
}

// bodyText slices the callback body out of source. Missing bounds fall back
// to the start and the end of the file.
func bodyText(fn *syntax.FuncExpr, source string) string {
	start, end := 0, len(source)
	if fn.Body != nil {
		if r := fn.Body.Position().Range; r != nil {
			if r.Start > 0 {
				start = r.Start
			}
			if r.End > 0 {
				end = r.End
			}
		}
	}

	start = min(max(start, 0), len(source))
	end = min(max(end, start), len(source))
	return source[start:end]
}

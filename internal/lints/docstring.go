package lints

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gnolang/bython/internal/syntax"
	tt "github.com/gnolang/bython/internal/types"
)

// rule set
const (
	MissingDocstring        = "missing-docstring"
	ShortDocstring          = "short-docstring"
	MissingDocstringExample = "missing-docstring-example"
	ConditionalStatement    = "conditional-statement"
)

// MinDocstringLength is the number of characters a stripped docstring
// needs to have to be considered descriptive.
const MinDocstringLength = 50

// ErrMalformedNode is returned by a check that cannot make sense of the
// node it was given. The walker skips that check and keeps going.
var ErrMalformedNode = errors.New("malformed syntax node")

// exampleLine matches a doctest prompt on an indented line.
var exampleLine = regexp.MustCompile(`(?m)^[\t ]+>>> `)

// DetectDocstringIssues checks that a function starts with a docstring,
// and that the docstring is long enough and contains an example.
//
// Only the first statement of the body is considered. A function with an
// empty body is reported as missing its docstring.
func DetectDocstringIssues(fn *syntax.Node) ([]tt.Issue, error) {
	if fn == nil || fn.Kind != syntax.KindFunctionDef {
		return nil, fmt.Errorf("%w: expected function definition", ErrMalformedNode)
	}

	doc, err := docstring(fn)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return []tt.Issue{{
			Rule:    MissingDocstring,
			Message: fmt.Sprintf("function %s lacks a docstring", displayName(fn)),
			Line:    fn.Line,
		}}, nil
	}

	var issues []tt.Issue
	text := strings.TrimSpace(doc.Text)

	if n := utf8.RuneCountInString(text); n < MinDocstringLength {
		issues = append(issues, tt.Issue{
			Rule:    ShortDocstring,
			Message: fmt.Sprintf("docstring too short: %d characters, expected at least %d", n, MinDocstringLength),
			Line:    doc.Line,
		})
	}

	if !exampleLine.MatchString(text) {
		issues = append(issues, tt.Issue{
			Rule:    MissingDocstringExample,
			Message: "docstring missing example/test-case line (no indented \">>> \" prompt)",
			Line:    doc.Line,
		})
	}

	return issues, nil
}

// docstring returns the string constant documenting fn, or nil when the
// first statement is not a string literal expression.
func docstring(fn *syntax.Node) (*syntax.Node, error) {
	if len(fn.Body) == 0 {
		return nil, nil
	}
	first := fn.Body[0]
	if first == nil {
		return nil, fmt.Errorf("%w: nil statement in body of %s", ErrMalformedNode, displayName(fn))
	}
	if first.Kind != syntax.KindExprStmt {
		return nil, nil
	}
	if first.Value == nil {
		return nil, fmt.Errorf("%w: expression statement without value on line %d", ErrMalformedNode, first.Line)
	}
	if first.Value.Kind != syntax.KindStringConstant {
		return nil, nil
	}
	return first.Value, nil
}

func displayName(fn *syntax.Node) string {
	if fn.Name == "" {
		return "<anonymous>"
	}
	return fmt.Sprintf("%q", fn.Name)
}

package lints

import (
	"fmt"

	"github.com/gnolang/bython/internal/syntax"
	tt "github.com/gnolang/bython/internal/types"
)

// DetectConditional flags every if statement, whatever its body holds.
func DetectConditional(n *syntax.Node) ([]tt.Issue, error) {
	if n == nil || n.Kind != syntax.KindConditional {
		return nil, fmt.Errorf("%w: expected conditional", ErrMalformedNode)
	}
	return []tt.Issue{{
		Rule:    ConditionalStatement,
		Message: "conditional statement present",
		Line:    n.Line,
	}}, nil
}

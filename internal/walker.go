package internal

import (
	"go.uber.org/zap"

	"github.com/gnolang/bython/internal/lints"
	"github.com/gnolang/bython/internal/syntax"
	tt "github.com/gnolang/bython/internal/types"
)

// Walker visits a syntax tree depth-first and runs the rule checks that
// apply to each node. It keeps no state between analyses, so one Walker
// can serve any number of trees.
type Walker struct {
	logger *zap.Logger
}

// NewWalker creates a walker. A nil logger discards log output.
func NewWalker(logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{logger: logger}
}

// Analyze walks tree and returns the issues found, ordered by line.
func (w *Walker) Analyze(tree *syntax.Node) tt.Issues {
	var issues tt.Issues
	w.visit(tree, &issues)
	issues.Sort()
	return issues
}

// visit runs the checks for n before descending into its children.
func (w *Walker) visit(n *syntax.Node, issues *tt.Issues) {
	if n == nil {
		return
	}
	w.check(n, issues)
	for _, child := range children(n) {
		w.visit(child, issues)
	}
}

func (w *Walker) check(n *syntax.Node, issues *tt.Issues) {
	var (
		found []tt.Issue
		err   error
	)
	switch n.Kind {
	case syntax.KindFunctionDef:
		found, err = lints.DetectDocstringIssues(n)
	case syntax.KindConditional:
		found, err = lints.DetectConditional(n)
	case syntax.KindModule, syntax.KindExprStmt, syntax.KindStringConstant, syntax.KindOther:
		return
	default:
		return
	}
	if err != nil {
		w.logger.Warn("Skipping rule check",
			zap.Stringer("kind", n.Kind),
			zap.Int("line", n.Line),
			zap.Error(err))
		return
	}
	*issues = append(*issues, found...)
}

// children returns the statements reachable from n. Only statement
// containers are descended into.
func children(n *syntax.Node) []*syntax.Node {
	switch n.Kind {
	case syntax.KindModule, syntax.KindFunctionDef, syntax.KindConditional:
		return n.Body
	default:
		return nil
	}
}

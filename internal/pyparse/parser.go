// Package pyparse turns Python source into the syntax model walked by
// the linter. Parsing is done by tree-sitter with the Python grammar;
// the concrete tree is converted eagerly and released before returning.
package pyparse

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/gnolang/bython/internal/syntax"
)

// tree-sitter node types used during conversion
const (
	nodeModule              = "module"
	nodeComment             = "comment"
	nodeFunctionDefinition  = "function_definition"
	nodeDecoratedDefinition = "decorated_definition"
	nodeIfStatement         = "if_statement"
	nodeExpressionStatement = "expression_statement"
	nodeParenthesizedExpr   = "parenthesized_expression"
	nodeString              = "string"
	nodeConcatenatedString  = "concatenated_string"
	nodeError               = "ERROR"
	tokenAsync              = "async"
	fieldBody               = "body"
	fieldName               = "name"
	fieldDefinition         = "definition"
	fieldConsequence        = "consequence"
)

// SyntaxError reports source that tree-sitter could not parse cleanly.
type SyntaxError struct {
	Line   int
	Column int
	// Missing is set when the parser expected a token that is not there.
	Missing bool
}

func (e *SyntaxError) Error() string {
	if e.Missing {
		return fmt.Sprintf("syntax error: missing token at line %d, column %d", e.Line, e.Column)
	}
	return fmt.Sprintf("syntax error at line %d, column %d", e.Line, e.Column)
}

// Parse parses Python source and returns its module node.
func Parse(ctx context.Context, src []byte) (*syntax.Node, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("error parsing python source: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(root)
	}

	c := converter{src: src}
	return c.module(root), nil
}

// syntaxError locates the first error or missing node below n.
func syntaxError(n *sitter.Node) *SyntaxError {
	bad := firstError(n)
	if bad == nil {
		bad = n
	}
	p := bad.StartPoint()
	return &SyntaxError{
		Line:    int(p.Row) + 1,
		Column:  int(p.Column) + 1,
		Missing: bad.IsMissing(),
	}
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == nodeError || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || !child.HasError() {
			continue
		}
		if bad := firstError(child); bad != nil {
			return bad
		}
	}
	return nil
}

type converter struct {
	src []byte
}

func (c *converter) module(n *sitter.Node) *syntax.Node {
	return &syntax.Node{
		Kind: syntax.KindModule,
		Line: 1,
		Body: c.statements(n),
	}
}

// statements converts the named children of a module or block,
// skipping comments.
func (c *converter) statements(n *sitter.Node) []*syntax.Node {
	if n == nil {
		return nil
	}
	var out []*syntax.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child == nil || child.Type() == nodeComment {
			continue
		}
		out = append(out, c.statement(child))
	}
	return out
}

func (c *converter) statement(n *sitter.Node) *syntax.Node {
	switch n.Type() {
	case nodeFunctionDefinition:
		if isAsync(n) {
			return syntax.Other(line(n))
		}
		var name string
		if id := n.ChildByFieldName(fieldName); id != nil {
			name = id.Content(c.src)
		}
		return &syntax.Node{
			Kind: syntax.KindFunctionDef,
			Line: line(n),
			Name: name,
			Body: c.statements(n.ChildByFieldName(fieldBody)),
		}
	case nodeDecoratedDefinition:
		if def := n.ChildByFieldName(fieldDefinition); def != nil {
			return c.statement(def)
		}
		return syntax.Other(line(n))
	case nodeIfStatement:
		return &syntax.Node{
			Kind: syntax.KindConditional,
			Line: line(n),
			Body: c.statements(n.ChildByFieldName(fieldConsequence)),
		}
	case nodeExpressionStatement:
		expr := singleNamedChild(n)
		if expr == nil {
			return syntax.Other(line(n))
		}
		return syntax.ExprStmt(line(n), c.expression(expr))
	default:
		return syntax.Other(line(n))
	}
}

func (c *converter) expression(n *sitter.Node) *syntax.Node {
	switch n.Type() {
	case nodeParenthesizedExpr:
		if inner := singleNamedChild(n); inner != nil {
			return c.expression(inner)
		}
	case nodeString:
		if text, ok := decodeString(n.Content(c.src)); ok {
			return syntax.StringConstant(line(n), text)
		}
	case nodeConcatenatedString:
		if text, ok := c.concatenated(n); ok {
			return syntax.StringConstant(line(n), text)
		}
	}
	return syntax.Other(line(n))
}

// concatenated joins implicitly concatenated literals. The result is a
// text constant only when every part is one.
func (c *converter) concatenated(n *sitter.Node) (string, bool) {
	var text string
	parts := 0
	for i := 0; i < int(n.NamedChildCount()); i++ {
		part := n.NamedChild(i)
		if part == nil || part.Type() == nodeComment {
			continue
		}
		if part.Type() != nodeString {
			return "", false
		}
		s, ok := decodeString(part.Content(c.src))
		if !ok {
			return "", false
		}
		text += s
		parts++
	}
	return text, parts > 0
}

// singleNamedChild returns the only non-comment named child of n.
func singleNamedChild(n *sitter.Node) *sitter.Node {
	var found *sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child == nil || child.Type() == nodeComment {
			continue
		}
		if found != nil {
			return nil
		}
		found = child
	}
	return found
}

func isAsync(n *sitter.Node) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || child.IsNamed() {
			continue
		}
		if child.Type() == tokenAsync {
			return true
		}
	}
	return false
}

func line(n *sitter.Node) int {
	return int(n.StartPoint().Row) + 1
}

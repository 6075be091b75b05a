// Package syntax defines the closed node model the linter walks.
//
// The parser collaborator converts a concrete Python syntax tree into
// this model. Only the shapes the rule checks care about get their own
// kind; everything else is KindOther.
package syntax

import "fmt"

// Kind discriminates syntax nodes.
type Kind int

const (
	KindOther Kind = iota
	KindModule
	KindFunctionDef
	KindConditional
	KindExprStmt
	KindStringConstant
)

var kindNames = [...]string{
	KindOther:          "other",
	KindModule:         "module",
	KindFunctionDef:    "function-definition",
	KindConditional:    "conditional",
	KindExprStmt:       "expression-statement",
	KindStringConstant: "string-constant",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Node is a single syntax tree node. Which fields are meaningful
// depends on Kind:
//
//	KindModule          Body
//	KindFunctionDef     Name, Body
//	KindConditional     Body
//	KindExprStmt        Value
//	KindStringConstant  Text
//
// Line is the 1-based source line the node starts on.
type Node struct {
	Kind  Kind
	Line  int
	Name  string
	Body  []*Node
	Value *Node
	Text  string
}

// Module returns a module node holding the given statements.
func Module(body ...*Node) *Node {
	return &Node{Kind: KindModule, Line: 1, Body: body}
}

// FunctionDef returns a function definition node.
func FunctionDef(line int, name string, body ...*Node) *Node {
	return &Node{Kind: KindFunctionDef, Line: line, Name: name, Body: body}
}

// Conditional returns an if statement node.
func Conditional(line int, body ...*Node) *Node {
	return &Node{Kind: KindConditional, Line: line, Body: body}
}

// ExprStmt returns an expression statement wrapping value.
func ExprStmt(line int, value *Node) *Node {
	return &Node{Kind: KindExprStmt, Line: line, Value: value}
}

// StringConstant returns a string literal holding the decoded text.
func StringConstant(line int, text string) *Node {
	return &Node{Kind: KindStringConstant, Line: line, Text: text}
}

// Other returns a node of a kind the linter does not inspect.
func Other(line int) *Node {
	return &Node{Kind: KindOther, Line: line}
}

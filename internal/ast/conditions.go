package ast

import (
	"github.com/corelang/gocore/pkg/token"
)

// Comparison is `( <op> <comp op> <op> )`.
type Comparison struct {
	Token    token.Token // the opening LPAREN
	Left     Expression
	Operator token.Token // one of != == < > <= >=
	Right    Expression
}

func (c *Comparison) conditionNode()       {}
func (c *Comparison) TokenLiteral() string { return c.Token.Literal }
func (c *Comparison) Pos() token.Position  { return c.Token.Pos }
func (c *Comparison) String() string {
	return "( " + c.Left.String() + " " + c.Operator.Literal + " " + c.Right.String() + " )"
}

// NotCondition is `! <cond>`.
type NotCondition struct {
	Token token.Token // the NOT token
	Cond  Condition
}

func (nc *NotCondition) conditionNode()       {}
func (nc *NotCondition) TokenLiteral() string { return nc.Token.Literal }
func (nc *NotCondition) Pos() token.Position  { return nc.Token.Pos }
func (nc *NotCondition) String() string {
	return "!" + nc.Cond.String()
}

// LogicalCondition is `[ <cond> && <cond> ]` or `[ <cond> || <cond> ]`.
type LogicalCondition struct {
	Token    token.Token // the opening LBRACK
	Left     Condition
	Operator token.Token // AND or OR
	Right    Condition
}

func (lc *LogicalCondition) conditionNode()       {}
func (lc *LogicalCondition) TokenLiteral() string { return lc.Token.Literal }
func (lc *LogicalCondition) Pos() token.Position  { return lc.Token.Pos }
func (lc *LogicalCondition) String() string {
	return "[ " + lc.Left.String() + " " + lc.Operator.Literal + " " + lc.Right.String() + " ]"
}

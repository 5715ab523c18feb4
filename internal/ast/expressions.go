package ast

import (
	"github.com/corelang/gocore/pkg/token"
)

// BinaryExpression is `<fac> + <exp>`, `<fac> - <exp>`, or
// `<op> * <fac>`. The grammar is right-recursive, so the parser nests
// these to the right: a - b - c is a - (b - c).
type BinaryExpression struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator token.Token // PLUS, MINUS, or ASTERISK
	Right    Expression
}

func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Literal }
func (be *BinaryExpression) Pos() token.Position  { return be.Left.Pos() }
func (be *BinaryExpression) String() string {
	return be.Left.String() + " " + be.Operator.Literal + " " + be.Right.String()
}

// ParenExpression is `( <exp> )` used as an operand.
type ParenExpression struct {
	Token token.Token // the opening LPAREN
	Inner Expression
}

func (pe *ParenExpression) expressionNode()      {}
func (pe *ParenExpression) TokenLiteral() string { return pe.Token.Literal }
func (pe *ParenExpression) Pos() token.Position  { return pe.Token.Pos }
func (pe *ParenExpression) String() string {
	return "( " + pe.Inner.String() + " )"
}

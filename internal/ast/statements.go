package ast

import (
	"strings"

	"github.com/corelang/gocore/pkg/token"
)

// AssignStatement is `<id> = <exp> ;`.
type AssignStatement struct {
	Token  token.Token // the target's IDENT token
	Target *Identifier
	Value  Expression
}

func (as *AssignStatement) statementNode()       {}
func (as *AssignStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AssignStatement) Pos() token.Position  { return as.Token.Pos }
func (as *AssignStatement) Line() int            { return as.Token.Pos.Line }
func (as *AssignStatement) String() string {
	return as.Target.String() + " = " + as.Value.String() + ";"
}

// IfStatement is `if <cond> then <stmt seq> [ else <stmt seq> ] end ;`.
// Else is nil when the else branch is absent.
type IfStatement struct {
	Token token.Token // the IF token
	Cond  Condition
	Then  []Statement
	Else  []Statement
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) Pos() token.Position  { return is.Token.Pos }
func (is *IfStatement) Line() int            { return is.Token.Pos.Line }
func (is *IfStatement) String() string {
	var out strings.Builder
	out.WriteString("if ")
	out.WriteString(is.Cond.String())
	out.WriteString(" then ")
	for _, s := range is.Then {
		out.WriteString(s.String())
		out.WriteString(" ")
	}
	if is.Else != nil {
		out.WriteString("else ")
		for _, s := range is.Else {
			out.WriteString(s.String())
			out.WriteString(" ")
		}
	}
	out.WriteString("end;")
	return out.String()
}

// WhileStatement is `while <cond> loop <stmt seq> end ;`.
type WhileStatement struct {
	Token token.Token // the WHILE token
	Cond  Condition
	Body  []Statement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) Pos() token.Position  { return ws.Token.Pos }
func (ws *WhileStatement) Line() int            { return ws.Token.Pos.Line }
func (ws *WhileStatement) String() string {
	var out strings.Builder
	out.WriteString("while ")
	out.WriteString(ws.Cond.String())
	out.WriteString(" loop ")
	for _, s := range ws.Body {
		out.WriteString(s.String())
		out.WriteString(" ")
	}
	out.WriteString("end;")
	return out.String()
}

// ReadStatement is `read <id list> ;`.
type ReadStatement struct {
	Token   token.Token // the READ token
	Targets []*Identifier
}

func (rs *ReadStatement) statementNode()       {}
func (rs *ReadStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReadStatement) Pos() token.Position  { return rs.Token.Pos }
func (rs *ReadStatement) Line() int            { return rs.Token.Pos.Line }
func (rs *ReadStatement) String() string {
	return "read " + idList(rs.Targets) + ";"
}

// WriteStatement is `write <id list> ;`.
type WriteStatement struct {
	Token   token.Token // the WRITE token
	Targets []*Identifier
}

func (ws *WriteStatement) statementNode()       {}
func (ws *WriteStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WriteStatement) Pos() token.Position  { return ws.Token.Pos }
func (ws *WriteStatement) Line() int            { return ws.Token.Pos.Line }
func (ws *WriteStatement) String() string {
	return "write " + idList(ws.Targets) + ";"
}

func idList(ids []*Identifier) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return strings.Join(names, ", ")
}

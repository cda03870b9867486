package parser

import (
	"io"

	verr "github.com/ricelink/automata/error"
)

// RootNode is the parsed form of one machine definition: its %-prefixed
// directives and its transition rules, in source order.
type RootNode struct {
	Directives []*DirectiveNode
	Rules      []*RuleNode
}

// DirectiveNode is one % directive, like `%states q0 q1;`.
type DirectiveNode struct {
	Name       string
	Parameters []string
	Pos        Position
}

// RuleNode is one transition rule, like `q0 a 0 -> q1 0 1;`. Input is
// empty when the rule fires without consuming input (spelled _). Push
// lists the replacement symbols; the last one becomes the new stack top,
// and an empty list means a bare pop.
type RuleNode struct {
	State string
	Input string
	Top   string
	Next  string
	Push  []string
	Pos   Position
}

// Parse reads a machine definition and returns its AST. Parse failures
// come back as verr.SpecErrors whose entries point at the offending
// source position.
func Parse(src io.Reader) (*RootNode, error) {
	p := newParser(src)
	return p.parse()
}

func raiseSyntaxError(pos Position, synErr *SyntaxError) {
	panic(&verr.SpecError{
		Cause: synErr,
		Row:   pos.Row,
		Col:   pos.Col,
	})
}

type parser struct {
	lex       *lexer
	peekedTok *token
	lastTok   *token
}

func newParser(src io.Reader) *parser {
	return &parser{
		lex: newLexer(src),
	}
}

func (p *parser) parse() (root *RootNode, retErr error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		if specErr, ok := v.(*verr.SpecError); ok {
			retErr = verr.SpecErrors{specErr}
			return
		}
		if err, ok := v.(error); ok {
			retErr = err
			return
		}
		panic(v)
	}()
	return p.parseRoot(), nil
}

func (p *parser) parseRoot() *RootNode {
	root := &RootNode{}
	for {
		switch {
		case p.consume(tokenKindEOF):
			if len(root.Directives) == 0 && len(root.Rules) == 0 {
				raiseSyntaxError(p.lastTok.pos, synErrEmptyDefinition)
			}
			return root
		case p.consume(tokenKindDirectiveMarker):
			root.Directives = append(root.Directives, p.parseDirective())
		default:
			root.Rules = append(root.Rules, p.parseRule())
		}
	}
}

func (p *parser) parseDirective() *DirectiveNode {
	if !p.consume(tokenKindID) {
		p.raiseUnexpectedToken(synErrNoDirectiveName)
	}
	dir := &DirectiveNode{
		Name: p.lastTok.text,
		Pos:  p.lastTok.pos,
	}
	for {
		if p.consume(tokenKindLambda) {
			raiseSyntaxError(p.lastTok.pos, synErrLambdaParameter)
		}
		if !p.consume(tokenKindID) {
			break
		}
		dir.Parameters = append(dir.Parameters, p.lastTok.text)
	}
	if !p.consume(tokenKindSemicolon) {
		p.raiseUnexpectedToken(synErrDirNoSemicolon)
	}
	return dir
}

func (p *parser) parseRule() *RuleNode {
	if !p.consume(tokenKindID) {
		p.raiseUnexpectedToken(synErrNoRuleState)
	}
	rule := &RuleNode{
		State: p.lastTok.text,
		Pos:   p.lastTok.pos,
	}
	switch {
	case p.consume(tokenKindLambda):
		// Input stays empty: the rule fires without consuming input.
	case p.consume(tokenKindID):
		rule.Input = p.lastTok.text
	default:
		p.raiseUnexpectedToken(synErrNoRuleInput)
	}
	if !p.consume(tokenKindID) {
		p.raiseUnexpectedToken(synErrNoRuleTop)
	}
	rule.Top = p.lastTok.text
	if !p.consume(tokenKindArrow) {
		p.raiseUnexpectedToken(synErrNoArrow)
	}
	if !p.consume(tokenKindID) {
		p.raiseUnexpectedToken(synErrNoRuleTarget)
	}
	rule.Next = p.lastTok.text
	for {
		if p.consume(tokenKindLambda) {
			raiseSyntaxError(p.lastTok.pos, synErrLambdaParameter)
		}
		if !p.consume(tokenKindID) {
			break
		}
		rule.Push = append(rule.Push, p.lastTok.text)
	}
	if !p.consume(tokenKindSemicolon) {
		p.raiseUnexpectedToken(synErrRuleNoSemicolon)
	}
	return rule
}

// raiseUnexpectedToken reports synErr at the token the last consume
// refused.
func (p *parser) raiseUnexpectedToken(synErr *SyntaxError) {
	raiseSyntaxError(p.peekedTok.pos, synErr)
}

func (p *parser) consume(expected tokenKind) bool {
	var tok *token
	if p.peekedTok != nil {
		tok = p.peekedTok
		p.peekedTok = nil
	} else {
		var err error
		tok, err = p.lex.next()
		if err != nil {
			panic(err)
		}
	}
	p.lastTok = tok
	if tok.kind == tokenKindInvalid {
		raiseSyntaxError(tok.pos, synErrInvalidToken)
	}
	if tok.kind == expected {
		return true
	}
	p.peekedTok = tok
	p.lastTok = nil
	return false
}

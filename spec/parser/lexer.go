package parser

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

type tokenKind string

const (
	tokenKindID              = tokenKind("id")
	tokenKindLambda          = tokenKind("_")
	tokenKindDirectiveMarker = tokenKind("%")
	tokenKindArrow           = tokenKind("->")
	tokenKindSemicolon       = tokenKind(";")
	tokenKindEOF             = tokenKind("eof")
	tokenKindInvalid         = tokenKind("invalid")
)

// Position points at a rune in a definition source. Both fields are
// 1-based.
type Position struct {
	Row int
	Col int
}

func newPosition(row, col int) Position {
	return Position{
		Row: row,
		Col: col,
	}
}

type token struct {
	kind tokenKind
	text string
	pos  Position
}

func newSymbolToken(kind tokenKind, pos Position) *token {
	return &token{
		kind: kind,
		pos:  pos,
	}
}

func newIDToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindID,
		text: text,
		pos:  pos,
	}
}

func newInvalidToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindInvalid,
		text: text,
		pos:  pos,
	}
}

func newEOFToken(pos Position) *token {
	return &token{
		kind: tokenKindEOF,
		pos:  pos,
	}
}

// lexer splits a machine definition into tokens: identifiers, the lambda
// marker _, the punctuation % -> ;, and invalid runs. Whitespace
// separates tokens and # starts a comment that runs to the end of the
// line.
type lexer struct {
	src      *bufio.Reader
	row      int
	col      int
	peekChar rune
	peekPos  Position
	peekEOF  bool
	peeked   bool
}

func newLexer(src io.Reader) *lexer {
	return &lexer{
		src: bufio.NewReader(src),
		row: 1,
		col: 1,
	}
}

// next returns the next token. The token after the last one is EOF, and
// EOF repeats forever after that.
func (l *lexer) next() (*token, error) {
	c, pos, eof, err := l.skipWhitespaceAndComments()
	if err != nil {
		return nil, err
	}
	if eof {
		return newEOFToken(pos), nil
	}

	switch {
	case c == ';':
		return newSymbolToken(tokenKindSemicolon, pos), nil
	case c == '%':
		return newSymbolToken(tokenKindDirectiveMarker, pos), nil
	case c == '-':
		c1, pos1, eof1, err := l.read()
		if err != nil {
			return nil, err
		}
		if !eof1 && c1 == '>' {
			return newSymbolToken(tokenKindArrow, pos), nil
		}
		l.restore(c1, pos1, eof1)
		return l.lexInvalid(c, pos)
	case isIDChar(c):
		return l.lexID(c, pos)
	default:
		return l.lexInvalid(c, pos)
	}
}

func (l *lexer) lexID(head rune, pos Position) (*token, error) {
	var b strings.Builder
	b.WriteRune(head)
	for {
		c, cPos, eof, err := l.read()
		if err != nil {
			return nil, err
		}
		if eof || !isIDChar(c) {
			l.restore(c, cPos, eof)
			break
		}
		b.WriteRune(c)
	}
	text := b.String()
	if text == "_" {
		return newSymbolToken(tokenKindLambda, pos), nil
	}
	return newIDToken(text, pos), nil
}

// lexInvalid gathers a run of runes no other token accepts, so that an
// error can point at the whole run instead of its first rune.
func (l *lexer) lexInvalid(head rune, pos Position) (*token, error) {
	var b strings.Builder
	b.WriteRune(head)
	for {
		c, cPos, eof, err := l.read()
		if err != nil {
			return nil, err
		}
		if eof || unicode.IsSpace(c) || isIDChar(c) || c == ';' || c == '%' || c == '-' || c == '#' {
			l.restore(c, cPos, eof)
			break
		}
		b.WriteRune(c)
	}
	return newInvalidToken(b.String(), pos), nil
}

func (l *lexer) skipWhitespaceAndComments() (rune, Position, bool, error) {
	for {
		c, pos, eof, err := l.read()
		if err != nil || eof {
			return c, pos, eof, err
		}
		if unicode.IsSpace(c) {
			continue
		}
		if c == '#' {
			for {
				c, pos, eof, err = l.read()
				if err != nil {
					return c, pos, eof, err
				}
				if eof {
					return c, pos, eof, nil
				}
				if c == '\n' {
					break
				}
			}
			continue
		}
		return c, pos, false, nil
	}
}

// read returns the next rune and its position, or eof once the source is
// exhausted.
func (l *lexer) read() (rune, Position, bool, error) {
	if l.peeked {
		l.peeked = false
		return l.peekChar, l.peekPos, l.peekEOF, nil
	}
	c, _, err := l.src.ReadRune()
	if err != nil {
		if err == io.EOF {
			return 0, newPosition(l.row, l.col), true, nil
		}
		return 0, Position{}, false, err
	}
	pos := newPosition(l.row, l.col)
	if c == '\n' {
		l.row++
		l.col = 1
	} else {
		l.col++
	}
	return c, pos, false, nil
}

// restore puts one rune back so that the next read returns it again.
func (l *lexer) restore(c rune, pos Position, eof bool) {
	l.peekChar = c
	l.peekPos = pos
	l.peekEOF = eof
	l.peeked = true
}

func isIDChar(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

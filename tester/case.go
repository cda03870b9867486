package tester

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ricelink/automata/pda"
)

// TestCase is one machine test: a description, the input to feed, and
// the outcome to expect. State and Stack are optional extra assertions
// on the halting configuration; an empty State or a nil Stack leaves
// that part unchecked, while a non-nil empty Stack insists the stack
// ends up empty. The assertions apply to accepted and rejected runs
// alike, since a rejected run still halts somewhere.
type TestCase struct {
	Description string
	Input       []pda.InputSymbol
	Accept      bool
	State       pda.State
	Stack       []pda.StackSymbol
}

// ParseTestCase reads a test case consisting of three parts separated by
// --- lines:
//
//	accepts two matched pairs
//	---
//	aabb
//	---
//	accept
//	state q3
//	stack 0
//
// The first part is a free-form description. The second is the input;
// surrounding whitespace is ignored and each remaining rune is one input
// symbol, so an empty part means the empty input. The third part states
// the expected outcome, accept or reject, optionally followed by a
// `state <name>` line and a `stack <symbols top first>` line (a bare
// `stack` expects an empty stack).
func ParseTestCase(r io.Reader) (*TestCase, error) {
	parts, err := splitIntoParts(r)
	if err != nil {
		return nil, err
	}
	if len(parts) != 3 {
		return nil, fmt.Errorf("too many or too few part delimiters: a test case consists of just three parts: %v parts found", len(parts))
	}

	c := &TestCase{
		Description: string(parts[0]),
		Input:       pda.Symbols(strings.TrimSpace(string(parts[1]))),
	}
	err = parseExpectation(c, parts[2])
	if err != nil {
		return nil, err
	}
	return c, nil
}

func parseExpectation(c *TestCase, part []byte) error {
	sawOutcome := false
	s := bufio.NewScanner(bytes.NewReader(part))
	for s.Scan() {
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "accept", "reject":
			if sawOutcome {
				return fmt.Errorf("duplicate outcome line: %v", s.Text())
			}
			if len(fields) != 1 {
				return fmt.Errorf("the %v line takes no arguments", fields[0])
			}
			sawOutcome = true
			c.Accept = fields[0] == "accept"
		case "state":
			if c.State != "" {
				return fmt.Errorf("duplicate state line")
			}
			if len(fields) != 2 {
				return fmt.Errorf("the state line takes just one state name")
			}
			c.State = pda.State(fields[1])
		case "stack":
			if c.Stack != nil {
				return fmt.Errorf("duplicate stack line")
			}
			c.Stack = make([]pda.StackSymbol, 0, len(fields)-1)
			for _, f := range fields[1:] {
				c.Stack = append(c.Stack, pda.StackSymbol(f))
			}
		default:
			return fmt.Errorf("unknown expectation: %v", fields[0])
		}
	}
	if err := s.Err(); err != nil {
		return err
	}
	if !sawOutcome {
		return fmt.Errorf("a test case must expect either accept or reject")
	}
	return nil
}

var reDelim = regexp.MustCompile(`^\s*---+\s*$`)

func splitIntoParts(r io.Reader) ([][]byte, error) {
	var parts [][]byte
	s := bufio.NewScanner(r)
	for {
		part, err := readPart(s)
		if err != nil {
			return nil, err
		}
		if part == nil {
			break
		}
		parts = append(parts, part)
	}
	return parts, nil
}

func readPart(s *bufio.Scanner) ([]byte, error) {
	if !s.Scan() {
		return nil, s.Err()
	}
	buf := &bytes.Buffer{}
	line := s.Bytes()
	if reDelim.Match(line) {
		return []byte{}, nil
	}
	buf.Write(line)
	for s.Scan() {
		line := s.Bytes()
		if reDelim.Match(line) {
			return partBytes(buf), nil
		}
		buf.WriteByte('\n')
		buf.Write(line)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return partBytes(buf), nil
}

// partBytes returns the buffered part as a non-nil slice even when the
// part held no bytes, like a blank input line. A nil part means EOF to
// the caller.
func partBytes(buf *bytes.Buffer) []byte {
	if buf.Len() == 0 {
		return []byte{}
	}
	return buf.Bytes()
}

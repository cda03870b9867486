package parser

import (
	"strings"
	"testing"

	verr "github.com/ricelink/automata/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	dir := func(name string, params ...string) *DirectiveNode {
		return &DirectiveNode{
			Name:       name,
			Parameters: params,
		}
	}
	rule := func(state, input, top, next string, push ...string) *RuleNode {
		return &RuleNode{
			State: state,
			Input: input,
			Top:   top,
			Next:  next,
			Push:  push,
		}
	}

	tests := []struct {
		caption string
		src     string
		ast     *RootNode
		synErr  *SyntaxError
	}{
		{
			caption: "a full definition parses into directives and rules",
			src: `
%name    anbn;
%states  q0 q1 q2 q3;
%input   a b;
%stack   0 1;
%initial q0;
%bottom  0;
%final   q3;

# push a 1 for every a
q0 a 0 -> q1 0 1;
q1 a 1 -> q1 1 1;
# pop one for every b
q1 b 1 -> q2;
q2 b 1 -> q2;
q2 _ 0 -> q3 0;
`,
			ast: &RootNode{
				Directives: []*DirectiveNode{
					dir("name", "anbn"),
					dir("states", "q0", "q1", "q2", "q3"),
					dir("input", "a", "b"),
					dir("stack", "0", "1"),
					dir("initial", "q0"),
					dir("bottom", "0"),
					dir("final", "q3"),
				},
				Rules: []*RuleNode{
					rule("q0", "a", "0", "q1", "0", "1"),
					rule("q1", "a", "1", "q1", "1", "1"),
					rule("q1", "b", "1", "q2"),
					rule("q2", "b", "1", "q2"),
					rule("q2", "", "0", "q3", "0"),
				},
			},
		},
		{
			caption: "rules and directives may interleave",
			src: `%states q0;
q0 a 0 -> q0;
%input a;`,
			ast: &RootNode{
				Directives: []*DirectiveNode{
					dir("states", "q0"),
					dir("input", "a"),
				},
				Rules: []*RuleNode{
					rule("q0", "a", "0", "q0"),
				},
			},
		},
		{
			caption: "a directive may take no parameters",
			src:     `%final;`,
			ast: &RootNode{
				Directives: []*DirectiveNode{
					dir("final"),
				},
			},
		},
		{
			caption: "an empty definition is an error",
			src:     ``,
			synErr:  synErrEmptyDefinition,
		},
		{
			caption: "a source holding only comments is an error",
			src:     "# nothing here\n",
			synErr:  synErrEmptyDefinition,
		},
		{
			caption: "a directive needs a name",
			src:     `%;`,
			synErr:  synErrNoDirectiveName,
		},
		{
			caption: "a directive must end with a semicolon",
			src:     `%states q0`,
			synErr:  synErrDirNoSemicolon,
		},
		{
			caption: "_ cannot be a directive parameter",
			src:     `%input _ a;`,
			synErr:  synErrLambdaParameter,
		},
		{
			caption: "a rule must begin with a state",
			src:     `;`,
			synErr:  synErrNoRuleState,
		},
		{
			caption: "a rule needs an input symbol",
			src:     `q0;`,
			synErr:  synErrNoRuleInput,
		},
		{
			caption: "a rule needs a stack top symbol",
			src:     `q0 a;`,
			synErr:  synErrNoRuleTop,
		},
		{
			caption: "a rule needs an arrow",
			src:     `q0 a 0 q1;`,
			synErr:  synErrNoArrow,
		},
		{
			caption: "a rule needs a target state",
			src:     `q0 a 0 ->;`,
			synErr:  synErrNoRuleTarget,
		},
		{
			caption: "_ cannot be pushed",
			src:     `q0 a 0 -> q1 _;`,
			synErr:  synErrLambdaParameter,
		},
		{
			caption: "a rule must end with a semicolon",
			src:     `q0 a 0 -> q1 0 1`,
			synErr:  synErrRuleNoSemicolon,
		},
		{
			caption: "an invalid token is rejected wherever it appears",
			src:     `q0 @ 0 -> q1;`,
			synErr:  synErrInvalidToken,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			root, err := Parse(strings.NewReader(tt.src))
			if tt.synErr != nil {
				require.Nil(t, root)
				specErrs, ok := err.(verr.SpecErrors)
				require.True(t, ok, "unexpected error type: %T: %v", err, err)
				require.Len(t, specErrs, 1)
				assert.Equal(t, tt.synErr, specErrs[0].Cause)
				return
			}
			require.NoError(t, err)
			testRootNode(t, tt.ast, root)
		})
	}
}

func TestParse_ErrorPositions(t *testing.T) {
	src := "%states q0;\nq0 a 0 q1;\n"
	_, err := Parse(strings.NewReader(src))
	specErrs, ok := err.(verr.SpecErrors)
	require.True(t, ok, "unexpected error type: %T: %v", err, err)
	require.Len(t, specErrs, 1)
	assert.Equal(t, synErrNoArrow, specErrs[0].Cause)
	assert.Equal(t, 2, specErrs[0].Row)
	assert.Equal(t, 8, specErrs[0].Col)
}

func testRootNode(t *testing.T, want, got *RootNode) {
	t.Helper()

	require.Len(t, got.Directives, len(want.Directives))
	for i, w := range want.Directives {
		g := got.Directives[i]
		assert.Equal(t, w.Name, g.Name)
		assert.Equal(t, w.Parameters, g.Parameters)
	}
	require.Len(t, got.Rules, len(want.Rules))
	for i, w := range want.Rules {
		g := got.Rules[i]
		assert.Equal(t, w.State, g.State)
		assert.Equal(t, w.Input, g.Input)
		assert.Equal(t, w.Top, g.Top)
		assert.Equal(t, w.Next, g.Next)
		assert.Equal(t, w.Push, g.Push)
	}
}

package tester

import (
	"strings"
	"testing"

	"github.com/ricelink/automata/pda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTestCase(t *testing.T) {
	tests := []struct {
		caption  string
		src      string
		tc       *TestCase
		parseErr bool
	}{
		{
			caption: "a minimal case needs only an outcome",
			src: `test
---
ab
---
accept
`,
			tc: &TestCase{
				Description: "test",
				Input:       []pda.InputSymbol{"a", "b"},
				Accept:      true,
			},
		},
		{
			caption: "state and stack lines pin the halting configuration",
			src: `test
---
aabb
---
accept
state q3
stack 0
`,
			tc: &TestCase{
				Description: "test",
				Input:       []pda.InputSymbol{"a", "a", "b", "b"},
				Accept:      true,
				State:       "q3",
				Stack:       []pda.StackSymbol{"0"},
			},
		},
		{
			caption: "a bare stack line expects an empty stack",
			src: `test
---
ab
---
accept
stack
`,
			tc: &TestCase{
				Description: "test",
				Input:       []pda.InputSymbol{"a", "b"},
				Accept:      true,
				Stack:       []pda.StackSymbol{},
			},
		},
		{
			caption: "reject cases may pin the configuration too",
			src: `test
---
aab
---
reject
state q2
stack 1 0
`,
			tc: &TestCase{
				Description: "test",
				Input:       []pda.InputSymbol{"a", "a", "b"},
				Accept:      false,
				State:       "q2",
				Stack:       []pda.StackSymbol{"1", "0"},
			},
		},
		{
			caption: "whitespace around the input is ignored",
			src: `test
---

  ab

---
reject
`,
			tc: &TestCase{
				Description: "test",
				Input:       []pda.InputSymbol{"a", "b"},
			},
		},
		{
			caption: "an empty input part means the empty input",
			src: `test
---
---
accept
`,
			tc: &TestCase{
				Description: "test",
				Input:       []pda.InputSymbol{},
				Accept:      true,
			},
		},
		{
			caption: "a part delimiter may be longer than three dashes",
			src: `test
-----
ab
-----
accept
`,
			tc: &TestCase{
				Description: "test",
				Input:       []pda.InputSymbol{"a", "b"},
				Accept:      true,
			},
		},
		{
			caption:  "the empty source is not a test case",
			src:      ``,
			parseErr: true,
		},
		{
			caption: "two parts are too few",
			src: `test
---
ab
`,
			parseErr: true,
		},
		{
			caption: "four parts are too many",
			src: `test
---
ab
---
accept
---
extra
`,
			parseErr: true,
		},
		{
			caption: "two dashes do not delimit parts",
			src: `test
--
ab
--
accept
`,
			parseErr: true,
		},
		{
			caption: "the outcome is required",
			src: `test
---
ab
---
state q3
`,
			parseErr: true,
		},
		{
			caption: "outcomes cannot repeat",
			src: `test
---
ab
---
accept
reject
`,
			parseErr: true,
		},
		{
			caption: "unknown expectation lines are rejected",
			src: `test
---
ab
---
accept
halted q3
`,
			parseErr: true,
		},
		{
			caption: "the state line takes exactly one name",
			src: `test
---
ab
---
accept
state q3 q4
`,
			parseErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			tc, err := ParseTestCase(strings.NewReader(tt.src))
			if tt.parseErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.tc, tc)
		})
	}
}

package tester

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ricelink/automata/pda"
)

// TestResult is the outcome of running one test case. A passed case has
// a nil Error; a failed one carries the reason, with Mismatches holding
// one line per expectation the halting configuration broke.
type TestResult struct {
	TestCasePath string
	Error        error
	Mismatches   []string
}

func (r *TestResult) String() string {
	if r.Error != nil {
		const indent1 = "    "
		const indent2 = indent1 + indent1

		msgLines := strings.Split(r.Error.Error(), "\n")
		msg := fmt.Sprintf("Failed %v:\n%v%v", r.TestCasePath, indent1, strings.Join(msgLines, "\n"+indent1))
		if len(r.Mismatches) == 0 {
			return msg
		}
		return fmt.Sprintf("%v\n%v%v", msg, indent2, strings.Join(r.Mismatches, "\n"+indent2))
	}
	return fmt.Sprintf("Passed %v", r.TestCasePath)
}

type TestCaseWithMetadata struct {
	TestCase *TestCase
	FilePath string
	Error    error
}

// ListTestCases gathers the test cases under testPath. A file path names
// one case; a directory is walked recursively. Cases that fail to load
// come back with their Error set so the caller can report all of them.
func ListTestCases(testPath string) []*TestCaseWithMetadata {
	fi, err := os.Stat(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	if !fi.IsDir() {
		c, err := parseTestCase(testPath)
		return []*TestCaseWithMetadata{
			{
				TestCase: c,
				FilePath: testPath,
				Error:    err,
			},
		}
	}

	es, err := os.ReadDir(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	var cases []*TestCaseWithMetadata
	for _, e := range es {
		cs := ListTestCases(filepath.Join(testPath, e.Name()))
		cases = append(cases, cs...)
	}
	return cases
}

func parseTestCase(testCasePath string) (*TestCase, error) {
	f, err := os.Open(testCasePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseTestCase(f)
}

// Tester runs test cases against one machine.
type Tester struct {
	Machine *pda.DPDA
	Cases   []*TestCaseWithMetadata
}

func (t *Tester) Run() []*TestResult {
	var rs []*TestResult
	for _, c := range t.Cases {
		rs = append(rs, runTest(t.Machine, c))
	}
	return rs
}

func runTest(d *pda.DPDA, c *TestCaseWithMetadata) *TestResult {
	tc := c.TestCase
	halt, err := d.ReadInput(tc.Input)
	accepted := err == nil
	if err != nil {
		var rejErr *pda.RejectionError
		if !errors.As(err, &rejErr) {
			return &TestResult{
				TestCasePath: c.FilePath,
				Error:        err,
			}
		}
		halt = rejErr.Config
	}

	var mismatches []string
	if accepted != tc.Accept {
		if tc.Accept {
			mismatches = append(mismatches, fmt.Sprintf("want the machine to accept, but it rejected; halted at %v", halt))
		} else {
			mismatches = append(mismatches, fmt.Sprintf("want the machine to reject, but it accepted; halted at %v", halt))
		}
	}
	if tc.State != "" && halt.State() != tc.State {
		mismatches = append(mismatches, fmt.Sprintf("unexpected halting state: want: %v, got: %v", tc.State, halt.State()))
	}
	if tc.Stack != nil {
		want := pda.NewStack(tc.Stack...)
		if !halt.Stack().Equal(want) {
			mismatches = append(mismatches, fmt.Sprintf("unexpected halting stack: want: %v, got: %v", want, halt.Stack()))
		}
	}
	if len(mismatches) > 0 {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        fmt.Errorf("outcome mismatch"),
			Mismatches:   mismatches,
		}
	}
	return &TestResult{
		TestCasePath: c.FilePath,
	}
}

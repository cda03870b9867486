package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ricelink/automata/tester"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "test <machine definition file path> <test file or directory path>",
		Short:   "Run test cases against a machine",
		Example: `  automata test anbn.pda anbn_tests/`,
		Args:    cobra.ExactArgs(2),
		RunE:    runTest,
	}
	rootCmd.AddCommand(cmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	d, err := readMachine(args[0])
	if err != nil {
		return fmt.Errorf("Cannot read the machine definition: %w", err)
	}

	cs := tester.ListTestCases(args[1])
	errOccurred := false
	for _, c := range cs {
		if c.Error != nil {
			fmt.Fprintf(os.Stderr, "Failed to read a test case or a directory: %v\n%v\n", c.FilePath, c.Error)
			errOccurred = true
		}
	}
	if errOccurred {
		return errors.New("Cannot run test")
	}

	t := &tester.Tester{
		Machine: d,
		Cases:   cs,
	}
	rs := t.Run()
	testFailed := false
	for _, r := range rs {
		fmt.Fprintln(os.Stdout, r)
		if r.Error != nil {
			testFailed = true
		}
	}
	if testFailed {
		return errors.New("Test failed")
	}
	return nil
}

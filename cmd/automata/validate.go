package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "validate <machine definition file path>",
		Short:   "Check that a machine is well formed and deterministic",
		Example: `  automata validate anbn.pda`,
		Args:    cobra.ExactArgs(1),
		RunE:    runValidate,
	}
	rootCmd.AddCommand(cmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	d, err := readMachine(args[0])
	if err != nil {
		return err
	}
	err = d.Validate()
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "the machine is valid")
	return nil
}

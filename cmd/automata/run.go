package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ricelink/automata/pda"
	"github.com/spf13/cobra"
)

var runFlags = struct {
	source *string
	trace  *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "run <machine definition file path>",
		Short: "Run an input string through a machine",
		Example: `  automata run anbn.pda -s aabb
  echo -n aabb | automata run anbn.pda`,
		Args: cobra.ExactArgs(1),
		RunE: runRun,
	}
	runFlags.source = cmd.Flags().StringP("source", "s", "", "input string (default stdin)")
	runFlags.trace = cmd.Flags().Bool("trace", false, "print every configuration the machine passes through")
	rootCmd.AddCommand(cmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	d, err := readMachine(args[0])
	if err != nil {
		return err
	}

	text := *runFlags.source
	if !cmd.Flags().Changed("source") {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		text = strings.TrimSpace(string(b))
	}
	input := pda.Symbols(text)

	if *runFlags.trace {
		cfg := d.InitialConfiguration(input)
		fmt.Fprintf(os.Stdout, "%v\n", cfg)
		for {
			next, ok := d.Step(cfg)
			if !ok {
				break
			}
			cfg = next
			fmt.Fprintf(os.Stdout, "%v\n", cfg)
		}
	}

	cfg, err := d.ReadInput(input)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "accepted; halted at %v\n", cfg)
	return nil
}

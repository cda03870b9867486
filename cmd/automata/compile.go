package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	verr "github.com/ricelink/automata/error"
	"github.com/ricelink/automata/pda"
	"github.com/ricelink/automata/spec"
	"github.com/spf13/cobra"
)

var compileFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile [machine definition file path]",
		Short:   "Compile a machine definition into the canonical JSON form",
		Example: `  automata compile anbn.pda -o anbn.json`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runCompile,
	}
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) (retErr error) {
	var tmpDirPath string
	defer func() {
		if tmpDirPath == "" {
			return
		}
		os.RemoveAll(tmpDirPath)
	}()

	var defPath string
	if len(args) > 0 {
		defPath = args[0]
	}
	defer func() {
		specErrs, ok := retErr.(verr.SpecErrors)
		if !ok {
			return
		}
		name := defPath
		if len(args) == 0 {
			name = "stdin"
		}
		for _, err := range specErrs {
			err.FilePath = defPath
			err.SourceName = name
		}
	}()

	if defPath == "" {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		tmpDirPath, err = os.MkdirTemp("", "automata-compile-*")
		if err != nil {
			return err
		}
		defPath = filepath.Join(tmpDirPath, "stdin.pda")
		err = os.WriteFile(defPath, src, 0600)
		if err != nil {
			return err
		}
	}

	m, err := readMachineSpec(defPath)
	if err != nil {
		return err
	}
	d, err := m.Build()
	if err != nil {
		return err
	}
	err = d.Validate()
	if err != nil {
		return err
	}

	return writeMachineSpec(m, *compileFlags.output)
}

// readMachineSpec loads a machine definition: a file ending in .json
// holds the canonical MachineSpec form, anything else parses as the .pda
// language.
func readMachineSpec(path string) (*spec.MachineSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the machine definition %s: %w", path, err)
	}
	defer f.Close()

	if strings.HasSuffix(path, ".json") {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		m := &spec.MachineSpec{}
		err = json.Unmarshal(data, m)
		if err != nil {
			return nil, err
		}
		return m, nil
	}

	return spec.Parse(f)
}

// readMachine loads a definition and builds the runnable machine.
func readMachine(path string) (*pda.DPDA, error) {
	m, err := readMachineSpec(path)
	if err != nil {
		return nil, err
	}
	return m.Build()
}

func writeMachineSpec(m *spec.MachineSpec, path string) error {
	out, err := json.Marshal(m)
	if err != nil {
		return err
	}

	w := os.Stdout
	if path != "" {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	fmt.Fprintf(w, "%v\n", string(out))
	return nil
}

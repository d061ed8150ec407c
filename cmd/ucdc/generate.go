package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ucdc-go/ucdc/spec"
)

var generateFlags = struct {
	pkgName *string
	output  *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "generate artifact",
		Short: "Generate Go source from a compiled table artifact",
		Long: `generate renders a compiled table artifact as a Go source file declaring the
static tables. The generated tables answer lookups through the table package's
query methods.`,
		Example: `  ucdc generate tables.json -p unicodedata -o tables.go`,
		Args:    cobra.ExactArgs(1),
		RunE:    runGenerate,
	}
	generateFlags.pkgName = cmd.Flags().StringP("package", "p", "main", "package name")
	generateFlags.output = cmd.Flags().StringP("output", "o", "tables.go", "output file path")
	rootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cucd, err := readCompiledUCD(args[0])
	if err != nil {
		return fmt.Errorf("Cannot read a compiled table artifact: %w", err)
	}
	src, err := spec.GenTables(cucd, *generateFlags.pkgName)
	if err != nil {
		return fmt.Errorf("Failed to generate the table source: %w", err)
	}
	err = writeFileAtomic(*generateFlags.output, src)
	if err != nil {
		return fmt.Errorf("Cannot write the table source: %w", err)
	}
	return nil
}

func readCompiledUCD(path string) (*spec.CompiledUCD, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cucd := &spec.CompiledUCD{}
	err = json.Unmarshal(data, cucd)
	if err != nil {
		return nil, err
	}
	return cucd, nil
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/ucdc-go/ucdc/compiler"
	"github.com/ucdc-go/ucdc/spec"
	"github.com/ucdc-go/ucdc/ucd"
)

var compileFlags = struct {
	version *string
	output  *string
	verbose *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "compile ucd-dir",
		Short: "Compile a UCD directory into a table artifact",
		Long: `compile parses the UCD source files in the given directory, derives the
character properties, and writes the encoded tables as a JSON artifact.`,
		Example: `  ucdc compile ./ucd -o tables.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCompile,
	}
	compileFlags.version = cmd.Flags().String("unicode-version", "", "Unicode version recorded in the artifact")
	compileFlags.output = cmd.Flags().StringP("output", "o", "tables.json", "output file path")
	compileFlags.verbose = cmd.Flags().BoolP("verbose", "v", false, "log compilation stages")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	db, err := ucd.ParseAll(args[0])
	if err != nil {
		return fmt.Errorf("Cannot read the UCD files: %w", err)
	}

	opts := []compiler.CompilerOption{
		compiler.UnicodeVersion(*compileFlags.version),
	}
	if *compileFlags.verbose {
		opts = append(opts, compiler.EnableLogging(os.Stderr))
	}
	cucd, err := compiler.Compile(db, opts...)
	if err != nil {
		return err
	}
	err = cucd.Validate()
	if err != nil {
		return err
	}

	out, err := json.Marshal(cucd)
	if err != nil {
		return err
	}
	err = writeFileAtomic(*compileFlags.output, out)
	if err != nil {
		return fmt.Errorf("Cannot write the compiled tables: %w", err)
	}

	printSummary(cucd)
	return nil
}

// writeFileAtomic publishes data at path without ever exposing a half-written
// file: it writes a temporary sibling and renames it over the target.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	err := os.WriteFile(tmp, data, 0644)
	if err != nil {
		return err
	}
	err = os.Rename(tmp, path)
	if err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func printSummary(cucd *spec.CompiledUCD) {
	w := tablewriter.NewWriter(os.Stdout)
	w.SetHeader([]string{"Table", "Entries"})
	rows := [][]string{
		{"general_category", strconv.Itoa(cucd.GeneralCategory.Len())},
		{"combining_class", strconv.Itoa(cucd.CombiningClass.Len())},
		{"bidi_class", strconv.Itoa(cucd.BidiClass.Len())},
		{"mirrored", strconv.Itoa(cucd.Mirrored.Len())},
		{"bidi_mirroring", strconv.Itoa(cucd.BidiMirroring.Len())},
		{"blocks", strconv.Itoa(cucd.Blocks.Len())},
		{"scripts", strconv.Itoa(cucd.Scripts.Len())},
		{"script_extensions", strconv.Itoa(cucd.ScriptExtensions.Len())},
		{"simple_fold", strconv.Itoa(cucd.SimpleFold.Len())},
		{"full_fold", strconv.Itoa(cucd.FullFold.Len())},
		{"canonical_decomposition", strconv.Itoa(cucd.CanonicalDecomposition.Len())},
		{"composition", strconv.Itoa(cucd.Composition.Len())},
		{"numeric_type", strconv.Itoa(cucd.NumericType.Len())},
		{"numeric_value", strconv.Itoa(cucd.NumericValue.Len())},
		{"id_start", strconv.Itoa(cucd.IDStart.Len())},
		{"id_continue", strconv.Itoa(cucd.IDContinue.Len())},
		{"names (compressed bytes)", strconv.Itoa(cucd.Names.CompressedLen)},
		{"names (expanded bytes)", strconv.Itoa(cucd.Names.UncompressedLen)},
	}
	for _, row := range rows {
		w.Append(row)
	}
	w.Render()
}

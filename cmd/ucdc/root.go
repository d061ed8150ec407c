package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ucdc",
	Short: "Compile the Unicode Character Database into static tables",
	Long: `ucdc compiles the text files of the Unicode Character Database into compact,
immutable, queryable static tables:
* fetch downloads the source files from unicode.org.
* compile parses and derives the character properties and encodes them into
  run-compressed tables, range sets, explicit maps, and a compressed name blob.
* generate renders a compiled artifact as Go source.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

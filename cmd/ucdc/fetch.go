package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ucdc-go/ucdc/ucd"
)

var fetchFlags = struct {
	version *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "fetch dir",
		Short: "Download the UCD source files",
		Long:  `fetch downloads the fixed set of UCD source files from unicode.org into a local directory.`,
		Example: `  ucdc fetch ./ucd --unicode-version 15.0.0
  ucdc compile ./ucd --unicode-version 15.0.0`,
		Args: cobra.ExactArgs(1),
		RunE: runFetch,
	}
	fetchFlags.version = cmd.Flags().String("unicode-version", "15.0.0", "Unicode version to download")
	rootCmd.AddCommand(cmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	for _, file := range ucd.Files {
		err := fetchFile(dir, file)
		if err != nil {
			return fmt.Errorf("Cannot fetch %v: %w", file.Name, err)
		}
	}
	return nil
}

func fetchFile(dir string, file ucd.File) error {
	url := fmt.Sprintf("https://www.unicode.org/Public/%v/ucd/", *fetchFlags.version)
	if file.Dir != "" {
		url += file.Dir + "/"
	}
	url += file.Name

	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound && file.Optional {
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %v: %v", url, resp.Status)
	}

	outDir := filepath.Join(dir, file.Dir)
	err = os.MkdirAll(outDir, 0755)
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(outDir, file.Name))
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, resp.Body)
	return err
}

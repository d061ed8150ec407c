// Package compiler turns a parsed UCD database into the compiled static
// tables. Every derived association is an explicit output of one derivation
// stage; no stage keeps state beyond its inputs.
package compiler

import (
	"fmt"
	"io"

	"github.com/ucdc-go/ucdc/log"
	"github.com/ucdc-go/ucdc/spec"
	"github.com/ucdc-go/ucdc/ucd"
)

type CompilerOption func(c *compilerConfig) error

// EnableLogging makes the compiler report per-stage progress and
// duplicate-key diagnostics to w.
func EnableLogging(w io.Writer) CompilerOption {
	return func(c *compilerConfig) error {
		logger, err := log.NewLogger(w)
		if err != nil {
			return err
		}
		c.logger = logger
		return nil
	}
}

// UnicodeVersion records the version of the source files in the compiled
// artifact.
func UnicodeVersion(version string) CompilerOption {
	return func(c *compilerConfig) error {
		c.version = version
		return nil
	}
}

type compilerConfig struct {
	logger  log.Logger
	version string
}

// Compile derives and encodes every table from the parsed database. A
// malformed source field aborts the whole compilation; there is no
// partial-success mode.
func Compile(db *ucd.Database, opts ...CompilerOption) (*spec.CompiledUCD, error) {
	if db == nil || db.UnicodeData == nil {
		return nil, fmt.Errorf("the database must contain UnicodeData")
	}
	config := &compilerConfig{
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		err := opt(config)
		if err != nil {
			return nil, err
		}
	}

	c := &compilation{
		db: db,
	}
	cucd := &spec.CompiledUCD{
		UnicodeVersion: config.version,
	}
	for _, stage := range []struct {
		name  string
		build func(*spec.CompiledUCD) error
	}{
		{"categories", c.buildCategories},
		{"case mappings", c.buildCase},
		{"decompositions", c.buildDecompositions},
		{"composition", c.buildComposition},
		{"identifiers", c.buildIdentifiers},
		{"scripts", c.buildScripts},
		{"blocks", c.buildBlocks},
		{"names", c.buildNames},
		{"numerics", c.buildNumerics},
		{"property sets", c.buildPropertySets},
		{"conformance fixtures", c.buildFixtures},
	} {
		c.logger = log.WithStage(config.logger, stage.name)
		err := stage.build(cucd)
		if err != nil {
			return nil, fmt.Errorf("failed to compile %v: %w", stage.name, err)
		}
	}
	return cucd, nil
}

type compilation struct {
	db     *ucd.Database
	logger log.Logger
}

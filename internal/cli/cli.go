// Package cli implements the command-line interface for zipflat.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/eunmann/zipflat/pkg/fileutil"
	"github.com/eunmann/zipflat/pkg/logging"
	"github.com/eunmann/zipflat/pkg/pipeline"
)

// Defaults mirror the original benchmark workload.
const (
	defaultDest      = "test_folder"
	defaultZipPrefix = "test_"
	defaultXMLPrefix = "test_"
	defaultOutPrefix = "test_"
	defaultArchives  = 50
	defaultDocs      = 100
)

// Run executes the CLI with the given arguments.
func Run(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: zipflat <command> [options]\ncommands: generate, flatten, run")
	}

	switch args[0] {
	case "generate":
		return runGenerate(args[1:])
	case "flatten":
		return runFlatten(args[1:])
	case "run":
		return runAll(args[1:])
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

// commonFlags are shared by every command.
type commonFlags struct {
	dest      string
	zipPrefix string
	xmlPrefix string
	workers   int
	noCreate  bool
	debug     bool
	pretty    bool
}

func registerCommon(fs *flag.FlagSet) *commonFlags {
	cf := &commonFlags{}
	fs.StringVar(&cf.dest, "dest", defaultDest, "working directory for archives and output tables")
	fs.StringVar(&cf.zipPrefix, "zip-prefix", defaultZipPrefix, "filename prefix for generated archives")
	fs.StringVar(&cf.xmlPrefix, "xml-prefix", defaultXMLPrefix, "entry name prefix for documents inside archives")
	fs.IntVar(&cf.workers, "workers", 0, "worker pool size (0 = number of CPUs)")
	fs.BoolVar(&cf.noCreate, "no-create", false, "fail if the working directory does not exist instead of creating it")
	fs.BoolVar(&cf.debug, "debug", false, "enable debug logging")
	fs.BoolVar(&cf.pretty, "pretty", false, "human-friendly console logging")
	return cf
}

// setup initializes logging and validates the working directory, then
// returns the pipeline configuration. Called after flag validation so
// configuration errors fail before any work starts.
func (cf *commonFlags) setup() (pipeline.Config, error) {
	logging.Init(cf.debug, cf.pretty)

	if err := fileutil.EnsureDir(cf.dest, !cf.noCreate); err != nil {
		return pipeline.Config{}, err
	}

	return pipeline.Config{
		RootDir:   cf.dest,
		ZipPrefix: cf.zipPrefix,
		XMLPrefix: cf.xmlPrefix,
		Workers:   cf.workers,
	}, nil
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	cf := registerCommon(fs)
	archives := fs.Int("archives", defaultArchives, "number of archives to generate")
	docs := fs.Int("docs", defaultDocs, "number of documents per archive")
	seed := fs.Int64("seed", 0, "generation seed (0 = derive from the clock)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateCounts(*archives, *docs); err != nil {
		return err
	}

	cfg, err := cf.setup()
	if err != nil {
		return err
	}
	cfg.Seed = *seed

	return pipeline.Generate(context.Background(), cfg, *archives, *docs)
}

func runFlatten(args []string) error {
	fs := flag.NewFlagSet("flatten", flag.ContinueOnError)
	cf := registerCommon(fs)
	outPrefix := fs.String("out-prefix", defaultOutPrefix, "filename prefix for the output tables")
	overwrite := fs.Bool("overwrite", false, "replace existing output tables")
	format := fs.String("format", "csv", "output table format: csv or parquet")

	if err := fs.Parse(args); err != nil {
		return err
	}
	f, err := pipeline.ParseFormat(*format)
	if err != nil {
		return err
	}

	cfg, err := cf.setup()
	if err != nil {
		return err
	}

	return pipeline.Flatten(context.Background(), pipeline.FlattenConfig{
		Config:    cfg,
		OutPrefix: *outPrefix,
		Overwrite: *overwrite,
		Format:    f,
	})
}

func runAll(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	cf := registerCommon(fs)
	archives := fs.Int("archives", defaultArchives, "number of archives to generate")
	docs := fs.Int("docs", defaultDocs, "number of documents per archive")
	seed := fs.Int64("seed", 0, "generation seed (0 = derive from the clock)")
	outPrefix := fs.String("out-prefix", defaultOutPrefix, "filename prefix for the output tables")
	format := fs.String("format", "csv", "output table format: csv or parquet")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateCounts(*archives, *docs); err != nil {
		return err
	}
	f, err := pipeline.ParseFormat(*format)
	if err != nil {
		return err
	}

	cfg, err := cf.setup()
	if err != nil {
		return err
	}
	cfg.Seed = *seed

	ctx := context.Background()
	if err := pipeline.Generate(ctx, cfg, *archives, *docs); err != nil {
		return err
	}

	// The one-shot flow always replaces previous outputs.
	return pipeline.Flatten(ctx, pipeline.FlattenConfig{
		Config:    cfg,
		OutPrefix: *outPrefix,
		Overwrite: true,
		Format:    f,
	})
}

func validateCounts(archives, docs int) error {
	if archives < 0 {
		return fmt.Errorf("-archives must be a non-negative integer, got %d", archives)
	}
	if docs <= 0 {
		return fmt.Errorf("-docs must be a positive integer, got %d", docs)
	}
	return nil
}

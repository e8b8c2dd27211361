package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"type-closure/internal/analyze"
	"type-closure/internal/batch"
	"type-closure/internal/closure"
	"type-closure/internal/config"
	"type-closure/internal/metadata"
)

// app carries the state shared by the subcommands.
type app struct {
	configPath string
	cfg        *config.Config

	ignoreFramework bool
	recursive       bool
	maxDepth        int
	backend         string
	packages        []string
	dir             string
	metadataFile    string
	outputDir       string
	outputFile      string
}

// NewRootCmd builds the type-closure command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "type-closure",
		Short:         "Statistics over the types reachable from root types",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default "+config.DefaultPath+")")
	flags.BoolVar(&a.ignoreFramework, "ignore-framework", false, "Skip framework types during recursion")
	flags.BoolVar(&a.recursive, "recursive", true, "Follow references of discovered types")
	flags.IntVar(&a.maxDepth, "max-depth", 0, "Stop expanding below this depth (0 = unlimited)")
	flags.StringVar(&a.backend, "backend", config.BackendGo, "Introspector backend: go or table")
	flags.StringSliceVar(&a.packages, "packages", nil, "Go package patterns to preload (go backend)")
	flags.StringVar(&a.dir, "dir", "", "Directory Go packages are loaded from (go backend)")
	flags.StringVar(&a.metadataFile, "metadata", "", "Type table YAML file (table backend)")
	flags.StringVar(&a.outputDir, "out", "", "Directory the report is written to")
	flags.StringVar(&a.outputFile, "out-file", "", "Report file name (default derived from the toggles)")

	root.AddCommand(newAnalyzeCmd(a), newMenuCmd(a), newInspectCmd(a))

	return root
}

// loadConfig reads the config sources and applies the flags the user set.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("ignore-framework") {
		cfg.IgnoreFramework = a.ignoreFramework
	}
	if flags.Changed("recursive") {
		cfg.Recursive = a.recursive
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = a.maxDepth
	}
	if flags.Changed("backend") {
		cfg.Backend = a.backend
	}
	if flags.Changed("packages") {
		cfg.Packages = a.packages
	}
	if flags.Changed("dir") {
		cfg.Dir = a.dir
	}
	if flags.Changed("metadata") {
		cfg.MetadataFile = a.metadataFile
	}
	if flags.Changed("out") {
		cfg.OutputDir = a.outputDir
	}
	if flags.Changed("out-file") {
		cfg.OutputFile = a.outputFile
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg

	return nil
}

// introspector builds the configured backend.
func (a *app) introspector() (analyze.Introspector, error) {
	switch a.cfg.Backend {
	case config.BackendTable:
		table, err := metadata.LoadFile(a.cfg.MetadataFile)
		if err != nil {
			return nil, err
		}

		return table, nil

	default:
		in, err := analyze.NewGoIntrospector(analyze.GoOptions{Dir: a.cfg.Dir})
		if err != nil {
			return nil, err
		}

		if len(a.cfg.Packages) > 0 {
			if err := in.LoadPackages(a.cfg.Packages...); err != nil {
				return nil, fmt.Errorf("preloading packages: %w", err)
			}
		}

		return in, nil
	}
}

func (a *app) runner() (*batch.Runner, error) {
	in, err := a.introspector()
	if err != nil {
		return nil, err
	}

	explorer := closure.NewExplorer(in, a.cfg.Namespaces())

	return batch.NewRunner(explorer, log.New(os.Stderr, "type-closure: ", 0)), nil
}

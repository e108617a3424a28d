// termexport converts terms exported from POEditor into Apple localization
// resources: Localizable.strings, Localizable.stringsdict and a JSON index
// of translator context notes.
//
// Usage:
//
//	termexport <command> [flags] [args]
//
// Run "termexport help" for a list of commands.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// emitFunc renders terms into the file at path.
type emitFunc func(log logrus.FieldLogger, terms []Term, path string, opts Options) error

type app struct {
	configPath string
	verbose    bool
	quiet      bool
	log        *logrus.Logger
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{log: logrus.New()}
	a.log.SetOutput(stderr)
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	root := &cobra.Command{
		Use:           "termexport",
		Short:         "Generate Apple localization files from exported POEditor terms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			switch {
			case a.verbose:
				a.log.SetLevel(logrus.DebugLevel)
			case a.quiet:
				a.log.SetLevel(logrus.WarnLevel)
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: nearest "+configFileName+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log debug output")
	root.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "Only log warnings and errors")

	root.AddCommand(
		a.emitCommand("strings", "Write a Localizable.strings file", writeStringsFile),
		a.emitCommand("stringsdict", "Write a Localizable.stringsdict file with plural rules", writeStringsdictFile),
		a.emitCommand("context", "Write a JSON index of translator context notes", writeContextFile),
		a.exportCommand(),
		a.checkCommand(),
	)
	return root
}

// config loads the config named by --config, or the nearest one. Without
// either an empty config is returned.
func (a *app) config() (*Config, error) {
	path := a.configPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		path, err = findConfig(wd)
		if errors.Is(err, errNoConfig) {
			return &Config{}, nil
		}
		if err != nil {
			return nil, err
		}
	}
	a.log.Debugf("Using config %s", path)
	return loadConfig(path)
}

func (a *app) emitCommand(name, short string, emit emitFunc) *cobra.Command {
	var printDate bool
	var substitute []string
	cmd := &cobra.Command{
		Use:   name + " <terms-file> <output-file>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			extra, err := parseSubstitutions(substitute)
			if err != nil {
				return err
			}
			terms, err := loadTerms(args[0])
			if err != nil {
				return err
			}
			return emit(a.log, terms, args[1], cfg.options(extra, printDate))
		},
	}
	cmd.Flags().BoolVar(&printDate, "print-date", false, "Include the generation date in the file header")
	addSubstituteFlag(cmd, &substitute)
	return cmd
}

func addSubstituteFlag(cmd *cobra.Command, substitute *[]string) {
	cmd.Flags().StringArrayVarP(substitute, "substitute", "s", nil, "Replace text before escaping, as from=to (repeatable, applied after the config file's substitutions)")
}

func (a *app) exportCommand() *cobra.Command {
	var printDate bool
	var substitute []string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every output listed in the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			extra, err := parseSubstitutions(substitute)
			if err != nil {
				return err
			}
			return runExport(a.log, cfg, extra, printDate)
		},
	}
	cmd.Flags().BoolVar(&printDate, "print-date", false, "Include the generation date in file headers")
	addSubstituteFlag(cmd, &substitute)
	return cmd
}

// runExport writes each configured output. A failing output does not stop
// the others; their errors are joined.
func runExport(log logrus.FieldLogger, cfg *Config, extra Substitutions, printDate bool) error {
	if cfg.Terms == "" {
		return fmt.Errorf("no terms file configured")
	}
	outputs := []struct {
		path string
		emit emitFunc
	}{
		{cfg.Output.Strings, writeStringsFile},
		{cfg.Output.Stringsdict, writeStringsdictFile},
		{cfg.Output.Context, writeContextFile},
	}

	terms, err := loadTerms(cfg.Terms)
	if err != nil {
		return err
	}
	opts := cfg.options(extra, printDate)

	var errs []error
	written := 0
	for _, out := range outputs {
		if out.path == "" {
			continue
		}
		written++
		if err := out.emit(log, terms, out.path, opts); err != nil {
			errs = append(errs, err)
		}
	}
	if written == 0 {
		return fmt.Errorf("no outputs configured")
	}
	return errors.Join(errs...)
}

func (a *app) checkCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "check [terms-file]",
		Short: "Report filtered and empty terms without writing files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			path := cfg.Terms
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no terms file given or configured")
			}
			terms, err := loadTerms(path)
			if err != nil {
				return err
			}
			return reportCheck(cmd.OutOrStdout(), terms, cfg.options(nil, false), format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json")
	return cmd
}

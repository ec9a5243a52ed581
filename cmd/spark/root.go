package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/spark/internal/catalog"
	"github.com/alexisbeaulieu97/spark/internal/config"
	"github.com/alexisbeaulieu97/spark/internal/logger"
	"github.com/alexisbeaulieu97/spark/internal/theme"
	spkerrors "github.com/alexisbeaulieu97/spark/pkg/errors"
)

type rootFlags struct {
	logLevel  string
	logHuman  bool
	themeName string
	themeFile string
	plain     bool

	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "spark",
		Short:         "Spark resolves design-system themes into component attributes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(logger.Options{
				Level:         flags.logLevel,
				HumanReadable: flags.logHuman,
				Writer:        cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			flags.log = log
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.logHuman, "log-human", true, "Write console logs instead of JSON")
	cmd.PersistentFlags().StringVarP(&flags.themeName, "theme", "t", "light", "Built-in theme ("+strings.Join(theme.BuiltinNames(), ", ")+")")
	cmd.PersistentFlags().StringVarP(&flags.themeFile, "theme-file", "f", "", "Path to a YAML theme, overrides --theme")
	cmd.PersistentFlags().BoolVar(&flags.plain, "plain", false, "Disable colors even on a terminal")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newSwatchCmd(flags))
	cmd.AddCommand(newFamiliesCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newExploreCmd(flags))
	cmd.AddCommand(newVersionCmd(flags))

	return cmd
}

// loadTheme returns the theme selected by the persistent flags.
func (f *rootFlags) loadTheme() (*theme.Theme, error) {
	if strings.TrimSpace(f.themeFile) != "" {
		t, err := config.LoadTheme(f.themeFile)
		if err != nil {
			return nil, newCommandError("load theme", f.themeFile, err, "Run 'spark theme validate' on the file for details.")
		}
		f.log.Debug("theme loaded", "path", f.themeFile, "name", t.Name)
		return t, nil
	}

	t, ok := theme.Builtin(f.themeName)
	if !ok {
		err := spkerrors.NewValidationError("theme", fmt.Sprintf("unknown theme %q", f.themeName), nil)
		return nil, newCommandError("load theme", f.themeName, err, "Use one of: "+strings.Join(theme.BuiltinNames(), ", ")+".")
	}
	return t, nil
}

func (f *rootFlags) registry() *catalog.Registry {
	return catalog.Builtin(f.log)
}

// plainOutput reports whether w should receive uncolored text.
func (f *rootFlags) plainOutput(w io.Writer) bool {
	if f.plain {
		return true
	}
	file, ok := w.(*os.File)
	return !ok || !term.IsTerminal(int(file.Fd()))
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error { return e.cause }

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spark/internal/config"
	"github.com/alexisbeaulieu97/spark/internal/theme"
)

func newThemeCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and validate themes",
	}

	cmd.AddCommand(newThemeListCmd())
	cmd.AddCommand(newThemeShowCmd(root))
	cmd.AddCommand(newThemeValidateCmd(root))
	cmd.AddCommand(newThemeSchemaCmd())

	return cmd
}

func newThemeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(theme.BuiltinNames(), "\n"))
			return err
		},
	}
}

func newThemeShowCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show [file]",
		Short: "Print a theme as a complete YAML document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				root.themeFile = args[0]
			}
			t, err := root.loadTheme()
			if err != nil {
				return err
			}
			data, err := config.Marshal(config.Export(t))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newThemeValidateCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a YAML theme file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := config.LoadTheme(args[0])
			if err != nil {
				root.log.Debug("theme rejected", "path", args[0], "error", err.Error())
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: theme %q is valid (%s)\n", args[0], t.Name, t.Appearance)
			return err
		},
	}
}

func newThemeSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of theme files",
		RunE: func(cmd *cobra.Command, args []string) error {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(config.Schema())
		},
	}
}

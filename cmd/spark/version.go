package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spark/internal/theme"
)

// Set at link time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type buildInfo struct {
	Version  string   `json:"version"`
	Commit   string   `json:"commit"`
	Date     string   `json:"date"`
	Themes   []string `json:"themes"`
	Families []string `json:"families"`
}

func currentBuild(root *rootFlags) buildInfo {
	return buildInfo{
		Version:  version,
		Commit:   commit,
		Date:     date,
		Themes:   theme.BuiltinNames(),
		Families: root.registry().Names(),
	}
}

func (b buildInfo) write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Spark %s\ncommit: %s\nbuilt: %s\nthemes: %s\nfamilies: %s\n",
		b.Version, b.Commit, b.Date, strings.Join(b.Themes, ", "), strings.Join(b.Families, ", "))
	return err
}

func newVersionCmd(root *rootFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information and the built-in themes and families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := currentBuild(root)
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(info)
			}
			return info.write(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output build information as JSON")

	return cmd
}

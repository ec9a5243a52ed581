package main

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spark/internal/catalog"
)

func newFamiliesCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "families",
		Short: "List component families and their style options",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, f := range root.registry().Families() {
				options := lo.Map(f.Options(), func(opt catalog.Option, _ int) string {
					return fmt.Sprintf("--%s %s", opt.Name, describeValues(opt))
				})
				block := wordwrap.String(f.Description(), descriptionWidth) + "\n" + strings.Join(options, "\n")
				fmt.Fprintf(out, "%s\n%s\n", f.Name(), indent.String(block, 2))
			}
			return nil
		},
	}

	return cmd
}

const descriptionWidth = 60

func describeValues(opt catalog.Option) string {
	if len(opt.Values) == 0 {
		return "<text>"
	}
	marked := lo.Map(opt.Values, func(v string, _ int) string {
		if v == opt.Default {
			return v + "*"
		}
		return v
	})
	return strings.Join(marked, "|")
}

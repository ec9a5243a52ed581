package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spark/internal/render"
	"github.com/alexisbeaulieu97/spark/internal/state"
)

type namedState struct {
	name        string
	interaction state.Interaction
}

var swatchStates = []namedState{
	{name: "rest", interaction: state.Idle()},
	{name: "pressed", interaction: state.Interaction{Enabled: true, Highlighted: true}},
	{name: "selected", interaction: state.Interaction{Enabled: true, Selected: true}},
	{name: "disabled", interaction: state.Interaction{}},
}

func newSwatchCmd(root *rootFlags) *cobra.Command {
	var sel *selectorFlags

	cmd := &cobra.Command{
		Use:   "swatch <family>",
		Short: "Render a family's colors in every interaction state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSwatch(cmd, root, sel, args[0])
		},
	}

	sel = addSelectorFlags(cmd)
	return cmd
}

func runSwatch(cmd *cobra.Command, root *rootFlags, sel *selectorFlags, family string) error {
	t, err := root.loadTheme()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	r := render.New(out, t, root.plainOutput(out))
	registry := root.registry()

	blocks := make([]string, 0, len(swatchStates))
	for _, s := range swatchStates {
		req, err := sel.request(cmd, s.interaction)
		if err != nil {
			return err
		}
		snap, err := registry.Resolve(t, family, req)
		if err != nil {
			return err
		}
		blocks = append(blocks, r.Snapshot(fmt.Sprintf("%s/%s %s", snap.Family, snap.Intent, s.name), snap))
	}

	_, err = fmt.Fprintln(out, strings.Join(blocks, "\n\n"))
	return err
}

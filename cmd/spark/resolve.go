package main

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spark/internal/catalog"
	"github.com/alexisbeaulieu97/spark/internal/design"
	"github.com/alexisbeaulieu97/spark/internal/render"
	"github.com/alexisbeaulieu97/spark/internal/state"
)

type selectorFlags struct {
	intent string
	names  []string
	values map[string]*string
}

// addSelectorFlags registers --intent and one string flag per option name
// found in any family. Only flags the user sets are forwarded.
func addSelectorFlags(cmd *cobra.Command) *selectorFlags {
	sel := &selectorFlags{values: map[string]*string{}}
	cmd.Flags().StringVarP(&sel.intent, "intent", "i", "main", "Intent ("+design.Names(design.Intents())+")")

	for _, f := range catalog.Builtin(nil).Families() {
		for _, opt := range f.Options() {
			if _, seen := sel.values[opt.Name]; seen {
				continue
			}
			value := new(string)
			sel.values[opt.Name] = value
			sel.names = append(sel.names, opt.Name)
			cmd.Flags().StringVar(value, opt.Name, "", "Style option "+opt.Name+" (see 'spark families')")
		}
	}
	slices.Sort(sel.names)
	return sel
}

func (s *selectorFlags) request(cmd *cobra.Command, interaction state.Interaction) (catalog.Request, error) {
	intent, err := design.ParseIntent(s.intent)
	if err != nil {
		return catalog.Request{}, err
	}

	changed := lo.Filter(s.names, func(name string, _ int) bool { return cmd.Flags().Changed(name) })
	options := lo.SliceToMap(changed, func(name string) (string, string) { return name, *s.values[name] })

	return catalog.Request{Intent: intent, Options: options, Interaction: interaction}, nil
}

type resolveOptions struct {
	disabled bool
	pressed  bool
	selected bool
	json     bool
}

func newResolveCmd(root *rootFlags) *cobra.Command {
	opts := &resolveOptions{}
	var sel *selectorFlags

	cmd := &cobra.Command{
		Use:   "resolve <family>",
		Short: "Resolve one component family in one interaction state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, root, sel, args[0], opts)
		},
	}

	sel = addSelectorFlags(cmd)
	cmd.Flags().BoolVar(&opts.disabled, "disabled", false, "Resolve the disabled state")
	cmd.Flags().BoolVar(&opts.pressed, "pressed", false, "Resolve the pressed state")
	cmd.Flags().BoolVar(&opts.selected, "selected", false, "Resolve the selected state")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output the snapshot as JSON")

	return cmd
}

func runResolve(cmd *cobra.Command, root *rootFlags, sel *selectorFlags, family string, opts *resolveOptions) error {
	t, err := root.loadTheme()
	if err != nil {
		return err
	}

	req, err := sel.request(cmd, state.Interaction{
		Enabled:     !opts.disabled,
		Highlighted: opts.pressed,
		Selected:    opts.selected,
	})
	if err != nil {
		return err
	}

	snap, err := root.registry().Resolve(t, family, req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(snap)
	}

	r := render.New(out, t, root.plainOutput(out))
	_, err = fmt.Fprintln(out, r.Snapshot(fmt.Sprintf("%s/%s", snap.Family, snap.Intent), snap))
	return err
}

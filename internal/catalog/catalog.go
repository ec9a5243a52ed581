// Package catalog exposes every component family behind one string-driven
// interface, for the CLI and other outer surfaces that pick a family and its
// options by name.
package catalog

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/spark/internal/design"
	"github.com/alexisbeaulieu97/spark/internal/logger"
	"github.com/alexisbeaulieu97/spark/internal/state"
	"github.com/alexisbeaulieu97/spark/internal/theme"
	spkerrors "github.com/alexisbeaulieu97/spark/pkg/errors"
)

// Option describes one style selector of a family.
type Option struct {
	Name    string
	Values  []string
	Default string
}

// Request selects what to resolve. Options maps option names to values;
// missing options take their default.
type Request struct {
	Intent      design.Intent
	Options     map[string]string
	Interaction state.Interaction
}

// ColorValue is one named, resolved color.
type ColorValue struct {
	Name string `json:"name"`
	theme.Value
}

// Snapshot is the resolved attributes of one family in one state.
type Snapshot struct {
	Family      string             `json:"family"`
	Theme       string             `json:"theme"`
	Intent      string             `json:"intent"`
	Style       map[string]string  `json:"style"`
	Colors      []ColorValue       `json:"colors"`
	Metrics     map[string]float64 `json:"metrics,omitempty"`
	Opacity     float64            `json:"opacity"`
	Interactive bool               `json:"interactive"`

	Swatches []theme.Swatch `json:"-"`
}

// Family resolves one component family from string options.
type Family interface {
	Name() string
	Description() string
	Options() []Option
	Resolve(t *theme.Theme, req Request) (Snapshot, error)
}

// Registry holds families by name.
type Registry struct {
	mu       sync.RWMutex
	families map[string]Family
	log      *logger.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		families: make(map[string]Family),
		log:      log.Component("catalog"),
	}
}

// Builtin returns a registry holding every built-in family.
func Builtin(log *logger.Logger) *Registry {
	r := NewRegistry(log)
	for _, f := range builtinFamilies() {
		if err := r.Register(f); err != nil {
			spkerrors.Violation("catalog: %v", err)
		}
	}
	return r
}

// Register adds f. Names must be unique.
func (r *Registry) Register(f Family) error {
	if f == nil {
		return fmt.Errorf("family is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.families[f.Name()]; exists {
		return fmt.Errorf("family '%s' already registered", f.Name())
	}
	r.families[f.Name()] = f
	return nil
}

// Get finds a family by name.
func (r *Registry) Get(name string) (Family, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.families[name]
	if !ok {
		names := slices.Sorted(maps.Keys(r.families))
		message := fmt.Sprintf("unknown family %q (want one of %v)", name, names)
		if closest, found := suggest(name, names); found {
			message += fmt.Sprintf(", did you mean %q?", closest)
		}
		return nil, spkerrors.NewValidationError("family", message, nil)
	}
	return f, nil
}

// suggest returns the name closest to a misspelled one, if any name
// contains its letters in order.
func suggest(name string, names []string) (string, bool) {
	ranks := fuzzy.RankFindNormalizedFold(strings.TrimSpace(name), names)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	return ranks[0].Target, true
}

// Names returns the registered family names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.families))
}

// Families returns the registered families sorted by name.
func (r *Registry) Families() []Family {
	r.mu.RLock()
	defer r.mu.RUnlock()

	families := lo.Values(r.families)
	slices.SortFunc(families, func(a, b Family) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return families
}

// Resolve looks up family and resolves req against t.
func (r *Registry) Resolve(t *theme.Theme, family string, req Request) (Snapshot, error) {
	f, err := r.Get(family)
	if err != nil {
		return Snapshot{}, err
	}

	snap, err := f.Resolve(t, req)
	if err != nil {
		r.log.Debug("resolution rejected", "family", family, "error", err.Error())
		return Snapshot{}, err
	}

	r.log.Debug("resolved", "family", family, "intent", snap.Intent, "opacity", snap.Opacity)
	return snap, nil
}

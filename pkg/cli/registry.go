package cli

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/gregLibert/bit-operation/pkg/layout"
)

// LayoutRegistry holds the built-in layouts plus the ones declared in the config file.
// Names are case-insensitive; a configured layout replaces a built-in one of the same name.
type LayoutRegistry struct {
	layouts map[string]*layout.Layout
}

// NewLayoutRegistry builds the registry from the configured layouts.
func NewLayoutRegistry(configs []LayoutConfig) (*LayoutRegistry, error) {
	r := &LayoutRegistry{layouts: make(map[string]*layout.Layout)}
	for name, l := range layout.Builtin() {
		r.layouts[strings.ToLower(name)] = l
	}

	for _, lc := range configs {
		l, err := lc.build()
		if err != nil {
			return nil, err
		}
		r.layouts[strings.ToLower(lc.Name)] = l
	}
	return r, nil
}

// Get returns the layout registered under name.
func (r *LayoutRegistry) Get(name string) (*layout.Layout, error) {
	l, ok := r.layouts[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("no layout named %q (known: %s)", name, strings.Join(r.Names(), ", "))
	}
	return l, nil
}

// Names returns the registered names, sorted.
func (r *LayoutRegistry) Names() []string {
	return slices.Sorted(maps.Keys(r.layouts))
}

func (lc LayoutConfig) build() (*layout.Layout, error) {
	fields := make([]layout.Field, 0, len(lc.Fields))
	for _, fc := range lc.Fields {
		f := layout.Field{Name: fc.Name, Start: fc.Start, Width: fc.Width}
		if len(fc.Labels) > 0 {
			f.Labels = make(map[uint64]string, len(fc.Labels))
			for k, label := range fc.Labels {
				v, err := strconv.ParseUint(k, 0, 64)
				if err != nil {
					return nil, fmt.Errorf("layout %s: field %s: label key %q: %w", lc.Name, fc.Name, k, err)
				}
				f.Labels[v] = label
			}
		}
		fields = append(fields, f)
	}
	return layout.New(lc.Name, lc.Size, fields...)
}

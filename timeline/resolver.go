package timeline

import (
	svan2d "github.com/dorjeduck/svan2d"

	"github.com/dorjeduck/svan2d/easing"
	"github.com/dorjeduck/svan2d/state"
)

// Resolver turns easing names into functions by walking the override
// tiers for one attribute of one segment:
//
//  1. the overlay segment's own easing,
//  2. the element-level attribute easing map,
//  3. the segment transition's easing map,
//  4. the state's declared default for the attribute.
//
// Resolution never fails: attributes with no declaration anywhere, and
// names missing from the catalog, interpolate linearly.
type Resolver struct {
	Catalog  *easing.Catalog
	Element  map[string]string
	Defaults *state.Defaults
}

// Resolve returns the easing for attr on the segment leaving from.
// overlayName is the easing declared on the active overlay segment, or
// empty when there is none.
func (r Resolver) Resolve(overlayName, attr string, tr *Transition, from state.State) easing.Func {
	if overlayName != "" {
		return r.lookup(overlayName)
	}
	if name, ok := r.Element[attr]; ok {
		return r.lookup(name)
	}
	if tr != nil {
		if name, ok := tr.Easing[attr]; ok {
			return r.lookup(name)
		}
	}
	if name, ok := r.Defaults.Lookup(from, attr); ok {
		return r.lookup(name)
	}
	return easing.Linear
}

func (r Resolver) lookup(name string) easing.Func {
	fn, ok := r.Catalog.Lookup(name)
	if !ok {
		svan2d.Logger().Warn("unknown easing, using linear", "easing", name)
	}
	return fn
}

package easing

// Catalog maps easing names to functions. Transition configs and state
// defaults refer to easings by name; the resolver looks them up here.
//
// A Catalog is an explicit value threaded through the timeline machinery
// rather than a process-wide registry, so two samplers can carry
// different (possibly extended) easing sets without interfering.
type Catalog struct {
	funcs map[string]Func
}

// NewCatalog returns a catalog populated with every built-in easing.
func NewCatalog() *Catalog {
	c := &Catalog{funcs: make(map[string]Func, 36)}
	for name, fn := range builtins {
		c.funcs[name] = fn
	}
	return c
}

// Register adds or replaces a named easing. Registering with a nil
// function removes the name.
func (c *Catalog) Register(name string, fn Func) {
	if fn == nil {
		delete(c.funcs, name)
		return
	}
	c.funcs[name] = fn
}

// Lookup returns the easing registered under name. Unknown names return
// (Linear, false): easing resolution degrades, it never fails.
func (c *Catalog) Lookup(name string) (Func, bool) {
	if c != nil {
		if fn, ok := c.funcs[name]; ok {
			return fn, true
		}
	}
	return Linear, false
}

// Names of the built-in easing functions, usable in transition configs
// and state defaults.
var builtins = map[string]Func{
	"linear":         Linear,
	"none":           None,
	"step":           Step,
	"in_quad":        InQuad,
	"out_quad":       OutQuad,
	"in_out_quad":    InOutQuad,
	"in_cubic":       InCubic,
	"out_cubic":      OutCubic,
	"in_out_cubic":   InOutCubic,
	"in_quart":       InQuart,
	"out_quart":      OutQuart,
	"in_out_quart":   InOutQuart,
	"in_quint":       InQuint,
	"out_quint":      OutQuint,
	"in_out_quint":   InOutQuint,
	"in_sine":        InSine,
	"out_sine":       OutSine,
	"in_out_sine":    InOutSine,
	"in_expo":        InExpo,
	"out_expo":       OutExpo,
	"in_out_expo":    InOutExpo,
	"in_circ":        InCirc,
	"out_circ":       OutCirc,
	"in_out_circ":    InOutCirc,
	"in_back":        InBack,
	"out_back":       OutBack,
	"in_out_back":    InOutBack,
	"in_elastic":     InElastic,
	"out_elastic":    OutElastic,
	"in_out_elastic": InOutElastic,
	"in_bounce":      InBounce,
	"out_bounce":     OutBounce,
	"in_out_bounce":  InOutBounce,
}

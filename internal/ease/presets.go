package ease

type preset struct {
	name string
	fn   Func
}

// presets keeps the table order so Names is stable.
var presets = []preset{
	{"linear", Linear},
	{"inSine", CubicBezier(0.47, 0, 0.745, 0.715)},
	{"outSine", CubicBezier(0.39, 0.575, 0.565, 1)},
	{"inOutSine", CubicBezier(0.445, 0.05, 0.55, 0.95)},
	{"inQuad", CubicBezier(0.55, 0.085, 0.68, 0.53)},
	{"outQuad", CubicBezier(0.25, 0.46, 0.45, 0.94)},
	{"inOutQuad", CubicBezier(0.455, 0.03, 0.515, 0.955)},
	{"inCubic", CubicBezier(0.55, 0.055, 0.675, 0.19)},
	{"outCubic", CubicBezier(0.215, 0.61, 0.355, 1)},
	{"inOutCubic", CubicBezier(0.645, 0.045, 0.355, 1)},
	{"inQuart", CubicBezier(0.895, 0.03, 0.685, 0.22)},
	{"outQuart", CubicBezier(0.165, 0.84, 0.44, 1)},
	{"inOutQuart", CubicBezier(0.77, 0, 0.175, 1)},
	{"inQuint", CubicBezier(0.755, 0.05, 0.855, 0.06)},
	{"outQuint", CubicBezier(0.23, 1, 0.32, 1)},
	{"inOutQuint", CubicBezier(0.86, 0, 0.07, 1)},
	{"inExpo", CubicBezier(0.95, 0.05, 0.795, 0.035)},
	{"outExpo", CubicBezier(0.19, 1, 0.22, 1)},
	{"inOutExpo", CubicBezier(1, 0, 0, 1)},
	{"inCirc", CubicBezier(0.6, 0.04, 0.98, 0.335)},
	{"outCirc", CubicBezier(0.075, 0.82, 0.165, 1)},
	{"inOutCirc", CubicBezier(0.785, 0.135, 0.15, 0.86)},
	{"inBack", CubicBezier(0.6, -0.28, 0.735, 0.045)},
	{"outBack", CubicBezier(0.175, 0.885, 0.32, 1.275)},
	{"inOutBack", CubicBezier(0.68, -0.55, 0.265, 1.55)},
}

var byName = func() map[string]Func {
	m := make(map[string]Func, len(presets))
	for _, p := range presets {
		m[p.name] = p.fn
	}
	return m
}()

// ByName looks up a predefined curve such as "inOutCubic".
func ByName(name string) (Func, bool) {
	f, ok := byName[name]
	return f, ok
}

// Preset returns the named curve, or Linear if the name is unknown.
func Preset(name string) Func {
	if f, ok := byName[name]; ok {
		return f
	}
	return Linear
}

// Names lists every predefined curve, starting with "linear".
func Names() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.name
	}
	return names
}

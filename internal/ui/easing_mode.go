package ui

import "github.com/olivier-w/scrollus/internal/ease"

// easingMode is an index into ease.Names, cycled from the keyboard.
type easingMode int

func easingModeFor(name string) easingMode {
	for i, n := range ease.Names() {
		if n == name {
			return easingMode(i)
		}
	}
	return 0
}

// Next cycles to the next preset, wrapping around.
func (e easingMode) Next() easingMode {
	return easingMode((int(e) + 1) % len(ease.Names()))
}

// Prev cycles to the previous preset, wrapping around.
func (e easingMode) Prev() easingMode {
	n := len(ease.Names())
	return easingMode((int(e) + n - 1) % n)
}

// String returns the preset name.
func (e easingMode) String() string {
	return ease.Names()[e]
}

// Func returns the preset curve.
func (e easingMode) Func() ease.Func {
	return ease.Preset(e.String())
}

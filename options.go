package extrude

// Options controls an extrusion. Start from DefaultOptions; the zero value
// describes a flat extrusion with no triangulator configured, which falls
// back to the ear-clipping triangulator.
type Options struct {
	// Depth is the half-thickness of the straight wall section. The caps
	// sit at ±(Depth + bevel thickness).
	Depth float64

	// BevelEnabled turns on the bevel rings between caps and walls.
	BevelEnabled bool

	// BevelThickness is the extra z extent of the bevel on each side.
	BevelThickness float64

	// BevelSize is the distance the bevel contour is offset from the
	// shape boundary.
	BevelSize float64

	// Triangulator triangulates the caps.
	Triangulator Triangulator
}

// DefaultOptions returns the default extrusion options.
func DefaultOptions() Options {
	return Options{
		Depth:          1,
		BevelEnabled:   false,
		BevelThickness: 1,
		BevelSize:      1,
		Triangulator:   EarcutTriangulator{},
	}
}

// Option configures an extrusion.
//
// Example:
//
//	mesh := extrude.Extrude(shapes,
//	    extrude.WithDepth(0.5),
//	    extrude.WithBevel(0.1, 0.05))
type Option func(*Options)

// WithDepth sets the straight wall half-thickness.
func WithDepth(depth float64) Option {
	return func(o *Options) {
		o.Depth = depth
	}
}

// WithBevel enables the bevel with the given thickness and size.
func WithBevel(thickness, size float64) Option {
	return func(o *Options) {
		o.BevelEnabled = true
		o.BevelThickness = thickness
		o.BevelSize = size
	}
}

// WithoutBevel disables the bevel.
func WithoutBevel() Option {
	return func(o *Options) {
		o.BevelEnabled = false
	}
}

// WithTriangulator replaces the cap triangulator.
// A nil triangulator restores the default.
func WithTriangulator(t Triangulator) Option {
	return func(o *Options) {
		o.Triangulator = t
	}
}

// effective returns the values used by the engine: negative sizes clamp
// to zero and a disabled bevel has no thickness or size.
func (o Options) effective() Options {
	o.Depth = max(o.Depth, 0)
	if o.BevelEnabled {
		o.BevelThickness = max(o.BevelThickness, 0)
		o.BevelSize = max(o.BevelSize, 0)
	} else {
		o.BevelThickness = 0
		o.BevelSize = 0
	}
	if o.Triangulator == nil {
		o.Triangulator = EarcutTriangulator{}
	}
	return o
}

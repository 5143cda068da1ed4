package controls

// ControlsBuilderOption is a function that applies an option to a controlsImpl instance.
type ControlsBuilderOption func(*controlsImpl)

// WithStepPerSecond is an option builder that sets the movement rate applied
// to a held axis key, in world units per second.
//
// Parameters:
//   - step: the movement rate (default 2.0)
//
// Returns:
//   - ControlsBuilderOption: a function that applies the step option to the controls
func WithStepPerSecond(step float32) ControlsBuilderOption {
	return func(c *controlsImpl) {
		c.stepPerSecond = step
	}
}

// WithRange is an option builder that sets the clamp bounds applied to every
// camera and light axis.
//
// Parameters:
//   - min: the lower bound (default -10)
//   - max: the upper bound (default 10)
//
// Returns:
//   - ControlsBuilderOption: a function that applies the range option to the controls
func WithRange(min, max float32) ControlsBuilderOption {
	return func(c *controlsImpl) {
		c.min = min
		c.max = max
	}
}

// WithLabelCallback is an option builder that sets the callback receiving the
// formatted live label whenever an Update call moves the camera or light.
// Wire this to the window title to mirror the axis values on screen.
//
// Parameters:
//   - callback: function receiving the new label text
//
// Returns:
//   - ControlsBuilderOption: a function that applies the label callback option to the controls
func WithLabelCallback(callback func(label string)) ControlsBuilderOption {
	return func(c *controlsImpl) {
		c.onLabelChange = callback
	}
}

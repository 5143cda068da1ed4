package terrain

// GeneratorBuilderOption is a function that applies an option to a generatorImpl instance.
type GeneratorBuilderOption func(*generatorImpl)

// WithGridSize is an option builder that sets the world-space side length of
// the square grid.
//
// Parameters:
//   - gridSize: the grid side length in world units
//
// Returns:
//   - GeneratorBuilderOption: a function that applies the grid size option to a generator
func WithGridSize(gridSize float32) GeneratorBuilderOption {
	return func(g *generatorImpl) {
		g.gridSize = gridSize
	}
}

// WithStep is an option builder that sets the spacing between adjacent grid
// points.
//
// Parameters:
//   - step: the grid step in world units
//
// Returns:
//   - GeneratorBuilderOption: a function that applies the step option to a generator
func WithStep(step float32) GeneratorBuilderOption {
	return func(g *generatorImpl) {
		g.step = step
	}
}

// WithAmplitude is an option builder that sets the peak height of the
// elevation function.
//
// Parameters:
//   - amplitude: the elevation amplitude in world units
//
// Returns:
//   - GeneratorBuilderOption: a function that applies the amplitude option to a generator
func WithAmplitude(amplitude float32) GeneratorBuilderOption {
	return func(g *generatorImpl) {
		g.amplitude = amplitude
	}
}

// WithFrequency is an option builder that sets the spatial frequency of the
// elevation function.
//
// Parameters:
//   - frequency: the elevation frequency in radians per world unit
//
// Returns:
//   - GeneratorBuilderOption: a function that applies the frequency option to a generator
func WithFrequency(frequency float32) GeneratorBuilderOption {
	return func(g *generatorImpl) {
		g.frequency = frequency
	}
}

// WithWorkers is an option builder that sets how many workers the generator's
// compute pool runs. Values below 1 fall back to a single worker.
//
// Parameters:
//   - workers: the worker count
//
// Returns:
//   - GeneratorBuilderOption: a function that applies the workers option to a generator
func WithWorkers(workers int) GeneratorBuilderOption {
	return func(g *generatorImpl) {
		g.workers = workers
	}
}

package profiler

import "time"

// ProfilerBuilderOption is a function that applies an option to a Profiler instance.
type ProfilerBuilderOption func(*Profiler)

// WithUpdateInterval is an option builder that sets how often Tick logs
// accumulated statistics. Shorter intervals give noisier numbers; longer
// intervals smooth over frame spikes.
//
// Parameters:
//   - interval: the logging interval (default 1 second)
//
// Returns:
//   - ProfilerBuilderOption: a function that applies the interval option to the profiler
func WithUpdateInterval(interval time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.updateInterval = interval
	}
}

package config

// SettingsConfig contains the values the user can cycle through at runtime
type SettingsConfig struct {
	DurationSteps []int    // Per-item animation lengths in milliseconds
	Languages     []string // Label languages, cycled with the language key
	Gravities     []string
}

// Settings is the global runtime settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		DurationSteps: []int{0, 50, 100, 200, 400, 800},
		Languages:     []string{"en", "es", "ar", "he"},
		Gravities:     []string{"start", "end"},
	}
}

// NextDuration moves delta steps from current, wrapping around. A value that
// is not a step moves to its neighbour in the direction of delta.
func NextDuration(current int, delta int) int {
	steps := Settings.DurationSteps
	n := len(steps)
	if n == 0 {
		return current
	}
	for i, s := range steps {
		if s == current {
			return steps[((i+delta)%n+n)%n]
		}
	}

	if delta > 0 {
		for _, s := range steps {
			if s > current {
				return s
			}
		}
		return steps[0]
	}
	for i := n - 1; i >= 0; i-- {
		if steps[i] < current {
			return steps[i]
		}
	}
	return steps[n-1]
}

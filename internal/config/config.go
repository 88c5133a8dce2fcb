// Package config loads runtime configuration for the leaky interpreter.
package config

// LandmarkMode selects how the depot/tap/pond positions are fixed.
type LandmarkMode string

const (
	// LandmarksFromSource parses the first three program lines as
	// landmark declarations.
	LandmarksFromSource LandmarkMode = "source"
	// LandmarksFixed uses the constant layout (depot ahead, tap right,
	// pond left) and treats every line as an instruction.
	LandmarksFixed LandmarkMode = "fixed"
)

// Config holds the interpreter's runtime settings.
type Config struct {
	// Landmarks selects bootstrap behavior: "source" or "fixed".
	Landmarks LandmarkMode `yaml:"landmarks"`
	// MaxTicks bounds batch runs as a runaway guard; 0 disables it.
	MaxTicks int `yaml:"max_ticks"`
	// StepDelayMS is the auto-run interval for play/trace, in milliseconds.
	StepDelayMS int `yaml:"step_delay_ms"`
	// DBPath locates the run history database.
	DBPath string `yaml:"db_path"`
}

// Default returns the hardcoded fallback configuration.
func Default() Config {
	return Config{
		Landmarks:   LandmarksFromSource,
		MaxTicks:    1_000_000,
		StepDelayMS: 500,
		DBPath:      "~/.leaky/runs.db",
	}
}

package config

// ActionID represents a logical menu action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionToggle
	ActionClose
	ActionFaster
	ActionSlower
	ActionGravity
	ActionLanguage
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds pointer timing. Key bindings live with the input system
// since they depend on the windowing backend.
type InputConfig struct {
	// A left button held at least this long on one row is a long click
	LongPressMillis int
	// Number keys 1..MaxDigit select rows directly
	MaxDigit int
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		LongPressMillis: 500,
		MaxDigit:        9,
	}
}

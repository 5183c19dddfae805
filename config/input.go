package config

// ActionID represents a logical game action. Key and gamepad bindings live
// with the ebiten input system.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionStrafeLeft
	ActionStrafeRight
	ActionFireUp
	ActionFireDown
	ActionFireLeft
	ActionFireRight
	ActionSword
	ActionDagger
	ActionGreatsword
	ActionShield
	ActionCycleWeapon
	ActionGodMode
	ActionPause
	ActionRestart
	ActionToggleFPS
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds tuning that does not depend on the input backend.
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64 `yaml:"analog_deadzone"`
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
	}
}

package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Locomotion selects how player movement input is turned into motion.
type Locomotion int

const (
	// LocomotionWASD snaps to the four cardinal directions.
	LocomotionWASD Locomotion = iota
	// LocomotionStrafe moves along the view vector with turn and strafe input.
	LocomotionStrafe
	// LocomotionVelocity moves along the normalized input vector.
	LocomotionVelocity
)

var locomotionNames = map[Locomotion]string{
	LocomotionWASD:     "wasd",
	LocomotionStrafe:   "strafe",
	LocomotionVelocity: "velocity",
}

func (l Locomotion) String() string {
	if name, ok := locomotionNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLocomotion maps a scheme name to its Locomotion value.
func ParseLocomotion(s string) (Locomotion, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for l, name := range locomotionNames {
		if name == s {
			return l, nil
		}
	}
	return LocomotionWASD, fmt.Errorf("unknown locomotion %q", s)
}

// UnmarshalYAML accepts the scheme name.
func (l *Locomotion) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseLocomotion(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// MarshalYAML writes the scheme name.
func (l Locomotion) MarshalYAML() (interface{}, error) {
	return l.String(), nil
}

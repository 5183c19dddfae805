package config

// GameState is the round state driven by the game session.
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateWaiting
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateWaiting:
		return "waiting"
	}
	return "unknown"
}

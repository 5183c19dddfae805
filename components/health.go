package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Fraction is the remaining share of health in [0, 1].
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

// HealthBarData marks a decoration that shows the player's health.
type HealthBarData struct {
	Target donburi.Entity
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()

package gamemath

import "math"

// AngleToVector returns the unit view vector for an orientation.
func AngleToVector(theta float64) Vec2 {
	s, c := math.Sincos(theta)
	return Vec2{c, s}
}

// NormalizeAngle wraps theta into (-pi, pi].
func NormalizeAngle(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta <= -math.Pi {
		theta += 2 * math.Pi
	} else if theta > math.Pi {
		theta -= 2 * math.Pi
	}
	return theta
}

// TrackingSpeed returns the angular speed that turns an object with
// orientation roll toward bearing: a fixed speed in the right direction,
// zero inside the dead zone.
func TrackingSpeed(roll, bearing, speed, deadZone float64) float64 {
	diff := NormalizeAngle(roll - bearing)
	switch {
	case diff > deadZone:
		return -speed
	case diff < -deadZone:
		return speed
	}
	return 0
}

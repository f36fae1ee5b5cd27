package util

// Clamp constrains value to [min, max]. When the range is empty min wins, so
// a cursor over zero rows clamps to 0.
func Clamp(value, min, max int) int {
	if value > max {
		value = max
	}
	if value < min {
		value = min
	}
	return value
}

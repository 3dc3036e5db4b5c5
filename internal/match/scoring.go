package match

// PointsDelta maps a match score to the signed adjustment applied to the
// player's balance. Total over every integer, so a score outside the
// expected 2-10 range falls into the nearest bucket instead of failing.
func PointsDelta(score int) int {
	switch {
	case score <= 2:
		return -3
	case score <= 4:
		return -1
	case score <= 7:
		return 0
	case score <= 9:
		return 2
	default:
		return 5
	}
}

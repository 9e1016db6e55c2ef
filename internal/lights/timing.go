package lights

// riseFallMS lists the rise/fall durations the LED driver supports, indexed
// by the value written to the risetime/falltime attributes.
var riseFallMS = [...]int{
	2, 262, 524, 1049,
	2097, 4194, 8389, 16780,
}

// RiseFallTimes returns a copy of the supported rise/fall durations.
func RiseFallTimes() []int {
	out := make([]int, len(riseFallMS))
	copy(out, riseFallMS[:])
	return out
}

// Closest returns the index of the rise/fall duration nearest to ms.
// Ties resolve to the lowest index.
func Closest(ms int) int {
	best := 0
	for i := range riseFallMS {
		if abs(ms-riseFallMS[i]) < abs(ms-riseFallMS[best]) {
			best = i
		}
	}
	return best
}

// Split quantizes ms into a rise/fall index and the delay that remains
// after that transition. A negative remainder is clamped to zero.
func Split(ms int) (index, delay int) {
	index = Closest(ms)
	delay = ms - riseFallMS[index]
	if delay < 0 {
		delay = 0
	}
	return index, delay
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

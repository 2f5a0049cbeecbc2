package fontmatch

// best returns the index of the candidate closest to the request, following
// CSS font matching: stretch first, then style, then weight. Ties keep the
// earliest registered face.
func best(candidates []Face, weight Weight, stretch Stretch, style Style) int {
	bestIdx := -1
	var bestKey [3]int
	for i, f := range candidates {
		key := [3]int{
			stretchRank(stretch, f.Stretch),
			styleRank(style, f.Style),
			weightRank(weight, f.Weight),
		}
		if bestIdx < 0 || less(key, bestKey) {
			bestIdx, bestKey = i, key
		}
	}
	return bestIdx
}

func less(a, b [3]int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// farther ranks values on the non-preferred side after every preferred one.
const farther = 10000

// stretchRank prefers narrower faces when the request is normal or
// condensed, and wider faces when it is expanded.
func stretchRank(want, have Stretch) int {
	d := int(have) - int(want)
	switch {
	case d == 0:
		return 0
	case want <= StretchNormal && d < 0:
		return -d
	case want <= StretchNormal:
		return farther + d
	case d > 0:
		return d
	default:
		return farther - d
	}
}

var styleOrder = map[Style][3]Style{
	StyleNormal:  {StyleNormal, StyleOblique, StyleItalic},
	StyleOblique: {StyleOblique, StyleItalic, StyleNormal},
	StyleItalic:  {StyleItalic, StyleOblique, StyleNormal},
}

func styleRank(want, have Style) int {
	order, ok := styleOrder[want]
	if !ok {
		order = styleOrder[StyleNormal]
	}
	for i, s := range order {
		if s == have {
			return i
		}
	}
	return len(order)
}

// weightRank orders weights as CSS does. For a request between 400 and 500
// heavier weights up to 500 come first, then lighter ones, then weights
// above 500. Below 400 lighter weights come first; above 500 heavier ones.
func weightRank(want, have Weight) int {
	d := int(have) - int(want)
	switch {
	case d == 0:
		return 0
	case want >= WeightNormal && want <= WeightMedium:
		switch {
		case d > 0 && have <= WeightMedium:
			return d
		case d < 0:
			return farther - d
		default:
			return 2*farther + d
		}
	case want < WeightNormal:
		if d < 0 {
			return -d
		}
		return farther + d
	default:
		if d > 0 {
			return d
		}
		return farther - d
	}
}

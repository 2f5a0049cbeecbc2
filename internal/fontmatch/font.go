// Package fontmatch caches the faces of registered font files per folder
// and selects the best face for a (family, weight, stretch, style) request
// using CSS font matching.
package fontmatch

import "strconv"

// Weight is the OpenType weight class, 1 to 1000.
type Weight int

// Common weights.
const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightSemiLight  Weight = 350
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
	WeightExtraBlack Weight = 950
)

var weightNames = map[Weight]string{
	WeightThin:       "thin",
	WeightExtraLight: "extralight",
	WeightLight:      "light",
	WeightSemiLight:  "semilight",
	WeightNormal:     "normal",
	WeightMedium:     "medium",
	WeightSemiBold:   "semibold",
	WeightBold:       "bold",
	WeightExtraBold:  "extrabold",
	WeightBlack:      "black",
	WeightExtraBlack: "extrablack",
}

func (w Weight) String() string {
	if name, ok := weightNames[w]; ok {
		return name
	}
	return strconv.Itoa(int(w))
}

// ParseWeight accepts a weight name or a number between 1 and 1000.
func ParseWeight(s string) (Weight, bool) {
	for w, name := range weightNames {
		if name == normalizeName(s) {
			return w, true
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 1000 {
		return 0, false
	}
	return Weight(n), true
}

// Stretch is the OpenType width class, 1 (ultra-condensed) to 9.
type Stretch int

// Stretch values.
const (
	StretchUltraCondensed Stretch = iota + 1
	StretchExtraCondensed
	StretchCondensed
	StretchSemiCondensed
	StretchNormal
	StretchSemiExpanded
	StretchExpanded
	StretchExtraExpanded
	StretchUltraExpanded
)

var stretchNames = [...]string{
	StretchUltraCondensed: "ultracondensed",
	StretchExtraCondensed: "extracondensed",
	StretchCondensed:      "condensed",
	StretchSemiCondensed:  "semicondensed",
	StretchNormal:         "normal",
	StretchSemiExpanded:   "semiexpanded",
	StretchExpanded:       "expanded",
	StretchExtraExpanded:  "extraexpanded",
	StretchUltraExpanded:  "ultraexpanded",
}

func (s Stretch) String() string {
	if s >= StretchUltraCondensed && s <= StretchUltraExpanded {
		return stretchNames[s]
	}
	return "stretch(" + strconv.Itoa(int(s)) + ")"
}

// ParseStretch accepts a stretch name or a number between 1 and 9.
func ParseStretch(s string) (Stretch, bool) {
	name := normalizeName(s)
	for i := StretchUltraCondensed; i <= StretchUltraExpanded; i++ {
		if stretchNames[i] == name {
			return i, true
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < int(StretchUltraCondensed) || n > int(StretchUltraExpanded) {
		return 0, false
	}
	return Stretch(n), true
}

// Style is the slant of a face.
type Style int

// Styles.
const (
	StyleNormal Style = iota
	StyleOblique
	StyleItalic
)

func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleOblique:
		return "oblique"
	case StyleItalic:
		return "italic"
	}
	return "style(" + strconv.Itoa(int(s)) + ")"
}

// ParseStyle accepts "normal", "oblique" or "italic".
func ParseStyle(s string) (Style, bool) {
	switch normalizeName(s) {
	case "normal":
		return StyleNormal, true
	case "oblique":
		return StyleOblique, true
	case "italic":
		return StyleItalic, true
	}
	return 0, false
}

// Face describes one face inside a font file.
type Face struct {
	Family  string
	Weight  Weight
	Stretch Stretch
	Style   Style
	Index   int // face index within a collection
}

// Source identifies the face chosen by Match.
type Source struct {
	Filename  string
	FaceIndex int
	Weight    Weight
	Stretch   Stretch
	Style     Style
}

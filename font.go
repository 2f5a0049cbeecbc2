package uiprovider

import "github.com/alnah/go-uiprovider/internal/fontmatch"

// Font identity types.
type (
	// FontWeight is the OpenType weight class, 1 to 1000.
	FontWeight = fontmatch.Weight

	// FontStretch is the OpenType width class, 1 to 9.
	FontStretch = fontmatch.Stretch

	// FontStyle is the slant of a face.
	FontStyle = fontmatch.Style

	// FontSource identifies a matched face. The zero value means no match.
	FontSource = fontmatch.Source
)

// Font weights.
const (
	FontWeightThin       = fontmatch.WeightThin
	FontWeightExtraLight = fontmatch.WeightExtraLight
	FontWeightLight      = fontmatch.WeightLight
	FontWeightSemiLight  = fontmatch.WeightSemiLight
	FontWeightNormal     = fontmatch.WeightNormal
	FontWeightMedium     = fontmatch.WeightMedium
	FontWeightSemiBold   = fontmatch.WeightSemiBold
	FontWeightBold       = fontmatch.WeightBold
	FontWeightExtraBold  = fontmatch.WeightExtraBold
	FontWeightBlack      = fontmatch.WeightBlack
	FontWeightExtraBlack = fontmatch.WeightExtraBlack
)

// Font stretches.
const (
	FontStretchUltraCondensed = fontmatch.StretchUltraCondensed
	FontStretchExtraCondensed = fontmatch.StretchExtraCondensed
	FontStretchCondensed      = fontmatch.StretchCondensed
	FontStretchSemiCondensed  = fontmatch.StretchSemiCondensed
	FontStretchNormal         = fontmatch.StretchNormal
	FontStretchSemiExpanded   = fontmatch.StretchSemiExpanded
	FontStretchExpanded       = fontmatch.StretchExpanded
	FontStretchExtraExpanded  = fontmatch.StretchExtraExpanded
	FontStretchUltraExpanded  = fontmatch.StretchUltraExpanded
)

// Font styles.
const (
	FontStyleNormal  = fontmatch.StyleNormal
	FontStyleOblique = fontmatch.StyleOblique
	FontStyleItalic  = fontmatch.StyleItalic
)

// ParseFontWeight accepts a weight name ("bold", "semi-bold") or a number.
func ParseFontWeight(s string) (FontWeight, bool) { return fontmatch.ParseWeight(s) }

// ParseFontStretch accepts a stretch name ("condensed") or a number.
func ParseFontStretch(s string) (FontStretch, bool) { return fontmatch.ParseStretch(s) }

// ParseFontStyle accepts "normal", "oblique" or "italic".
func ParseFontStyle(s string) (FontStyle, bool) { return fontmatch.ParseStyle(s) }

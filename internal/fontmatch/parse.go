package fontmatch

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/font/sfnt"
)

// ParseFaces reads the faces of a font file or collection. The family is
// the typographic family when present. Weight, stretch and style are taken
// from the subfamily name.
func ParseFaces(data []byte) ([]Face, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrInvalidFont)
	}
	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}

	var buf sfnt.Buffer
	faces := make([]Face, 0, coll.NumFonts())
	for i := 0; i < coll.NumFonts(); i++ {
		f, err := coll.Font(i)
		if err != nil {
			return nil, fmt.Errorf("%w: face %d: %v", ErrInvalidFont, i, err)
		}

		family, err := name(f, &buf, sfnt.NameIDTypographicFamily, sfnt.NameIDFamily)
		if err != nil {
			return nil, fmt.Errorf("%w: face %d: %v", ErrInvalidFont, i, err)
		}
		sub, err := name(f, &buf, sfnt.NameIDTypographicSubfamily, sfnt.NameIDSubfamily)
		if err != nil {
			sub = ""
		}

		face := Face{Family: family, Index: i}
		face.Weight, face.Stretch, face.Style = parseSubfamily(sub)
		faces = append(faces, face)
	}
	return faces, nil
}

// name returns the first non-empty name among ids.
func name(f *sfnt.Font, buf *sfnt.Buffer, ids ...sfnt.NameID) (string, error) {
	var lastErr error = sfnt.ErrNotFound
	for _, id := range ids {
		s, err := f.Name(buf, id)
		if err != nil {
			if !errors.Is(err, sfnt.ErrNotFound) {
				lastErr = err
			}
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			return s, nil
		}
	}
	return "", lastErr
}

// Compound keywords come before the words they contain.
var (
	weightKeywords = []struct {
		word   string
		weight Weight
	}{
		{"extrablack", WeightExtraBlack},
		{"ultrablack", WeightExtraBlack},
		{"extrabold", WeightExtraBold},
		{"ultrabold", WeightExtraBold},
		{"semibold", WeightSemiBold},
		{"demibold", WeightSemiBold},
		{"extralight", WeightExtraLight},
		{"ultralight", WeightExtraLight},
		{"semilight", WeightSemiLight},
		{"demilight", WeightSemiLight},
		{"hairline", WeightThin},
		{"thin", WeightThin},
		{"light", WeightLight},
		{"medium", WeightMedium},
		{"black", WeightBlack},
		{"heavy", WeightBlack},
		{"bold", WeightBold},
	}

	stretchKeywords = []struct {
		word    string
		stretch Stretch
	}{
		{"ultracondensed", StretchUltraCondensed},
		{"extracondensed", StretchExtraCondensed},
		{"semicondensed", StretchSemiCondensed},
		{"condensed", StretchCondensed},
		{"narrow", StretchCondensed},
		{"ultraexpanded", StretchUltraExpanded},
		{"extraexpanded", StretchExtraExpanded},
		{"semiexpanded", StretchSemiExpanded},
		{"expanded", StretchExpanded},
		{"wide", StretchExpanded},
	}
)

func parseSubfamily(sub string) (Weight, Stretch, Style) {
	s := normalizeName(sub)

	weight := WeightNormal
	for _, k := range weightKeywords {
		if strings.Contains(s, k.word) {
			weight = k.weight
			break
		}
	}

	stretch := StretchNormal
	for _, k := range stretchKeywords {
		if strings.Contains(s, k.word) {
			stretch = k.stretch
			break
		}
	}

	style := StyleNormal
	switch {
	case strings.Contains(s, "italic"):
		style = StyleItalic
	case strings.Contains(s, "oblique"):
		style = StyleOblique
	}

	return weight, stretch, style
}

// normalizeName lowercases s and drops spaces, hyphens and underscores.
func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

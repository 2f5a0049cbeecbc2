package fontmatch

import "testing"

func TestBest(t *testing.T) {
	t.Parallel()

	family := []Face{
		{Family: "F", Weight: 300, Stretch: StretchNormal, Style: StyleNormal},
		{Family: "F", Weight: 400, Stretch: StretchNormal, Style: StyleNormal},
		{Family: "F", Weight: 600, Stretch: StretchNormal, Style: StyleNormal},
		{Family: "F", Weight: 900, Stretch: StretchNormal, Style: StyleNormal},
		{Family: "F", Weight: 400, Stretch: StretchNormal, Style: StyleItalic},
		{Family: "F", Weight: 700, Stretch: StretchNormal, Style: StyleOblique},
		{Family: "F", Weight: 400, Stretch: StretchCondensed, Style: StyleNormal},
		{Family: "F", Weight: 400, Stretch: StretchExpanded, Style: StyleNormal},
	}

	tests := []struct {
		name    string
		weight  Weight
		stretch Stretch
		style   Style
		want    int
	}{
		{"exact", 400, StretchNormal, StyleNormal, 1},
		{"500 falls back lighter", 500, StretchNormal, StyleNormal, 1},
		{"450 falls back lighter", 450, StretchNormal, StyleNormal, 1},
		{"700 prefers heavier", 700, StretchNormal, StyleNormal, 3},
		{"950 takes heaviest lighter", 950, StretchNormal, StyleNormal, 3},
		{"200 prefers heavier when nothing lighter", 200, StretchNormal, StyleNormal, 0},
		{"350 prefers lighter", 350, StretchNormal, StyleNormal, 0},
		{"italic exact", 400, StretchNormal, StyleItalic, 4},
		{"oblique uses oblique first", 400, StretchNormal, StyleOblique, 5},
		{"semi condensed prefers narrower", 400, StretchSemiCondensed, StyleNormal, 6},
		{"ultra condensed takes wider", 400, StretchUltraCondensed, StyleNormal, 6},
		{"semi expanded prefers wider", 400, StretchSemiExpanded, StyleNormal, 7},
		{"ultra expanded takes narrower", 400, StretchUltraExpanded, StyleNormal, 7},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := best(family, tt.weight, tt.stretch, tt.style); got != tt.want {
				t.Errorf("best() = %d (%+v), want %d (%+v)", got, family[got], tt.want, family[tt.want])
			}
		})
	}
}

func TestBest_StretchBeforeStyle(t *testing.T) {
	t.Parallel()

	faces := []Face{
		{Weight: 400, Stretch: StretchCondensed, Style: StyleItalic},
		{Weight: 400, Stretch: StretchNormal, Style: StyleNormal},
	}
	if got := best(faces, 400, StretchNormal, StyleItalic); got != 1 {
		t.Errorf("best() = %d, want 1", got)
	}
}

func TestBest_Empty(t *testing.T) {
	t.Parallel()

	if got := best(nil, 400, StretchNormal, StyleNormal); got != -1 {
		t.Errorf("best(nil) = %d, want -1", got)
	}
}

func TestWeightRank_Order(t *testing.T) {
	t.Parallel()

	// CSS order for a 400 request: 400, 500, 300, 200, 100, 600, 700, 800, 900.
	order := []Weight{400, 500, 300, 200, 100, 600, 700, 800, 900}
	for i := 1; i < len(order); i++ {
		if weightRank(400, order[i-1]) >= weightRank(400, order[i]) {
			t.Errorf("weightRank(400, %d) should rank before %d", order[i-1], order[i])
		}
	}
}

package content

import (
	"reflect"
	"testing"
)

func TestParseRefs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  []Ref
	}{
		{"empty", "", nil},
		{"plain text", "Hello world", nil},
		{"markup extension", "{StaticResource Brush}", nil},
		{"uri", "http://schemas.microsoft.com/winfx/2006/xaml", nil},
		{"asset", "/Game/Textures/Logo.png", []Ref{{Path: "/Game/Textures/Logo"}}},
		{"asset with object name", "/Game/UI/Panel.Panel", []Ref{{Path: "/Game/UI/Panel"}}},
		{"font family", "/Game/Fonts/#Roboto", []Ref{{Path: "/Game/Fonts", Folder: true, Family: "Roboto"}}},
		{"font family with spaces", "/Engine/Fonts/#Go Mono", []Ref{{Path: "/Engine/Fonts", Folder: true, Family: "Go Mono"}}},
		{"fallback list", "Arial, /Game/Fonts/#Body, /Engine/Fonts/#Go", []Ref{
			{Path: "/Game/Fonts", Folder: true, Family: "Body"},
			{Path: "/Engine/Fonts", Folder: true, Family: "Go"},
		}},
		{"missing family", "/Game/Fonts/#", nil},
		{"sentence with slash", "/Game/a b", nil},
		{"protocol relative", "//cdn/x.png", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseRefs(tt.value)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseRefs(%q) = %+v, want %+v", tt.value, got, tt.want)
			}
		})
	}
}

func TestScanRefs(t *testing.T) {
	t.Parallel()

	t.Run("attributes and text", func(t *testing.T) {
		t.Parallel()

		text := []byte(`<Grid>
  <Image Source="/Game/Textures/Logo.png"/>
  <Image Source="/Game/Textures/Logo"/>
  <Setter Property="FontFamily">/Game/Fonts/#Body</Setter>
</Grid>`)
		want := []Ref{
			{Path: "/Game/Textures/Logo"},
			{Path: "/Game/Fonts", Folder: true, Family: "Body"},
		}
		if got := scanRefs(text); !reflect.DeepEqual(got, want) {
			t.Errorf("scanRefs() = %+v, want %+v", got, want)
		}
	})

	t.Run("malformed markup keeps earlier refs", func(t *testing.T) {
		t.Parallel()

		text := []byte(`<Grid><Image Source="/Game/A"/><Broken attr=`)
		got := scanRefs(text)
		if len(got) != 1 || got[0].Path != "/Game/A" {
			t.Errorf("scanRefs() = %+v, want [/Game/A]", got)
		}
	})

	t.Run("no markup", func(t *testing.T) {
		t.Parallel()

		if got := scanRefs(nil); len(got) != 0 {
			t.Errorf("scanRefs(nil) = %+v, want none", got)
		}
	})
}

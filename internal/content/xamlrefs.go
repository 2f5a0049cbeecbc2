package content

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// Ref is a dependency named by a markup asset.
type Ref struct {
	// Path is the canonical logical path of an asset, or of a folder when
	// Folder is set.
	Path string

	// Folder marks a font family reference such as "/Game/Fonts/#Roboto";
	// every font face in Path is a dependency.
	Folder bool

	// Family is the family named after '#', for folder references.
	Family string
}

// scanRefs collects host paths named in attribute values and element text.
// Values may list fallbacks separated by commas, as FontFamily does.
// Malformed markup stops the scan; references found so far are kept.
func scanRefs(text []byte) []Ref {
	var refs []Ref
	seen := make(map[Ref]bool)
	add := func(value string) {
		for _, ref := range parseRefs(value) {
			if !seen[ref] {
				seen[ref] = true
				refs = append(refs, ref)
			}
		}
	}

	dec := xml.NewDecoder(bytes.NewReader(text))
	dec.Strict = false
	for {
		tok, err := dec.Token()
		if err != nil {
			return refs
		}
		switch t := tok.(type) {
		case xml.StartElement:
			for _, attr := range t.Attr {
				add(attr.Value)
			}
		case xml.CharData:
			add(string(t))
		}
	}
}

func parseRefs(value string) []Ref {
	value = strings.TrimSpace(value)
	if !strings.Contains(value, Separator) {
		return nil
	}

	var refs []Ref
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if !strings.HasPrefix(part, Separator) || strings.HasPrefix(part, "//") {
			continue
		}
		if folder, family, ok := strings.Cut(part, "#"); ok {
			folder = strings.TrimSuffix(CleanPath(folder), Separator)
			if folder == "" || family == "" {
				continue
			}
			refs = append(refs, Ref{Path: folder, Folder: true, Family: family})
			continue
		}
		if strings.ContainsAny(part, " \t\r\n{}") {
			continue
		}
		refs = append(refs, Ref{Path: PackagePath(part)})
	}
	return refs
}

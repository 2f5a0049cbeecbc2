package content

// Kind identifies the type of object a logical path resolves to.
type Kind int

const (
	KindXaml Kind = iota + 1
	KindTexture
	KindFontFace
)

// allKinds is the probe order used when a dependency's kind is unknown.
var allKinds = []Kind{KindXaml, KindTexture, KindFontFace}

var kindExtensions = map[Kind][]string{
	KindXaml:     {".xaml"},
	KindTexture:  {".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"},
	KindFontFace: {".ttf", ".otf", ".ttc"},
}

// Extensions returns the file extensions backing this kind, in lookup order.
func (k Kind) Extensions() []string {
	return kindExtensions[k]
}

func (k Kind) String() string {
	switch k {
	case KindXaml:
		return "xaml"
	case KindTexture:
		return "texture"
	case KindFontFace:
		return "fontface"
	default:
		return "unknown"
	}
}

// kindForExtension maps a lower-case extension back to its kind.
func kindForExtension(ext string) (Kind, bool) {
	for _, k := range allKinds {
		for _, e := range kindExtensions[k] {
			if e == ext {
				return k, true
			}
		}
	}
	return 0, false
}

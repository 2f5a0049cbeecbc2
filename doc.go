// Package uiprovider resolves XAML markup, textures and fonts for a UI
// rendering middleware from a host content system, by logical path.
//
// # Quick Start
//
// Open content, then create one provider per asset kind:
//
//	src, err := uiprovider.OpenContent(uiprovider.ContentConfig{
//	    Root: "./Content",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fonts := uiprovider.NewFontProvider(src)
//	xamls := uiprovider.NewXamlProvider(src, fonts)
//	textures := uiprovider.NewTextureProvider(src)
//
//	stream := xamls.LoadXaml("/Game/UI/Main")
//	if stream == nil {
//	    // not found
//	}
//	defer stream.Close()
//
// Lookups never fail loudly: a missing asset yields a nil Stream, a zero
// TextureInfo, a zero FontSource or false. Misses are traced at Debug level
// through the logger set with WithLogger.
//
// # Logical Paths
//
// Content lives under mount points. The content root is mounted at /Game
// (ContentConfig.MountPoint changes it) and embedded engine content at
// /Engine. The following all name the same asset:
//
//	/Game/UI/Main
//	/Game//UI/Main
//	/Game/UI/Main.xaml
//	/Game/UI/Main.Main
//
// An optional sidecar file next to an asset, such as Body.ttf.asset.yaml,
// sets its loading policy and extra dependencies:
//
//	loadingPolicy: inline   # fonts: inline, lazy (default) or stream
//	dependencies:
//	  - /Game/Fonts/Body
//
// # Fonts
//
// Fonts are registered, never scanned. Loading markup registers the faces
// it refers to, including every face of a FontFamily folder reference such
// as "/Game/Fonts/#Roboto". MatchFont then picks the closest face using CSS
// font matching.
//
// A face keeps its bytes inline or in its backing file. Inline faces are
// copied on OpenFont; file-backed faces are read from disk. Either way the
// returned stream owns its buffer.
//
// # Texture Loading
//
// GetTextureInfo loads a texture and reports its size without a device.
// LoadTexture only finds textures that are already loaded and wraps them
// with a RenderDevice, such as the software ImageDevice:
//
//	info := textures.GetTextureInfo("/Game/Textures/Logo")
//	tex := textures.LoadTexture("/Game/Textures/Logo", &uiprovider.ImageDevice{})
//
// # Editing
//
// An EditorSession records which path each asset was loaded from and
// re-raises changes through the providers' change handlers:
//
//	session := uiprovider.NewEditorSession()
//	defer session.Close()
//
//	xamls := uiprovider.NewXamlProvider(src, fonts,
//	    uiprovider.WithEditorSession(session),
//	    uiprovider.WithChangeHandler(func(path string) {
//	        fmt.Println("changed:", path)
//	    }),
//	)
//	if err := session.Watch(ctx, src); err != nil {
//	    log.Fatal(err)
//	}
//
// Without a session, providers keep no index and change callbacks do
// nothing.
package uiprovider

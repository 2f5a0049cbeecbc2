// Package content is the host asset system the UI providers resolve against.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - engine content from go:embed plus the Go fonts
//	    ├── FilesystemLoader  - game content from a directory on disk
//	    └── Resolver          - override directory first, embedded fallback
//
// A Store mounts loaders under logical prefixes (/Game, /Engine), turns
// located files into objects (Xaml, Texture, FontFace) and keeps exactly one
// live object per logical path. Load may read from disk; Find only returns
// objects that are already loaded.
//
// # Logical Paths
//
// Logical paths are slash separated and rooted at a mount point:
//
//	/Game/UI/MainMenu            package path (canonical)
//	/Game/UI/MainMenu.MainMenu   object path, suffix stripped
//	/Game/UI/MainMenu.xaml       file name, extension stripped
//
// Duplicate separators are collapsed by CleanPath before lookup.
//
// # Directory Structure
//
// A filesystem mount maps package paths onto files by extension:
//
//	{root}/
//	├── UI/
//	│   ├── MainMenu.xaml
//	│   └── MainMenu.xaml.asset.yaml   # optional manifest
//	├── Textures/
//	│   └── Logo.png
//	└── Fonts/
//	    ├── Roboto-Bold.ttf
//	    └── Roboto-Bold.ttf.asset.yaml # loadingPolicy: inline|lazy|stream
//
// # Security
//
// Relative paths are validated to prevent traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within its root.
package content

package iconfont

import "embed"

// Assets holds the embedded icon font payloads. The repository ships
// without the Font Awesome ttf itself (see assets/fonts/README.md);
// when the file is present at build time the resource scan in
// LoadIconFont picks it up by name, and when it is absent the resolver
// degrades through the host-font and shape tiers.
//
//go:embed all:assets/fonts
var Assets embed.FS

// Package web embeds the site's templates and static assets so the server
// ships as a single binary.
package web

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed static templates
var content embed.FS

// StaticFS returns the embedded static assets.
func StaticFS() fs.FS {
	return mustSub("static")
}

// TemplatesFS returns the embedded page templates.
func TemplatesFS() fs.FS {
	return mustSub("templates")
}

// mustSub can only fail if the embedded directory is missing from the
// build, which is unrecoverable.
func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(content, dir)
	if err != nil {
		panic(fmt.Sprintf("embedded %s assets: %v", dir, err))
	}
	return sub
}

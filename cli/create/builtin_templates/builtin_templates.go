// Package builtin_templates contains project templates shipped with the binary.
package builtin_templates

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var templatesFs embed.FS

// TemplatesFs contains built-in template directories named template-<type>.
var TemplatesFs = mustSub(templatesFs, "templates")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

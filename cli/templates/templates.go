// Package templates provides the template engine used to instantiate project templates.
package templates

import (
	"io/fs"

	"github.com/serenityjs/create-serenity/cli/templates/internal/engines"
)

// TemplateEngine is an interface to support to use for project template instantiation.
type TemplateEngine interface {
	// RenderFile applies data to the template from srcPath of fsys.
	// Instantiated template is saved as dstPath.
	RenderFile(fsys fs.FS, srcPath, dstPath string, data map[string]string) error

	// RenderText applies data to the template text. Returns instantiated text.
	RenderText(in string, data map[string]string) (string, error)
}

// NewDefaultEngine creates and returns default template engine.
func NewDefaultEngine() TemplateEngine {
	return engines.PlaceholderEngine{}
}

// Transform applies the named string transform to s.
func Transform(name, s string) (string, error) {
	return engines.Transform(name, s)
}

// DashCase converts s to dash-case.
func DashCase(s string) string {
	return engines.DashCase(s)
}

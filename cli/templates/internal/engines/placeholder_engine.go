// Package engines contains template engine implementations.
package engines

import (
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"
)

// PlaceholderEngine renders `{{ key }}` and `{{ transform key }}` placeholders.
// Keys are looked up in the data map, transforms are taken from a fixed set.
// `\{{` is an escaped opening brace pair and is emitted as `{{`.
type PlaceholderEngine struct {
}

var placeholderRe = regexp.MustCompile(`\\?\{\{(.*?)\}\}`)

// renderError describes a failure to instantiate a placeholder.
type renderError struct {
	name string
	line int
	msg  string
}

func (e *renderError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.name, e.line, e.msg)
}

// evaluate computes a value of a single placeholder expression.
func evaluate(expr string, data map[string]string) (string, error) {
	fields := strings.Fields(expr)
	switch len(fields) {
	case 1:
		value, found := data[fields[0]]
		if !found {
			return "", fmt.Errorf("map has no entry for key %q", fields[0])
		}
		return value, nil
	case 2:
		value, found := data[fields[1]]
		if !found {
			return "", fmt.Errorf("map has no entry for key %q", fields[1])
		}
		return Transform(fields[0], value)
	default:
		return "", fmt.Errorf("unsupported expression %q", strings.TrimSpace(expr))
	}
}

func render(name, in string, data map[string]string) (string, error) {
	var out strings.Builder
	out.Grow(len(in))

	last := 0
	for _, loc := range placeholderRe.FindAllStringSubmatchIndex(in, -1) {
		start, end := loc[0], loc[1]
		out.WriteString(in[last:start])
		last = end

		if in[start] == '\\' {
			out.WriteString(in[start+1 : end])
			continue
		}

		value, err := evaluate(in[loc[2]:loc[3]], data)
		if err != nil {
			return "", &renderError{
				name: name,
				line: strings.Count(in[:start], "\n") + 1,
				msg:  err.Error(),
			}
		}
		out.WriteString(value)
	}
	out.WriteString(in[last:])

	return out.String(), nil
}

// RenderFile renders srcPath template from fsys to dstPath. The result file
// gets the permissions of the template file plus the owner write bit.
func (PlaceholderEngine) RenderFile(fsys fs.FS, srcPath, dstPath string,
	data map[string]string) error {
	stat, err := fs.Stat(fsys, srcPath)
	if err != nil {
		return fmt.Errorf("error getting file info %s: %w", srcPath, err)
	}
	// The owner must be able to modify the result even for read-only templates.
	originFileMode := stat.Mode().Perm() | 0o200

	content, err := fs.ReadFile(fsys, srcPath)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", srcPath, err)
	}

	text, err := render(srcPath, string(content), data)
	if err != nil {
		return fmt.Errorf("template execution failed: %w", err)
	}

	if err = os.WriteFile(dstPath, []byte(text), originFileMode); err != nil {
		return fmt.Errorf("error creating %s: %w", dstPath, err)
	}
	// Umask may have stripped some bits.
	if err = os.Chmod(dstPath, originFileMode); err != nil {
		return fmt.Errorf("failed to change permissions of %s: %w", dstPath, err)
	}
	return nil
}

// RenderText renders in text.
func (PlaceholderEngine) RenderText(in string, data map[string]string) (string, error) {
	text, err := render("text", in, data)
	if err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return text, nil
}

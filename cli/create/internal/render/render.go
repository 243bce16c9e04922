// Package render materializes a project template tree into a destination directory.
package render

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/apex/log"
	"github.com/otiai10/copy"
	"github.com/serenityjs/create-serenity/cli/templates"
	"github.com/serenityjs/create-serenity/cli/util"
)

const (
	// DefaultTemplateSuffix marks files rendered with the template engine.
	DefaultTemplateSuffix = ".hbs"

	defaultDirPermissions  = os.FileMode(0o755)
	executablePermissions  = os.FileMode(0o755)
	ownerWritePermissions  = os.FileMode(0o200)
	temporaryDirNamePrefix = ".create-serenity-"
)

// ErrDestinationExists is returned if the destination directory is already present.
var ErrDestinationExists = errors.New("destination already exists")

// TemplateRenderError describes a failure to materialize a template file.
type TemplateRenderError struct {
	// Path is a template-relative path of the offending file.
	Path string
	// Err is the underlying error.
	Err error
}

func (e *TemplateRenderError) Error() string {
	return fmt.Sprintf("failed to render %s: %s", e.Path, e.Err)
}

func (e *TemplateRenderError) Unwrap() error {
	return e.Err
}

// CheckDestination returns ErrDestinationExists if destDir exists.
func CheckDestination(destDir string) error {
	_, err := os.Lstat(destDir)
	if err == nil {
		return fmt.Errorf("%w: %s", ErrDestinationExists, destDir)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check destination %s: %w", destDir, err)
	}
	return nil
}

// Copier copies a template tree, rendering template files on the way.
type Copier struct {
	// Engine renders template files and file names.
	Engine templates.TemplateEngine
	// Suffix marks template files. It is stripped from the result file name.
	Suffix string
	// Ignore is a list of template-relative slash-separated paths to skip.
	Ignore []string
	// Executables is a list of result-relative slash-separated paths to make
	// executable. It is ignored on platforms without POSIX permissions.
	Executables []string
}

// NewCopier creates a copier with the default engine and suffix.
func NewCopier() *Copier {
	return &Copier{
		Engine: templates.NewDefaultEngine(),
		Suffix: DefaultTemplateSuffix,
	}
}

// Copy materializes src into destDir. destDir must not exist, its parents are
// created if needed. The tree is built in a temporary directory next to destDir
// and moved into place only when every file is written, so a failed copy leaves
// nothing behind.
func (c *Copier) Copy(src fs.FS, destDir string, vars map[string]string) error {
	if err := CheckDestination(destDir); err != nil {
		return err
	}

	parentDir := filepath.Dir(destDir)
	if err := os.MkdirAll(parentDir, defaultDirPermissions); err != nil {
		return fmt.Errorf("failed to create %s: %w", parentDir, err)
	}
	tmpDir, err := os.MkdirTemp(parentDir, temporaryDirNamePrefix+filepath.Base(destDir)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary directory: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			if err := os.RemoveAll(tmpDir); err != nil {
				log.Warnf("Failed to remove temporary directory %s: %w", tmpDir, err)
			}
		}
	}()

	if err = c.materialize(src, tmpDir, vars); err != nil {
		return err
	}
	if err = c.applyExecutables(tmpDir, vars); err != nil {
		return err
	}
	if err = os.Chmod(tmpDir, defaultDirPermissions); err != nil {
		return fmt.Errorf("failed to change permissions of %s: %w", tmpDir, err)
	}

	if err = moveDir(tmpDir, destDir); err != nil {
		return err
	}
	committed = true
	return nil
}

// materialize walks src depth-first and mirrors it under dstDir.
func (c *Copier) materialize(src fs.FS, dstDir string, vars map[string]string) error {
	return fs.WalkDir(src, ".", func(srcPath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return &TemplateRenderError{Path: srcPath, Err: err}
		}
		if srcPath == "." {
			return nil
		}
		if slices.Contains(c.Ignore, srcPath) {
			if entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		resultPath, isTemplate, err := c.resultPath(srcPath, entry, vars)
		if err != nil {
			return &TemplateRenderError{Path: srcPath, Err: err}
		}
		target := filepath.Join(dstDir, filepath.FromSlash(resultPath))

		if entry.IsDir() {
			if err := os.MkdirAll(target, defaultDirPermissions); err != nil {
				return &TemplateRenderError{Path: srcPath, Err: err}
			}
			return nil
		}

		if isTemplate {
			err = c.Engine.RenderFile(src, srcPath, target, vars)
		} else {
			err = copyFile(src, srcPath, target)
		}
		if err != nil {
			return &TemplateRenderError{Path: srcPath, Err: err}
		}
		log.Infof("Created %s", resultPath)
		return nil
	})
}

// resultPath computes the destination path of a template entry. Placeholders
// in file names are rendered, the template suffix is stripped.
func (c *Copier) resultPath(srcPath string, entry fs.DirEntry,
	vars map[string]string) (string, bool, error) {
	resultPath, err := c.Engine.RenderText(srcPath, vars)
	if err != nil {
		return "", false, fmt.Errorf("failed file name processing: %w", err)
	}

	isTemplate := false
	if !entry.IsDir() && c.Suffix != "" {
		base := path.Base(resultPath)
		if strings.HasSuffix(base, c.Suffix) && len(base) > len(c.Suffix) {
			resultPath = strings.TrimSuffix(resultPath, c.Suffix)
			isTemplate = true
		}
	}
	return resultPath, isTemplate, nil
}

// copyFile copies srcPath file from src byte-for-byte keeping its permissions.
func copyFile(src fs.FS, srcPath, dstPath string) error {
	stat, err := fs.Stat(src, srcPath)
	if err != nil {
		return fmt.Errorf("error getting file info %s: %w", srcPath, err)
	}
	content, err := fs.ReadFile(src, srcPath)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", srcPath, err)
	}
	// Embedded templates are read-only.
	mode := stat.Mode().Perm() | ownerWritePermissions
	if err = os.WriteFile(dstPath, content, mode); err != nil {
		return fmt.Errorf("error creating %s: %w", dstPath, err)
	}
	return os.Chmod(dstPath, mode)
}

func (c *Copier) applyExecutables(dstDir string, vars map[string]string) error {
	if len(c.Executables) == 0 || !util.IsCurrentShellPlatform() {
		return nil
	}
	for _, executable := range c.Executables {
		resultPath, err := c.Engine.RenderText(executable, vars)
		if err != nil {
			return &TemplateRenderError{Path: executable, Err: err}
		}
		fullPath := filepath.Join(dstDir, filepath.FromSlash(resultPath))
		if !util.IsRegularFile(fullPath) {
			log.Warnf("Executable %s is not found in the template", resultPath)
			continue
		}
		if err = os.Chmod(fullPath, executablePermissions); err != nil {
			return &TemplateRenderError{Path: executable, Err: err}
		}
	}
	return nil
}

// moveDir moves srcDir to dstDir. Falls back to copying if rename is impossible.
func moveDir(srcDir, dstDir string) error {
	if err := CheckDestination(dstDir); err != nil {
		return err
	}
	err := os.Rename(srcDir, dstDir)
	if err == nil {
		return nil
	}
	log.Debugf("Rename %s failed, copying: %w", srcDir, err)

	if err := copy.Copy(srcDir, dstDir); err != nil {
		os.RemoveAll(dstDir)
		return fmt.Errorf("failed to move %s to %s: %w", srcDir, dstDir, err)
	}
	if err := os.RemoveAll(srcDir); err != nil {
		log.Warnf("Failed to remove temporary directory: %w", err)
	}
	return nil
}

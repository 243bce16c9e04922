// Package project_template locates project templates and their manifests.
package project_template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/serenityjs/create-serenity/cli/create/internal/render"
	"github.com/serenityjs/create-serenity/cli/templates"
	"github.com/serenityjs/create-serenity/cli/util"
)

// TemplateDirPrefix is a name prefix of every template directory.
const TemplateDirPrefix = "template-"

// ErrTemplateNotFound is returned if no template search location contains the template.
var ErrTemplateNotFound = errors.New("template is not found")

// ErrEmptyDirName is returned if the project name has no letters or digits.
var ErrEmptyDirName = errors.New("project name must contain at least one letter or number")

// archiveExtensions are checked in order after a template directory.
var archiveExtensions = [...]string{".tgz", ".tar.gz"}

type sourceKind int

const (
	sourceDir sourceKind = iota
	sourceArchive
	sourceBuiltin
)

// Descriptor describes a template selected for a project.
type Descriptor struct {
	// TemplateID is a template identifier, a project type.
	TemplateID string
	// SourceDir is a template location for messages.
	SourceDir string
	// DestDir is an absolute path of the project directory to create.
	DestDir string
	// Source is a template file tree.
	Source fs.FS
	// Manifest is a loaded template manifest.
	Manifest TemplateManifest
	// IsManifestPresent is true if the template has a manifest.
	IsManifestPresent bool

	// tmpDir is a directory with an extracted template archive.
	tmpDir string
}

// Close removes temporary files created for the descriptor.
func (d *Descriptor) Close() error {
	if d.tmpDir == "" {
		return nil
	}
	err := os.RemoveAll(d.tmpDir)
	d.tmpDir = ""
	return err
}

// Resolver maps template identifiers to template file trees.
type Resolver struct {
	// SearchPaths is a list of directories with user templates. They are
	// checked in order before the built-in templates.
	SearchPaths []string
	// Builtin contains built-in template directories.
	Builtin fs.FS
}

// DirName returns a template directory name for the template identifier.
func DirName(templateID string) string {
	return TemplateDirPrefix + templateID
}

// Resolve finds the template and computes the project directory in baseDir.
// Nothing is created if the template is missing or the project directory exists.
func (r Resolver) Resolve(templateID, projectName, baseDir string) (*Descriptor, error) {
	dirName := DirName(templateID)
	location, kind, err := r.find(dirName)
	if err != nil {
		return nil, err
	}

	dirNameOfProject := templates.DashCase(projectName)
	if dirNameOfProject == "" {
		return nil, fmt.Errorf("invalid name %q: %w", projectName, ErrEmptyDirName)
	}
	destDir, err := util.JoinAbspath(baseDir, dirNameOfProject)
	if err != nil {
		return nil, err
	}
	if err = render.CheckDestination(destDir); err != nil {
		return nil, err
	}

	log.Infof("Using template from %s", location)
	descriptor := &Descriptor{
		TemplateID: templateID,
		SourceDir:  location,
		DestDir:    destDir,
	}

	switch kind {
	case sourceDir:
		descriptor.Source = os.DirFS(location)
	case sourceArchive:
		if err = descriptor.extract(location, dirName); err != nil {
			return nil, err
		}
	case sourceBuiltin:
		if descriptor.Source, err = fs.Sub(r.Builtin, dirName); err != nil {
			return nil, err
		}
	}

	descriptor.Manifest, descriptor.IsManifestPresent, err =
		loadOptionalManifest(descriptor.Source)
	if err != nil {
		descriptor.Close()
		return nil, fmt.Errorf("failed to load manifest of %s: %w", location, err)
	}

	return descriptor, nil
}

// find returns the first template location in search order.
func (r Resolver) find(dirName string) (string, sourceKind, error) {
	for _, searchPath := range r.SearchPaths {
		templatePath := filepath.Join(searchPath, dirName)
		if util.IsDir(templatePath) {
			return templatePath, sourceDir, nil
		}
		for _, ext := range archiveExtensions {
			if util.IsRegularFile(templatePath + ext) {
				return templatePath + ext, sourceArchive, nil
			}
		}
		log.Debugf("Template %s is not found in %s", dirName, searchPath)
	}

	if r.Builtin != nil {
		if stat, err := fs.Stat(r.Builtin, dirName); err == nil && stat.IsDir() {
			return "built-in " + dirName, sourceBuiltin, nil
		}
	}

	return "", 0, fmt.Errorf("%w: %s", ErrTemplateNotFound, dirName)
}

// extract unpacks a template archive into a temporary directory. The archive
// may contain the template files or a single template directory.
func (d *Descriptor) extract(archivePath, dirName string) error {
	tmpDir, err := os.MkdirTemp("", dirName+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary directory: %w", err)
	}
	d.tmpDir = tmpDir

	if err = util.ExtractTarGz(archivePath, tmpDir); err != nil {
		d.Close()
		return fmt.Errorf("template archive extraction failed: %w", err)
	}

	root := tmpDir
	if entries, err := os.ReadDir(tmpDir); err == nil && len(entries) == 1 &&
		entries[0].IsDir() && entries[0].Name() == dirName {
		root = filepath.Join(tmpDir, dirName)
	}
	d.Source = os.DirFS(root)
	return nil
}

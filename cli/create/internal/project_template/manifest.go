package project_template

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/mitchellh/mapstructure"
	"github.com/serenityjs/create-serenity/cli/util"
)

const (
	DefaultManifestName = "MANIFEST.yaml"
)

// TemplateManifest is an optional manifest of a project template.
type TemplateManifest struct {
	// Description is a template description.
	Description string
	// FollowUpMessage is shown after the project is created. It may contain
	// placeholders.
	FollowUpMessage string `mapstructure:"follow-up-message"`
	// Executables is a list of project-relative files to make executable.
	Executables []string
}

func validateManifest(manifest *TemplateManifest) error {
	for _, executable := range manifest.Executables {
		if !fs.ValidPath(executable) || executable == "." {
			return fmt.Errorf("executable path %q must be relative to the template root",
				executable)
		}
	}
	return nil
}

// LoadManifest loads template manifest from manifestPath of fsys.
func LoadManifest(fsys fs.FS, manifestPath string) (TemplateManifest, error) {
	var templateManifest TemplateManifest
	content, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		return templateManifest, fmt.Errorf("failed to get access to manifest file: %w", err)
	}

	rawManifest, err := util.DecodeYAML(content)
	if err != nil {
		return templateManifest, err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &templateManifest,
		ErrorUnused: true,
	})
	if err != nil {
		return templateManifest, err
	}
	if err := decoder.Decode(rawManifest); err != nil {
		return TemplateManifest{}, fmt.Errorf("failed to decode template manifest: %s", err)
	}

	if err := validateManifest(&templateManifest); err != nil {
		return TemplateManifest{}, fmt.Errorf("invalid manifest format: %s", err)
	}

	return templateManifest, nil
}

// loadOptionalManifest loads the default manifest if the template has one.
func loadOptionalManifest(fsys fs.FS) (TemplateManifest, bool, error) {
	manifest, err := LoadManifest(fsys, DefaultManifestName)
	if errors.Is(err, fs.ErrNotExist) {
		return manifest, false, nil
	}
	if err != nil {
		return manifest, false, err
	}
	return manifest, true, nil
}

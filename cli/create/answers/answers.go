// Package answers contains the project answers collected from a user.
package answers

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Version is a dependency release channel.
type Version string

const (
	VersionLatest Version = "latest"
	VersionBeta   Version = "beta"
)

// Versions contains all supported release channels in prompt order.
var Versions = []Version{VersionLatest, VersionBeta}

// ProjectType is a project language flavor. It also selects a template set.
type ProjectType string

const (
	TypeJavascript       ProjectType = "javascript"
	TypeTypescript       ProjectType = "typescript"
	TypeTypescriptEslint ProjectType = "typescript-eslint"
)

// ProjectTypes contains all supported project flavors in prompt order.
var ProjectTypes = []ProjectType{TypeJavascript, TypeTypescript, TypeTypescriptEslint}

// PackageManager is a node package manager used to install dependencies.
type PackageManager string

const (
	PackageManagerNpm  PackageManager = "npm"
	PackageManagerYarn PackageManager = "yarn"
	PackageManagerPnpm PackageManager = "pnpm"
)

// PackageManagers contains all supported package managers in prompt order.
var PackageManagers = []PackageManager{PackageManagerNpm, PackageManagerYarn,
	PackageManagerPnpm}

// ErrInvalidName is returned for a project name with forbidden characters.
var ErrInvalidName = errors.New("project name must be lowercase and contain only " +
	"letters, numbers, and dashes")

var nameRe = regexp.MustCompile(`^[a-z0-9-]+$`)

// Answers is a finalized set of user responses.
type Answers struct {
	// Name is a project name. It is also a destination directory name.
	Name string `yaml:"name"`
	// Version is a release channel of versioned dependencies.
	Version Version `yaml:"version"`
	// Type is a project flavor.
	Type ProjectType `yaml:"type"`
	// PackageManager is used to install dependencies.
	PackageManager PackageManager `yaml:"packageManager"`
}

// ValidateName checks the project name.
func ValidateName(name string) error {
	if !nameRe.MatchString(name) {
		return ErrInvalidName
	}
	return nil
}

// ParseVersion converts s to a release channel.
func ParseVersion(s string) (Version, error) {
	return parseEnum(s, Versions, "version")
}

// ParseProjectType converts s to a project flavor.
func ParseProjectType(s string) (ProjectType, error) {
	return parseEnum(s, ProjectTypes, "project type")
}

// ParsePackageManager converts s to a package manager.
func ParsePackageManager(s string) (PackageManager, error) {
	return parseEnum(s, PackageManagers, "package manager")
}

func parseEnum[T ~string](s string, allowed []T, what string) (T, error) {
	return checkEnum(T(strings.ToLower(strings.TrimSpace(s))), allowed, what, s)
}

// checkEnum accepts only the canonical spelling of an allowed value.
func checkEnum[T ~string](value T, allowed []T, what, raw string) (T, error) {
	if slices.Contains(allowed, value) {
		return value, nil
	}
	names := make([]string, 0, len(allowed))
	for _, a := range allowed {
		names = append(names, string(a))
	}
	return "", fmt.Errorf("unknown %s %q, expected one of: %s", what, raw,
		strings.Join(names, ", "))
}

// Validate checks all the fields of the answers.
func (a Answers) Validate() error {
	if err := ValidateName(a.Name); err != nil {
		return fmt.Errorf("invalid name %q: %w", a.Name, err)
	}
	if _, err := checkEnum(a.Version, Versions, "version", string(a.Version)); err != nil {
		return err
	}
	if _, err := checkEnum(a.Type, ProjectTypes, "project type", string(a.Type)); err != nil {
		return err
	}
	if _, err := checkEnum(a.PackageManager, PackageManagers, "package manager",
		string(a.PackageManager)); err != nil {
		return err
	}
	return nil
}

// ValidateSet checks the fields that are set. Empty fields are not checked.
func (a Answers) ValidateSet() error {
	if a.Name != "" {
		if err := ValidateName(a.Name); err != nil {
			return fmt.Errorf("invalid name %q: %w", a.Name, err)
		}
	}
	if a.Version != "" {
		if _, err := checkEnum(a.Version, Versions, "version", string(a.Version)); err != nil {
			return err
		}
	}
	if a.Type != "" {
		if _, err := checkEnum(a.Type, ProjectTypes, "project type", string(a.Type)); err != nil {
			return err
		}
	}
	if a.PackageManager != "" {
		if _, err := checkEnum(a.PackageManager, PackageManagers, "package manager",
			string(a.PackageManager)); err != nil {
			return err
		}
	}
	return nil
}

// Normalize returns a copy of a with the choice fields trimmed and lowercased.
func (a Answers) Normalize() Answers {
	a.Version = Version(strings.ToLower(strings.TrimSpace(string(a.Version))))
	a.Type = ProjectType(strings.ToLower(strings.TrimSpace(string(a.Type))))
	a.PackageManager = PackageManager(strings.ToLower(strings.TrimSpace(
		string(a.PackageManager))))
	return a
}

// IsComplete returns true if every field is set.
func (a Answers) IsComplete() bool {
	return a.Name != "" && a.Version != "" && a.Type != "" && a.PackageManager != ""
}

// Merge returns a copy of a with empty fields taken from other.
func (a Answers) Merge(other Answers) Answers {
	if a.Name == "" {
		a.Name = other.Name
	}
	if a.Version == "" {
		a.Version = other.Version
	}
	if a.Type == "" {
		a.Type = other.Type
	}
	if a.PackageManager == "" {
		a.PackageManager = other.PackageManager
	}
	return a
}

// Vars returns the answers as template variables.
func (a Answers) Vars() map[string]string {
	return map[string]string{
		"name":           a.Name,
		"version":        string(a.Version),
		"type":           string(a.Type),
		"packageManager": string(a.PackageManager),
	}
}

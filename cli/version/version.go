package version

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	goVersion "github.com/hashicorp/go-version"
)

const (
	defaultVersion  = "1.0.0"
	cliVersionTitle = "create-serenity"
)

// Get the value of this variables at build time.
// See magefile for more details.
var (
	gitTag       string
	gitCommit    string
	versionLabel string
)

// normalize returns version tag as dot-separated segments: "v1.2" -> "1.2.0".
func normalize(tag string) string {
	normalizedVersion, err := goVersion.NewVersion(tag)
	if err != nil {
		return tag
	}
	var versionStrNumbers []string
	for _, num := range normalizedVersion.Segments() {
		versionStrNumbers = append(versionStrNumbers, strconv.Itoa(num))
	}
	version := strings.Join(versionStrNumbers, ".")
	if prerelease := normalizedVersion.Prerelease(); prerelease != "" {
		version += "-" + prerelease
	}
	return version
}

// GetVersion return string with create-serenity version info.
func GetVersion(showShort bool, needCommit bool) string {
	version := defaultVersion
	if gitTag != "" {
		version = normalize(gitTag)
	}
	if versionLabel != "" {
		version = fmt.Sprintf("%s/%s", version, versionLabel)
	}

	if showShort || needCommit {
		if needCommit && gitCommit != "" {
			return fmt.Sprintf("%s.%s", version, gitCommit)
		}
		return version
	}

	commit := gitCommit
	if commit == "" {
		commit = "<unknown>"
	}
	return fmt.Sprintf("%s version %s, %s/%s. commit: %s",
		cliVersionTitle, version, runtime.GOOS, runtime.GOARCH, commit)
}

package configure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/serenityjs/create-serenity/cli/cmdcontext"
	"github.com/serenityjs/create-serenity/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(oldWd); err != nil {
			t.Fatal(err)
		}
	})
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	configPath := filepath.Join(dir, ConfigName)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))
	return configPath
}

func TestAdjustPathWithConfigLocation(t *testing.T) {
	path, err := adjustPathWithConfigLocation("", "/config/dir", "templates")
	require.NoError(t, err)
	assert.Equal(t, "/config/dir/templates", path)

	path, err = adjustPathWithConfigLocation("/templates", "/config/dir", "templates")
	require.NoError(t, err)
	assert.Equal(t, "/templates", path)

	path, err = adjustPathWithConfigLocation("./templates", "/config/dir", "")
	require.NoError(t, err)
	assert.Equal(t, "/config/dir/templates", path)

	path, err = adjustPathWithConfigLocation("", "/config/dir", "")
	require.NoError(t, err)
	assert.Equal(t, "", path)
}

func TestGetCliOptsDefaults(t *testing.T) {
	cliOpts, configPath, err := GetCliOpts("")
	require.NoError(t, err)
	assert.Empty(t, configPath)
	assert.Empty(t, cliOpts.Templates)
	assert.Equal(t, config.NewSingleOrArray(DefaultVersionedDependencies...),
		cliOpts.Dependencies.Versioned)
	assert.Equal(t, config.FieldStringArrayType{"@serenityjs/binarystream"},
		cliOpts.Dependencies.Latest)
	assert.Equal(t, "Initial commit 💜", cliOpts.Git.CommitMessage)
	assert.Equal(t, &config.LogOpts{MaxSize: 10, MaxAge: 7, MaxBackups: 3}, cliOpts.Log)
}

func TestGetCliOpts(t *testing.T) {
	configDir := t.TempDir()
	configPath := writeConfig(t, configDir, `templates:
  - path: ./my_templates
  - path: /opt/templates
dependencies:
  versioned: "@serenityjs/core"
  latest:
    - "@serenityjs/binarystream"
    - "@serenityjs/raknet"
git:
  commit_message: "chore: scaffold"
log:
  file: logs/create.log
  maxsize: 1
`)

	cliOpts, foundPath, err := GetCliOpts(configPath)
	require.NoError(t, err)
	assert.Equal(t, configPath, foundPath)
	assert.Equal(t, []config.TemplateOpts{
		{Path: filepath.Join(configDir, "my_templates")},
		{Path: "/opt/templates"},
	}, cliOpts.Templates)
	assert.Equal(t, config.FieldStringArrayType{"@serenityjs/core"},
		cliOpts.Dependencies.Versioned)
	assert.Equal(t, config.FieldStringArrayType{"@serenityjs/binarystream",
		"@serenityjs/raknet"}, cliOpts.Dependencies.Latest)
	assert.Equal(t, "chore: scaffold", cliOpts.Git.CommitMessage)
	assert.Equal(t, &config.LogOpts{
		File:       filepath.Join(configDir, "logs", "create.log"),
		MaxSize:    1,
		MaxAge:     7,
		MaxBackups: 3,
	}, cliOpts.Log)
}

func TestGetCliOptsEmptyGitSection(t *testing.T) {
	configPath := writeConfig(t, t.TempDir(), "git: {}\n")

	cliOpts, _, err := GetCliOpts(configPath)
	require.NoError(t, err)
	assert.Equal(t, DefaultCommitMessage, cliOpts.Git.CommitMessage)
	assert.NotEmpty(t, cliOpts.Dependencies.Versioned)
}

func TestGetCliOptsErrors(t *testing.T) {
	configDir := t.TempDir()

	_, _, err := GetCliOpts(filepath.Join(configDir, "missing.yaml"))
	assert.ErrorContains(t, err, "is not found")

	configPath := writeConfig(t, configDir, "unknown_section: 1\n")
	_, _, err = GetCliOpts(configPath)
	assert.ErrorContains(t, err, "failed to parse create-serenity configuration")

	configPath = writeConfig(t, configDir, "templates: [\n")
	_, _, err = GetCliOpts(configPath)
	assert.ErrorContains(t, err, "failed to parse create-serenity configuration")

	_, _, err = GetCliOpts(filepath.Join(configDir, "config.json"))
	assert.ErrorContains(t, err, "has no .yaml/.yml extension")
}

func TestCli(t *testing.T) {
	workDir := t.TempDir()
	xdgDir := t.TempDir()
	chdir(t, workDir)
	t.Setenv("XDG_CONFIG_HOME", xdgDir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	// No config.
	cmdCtx := cmdcontext.CmdCtx{}
	require.NoError(t, Cli(&cmdCtx))
	assert.Empty(t, cmdCtx.Cli.ConfigPath)
	expectedWorkDir, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, expectedWorkDir, cmdCtx.Cli.ConfigDir)

	// Config in XDG config directory.
	userConfigDir := filepath.Join(xdgDir, "create-serenity")
	require.NoError(t, os.MkdirAll(userConfigDir, 0o755))
	userConfig := writeConfig(t, userConfigDir, "")
	cmdCtx = cmdcontext.CmdCtx{}
	require.NoError(t, Cli(&cmdCtx))
	assert.Equal(t, userConfig, cmdCtx.Cli.ConfigPath)
	assert.Equal(t, userConfigDir, cmdCtx.Cli.ConfigDir)

	// Config in the working directory takes precedence.
	writeConfig(t, workDir, "")
	cmdCtx = cmdcontext.CmdCtx{}
	require.NoError(t, Cli(&cmdCtx))
	localConfig, err := filepath.Abs(ConfigName)
	require.NoError(t, err)
	assert.Equal(t, localConfig, cmdCtx.Cli.ConfigPath)

	// Explicit path.
	cmdCtx = cmdcontext.CmdCtx{Cli: cmdcontext.CliCtx{ConfigPath: userConfig}}
	require.NoError(t, Cli(&cmdCtx))
	assert.Equal(t, userConfig, cmdCtx.Cli.ConfigPath)

	cmdCtx = cmdcontext.CmdCtx{Cli: cmdcontext.CliCtx{
		ConfigPath: filepath.Join(workDir, "missing.yaml"),
	}}
	assert.ErrorContains(t, Cli(&cmdCtx), "specified path to the configuration file is invalid")
}

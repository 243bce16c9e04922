package configure

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/adrg/xdg"
	"github.com/apex/log"
	"github.com/mitchellh/mapstructure"
	"github.com/serenityjs/create-serenity/cli/cmdcontext"
	"github.com/serenityjs/create-serenity/cli/config"
	"github.com/serenityjs/create-serenity/cli/util"
)

const (
	ConfigName = "create-serenity.yaml"
	// configDirName is a name of the config directory in $XDG_CONFIG_HOME.
	configDirName = "create-serenity"

	// DefaultCommitMessage is a message of the initial project commit.
	DefaultCommitMessage = "Initial commit 💜"
)

const (
	defaultLogMaxSize    = 10
	defaultLogMaxAge     = 7
	defaultLogMaxBackups = 3
)

// DefaultVersionedDependencies are installed at the selected release channel.
var DefaultVersionedDependencies = []string{
	"@serenityjs/block",
	"@serenityjs/command",
	"@serenityjs/data",
	"@serenityjs/emitter",
	"@serenityjs/entity",
	"@serenityjs/item",
	"@serenityjs/logger",
	"@serenityjs/nbt",
	"@serenityjs/network",
	"@serenityjs/plugins",
	"@serenityjs/protocol",
	"@serenityjs/raknet",
	"@serenityjs/serenity",
	"@serenityjs/server-ui",
	"@serenityjs/world",
}

// DefaultLatestDependencies are always installed at the latest version.
var DefaultLatestDependencies = []string{
	"@serenityjs/binarystream",
}

// GetDefaultCliOpts returns `CliOpts` filled with default values.
func GetDefaultCliOpts() *config.CliOpts {
	return &config.CliOpts{
		Templates: []config.TemplateOpts{},
		Dependencies: &config.DependenciesOpts{
			Versioned: config.NewSingleOrArray(DefaultVersionedDependencies...),
			Latest:    config.NewSingleOrArray(DefaultLatestDependencies...),
		},
		Git: &config.GitOpts{
			CommitMessage: DefaultCommitMessage,
		},
		Log: &config.LogOpts{
			MaxSize:    defaultLogMaxSize,
			MaxAge:     defaultLogMaxAge,
			MaxBackups: defaultLogMaxBackups,
		},
	}
}

// adjustPathWithConfigLocation adjust provided filePath with configDir.
// Absolute filePath is returned as is. Relative filePath is calculated relative to configDir.
// If filePath is empty, defaultDirName is appended to configDir.
func adjustPathWithConfigLocation(filePath, configDir string,
	defaultDirName string,
) (string, error) {
	if filePath == "" {
		if defaultDirName == "" {
			return "", nil
		}
		return filepath.Abs(filepath.Join(configDir, defaultDirName))
	}
	if filepath.IsAbs(filePath) {
		return filePath, nil
	}
	return filepath.Abs(filepath.Join(configDir, filePath))
}

// updateCliOpts resolves all paths in config relative to specified location, and
// sets uninitialized values to defaults.
func updateCliOpts(cliOpts *config.CliOpts, configDir string) error {
	var err error
	defaults := GetDefaultCliOpts()

	for i := range cliOpts.Templates {
		if cliOpts.Templates[i].Path, err = adjustPathWithConfigLocation(
			cliOpts.Templates[i].Path, configDir, "."); err != nil {
			return err
		}
	}

	if cliOpts.Dependencies == nil {
		cliOpts.Dependencies = defaults.Dependencies
	}
	if cliOpts.Git == nil {
		cliOpts.Git = defaults.Git
	}
	if cliOpts.Git.CommitMessage == "" {
		cliOpts.Git.CommitMessage = DefaultCommitMessage
	}

	if cliOpts.Log == nil {
		cliOpts.Log = defaults.Log
	}
	for _, opt := range []struct {
		value        *int
		defaultValue int
	}{
		{&cliOpts.Log.MaxSize, defaultLogMaxSize},
		{&cliOpts.Log.MaxAge, defaultLogMaxAge},
		{&cliOpts.Log.MaxBackups, defaultLogMaxBackups},
	} {
		if *opt.value <= 0 {
			*opt.value = opt.defaultValue
		}
	}
	if cliOpts.Log.File, err = adjustPathWithConfigLocation(cliOpts.Log.File,
		configDir, ""); err != nil {
		return err
	}

	return nil
}

func decodeStringAsArrayField(from, to reflect.Type, value interface{}) (
	interface{}, error,
) {
	if to != reflect.TypeOf(config.FieldStringArrayType{}) || from.Kind() != reflect.String {
		return value, nil
	}
	return []string{value.(string)}, nil
}

func decodeConfig(input map[string]any, cfg *config.CliOpts) error {
	decoderConfig := mapstructure.DecoderConfig{
		Result:      cfg,
		ErrorUnused: true,
		DecodeHook:  mapstructure.ComposeDecodeHookFunc(decodeStringAsArrayField),
	}
	decoder, err := mapstructure.NewDecoder(&decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// GetCliOpts returns create-serenity options from the config file
// located at path configurePath. Defaults are returned if configurePath is empty.
func GetCliOpts(configurePath string) (*config.CliOpts, string, error) {
	cfg := &config.CliOpts{}
	configPath := ""
	if configurePath != "" {
		var err error
		if configPath, err = util.GetYamlFileName(configurePath, true); err != nil {
			if os.IsNotExist(err) {
				return nil, "", fmt.Errorf("configuration file %q is not found", configurePath)
			}
			return nil, "", fmt.Errorf("failed to get access to configuration file: %s", err)
		}
		if configPath, err = filepath.Abs(configPath); err != nil {
			return nil, "", fmt.Errorf("cannot determine config file path: %s", err)
		}

		rawConfigOpts, err := util.ParseYAML(configPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to parse create-serenity configuration: %s", err)
		}
		if err := decodeConfig(rawConfigOpts, cfg); err != nil {
			return nil, "", fmt.Errorf("failed to parse create-serenity configuration: %s", err)
		}
	}

	var configDir string
	var err error
	if configPath == "" {
		if configDir, err = os.Getwd(); err != nil {
			return cfg, configPath, err
		}
	} else if configDir, err = filepath.Abs(filepath.Dir(configPath)); err != nil {
		return cfg, configPath, err
	}

	if err = updateCliOpts(cfg, configDir); err != nil {
		return cfg, "", err
	}

	return cfg, configPath, nil
}

// getConfigPath looks for the create-serenity.yaml configuration file in the
// current directory and then in $XDG_CONFIG_HOME/create-serenity.
// Empty path is returned if there is no config.
func getConfigPath(configName string) (string, error) {
	curDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to detect current directory: %s", err)
	}

	for _, dir := range []string{curDir, filepath.Join(xdg.ConfigHome, configDirName)} {
		configPath, err := util.GetYamlFileName(filepath.Join(dir, configName), true)
		if err == nil {
			return configPath, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}
	}

	return "", nil
}

// Cli performs initial CLI configuration.
func Cli(cmdCtx *cmdcontext.CmdCtx) error {
	if cmdCtx.Cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	var err error
	if cmdCtx.Cli.ConfigPath != "" {
		if _, err = os.Stat(cmdCtx.Cli.ConfigPath); err != nil {
			return fmt.Errorf("specified path to the configuration file is invalid: %s", err)
		}
	} else if cmdCtx.Cli.ConfigPath, err = getConfigPath(ConfigName); err != nil {
		return fmt.Errorf("failed to get create-serenity config: %s", err)
	}

	if cmdCtx.Cli.ConfigPath == "" {
		if cmdCtx.Cli.ConfigDir, err = os.Getwd(); err != nil {
			return err
		}
		return nil
	}

	if cmdCtx.Cli.ConfigPath, err = filepath.Abs(cmdCtx.Cli.ConfigPath); err != nil {
		return fmt.Errorf("failed to get absolute path to the configuration file: %s", err)
	}
	cmdCtx.Cli.ConfigDir = filepath.Dir(cmdCtx.Cli.ConfigPath)
	log.Debugf("Using configuration file %q", cmdCtx.Cli.ConfigPath)

	return nil
}

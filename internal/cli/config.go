package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jpl-au/terminfo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName        = "tilookup"
	configFileName = "config"
	configFileExt  = "toml"
	envPrefix      = "TILOOKUP"
)

// Settings is the effective CLI configuration.
type Settings struct {
	Terminfo     string `mapstructure:"terminfo"`
	TerminfoDirs string `mapstructure:"terminfo_dirs"`
	Fingerprint  string `mapstructure:"fingerprint"`
	Verbose      bool   `mapstructure:"verbose"`
	Check        bool   `mapstructure:"check"`

	File string `mapstructure:"-"` // Config file read, if any
}

var fingerprintAlgs = map[string]int{
	"xxh3":    terminfo.AlgXXHash3,
	"fnv1a":   terminfo.AlgFNV1a,
	"blake2b": terminfo.AlgBlake2b,
}

// configDir returns $XDG_CONFIG_HOME/tilookup, defaulting to
// $HOME/.config/tilookup. It is empty when neither is set.
func configDir(lookupEnv func(string) (string, bool)) string {
	if dir, ok := lookupEnv("XDG_CONFIG_HOME"); ok && dir != "" {
		return filepath.Join(dir, appName)
	}
	if home, ok := lookupEnv("HOME"); ok && home != "" {
		return filepath.Join(home, ".config", appName)
	}
	return ""
}

// loadSettings reads the config file, if any, over the build defaults.
// TILOOKUP_* environment variables override both. An explicit path that
// does not exist is an error; a missing default file is not.
func loadSettings(path string, lookupEnv func(string) (string, bool)) (Settings, error) {
	v := viper.New()

	defaults := terminfo.DefaultConfig()
	v.SetDefault("terminfo", defaults.Terminfo)
	v.SetDefault("terminfo_dirs", defaults.TerminfoDirs)
	v.SetDefault("fingerprint", "xxh3")
	v.SetDefault("verbose", false)
	v.SetDefault("check", false)

	for _, key := range []string{"terminfo", "terminfo_dirs", "fingerprint", "verbose", "check"} {
		env := envPrefix + "_" + strings.ToUpper(key)
		if val, ok := lookupEnv(env); ok {
			v.Set(key, val)
		}
	}

	v.SetConfigType(configFileExt)
	dir := configDir(lookupEnv)
	switch {
	case path != "":
		v.SetConfigFile(path)
	case dir != "":
		v.SetConfigName(configFileName)
		v.AddConfigPath(dir)
	}

	if path != "" || dir != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if path != "" || !errors.As(err, &notFound) {
				return Settings{}, fmt.Errorf("load config: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("parse config: %w", err)
	}
	if _, ok := fingerprintAlgs[s.Fingerprint]; !ok {
		return Settings{}, fmt.Errorf("config: unknown fingerprint algorithm %q (want xxh3, fnv1a or blake2b)", s.Fingerprint)
	}
	s.File = v.ConfigFileUsed()
	return s, nil
}

func newConfigCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			s := app.settings
			file := s.File
			if file == "" {
				file = "(none)"
			}
			fmt.Fprintln(w, titleStyle.Render("configuration"))
			field(w, "file", file)
			field(w, "terminfo", s.Terminfo)
			field(w, "terminfo_dirs", s.TerminfoDirs)
			field(w, "fingerprint", s.Fingerprint)
			field(w, "check", fmt.Sprint(s.Check))
			for _, key := range []string{terminfo.EnvTerminfo, terminfo.EnvHome, terminfo.EnvTerminfoDirs, terminfo.EnvTerm} {
				val, ok := app.lookupEnv(key)
				if !ok {
					val = "(unset)"
				}
				field(w, "$"+key, val)
			}
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lagersmit/aishub-api-public/pkg/aishub"
)

// defaultProfileName is looked up in the home directory when --config is
// not given.
const defaultProfileName = ".aishub.yaml"

// options carries the persistent flag values shared by all subcommands.
type options struct {
	configPath string
	username   string
	format     int
	output     string
	compress   int
	endpoint   string
	debug      bool
}

// Profile is the YAML configuration file schema. Every field is optional;
// flags override file values, file values override defaults.
type Profile struct {
	Username string `yaml:"username"`
	Format   *int   `yaml:"format"`
	Output   string `yaml:"output"`
	Compress *int   `yaml:"compress"`
	URL      string `yaml:"url"`
}

// LoadProfile reads and parses a YAML profile.
func LoadProfile(path string) (Profile, error) {
	var profile Profile

	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("read profile %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("parse profile %s: %w", path, err)
	}

	return profile, nil
}

// resolve merges defaults, the profile file and explicitly set flags into
// the client configuration and endpoint, in that precedence order.
func (o *options) resolve(cmd *cobra.Command) (aishub.Config, string, error) {
	cfg := aishub.NewConfig("")
	endpoint := aishub.DefaultEndpoint

	profile, ok, err := o.loadProfile()
	if err != nil {
		return cfg, "", err
	}
	if ok {
		if profile.Username != "" {
			cfg.Username = profile.Username
		}
		if profile.Format != nil {
			cfg.Format = aishub.Format(*profile.Format)
		}
		if profile.Output != "" {
			cfg.Output = aishub.Output(profile.Output)
		}
		if profile.Compress != nil {
			cfg.Compress = aishub.Compress(*profile.Compress)
		}
		if profile.URL != "" {
			endpoint = profile.URL
		}
	}

	flags := cmd.Flags()
	if flags.Changed("username") {
		cfg.Username = o.username
	}
	if flags.Changed("format") {
		cfg.Format = aishub.Format(o.format)
	}
	if flags.Changed("output") {
		cfg.Output = aishub.Output(o.output)
	}
	if flags.Changed("compress") {
		cfg.Compress = aishub.Compress(o.compress)
	}
	if flags.Changed("url") {
		endpoint = o.endpoint
	}

	return cfg, endpoint, nil
}

// loadProfile loads the profile named by --config, or the one in the home
// directory if present. The second return reports whether a profile was
// loaded.
func (o *options) loadProfile() (Profile, bool, error) {
	path := o.configPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Profile{}, false, nil
		}
		path = filepath.Join(home, defaultProfileName)
		if _, err := os.Stat(path); err != nil {
			return Profile{}, false, nil
		}
	}

	profile, err := LoadProfile(path)
	if err != nil {
		return Profile{}, false, err
	}
	return profile, true, nil
}

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Messages is the user-facing text of the screen.
type Messages struct {
	InfoTitle   string `yaml:"info_title"`
	ErrorTitle  string `yaml:"error_title"`
	EmptyInput  string `yaml:"empty_input"`
	NotFound    string `yaml:"not_found"`
	FetchFailed string `yaml:"fetch_failed"`

	NoProfile         string `yaml:"no_profile"`
	RepositoriesLabel string `yaml:"repositories_label"`
	FollowersLabel    string `yaml:"followers_label"`
	FollowingLabel    string `yaml:"following_label"`
	InputPlaceholder  string `yaml:"input_placeholder"`
	SearchButton      string `yaml:"search_button"`
}

// DefaultMessages returns the built-in English text.
func DefaultMessages() Messages {
	return Messages{
		InfoTitle:         "Info",
		ErrorTitle:        "Error",
		EmptyInput:        "enter a username before searching",
		NotFound:          "user not found",
		FetchFailed:       "failed to fetch profile",
		NoProfile:         "no profile found",
		RepositoriesLabel: "Repositories",
		FollowersLabel:    "Followers",
		FollowingLabel:    "Following",
		InputPlaceholder:  "Enter a username",
		SearchButton:      "Search",
	}
}

// YAMLConfig represents the structure of the config.yaml file.
// Text and branding are easier to manage in YAML than env vars.
type YAMLConfig struct {
	Site     SiteConfig   `yaml:"site"`
	Lookup   LookupConfig `yaml:"lookup"`
	Messages Messages     `yaml:"messages"`
}

// SiteConfig overrides branding.
type SiteConfig struct {
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
}

// LookupConfig overrides lookup behaviour.
type LookupConfig struct {
	Sequenced *bool `yaml:"sequenced,omitempty"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return LoadYAMLConfigFrom(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadYAMLConfigFrom loads the YAML configuration file at path.
func LoadYAMLConfigFrom(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Apply copies every non-empty value of the overlay onto cfg.
func (y *YAMLConfig) Apply(cfg *Config) {
	if y == nil {
		return
	}
	setIfSet(&cfg.SiteTitle, y.Site.Title)
	setIfSet(&cfg.SiteTagline, y.Site.Tagline)
	if y.Lookup.Sequenced != nil {
		cfg.SequencedLookups = *y.Lookup.Sequenced
	}

	m := &cfg.Messages
	setIfSet(&m.InfoTitle, y.Messages.InfoTitle)
	setIfSet(&m.ErrorTitle, y.Messages.ErrorTitle)
	setIfSet(&m.EmptyInput, y.Messages.EmptyInput)
	setIfSet(&m.NotFound, y.Messages.NotFound)
	setIfSet(&m.FetchFailed, y.Messages.FetchFailed)
	setIfSet(&m.NoProfile, y.Messages.NoProfile)
	setIfSet(&m.RepositoriesLabel, y.Messages.RepositoriesLabel)
	setIfSet(&m.FollowersLabel, y.Messages.FollowersLabel)
	setIfSet(&m.FollowingLabel, y.Messages.FollowingLabel)
	setIfSet(&m.InputPlaceholder, y.Messages.InputPlaceholder)
	setIfSet(&m.SearchButton, y.Messages.SearchButton)
}

func setIfSet(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/tuning"
	"gopkg.in/yaml.v3"
)

var ErrUnknownProfile = errors.New("unknown constraint profile")

var validate = validator.New()

type Config struct {
	ListenAddr     string             `yaml:"listen_addr" validate:"required"`
	IndexDir       string             `yaml:"index_dir" validate:"required"`
	DefaultTuning  string             `yaml:"default_tuning" validate:"required"`
	DefaultProfile string             `yaml:"default_profile" validate:"required"`
	Parallel       bool               `yaml:"parallel"`
	Profiles       map[string]Profile `yaml:"profiles" validate:"required,dive"`
	Cache          CacheConfig        `yaml:"cache"`
}

// Profile is a constraint profile without a tuning; tunings are picked per
// search.
type Profile struct {
	MaxFingers        int  `yaml:"max_fingers" validate:"gte=0"`
	MaxFretSpan       int  `yaml:"max_fret_span" validate:"gte=0"`
	AllowBarres       bool `yaml:"allow_barres"`
	AllowOpenStrings  bool `yaml:"allow_open_strings"`
	AllowMutedStrings bool `yaml:"allow_muted_strings"`
	RequireRootInBass bool `yaml:"require_root_in_bass"`
}

type CacheConfig struct {
	MemoryEntries  int           `yaml:"memory_entries" validate:"gte=0"`
	DynamoEndpoint string        `yaml:"dynamo_endpoint"`
	Region         string        `yaml:"region" validate:"required_with=DynamoEndpoint"`
	Table          string        `yaml:"table" validate:"required_with=DynamoEndpoint"`
	TTL            time.Duration `yaml:"ttl" validate:"gte=0"`
}

func profileFrom(c model.Constraints) Profile {
	return Profile{
		MaxFingers:        c.MaxFingers,
		MaxFretSpan:       c.MaxFretSpan,
		AllowBarres:       c.AllowBarres,
		AllowOpenStrings:  c.AllowOpenStrings,
		AllowMutedStrings: c.AllowMutedStrings,
		RequireRootInBass: c.RequireRootInBass,
	}
}

func Default() Config {
	rootInBass := model.DefaultConstraints(nil)
	rootInBass.RequireRootInBass = true
	fullVoicing := model.DefaultConstraints(nil)
	fullVoicing.AllowMutedStrings = false

	return Config{
		ListenAddr:     ":8080",
		IndexDir:       "./out",
		DefaultTuning:  "standard",
		DefaultProfile: "default",
		Profiles: map[string]Profile{
			"default":      profileFrom(model.DefaultConstraints(nil)),
			"root-in-bass": profileFrom(rootInBass),
			"full":         profileFrom(fullVoicing),
		},
		Cache: CacheConfig{
			MemoryEntries: 1024,
			Region:        "us-east-1",
			Table:         "fretdex-shapes",
			TTL:           7 * 24 * time.Hour,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error when
// optional is set, so a bare checkout runs without any config.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
		if err := cfg.decodeProfiles(data); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
	case optional && errors.Is(err, os.ErrNotExist):
	default:
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// decodeProfiles decodes each profile over its default, or over the
// default constraints for a new name, so a profile only lists what it
// changes.
func (c *Config) decodeProfiles(data []byte) error {
	var raw struct {
		Profiles map[string]yaml.Node `yaml:"profiles"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	defaults := Default().Profiles
	for name, node := range raw.Profiles {
		p, ok := defaults[name]
		if !ok {
			p = profileFrom(model.DefaultConstraints(nil))
		}
		if err := node.Decode(&p); err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
		c.Profiles[name] = p
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(constants.EnvIndexPath); v != "" {
		c.IndexDir = v
	}
	if v := os.Getenv(constants.EnvListenAddr); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv(constants.EnvDynamoEndpoint); v != "" {
		c.Cache.DynamoEndpoint = v
	}
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, ok := c.Profiles[c.DefaultProfile]; !ok {
		return fmt.Errorf("invalid config: default_profile: %w: %q", ErrUnknownProfile, c.DefaultProfile)
	}
	if _, err := tuning.Parse(c.DefaultTuning); err != nil {
		return fmt.Errorf("invalid config: default_tuning: %w", err)
	}
	return nil
}

// Constraints resolves a named profile (the default one for "") on t.
func (c Config) Constraints(profile string, t model.Tuning) (model.Constraints, error) {
	if profile == "" {
		profile = c.DefaultProfile
	}
	p, ok := c.Profiles[profile]
	if !ok {
		return model.Constraints{}, fmt.Errorf("%w: %q", ErrUnknownProfile, profile)
	}
	return model.Constraints{
		MaxFingers:        p.MaxFingers,
		MaxFretSpan:       p.MaxFretSpan,
		AllowBarres:       p.AllowBarres,
		AllowOpenStrings:  p.AllowOpenStrings,
		AllowMutedStrings: p.AllowMutedStrings,
		RequireRootInBass: p.RequireRootInBass,
		Tuning:            t,
	}, nil
}

// ValidateConstraints checks a fully resolved profile before it reaches the
// search.
func ValidateConstraints(c model.Constraints) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid constraints: %w", err)
	}
	return nil
}

func ValidatePatch(p *model.ConstraintsPatch) error {
	if p == nil {
		return nil
	}
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid constraints: %w", err)
	}
	return nil
}

// Package config loads the specsheet command configuration from defaults, an
// optional YAML file, SPECSHEET_* environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tsawler/specsheet/dimension"
	"github.com/tsawler/specsheet/model"
	"github.com/tsawler/specsheet/options"
	"github.com/tsawler/specsheet/reader"
	"github.com/tsawler/specsheet/techspec"
)

// ErrInvalid is returned when loaded values fail validation.
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix prefixes every environment variable, e.g. SPECSHEET_LOGGING_LEVEL.
const EnvPrefix = "SPECSHEET"

// Config holds top-level application configuration groups.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
	Reader  ReaderConfig  `mapstructure:"reader"`
	Parser  ParserConfig  `mapstructure:"parser"`
}

// OutputConfig controls where results are written.
type OutputConfig struct {
	Dir    string `mapstructure:"dir" validate:"required"`
	Stdout bool   `mapstructure:"stdout"`
	Indent int    `mapstructure:"indent" validate:"gte=0,lte=8"`
}

// LoggingConfig controls application logging behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn warning error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// ReaderConfig controls how PDFs are read.
type ReaderConfig struct {
	Text string `mapstructure:"text" validate:"oneof=plain layout"`
}

// ParserConfig holds the parser settings.
type ParserConfig struct {
	HeaderLabel string         `mapstructure:"header_label" validate:"required"`
	FamilyToken string         `mapstructure:"family_token" validate:"required"`
	Layout      string         `mapstructure:"layout" validate:"oneof=sections frequency"`
	Policies    PoliciesConfig `mapstructure:"policies"`
	Scoring     ScoringConfig  `mapstructure:"scoring"`
}

// PoliciesConfig selects a duplicate policy per entity type.
type PoliciesConfig struct {
	Dimensions      string `mapstructure:"dimensions" validate:"oneof=overwrite keep-first"`
	FrequencyBlocks string `mapstructure:"frequency_blocks" validate:"oneof=overwrite append keep-first"`
	VSDStages       string `mapstructure:"vsd_stages" validate:"oneof=overwrite keep-first"`
}

// ScoringConfig holds the options matrix scoring thresholds.
type ScoringConfig struct {
	MinRows        int     `mapstructure:"min_rows" validate:"gte=2"`
	MinCols        int     `mapstructure:"min_cols" validate:"gte=2"`
	MinLabelLength int     `mapstructure:"min_label_length" validate:"gte=0"`
	LabelRatio     float64 `mapstructure:"label_ratio" validate:"gte=0,lte=1"`
	MarkerRatio    float64 `mapstructure:"marker_ratio" validate:"gte=0,lte=1"`
	LabelPoints    int     `mapstructure:"label_points" validate:"gt=0"`
	MarkerPoints   int     `mapstructure:"marker_points" validate:"gt=0"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"out":          "output.dir",
	"stdout":       "output.stdout",
	"log-level":    "logging.level",
	"log-format":   "logging.format",
	"text":         "reader.text",
	"layout":       "parser.layout",
	"header":       "parser.header_label",
	"family-token": "parser.family_token",
}

// LoadOptions tells Load where to look.
type LoadOptions struct {
	// ConfigFile is an explicit file to read; it must exist.
	ConfigFile string

	// SearchPaths are searched for specsheet.yaml when ConfigFile is empty.
	// Nil means ".", "./configs" and "$HOME/.config/specsheet".
	SearchPaths []string

	// Flags, when set, override every other source for the flags in it
	// that were changed.
	Flags *pflag.FlagSet
}

// Load reads configuration from files, environment variables and flags.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("specsheet")
		v.SetConfigType("yaml")
		paths := opts.SearchPaths
		if paths == nil {
			paths = []string{".", "./configs", "$HOME/.config/specsheet"}
		}
		for _, p := range paths {
			v.AddConfigPath(p)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults establishes default values for configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("output.dir", "outputs")
	v.SetDefault("output.stdout", false)
	v.SetDefault("output.indent", 2)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("reader.text", reader.TextLayout.String())

	v.SetDefault("parser.header_label", techspec.DefaultHeaderLabel)
	v.SetDefault("parser.family_token", dimension.DefaultFamilyToken)
	v.SetDefault("parser.layout", string(techspec.LayoutSections))

	policies := model.DefaultPolicies()
	v.SetDefault("parser.policies.dimensions", string(policies.Dimensions))
	v.SetDefault("parser.policies.frequency_blocks", string(policies.FrequencyBlocks))
	v.SetDefault("parser.policies.vsd_stages", string(policies.VSDStages))

	scoring := options.DefaultScoreConfig()
	v.SetDefault("parser.scoring.min_rows", scoring.MinRows)
	v.SetDefault("parser.scoring.min_cols", scoring.MinCols)
	v.SetDefault("parser.scoring.min_label_length", scoring.MinLabelLength)
	v.SetDefault("parser.scoring.label_ratio", scoring.LabelRatio)
	v.SetDefault("parser.scoring.marker_ratio", scoring.MarkerRatio)
	v.SetDefault("parser.scoring.label_points", scoring.LabelPoints)
	v.SetDefault("parser.scoring.marker_points", scoring.MarkerPoints)
}

// Validate checks every field against its validate tag.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Policies returns the configured duplicate policies.
func (c *Config) Policies() model.Policies {
	return model.Policies{
		Dimensions:      model.DuplicatePolicy(c.Parser.Policies.Dimensions),
		FrequencyBlocks: model.DuplicatePolicy(c.Parser.Policies.FrequencyBlocks),
		VSDStages:       model.DuplicatePolicy(c.Parser.Policies.VSDStages),
	}
}

// ScoreConfig returns the configured scoring thresholds.
func (c *Config) ScoreConfig() options.ScoreConfig {
	s := c.Parser.Scoring
	return options.ScoreConfig{
		MinRows:        s.MinRows,
		MinCols:        s.MinCols,
		MinLabelLength: s.MinLabelLength,
		LabelRatio:     s.LabelRatio,
		MarkerRatio:    s.MarkerRatio,
		LabelPoints:    s.LabelPoints,
		MarkerPoints:   s.MarkerPoints,
	}
}

// TextSource returns the configured reader text source.
func (c *Config) TextSource() reader.TextSource {
	// validated by Validate
	src, _ := reader.ParseTextSource(c.Reader.Text)
	return src
}

// Layout returns the configured technical specification layout.
func (c *Config) Layout() techspec.Layout {
	return techspec.Layout(c.Parser.Layout)
}

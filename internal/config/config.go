package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/boxcli.log" validate:"required_if=Output file,required_if=Output both"`
}

// InputConfig locates the four tabular sources.
type InputConfig struct {
	Dir      string `yaml:"dir" envconfig:"DIR" default:"." validate:"required"`
	Fact     string `yaml:"fact" envconfig:"FACT" default:"Boxoffice_Fact.csv" validate:"required"`
	Director string `yaml:"director" envconfig:"DIRECTOR" default:"Director_dim.csv" validate:"required"`
	Genre    string `yaml:"genre" envconfig:"GENRE" default:"Genere_dim.csv" validate:"required"`
	Language string `yaml:"language" envconfig:"LANGUAGE" default:"Language_dim.csv" validate:"required"`
}

// OutputConfig controls exports and the snapshot store.
type OutputConfig struct {
	Dir          string `yaml:"dir" envconfig:"DIR" default:"output" validate:"required"`
	SnapshotPath string `yaml:"snapshot_path" envconfig:"SNAPSHOT_PATH" default:"boxoffice.db"`
}

// Load loads configuration from environment variables and config file.
// Environment variables take precedence over the file.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if _, err := os.Stat(ConfigFileName); err == nil {
		fileConfig, err := loadFromFile(ConfigFileName)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration used when loading fails or is
// skipped (tests, ad hoc runs).
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/boxcli.log",
		},
		Input: InputConfig{
			Dir:      DefaultInputDir,
			Fact:     DefaultFactFile,
			Director: DefaultDirectorFile,
			Genre:    DefaultGenreFile,
			Language: DefaultLanguageFile,
		},
		Output: OutputConfig{
			Dir:          DefaultOutputDir,
			SnapshotPath: "boxoffice.db",
		},
	}
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	def := Default()

	if envConfig.Logging.Level == def.Logging.Level && fileConfig.Logging.Level != "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Format == def.Logging.Format && fileConfig.Logging.Format != "" {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}
	if envConfig.Logging.Output == def.Logging.Output && fileConfig.Logging.Output != "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if envConfig.Logging.FilePath == def.Logging.FilePath && fileConfig.Logging.FilePath != "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}

	if envConfig.Input.Dir == def.Input.Dir && fileConfig.Input.Dir != "" {
		envConfig.Input.Dir = fileConfig.Input.Dir
	}
	if envConfig.Input.Fact == def.Input.Fact && fileConfig.Input.Fact != "" {
		envConfig.Input.Fact = fileConfig.Input.Fact
	}
	if envConfig.Input.Director == def.Input.Director && fileConfig.Input.Director != "" {
		envConfig.Input.Director = fileConfig.Input.Director
	}
	if envConfig.Input.Genre == def.Input.Genre && fileConfig.Input.Genre != "" {
		envConfig.Input.Genre = fileConfig.Input.Genre
	}
	if envConfig.Input.Language == def.Input.Language && fileConfig.Input.Language != "" {
		envConfig.Input.Language = fileConfig.Input.Language
	}

	if envConfig.Output.Dir == def.Output.Dir && fileConfig.Output.Dir != "" {
		envConfig.Output.Dir = fileConfig.Output.Dir
	}
	if envConfig.Output.SnapshotPath == def.Output.SnapshotPath && fileConfig.Output.SnapshotPath != "" {
		envConfig.Output.SnapshotPath = fileConfig.Output.SnapshotPath
	}

	return envConfig
}

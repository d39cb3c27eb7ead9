package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Ezark213/document-classifier-renamer/internal/rename"
	"github.com/Ezark213/document-classifier-renamer/internal/rules"
)

const (
	// Mode constants
	ModeCLI   = "cli"
	ModeStdio = "stdio"

	// Default values
	DefaultLocale      = rules.LocaleEN
	DefaultDateFormat  = rename.DateFormatYear
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB
)

// Config holds all configuration for the document classifier.
type Config struct {
	// Execution mode: "cli" sorts a directory once, "stdio" serves the
	// classifier as MCP tools over standard I/O.
	Mode string

	// Batch configuration
	InputDirectory  string
	OutputDirectory string

	// Classification configuration
	Locale          string
	CustomRulesPath string

	// Renaming configuration
	DateFormat string
	CustomDate string

	// Application configuration
	Version     string
	ServerName  string
	LogLevel    string
	MaxFileSize int64
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		currentDir = "."
	}

	return &Config{
		Mode:            ModeCLI,
		InputDirectory:  currentDir,
		OutputDirectory: filepath.Join(currentDir, "sorted"),
		Locale:          DefaultLocale,
		DateFormat:      DefaultDateFormat,
		Version:         "1.0.0",
		ServerName:      "document-classifier-renamer",
		LogLevel:        DefaultLogLevel,
		MaxFileSize:     DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and environment variables and
// returns a validated configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	for _, dir := range []*string{&cfg.InputDirectory, &cfg.OutputDirectory} {
		if *dir != "" {
			if expandedPath, err := filepath.Abs(*dir); err == nil {
				*dir = expandedPath
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("DCR")
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("input", cfg.InputDirectory)
	viper.SetDefault("output", cfg.OutputDirectory)
	viper.SetDefault("locale", cfg.Locale)
	viper.SetDefault("rules", cfg.CustomRulesPath)
	viper.SetDefault("dateformat", cfg.DateFormat)
	viper.SetDefault("date", cfg.CustomDate)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Execution mode: 'cli' to sort a directory, 'stdio' for MCP standard I/O")
	pflag.String("input", cfg.InputDirectory, "Directory containing documents to classify")
	pflag.String("output", cfg.OutputDirectory, "Directory for renamed output files (cli mode)")
	pflag.String("locale", cfg.Locale, "Rule table locale (en, de)")
	pflag.String("rules", cfg.CustomRulesPath, "Path to a JSON file with additional classification rules")
	pflag.String("dateformat", cfg.DateFormat, "Date format for output filenames (YYYY, YYMM, YYYYMM, YYYYMMDD)")
	pflag.String("date", cfg.CustomDate, "Fixed date string overriding the current date in output filenames")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum document file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("input", pflag.Lookup("input"))
	_ = viper.BindPFlag("output", pflag.Lookup("output"))
	_ = viper.BindPFlag("locale", pflag.Lookup("locale"))
	_ = viper.BindPFlag("rules", pflag.Lookup("rules"))
	_ = viper.BindPFlag("dateformat", pflag.Lookup("dateformat"))
	_ = viper.BindPFlag("date", pflag.Lookup("date"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nDocument Classifier & Renamer - classifies PDF/CSV documents and renames them\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --input=./inbox --output=./sorted           # sort a directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --input=./inbox --dateformat=YYYYMM         # year+month in filenames\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --locale=de --input=./posteingang           # German rule table\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=stdio                                # serve as MCP tools\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  DCR_MODE         Execution mode\n")
		fmt.Fprintf(os.Stderr, "  DCR_INPUT        Input directory\n")
		fmt.Fprintf(os.Stderr, "  DCR_OUTPUT       Output directory\n")
		fmt.Fprintf(os.Stderr, "  DCR_LOCALE       Rule table locale\n")
		fmt.Fprintf(os.Stderr, "  DCR_RULES        Custom rules file\n")
		fmt.Fprintf(os.Stderr, "  DCR_DATEFORMAT   Date format\n")
		fmt.Fprintf(os.Stderr, "  DCR_LOGLEVEL     Log level\n")
		fmt.Fprintf(os.Stderr, "  DCR_MAXFILESIZE  Maximum file size\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.InputDirectory = viper.GetString("input")
	cfg.OutputDirectory = viper.GetString("output")
	cfg.Locale = viper.GetString("locale")
	cfg.CustomRulesPath = viper.GetString("rules")
	cfg.DateFormat = viper.GetString("dateformat")
	cfg.CustomDate = viper.GetString("date")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Mode != ModeCLI && c.Mode != ModeStdio {
		return errors.New("mode must be either 'cli' or 'stdio'")
	}

	localeOK := false
	for _, locale := range rules.SupportedLocales() {
		if c.Locale == locale {
			localeOK = true
			break
		}
	}
	if !localeOK {
		return fmt.Errorf("unsupported locale: %s (must be one of: %v)", c.Locale, rules.SupportedLocales())
	}

	if !rename.ValidDateFormat(c.DateFormat) {
		return fmt.Errorf("invalid date format: %s (must be one of: YYYY, YYMM, YYYYMM, YYYYMMDD)", c.DateFormat)
	}

	if c.Mode == ModeCLI {
		if c.InputDirectory == "" {
			return errors.New("input directory cannot be empty")
		}
		info, err := os.Stat(c.InputDirectory)
		if err != nil {
			return fmt.Errorf("cannot access input directory %s: %w", c.InputDirectory, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("input path is not a directory: %s", c.InputDirectory)
		}
		if c.OutputDirectory == "" {
			return errors.New("output directory cannot be empty")
		}
	}

	if c.CustomRulesPath != "" {
		if _, err := os.Stat(c.CustomRulesPath); err != nil {
			return fmt.Errorf("cannot access custom rules file %s: %w", c.CustomRulesPath, err)
		}
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// IsCLIMode returns true if the program runs a one-shot directory sort
func (c *Config) IsCLIMode() bool {
	return c.Mode == ModeCLI
}

// IsStdioMode returns true if the program serves MCP tools over stdio
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, Input: %s, Output: %s, Locale: %s, DateFormat: %s, LogLevel: %s, MaxFileSize: %d}",
		c.Mode, c.InputDirectory, c.OutputDirectory, c.Locale, c.DateFormat, c.LogLevel, c.MaxFileSize)
}

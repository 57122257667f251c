package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"

	"github.com/arne314/retouch/internal/report"
	"github.com/arne314/retouch/internal/textprocessor"
)

const DefaultPath = "config/config.toml"

type ReportConfig struct {
	Format string `toml:"format"`
}

type InputConfig struct {
	Original string
	Revised  string
	Dump     bool
}

type Config struct {
	LogLevel      string        `toml:"log_level"`
	Abbreviations []string      `toml:"abbreviations"`
	Report        *ReportConfig `toml:"report"`

	Input *InputConfig `toml:"-"`
	Path  string       `toml:"-"`
}

func Default() *Config {
	abbreviations := make([]string, len(textprocessor.DefaultAbbreviations))
	copy(abbreviations, textprocessor.DefaultAbbreviations)
	return &Config{
		LogLevel:      "info",
		Abbreviations: abbreviations,
		Report:        &ReportConfig{Format: report.FormatText},
		Input:         &InputConfig{},
		Path:          DefaultPath,
	}
}

// Parse decodes TOML, unset values keep their defaults.
func Parse(data []byte) (*Config, error) {
	parsed := &Config{}
	if err := toml.Unmarshal(data, parsed); err != nil {
		return nil, fmt.Errorf("decoding TOML: %w", err)
	}
	c := Default()
	if parsed.LogLevel != "" {
		c.LogLevel = parsed.LogLevel
	}
	if parsed.Abbreviations != nil {
		c.Abbreviations = parsed.Abbreviations
	}
	if parsed.Report != nil && parsed.Report.Format != "" {
		c.Report.Format = parsed.Report.Format
	}
	return c, nil
}

// ReadFile parses the config at path. A missing file yields the defaults.
func ReadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warnf("Config file %s not found, using defaults", path)
		c := Default()
		c.Path = path
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.Path = path
	return c, nil
}

// ApplyEnv overrides values with the environment. getenv is os.Getenv outside of tests.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if level := getenv("LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
	if format := getenv("RETOUCH_REPORT_FORMAT"); format != "" {
		c.Report.Format = format
	}
	if abbreviations := getenv("RETOUCH_ABBREVIATIONS"); abbreviations != "" {
		c.Abbreviations = nil
		for _, abbr := range strings.Split(abbreviations, ",") {
			if abbr = strings.TrimSpace(abbr); abbr != "" {
				c.Abbreviations = append(c.Abbreviations, abbr)
			}
		}
	}
}

func (c *Config) Validate() error {
	if !report.IsValidFormat(c.Report.Format) {
		return fmt.Errorf("%w %q, expected one of %v", report.ErrUnknownFormat, c.Report.Format, report.Formats)
	}
	if _, err := textprocessor.NewAbbreviationGuard(c.Abbreviations); err != nil {
		return err
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"%s: log level %s, abbreviations %v, report %+v, input %+v",
		c.Path, c.LogLevel, c.Abbreviations, *c.Report, *c.Input,
	)
}

func (c *Config) ApplyLogLevel() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warnf("Invalid log level %q, using info", c.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

// Load parses the command line, the config file and .env in that order.
// Any error is fatal.
func Load() *Config {
	// parse command line flags
	flagConfig := flag.String("config", DefaultPath, "Path of the TOML configuration file")
	flagOriginal := flag.String("original", "", "Original text: a text file, a .eml message or - for stdin")
	flagRevised := flag.String("revised", "", "Revised text: a text file, a .eml message or - for stdin")
	flagFormat := flag.String("format", "", fmt.Sprintf("Report format, one of %v", report.Formats))
	flagDump := flag.Bool("dump", false, "Dump the sentences and words of both texts")
	flag.Parse()

	// load config.toml
	c, err := ReadFile(*flagConfig)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// load .env
	if err := godotenv.Load(); err != nil {
		log.Debugf("No .env file loaded: %v", err)
	}
	c.ApplyEnv(os.Getenv)
	if *flagFormat != "" {
		c.Report.Format = *flagFormat
	}
	c.Input = &InputConfig{Original: *flagOriginal, Revised: *flagRevised, Dump: *flagDump}

	c.ApplyLogLevel()
	if err := c.Validate(); err != nil {
		log.Fatalf("Invalid config %s: %v", c.Path, err)
	}
	log.Debugf("Loaded config: %v", c)
	return c
}

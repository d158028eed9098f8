// Package config provides configuration structures and loading for partlist.
package config

// Config represents the complete application configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source" mapstructure:"source"`
	Units   UnitsConfig   `yaml:"units" mapstructure:"units"`
	Report  ReportConfig  `yaml:"report" mapstructure:"report"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// SourceConfig selects where body records are enumerated from.
type SourceConfig struct {
	Type     string         `yaml:"type" mapstructure:"type"`     // file or mysql
	Path     string         `yaml:"path" mapstructure:"path"`     // assembly document (file source)
	Design   string         `yaml:"design" mapstructure:"design"` // design filter (mysql source)
	Table    string         `yaml:"table" mapstructure:"table"`   // body inventory table (mysql source)
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`
}

// DatabaseConfig represents a MySQL database connection configuration.
type DatabaseConfig struct {
	Host               string `yaml:"host" mapstructure:"host"`
	Port               int    `yaml:"port" mapstructure:"port"`
	User               string `yaml:"user" mapstructure:"user"`
	Password           string `yaml:"password" mapstructure:"password"`
	Database           string `yaml:"database" mapstructure:"database"`
	TLS                string `yaml:"tls" mapstructure:"tls"` // disable, preferred, required
	MaxConnections     int    `yaml:"max_connections" mapstructure:"max_connections"`
	MaxIdleConnections int    `yaml:"max_idle_connections" mapstructure:"max_idle_connections"`
}

// UnitsConfig controls how lengths are displayed.
type UnitsConfig struct {
	Length    string `yaml:"length" mapstructure:"length"` // mm, cm, m, in, ft; empty uses the design default
	Precision int    `yaml:"precision" mapstructure:"precision"`
}

// ReportConfig controls report rendering.
type ReportConfig struct {
	Format     string `yaml:"format" mapstructure:"format"` // html or text
	Output     string `yaml:"output" mapstructure:"output"` // stdout or file path
	Title      string `yaml:"title" mapstructure:"title"`
	Sort       string `yaml:"sort" mapstructure:"sort"` // lexical or numeric
	Standalone bool   `yaml:"standalone" mapstructure:"standalone"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// Source types.
const (
	SourceFile  = "file"
	SourceMySQL = "mysql"
)

// Report formats.
const (
	FormatHTML = "html"
	FormatText = "text"
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Type:  SourceFile,
			Table: "bodies",
			Database: DatabaseConfig{
				Port:               3306,
				TLS:                "preferred",
				MaxConnections:     4,
				MaxIdleConnections: 2,
			},
		},
		Units: UnitsConfig{
			Precision: 2,
		},
		Report: ReportConfig{
			Format: FormatHTML,
			Output: "stdout",
			Title:  "Total materials used",
			Sort:   "lexical",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// CLIOverrides contains flag values that override config file settings.
// Zero values leave the config untouched; Precision uses -1 for "unset".
type CLIOverrides struct {
	LogLevel   string
	LogFormat  string
	Units      string
	Precision  int
	Format     string
	Output     string
	Sort       string
	Standalone bool
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(o CLIOverrides) {
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		c.Logging.Format = o.LogFormat
	}
	if o.Units != "" {
		c.Units.Length = o.Units
	}
	if o.Precision >= 0 {
		c.Units.Precision = o.Precision
	}
	if o.Format != "" {
		c.Report.Format = o.Format
	}
	if o.Output != "" {
		c.Report.Output = o.Output
	}
	if o.Sort != "" {
		c.Report.Sort = o.Sort
	}
	if o.Standalone {
		c.Report.Standalone = true
	}
}

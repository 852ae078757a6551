package config

import "path/filepath"

// Storage backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Output formats of the CLI
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config provides read-only access to application configuration.
// This interface abstracts the configuration source (JSON, defaults)
// and ensures the app layer doesn't depend on infrastructure details.
type Config interface {
	// Storage
	DataDir() string      // Directory holding the backing files
	CommentsFile() string // Comment backing file name
	UsersFile() string    // User backing file name
	Format() string       // "json" or "yaml"
	Backend() string      // "file" or "sqlite"
	DBPath() string       // SQLite database file
	Serialize() bool      // Wrap repositories with a per-store mutex

	// Logging and output
	StderrLevel() string
	Output() string

	// Metadata
	ConfigSource() string // "json" or "default"
	SettingPath() string  // Path to setting.json if loaded from file
}

// AppConfig is the concrete implementation of Config interface.
type AppConfig struct {
	dataDir      string
	commentsFile string
	usersFile    string
	format       string
	backend      string
	dbPath       string
	serialize    bool

	stderrLevel string
	output      string

	configSource string
	settingPath  string
}

// NewAppConfig creates a new AppConfig with the given values.
// This is typically called by the infrastructure layer after loading settings.
func NewAppConfig(
	dataDir, commentsFile, usersFile, format, backend, dbPath string,
	serialize bool,
	stderrLevel, output string,
	configSource, settingPath string,
) *AppConfig {
	return &AppConfig{
		dataDir:      dataDir,
		commentsFile: commentsFile,
		usersFile:    usersFile,
		format:       format,
		backend:      backend,
		dbPath:       dbPath,
		serialize:    serialize,
		stderrLevel:  stderrLevel,
		output:       output,
		configSource: configSource,
		settingPath:  settingPath,
	}
}

func (c *AppConfig) DataDir() string      { return c.dataDir }
func (c *AppConfig) CommentsFile() string { return c.commentsFile }
func (c *AppConfig) UsersFile() string    { return c.usersFile }
func (c *AppConfig) Format() string       { return c.format }
func (c *AppConfig) Backend() string      { return c.backend }
func (c *AppConfig) DBPath() string       { return c.dbPath }
func (c *AppConfig) Serialize() bool      { return c.serialize }
func (c *AppConfig) StderrLevel() string  { return c.stderrLevel }
func (c *AppConfig) Output() string       { return c.output }
func (c *AppConfig) ConfigSource() string { return c.configSource }
func (c *AppConfig) SettingPath() string  { return c.settingPath }

// CommentsPath returns the comment backing file joined with the data directory
func (c *AppConfig) CommentsPath() string {
	return filepath.Join(c.dataDir, c.commentsFile)
}

// UsersPath returns the user backing file joined with the data directory
func (c *AppConfig) UsersPath() string {
	return filepath.Join(c.dataDir, c.usersFile)
}

// DatabasePath returns the SQLite file joined with the data directory, unless absolute
func (c *AppConfig) DatabasePath() string {
	if filepath.IsAbs(c.dbPath) {
		return c.dbPath
	}
	return filepath.Join(c.dataDir, c.dbPath)
}

// WithOverrides returns a copy with non-empty command-line values applied.
// The format is not overridable since it decides the default file names.
func (c *AppConfig) WithOverrides(dataDir, backend, stderrLevel, output string) *AppConfig {
	cp := *c
	if dataDir != "" {
		cp.dataDir = dataDir
	}
	if backend != "" {
		cp.backend = backend
	}
	if stderrLevel != "" {
		cp.stderrLevel = stderrLevel
	}
	if output != "" {
		cp.output = output
	}
	return &cp
}

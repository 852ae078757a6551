package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/YoshitsuguKoike/filerepo/internal/app/config"
	"github.com/YoshitsuguKoike/filerepo/internal/infra/persistence/file"
)

// SettingFile is the settings file name inside the base directory
const SettingFile = "setting.json"

// RawSettings represents the structure of setting.json file.
// Pointer fields distinguish "not set" from zero values.
type RawSettings struct {
	// Storage
	DataDir      *string `json:"data_dir"`
	CommentsFile *string `json:"comments_file"`
	UsersFile    *string `json:"users_file"`
	Format       *string `json:"format"`
	Backend      *string `json:"backend"`
	DBPath       *string `json:"db_path"`
	Serialize    *bool   `json:"serialize"`

	// Logging and output
	StderrLevel *string `json:"stderr_level"`
	Output      *string `json:"output"`
}

// LoadSettings loads configuration from <baseDir>/setting.json on the OS filesystem.
// Priority: setting.json > defaults
func LoadSettings(baseDir string) (*config.AppConfig, error) {
	return LoadSettingsFrom(afero.NewOsFs(), baseDir)
}

// LoadSettingsFrom is LoadSettings reading from fs
func LoadSettingsFrom(fs afero.Fs, baseDir string) (*config.AppConfig, error) {
	settings := &RawSettings{}
	configSource := "default"
	settingPath := ""

	jsonPath := filepath.Join(baseDir, SettingFile)
	data, err := afero.ReadFile(fs, jsonPath)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", jsonPath, err)
		}
		configSource = "json"
		settingPath = jsonPath
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read %s: %w", jsonPath, err)
	}

	applyDefaults(settings)

	if err := validate(settings); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", jsonPath, err)
	}

	return buildAppConfig(settings, configSource, settingPath), nil
}

// applyDefaults fills in default values for any nil fields
func applyDefaults(settings *RawSettings) {
	if settings.DataDir == nil {
		v := "."
		settings.DataDir = &v
	}
	if settings.Format == nil {
		v := file.FormatJSON
		settings.Format = &v
	}
	// File names follow the format unless set explicitly.
	// An unknown format keeps ".json" here and is rejected by validate.
	ext := ".json"
	if codec, err := file.CodecFor(*settings.Format); err == nil {
		name := codec.Name()
		settings.Format = &name
		ext = file.DefaultExtension(codec)
	}
	if settings.CommentsFile == nil {
		v := "comments" + ext
		settings.CommentsFile = &v
	}
	if settings.UsersFile == nil {
		v := "users" + ext
		settings.UsersFile = &v
	}
	if settings.Backend == nil {
		v := config.BackendFile
		settings.Backend = &v
	}
	if settings.DBPath == nil {
		v := "filerepo.db"
		settings.DBPath = &v
	}
	if settings.Serialize == nil {
		v := false
		settings.Serialize = &v
	}
	if settings.StderrLevel == nil {
		v := "warn" // Default to WARN level
		settings.StderrLevel = &v
	}
	if settings.Output == nil {
		v := config.OutputText
		settings.Output = &v
	}
}

// validate rejects values no component can serve
func validate(settings *RawSettings) error {
	if _, err := file.CodecFor(*settings.Format); err != nil {
		return err
	}
	if err := ValidateBackend(*settings.Backend); err != nil {
		return err
	}
	if err := ValidateOutput(*settings.Output); err != nil {
		return err
	}
	if strings.TrimSpace(*settings.CommentsFile) == "" || strings.TrimSpace(*settings.UsersFile) == "" {
		return fmt.Errorf("comments_file and users_file must not be empty")
	}
	return nil
}

// ValidateBackend checks a backend name
func ValidateBackend(backend string) error {
	switch backend {
	case config.BackendFile, config.BackendSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported backend: %q", backend)
	}
}

// ValidateOutput checks an output format name
func ValidateOutput(output string) error {
	switch output {
	case config.OutputText, config.OutputJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output: %q", output)
	}
}

// buildAppConfig converts RawSettings to AppConfig
func buildAppConfig(settings *RawSettings, configSource, settingPath string) *config.AppConfig {
	return config.NewAppConfig(
		*settings.DataDir,
		*settings.CommentsFile,
		*settings.UsersFile,
		strings.ToLower(*settings.Format),
		*settings.Backend,
		*settings.DBPath,
		*settings.Serialize,
		*settings.StderrLevel,
		*settings.Output,
		configSource,
		settingPath,
	)
}

// CreateDefaultSettings creates a default setting.json content
func CreateDefaultSettings() []byte {
	settings := &RawSettings{}
	applyDefaults(settings)

	data, _ := json.MarshalIndent(settings, "", "  ")
	return data
}

package dto

import "github.com/YoshitsuguKoike/filerepo/internal/app/config"

// ConfigDTO is the effective configuration after settings and flags are applied
type ConfigDTO struct {
	Source       string `json:"source" yaml:"source"`
	SettingPath  string `json:"setting_path" yaml:"setting_path"`
	DataDir      string `json:"data_dir" yaml:"data_dir"`
	Backend      string `json:"backend" yaml:"backend"`
	Format       string `json:"format" yaml:"format"`
	CommentsPath string `json:"comments_path" yaml:"comments_path"`
	UsersPath    string `json:"users_path" yaml:"users_path"`
	DBPath       string `json:"db_path" yaml:"db_path"`
	Serialize    bool   `json:"serialize" yaml:"serialize"`
	StderrLevel  string `json:"stderr_level" yaml:"stderr_level"`
	Output       string `json:"output" yaml:"output"`
}

// FromConfig converts the application configuration
func FromConfig(cfg config.Config) *ConfigDTO {
	d := &ConfigDTO{
		Source:      cfg.ConfigSource(),
		SettingPath: cfg.SettingPath(),
		DataDir:     cfg.DataDir(),
		Backend:     cfg.Backend(),
		Format:      cfg.Format(),
		Serialize:   cfg.Serialize(),
		StderrLevel: cfg.StderrLevel(),
		Output:      cfg.Output(),
	}
	if app, ok := cfg.(*config.AppConfig); ok {
		d.CommentsPath = app.CommentsPath()
		d.UsersPath = app.UsersPath()
		d.DBPath = app.DatabasePath()
	}
	return d
}

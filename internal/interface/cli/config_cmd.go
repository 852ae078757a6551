package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/YoshitsuguKoike/filerepo/internal/application/dto"
	infraConfig "github.com/YoshitsuguKoike/filerepo/internal/infra/config"
	"github.com/YoshitsuguKoike/filerepo/internal/infra/persistence/file"
)

func newConfigCmd(s *session) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration after setting.json, defaults and command-line flags are applied.

setting.json is read from .filerepo, or from $FILEREPO_HOME when set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			effective := dto.FromConfig(s.cfg)
			if asYAML {
				data, err := yaml.Marshal(effective)
				if err != nil {
					return s.fail(fmt.Errorf("failed to encode config: %w", err))
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return s.presenter.PresentSuccess("", effective)
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print as YAML regardless of --output")

	cmd.AddCommand(newConfigInitCmd(s))
	return cmd
}

func newConfigInitCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default setting.json",
		Long:  "Write setting.json with every default spelled out. An existing file is left untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(s.baseDir, infraConfig.SettingFile)
			created, err := file.EnsureFile(s.fs, path, infraConfig.CreateDefaultSettings())
			if err != nil {
				return s.fail(fmt.Errorf("failed to write %s: %w", path, err))
			}
			if !created {
				s.logger.Warn("%s already exists, leaving it unchanged", path)
				return s.presenter.PresentSuccess(fmt.Sprintf("%s already exists", path), nil)
			}
			return s.presenter.PresentSuccess(fmt.Sprintf("Created %s", path), nil)
		},
	}
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/YoshitsuguKoike/filerepo/internal/adapter/presenter"
	"github.com/YoshitsuguKoike/filerepo/internal/app/config"
	"github.com/YoshitsuguKoike/filerepo/internal/application/port/output"
	infraConfig "github.com/YoshitsuguKoike/filerepo/internal/infra/config"
	"github.com/YoshitsuguKoike/filerepo/internal/infrastructure/di"
	"github.com/YoshitsuguKoike/filerepo/internal/interface/cli/version"
)

const (
	// DefaultBaseDir holds setting.json unless FILEREPO_HOME is set
	DefaultBaseDir = ".filerepo"
	// EnvHome overrides the base directory
	EnvHome = "FILEREPO_HOME"
)

// session is the state shared by the subcommands of one invocation
type session struct {
	fs        afero.Fs
	baseDir   string
	cfg       *config.AppConfig
	container *di.Container
	presenter output.Presenter
	logger    *Logger
}

// withStores builds the DI container for one command and closes it afterwards.
// Commands that never touch a store do not create backing files.
func (s *session) withStores(fn func(c *di.Container) error) error {
	container, err := di.NewContainer(s.cfg, s.fs)
	if err != nil {
		return s.fail(fmt.Errorf("failed to open %s backend: %w", s.cfg.Backend(), err))
	}
	s.container = container
	defer func() {
		if cerr := s.close(); cerr != nil {
			s.logger.Warn("failed to close %s backend: %v", s.cfg.Backend(), cerr)
		}
	}()
	if err := fn(container); err != nil {
		return s.fail(err)
	}
	return nil
}

func (s *session) close() error {
	if s.container == nil {
		return nil
	}
	err := s.container.Close()
	s.container = nil
	return err
}

// fail reports err through the presenter and marks it as already shown
func (s *session) fail(err error) error {
	if s.presenter == nil {
		return err
	}
	if perr := s.presenter.PresentError(err); perr != nil {
		return perr
	}
	return &reportedError{err: err}
}

// reportedError wraps an error the presenter has already written
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// NewRoot builds the filerepo command tree on the OS filesystem
func NewRoot() *cobra.Command {
	return newRoot(afero.NewOsFs())
}

// newRoot builds the command tree with fs for settings and file stores
func newRoot(fs afero.Fs) *cobra.Command {
	s := &session{fs: fs}

	var (
		dataDir  string
		backend  string
		logLevel string
		outFmt   string
	)

	cmd := &cobra.Command{
		Use:           "filerepo",
		Short:         "Flat-file comment and user stores",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Priority: flags > setting.json > defaults
			s.baseDir = DefaultBaseDir
			if home := os.Getenv(EnvHome); home != "" {
				s.baseDir = home
			}

			cfg, err := infraConfig.LoadSettingsFrom(s.fs, s.baseDir)
			if err != nil {
				return err
			}
			if backend != "" {
				if err := infraConfig.ValidateBackend(backend); err != nil {
					return err
				}
			}
			if outFmt != "" {
				if err := infraConfig.ValidateOutput(outFmt); err != nil {
					return err
				}
			}
			s.cfg = cfg.WithOverrides(dataDir, backend, logLevel, outFmt)

			s.logger = InitGlobalLogger(s.cfg.StderrLevel())
			s.logger.SetOutput(cmd.ErrOrStderr())
			InitializeLoggers(s.logger)

			s.presenter = newPresenter(s.cfg.Output(), cmd.OutOrStdout())
			s.logger.Debug("config source=%s backend=%s format=%s", s.cfg.ConfigSource(), s.cfg.Backend(), s.cfg.Format())
			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error { return c.Help() },
	}

	cmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the backing files (overrides data_dir)")
	cmd.PersistentFlags().StringVar(&backend, "backend", "", "storage backend: file or sqlite (overrides backend)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "stderr log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVarP(&outFmt, "output", "o", "", "output format: text or json")

	cmd.AddCommand(newCommentCmd(s))
	cmd.AddCommand(newUserCmd(s))
	cmd.AddCommand(newConfigCmd(s))
	cmd.AddCommand(version.NewCommand())
	return cmd
}

func newPresenter(format string, w io.Writer) output.Presenter {
	if format == config.OutputJSON {
		return presenter.NewJSONPresenter(w)
	}
	return presenter.NewCLIPresenter(w)
}

// Execute runs the root command and returns the process exit code
func Execute(ctx context.Context) int {
	root := NewRoot()
	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var reported *reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return 1
}

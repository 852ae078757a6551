package di

import (
	"database/sql"
	"fmt"

	"github.com/spf13/afero"

	"github.com/YoshitsuguKoike/filerepo/internal/app"
	appconfig "github.com/YoshitsuguKoike/filerepo/internal/app/config"
	"github.com/YoshitsuguKoike/filerepo/internal/domain/repository"
	"github.com/YoshitsuguKoike/filerepo/internal/infra/persistence/file"
	sqliterepo "github.com/YoshitsuguKoike/filerepo/internal/infrastructure/persistence/sqlite"
	infraRepo "github.com/YoshitsuguKoike/filerepo/internal/infrastructure/repository"
)

// Container is the DI container that holds all dependencies
// This implements manual dependency injection for Clean Architecture
type Container struct {
	// Infrastructure Layer - Database (sqlite backend only)
	db *sql.DB

	// Infrastructure Layer - Repositories
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository

	config *appconfig.AppConfig
}

// NewContainer builds the repositories selected by cfg.
// fs is only used by the file backend; nil means the OS filesystem.
func NewContainer(cfg *appconfig.AppConfig, fs afero.Fs) (*Container, error) {
	c := &Container{config: cfg}

	var err error
	switch cfg.Backend() {
	case appconfig.BackendFile, "":
		err = c.initFileRepositories(fs)
	case appconfig.BackendSQLite:
		err = c.initSQLiteRepositories()
	default:
		err = fmt.Errorf("unsupported backend: %q", cfg.Backend())
	}
	if err != nil {
		c.Close()
		return nil, err
	}

	if cfg.Serialize() {
		app.GetLogger().Debug("serializing repository calls with per-store mutex")
		c.commentRepo = infraRepo.NewSynchronizedCommentRepository(c.commentRepo)
		c.userRepo = infraRepo.NewSynchronizedUserRepository(c.userRepo)
	}

	return c, nil
}

func (c *Container) initFileRepositories(fs afero.Fs) error {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	codec, err := file.CodecFor(c.config.Format())
	if err != nil {
		return err
	}

	commentRepo, err := infraRepo.NewCommentFileRepository(fs, c.config.CommentsPath(), codec)
	if err != nil {
		return err
	}
	userRepo, err := infraRepo.NewUserFileRepository(fs, c.config.UsersPath(), codec)
	if err != nil {
		return err
	}

	app.GetLogger().Debug("file backend: comments=%s users=%s format=%s",
		commentRepo.Path(), userRepo.Path(), codec.Name())

	c.commentRepo = commentRepo
	c.userRepo = userRepo
	return nil
}

func (c *Container) initSQLiteRepositories() error {
	path := c.config.DatabasePath()

	db, err := sqliterepo.Open(path)
	if err != nil {
		return err
	}
	c.db = db

	app.GetLogger().Debug("sqlite backend: db=%s", path)

	c.commentRepo = sqliterepo.NewCommentRepository(db)
	c.userRepo = sqliterepo.NewUserRepository(db)
	return nil
}

// CommentRepository returns the comment repository
func (c *Container) CommentRepository() repository.CommentRepository {
	return c.commentRepo
}

// UserRepository returns the user repository
func (c *Container) UserRepository() repository.UserRepository {
	return c.userRepo
}

// Config returns the configuration the container was built from
func (c *Container) Config() *appconfig.AppConfig {
	return c.config
}

// Close releases the database connection, if any
func (c *Container) Close() error {
	if c.db != nil {
		err := c.db.Close()
		c.db = nil
		return err
	}
	return nil
}

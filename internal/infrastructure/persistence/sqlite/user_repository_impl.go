package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/YoshitsuguKoike/filerepo/internal/domain/model/user"
	"github.com/YoshitsuguKoike/filerepo/internal/domain/repository"
	"github.com/YoshitsuguKoike/filerepo/internal/infrastructure/transaction"
)

// UserRepositoryImpl implements repository.UserRepository with SQLite
type UserRepositoryImpl struct {
	db        *sql.DB
	txManager *transaction.SQLiteTransactionManager
}

var _ repository.UserRepository = (*UserRepositoryImpl)(nil)

// NewUserRepository creates a new SQLite-based user repository
func NewUserRepository(db *sql.DB) *UserRepositoryImpl {
	return &UserRepositoryImpl{
		db:        db,
		txManager: transaction.NewSQLiteTransactionManager(db),
	}
}

func (r *UserRepositoryImpl) Add(ctx context.Context, u *user.User) (*user.User, error) {
	if u == nil {
		return nil, errors.New("user is nil")
	}

	err := r.txManager.InTransaction(ctx, func(txCtx context.Context) error {
		db := getDB(txCtx, r.db)

		id, err := nextValue(txCtx, db, "users", "id")
		if err != nil {
			return err
		}
		position, err := nextValue(txCtx, db, "users", "position")
		if err != nil {
			return err
		}

		if _, err := db.ExecContext(txCtx,
			`INSERT INTO users (id, user_name, password, position) VALUES (?, ?, ?, ?)`,
			id, u.UserName, u.Password, position,
		); err != nil {
			return fmt.Errorf("insert user failed: %w", err)
		}

		u.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, u *user.User) error {
	if u == nil {
		return errors.New("user is nil")
	}

	return r.txManager.InTransaction(ctx, func(txCtx context.Context) error {
		db := getDB(txCtx, r.db)

		position, err := nextValue(txCtx, db, "users", "position")
		if err != nil {
			return err
		}

		result, err := db.ExecContext(txCtx,
			`UPDATE users SET user_name = ?, password = ?, position = ? WHERE id = ?`,
			u.UserName, u.Password, position, u.ID,
		)
		if err != nil {
			return fmt.Errorf("update user failed: %w", err)
		}
		return requireAffected(result, user.EntityName, u.ID)
	})
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := getDB(ctx, r.db).ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete user failed: %w", err)
	}
	return requireAffected(result, user.EntityName, id)
}

func (r *UserRepositoryImpl) GetSingle(ctx context.Context, id int) (*user.User, error) {
	u := &user.User{}
	err := getDB(ctx, r.db).QueryRowContext(ctx,
		`SELECT id, user_name, password FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.UserName, &u.Password)
	if err == sql.ErrNoRows {
		return nil, repository.NewNotFoundError(user.EntityName, id)
	}
	if err != nil {
		return nil, fmt.Errorf("scan user failed: %w", err)
	}
	return u, nil
}

func (r *UserRepositoryImpl) GetMany(ctx context.Context) ([]*user.User, error) {
	rows, err := getDB(ctx, r.db).QueryContext(ctx, `SELECT id, user_name, password FROM users ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("query users failed: %w", err)
	}
	defer rows.Close()

	users := []*user.User{}
	for rows.Next() {
		u := &user.User{}
		if err := rows.Scan(&u.ID, &u.UserName, &u.Password); err != nil {
			return nil, fmt.Errorf("scan user failed: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users failed: %w", err)
	}
	return users, nil
}

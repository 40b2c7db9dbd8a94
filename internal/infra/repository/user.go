package repository

import (
	"context"

	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.UserSnapshot, error) {
	const q = `SELECT id, email, name FROM users WHERE id = $1`

	var snap commands.UserSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.Email, &snap.Name)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &snap, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*queries.UserView, error) {
	const q = `
		INSERT INTO users (id, email, name)
		VALUES ($1, $2, $3)
		RETURNING id, email, name`

	var view queries.UserView
	err := r.db.QueryRow(ctx, q, u.ID(), u.Email().Value(), u.Name().Value()).
		Scan(&view.ID, &view.Email, &view.Name)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err)
	}
	return &view, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) (*queries.UserView, error) {
	const q = `
		UPDATE users
		SET email = $2, name = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, email, name`

	var view queries.UserView
	err := r.db.QueryRow(ctx, q, u.ID(), u.Email().Value(), u.Name().Value()).
		Scan(&view.ID, &view.Email, &view.Name)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update user", err)
	}
	return &view, nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM users WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const q = `SELECT id, email, name FROM users WHERE id = $1`

	var view queries.UserView
	err := r.db.QueryRow(ctx, q, id).Scan(&view.ID, &view.Email, &view.Name)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user view", err)
	}
	return &view, nil
}

func (r *UserRepository) ListViews(ctx context.Context) ([]*queries.UserView, error) {
	const q = `SELECT id, email, name FROM users ORDER BY created_at`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	views := []*queries.UserView{}
	for rows.Next() {
		var view queries.UserView
		if err := rows.Scan(&view.ID, &view.Email, &view.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}
	return views, nil
}

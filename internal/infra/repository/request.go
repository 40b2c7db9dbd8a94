package repository

import (
	"context"

	"gearshare/internal/domain/request"
	"gearshare/internal/infra"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestRepository struct {
	db *pgxpool.Pool
}

func NewRequestRepository(db *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM item_requests WHERE id = $1)`

	var ok bool
	if err := r.db.QueryRow(ctx, q, id).Scan(&ok); err != nil {
		return false, infra.WrapRepoErr("failed to check request existence", err)
	}
	return ok, nil
}

func (r *RequestRepository) Create(ctx context.Context, req *request.ItemRequest) (*queries.RequestView, error) {
	const q = `
		INSERT INTO item_requests (id, author_id, description, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, author_id, description, created_at`

	var view queries.RequestView
	err := r.db.QueryRow(ctx, q, req.ID(), req.AuthorID(), req.Description(), req.CreatedAt()).
		Scan(&view.ID, &view.AuthorID, &view.Description, &view.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create item request", err)
	}
	view.Items = []queries.RequestFit{}
	return &view, nil
}

func (r *RequestRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	const q = `
		SELECT id, author_id, description, created_at
		FROM item_requests WHERE id = $1`

	var view queries.RequestView
	err := r.db.QueryRow(ctx, q, id).
		Scan(&view.ID, &view.AuthorID, &view.Description, &view.CreatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item request", err)
	}
	return &view, nil
}

func (r *RequestRepository) ListViewsByAuthor(ctx context.Context, authorID uuid.UUID, p queries.Page) ([]*queries.RequestView, error) {
	const q = `
		SELECT id, author_id, description, created_at
		FROM item_requests
		WHERE author_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3`

	return r.listViews(ctx, q, authorID, p.From, p.Size)
}

func (r *RequestRepository) ListViewsExcludingAuthor(ctx context.Context, authorID uuid.UUID, p queries.Page) ([]*queries.RequestView, error) {
	const q = `
		SELECT id, author_id, description, created_at
		FROM item_requests
		WHERE author_id <> $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3`

	return r.listViews(ctx, q, authorID, p.From, p.Size)
}

func (r *RequestRepository) listViews(ctx context.Context, q string, args ...any) ([]*queries.RequestView, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item requests", err)
	}
	defer rows.Close()

	views := []*queries.RequestView{}
	for rows.Next() {
		var view queries.RequestView
		if err := rows.Scan(&view.ID, &view.AuthorID, &view.Description, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item request row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item request rows", err)
	}
	return views, nil
}

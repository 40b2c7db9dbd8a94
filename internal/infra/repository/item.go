package repository

import (
	"context"

	"gearshare/internal/domain/item"
	"gearshare/internal/infra"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemRepository struct {
	db *pgxpool.Pool
}

func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ItemSnapshot, error) {
	const q = `
		SELECT id, owner_id, name, description, available, request_id
		FROM items WHERE id = $1`

	var snap commands.ItemSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(
		&snap.ID, &snap.OwnerID, &snap.Name, &snap.Description, &snap.Available, &snap.RequestID,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item", err)
	}
	return &snap, nil
}

func (r *ItemRepository) Create(ctx context.Context, i *item.Item) (*queries.ItemView, error) {
	const q = `
		INSERT INTO items (id, owner_id, name, description, available, request_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, owner_id, name, description, available, request_id`

	view, err := scanItemView(r.db.QueryRow(ctx, q,
		i.ID(), i.OwnerID(), i.Name(), i.Description(), i.Available(), i.RequestID(),
	))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create item", err)
	}
	return view, nil
}

func (r *ItemRepository) Update(ctx context.Context, i *item.Item) (*queries.ItemView, error) {
	const q = `
		UPDATE items
		SET name = $2, description = $3, available = $4, updated_at = now()
		WHERE id = $1
		RETURNING id, owner_id, name, description, available, request_id`

	view, err := scanItemView(r.db.QueryRow(ctx, q,
		i.ID(), i.Name(), i.Description(), i.Available(),
	))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update item", err)
	}
	return view, nil
}

func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM items WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	const q = `
		SELECT id, owner_id, name, description, available, request_id
		FROM items WHERE id = $1`

	view, err := scanItemView(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item view", err)
	}
	return view, nil
}

func (r *ItemRepository) ListViewsByOwner(ctx context.Context, ownerID uuid.UUID, p queries.Page) ([]*queries.ItemView, error) {
	const q = `
		SELECT id, owner_id, name, description, available, request_id
		FROM items
		WHERE owner_id = $1
		ORDER BY created_at
		OFFSET $2 LIMIT $3`

	return r.listViews(ctx, q, ownerID, p.From, p.Size)
}

func (r *ItemRepository) SearchViews(ctx context.Context, text string, p queries.Page) ([]*queries.ItemView, error) {
	const q = `
		SELECT id, owner_id, name, description, available, request_id
		FROM items
		WHERE available
		  AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY created_at
		OFFSET $2 LIMIT $3`

	return r.listViews(ctx, q, text, p.From, p.Size)
}

// ListFitsByRequests resolves, for a batch of requests, the items that
// were listed in answer to each.
func (r *ItemRepository) ListFitsByRequests(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID][]queries.RequestFit, error) {
	const q = `
		SELECT id, owner_id, name, description, available, request_id
		FROM items
		WHERE request_id = ANY($1)
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, q, requestIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by requests", err)
	}
	defer rows.Close()

	fits := make(map[uuid.UUID][]queries.RequestFit)
	for rows.Next() {
		var f queries.RequestFit
		if err := rows.Scan(&f.ID, &f.OwnerID, &f.Name, &f.Description, &f.Available, &f.RequestID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request fit row", err)
		}
		fits[f.RequestID] = append(fits[f.RequestID], f)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read request fit rows", err)
	}
	return fits, nil
}

func (r *ItemRepository) listViews(ctx context.Context, q string, args ...any) ([]*queries.ItemView, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	views := []*queries.ItemView{}
	for rows.Next() {
		view, err := scanItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItemView(row rowScanner) (*queries.ItemView, error) {
	var view queries.ItemView
	err := row.Scan(
		&view.ID, &view.OwnerID, &view.Name, &view.Description, &view.Available, &view.RequestID,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

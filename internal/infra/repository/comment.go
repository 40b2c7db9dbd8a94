package repository

import (
	"context"

	"gearshare/internal/domain/item"
	"gearshare/internal/infra"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentRepository struct {
	db *pgxpool.Pool
}

func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *item.Comment) (*queries.CommentView, error) {
	const q = `
		INSERT INTO comments (id, item_id, author_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, q, c.ID(), c.ItemID(), c.AuthorID(), c.Text(), c.CreatedAt())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create comment", err)
	}

	const view = `
		SELECT c.id, u.name, c.text, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = $1`

	var v queries.CommentView
	err = r.db.QueryRow(ctx, view, c.ID()).Scan(&v.ID, &v.AuthorName, &v.Text, &v.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read created comment", err)
	}
	return &v, nil
}

func (r *CommentRepository) ListByItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]queries.CommentView, error) {
	const q = `
		SELECT c.id, c.item_id, u.name, c.text, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = ANY($1)
		ORDER BY c.created_at DESC`

	rows, err := r.db.Query(ctx, q, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	defer rows.Close()

	byItem := make(map[uuid.UUID][]queries.CommentView)
	for rows.Next() {
		var (
			itemID uuid.UUID
			v      queries.CommentView
		)
		if err := rows.Scan(&v.ID, &itemID, &v.AuthorName, &v.Text, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		byItem[itemID] = append(byItem[itemID], v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read comment rows", err)
	}
	return byItem, nil
}

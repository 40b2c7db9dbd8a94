package queries

import (
	"context"

	"gearshare/internal/infra"

	"github.com/google/uuid"
)

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
}

type userQueriesImpl struct {
	users UserReadStore
}

func NewUserQueries(users UserReadStore) UserQueries {
	return &userQueriesImpl{users: users}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	view, err := q.users.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *userQueriesImpl) List(ctx context.Context) ([]*UserView, error) {
	return q.users.ListViews(ctx)
}

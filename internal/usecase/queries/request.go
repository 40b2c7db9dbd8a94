package queries

import (
	"context"

	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRequestNotFound = errs.New("item request not found")

// RequestReadStore lists requests newest first.
type RequestReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	ListViewsByAuthor(ctx context.Context, authorID uuid.UUID, p Page) ([]*RequestView, error)
	ListViewsExcludingAuthor(ctx context.Context, authorID uuid.UUID, p Page) ([]*RequestView, error)
}

// RequestFitStore resolves the items listed in answer to requests, one
// round trip for the whole batch.
type RequestFitStore interface {
	ListFitsByRequests(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID][]RequestFit, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, callerID, requestID uuid.UUID) (*RequestView, error)
	ListOwn(ctx context.Context, authorID uuid.UUID, p Page) ([]*RequestView, error)
	ListOthers(ctx context.Context, callerID uuid.UUID, p Page) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	requests RequestReadStore
	fits     RequestFitStore
	users    UserReadStore
}

func NewRequestQueries(requests RequestReadStore, fits RequestFitStore, users UserReadStore) RequestQueries {
	return &requestQueriesImpl{requests: requests, fits: fits, users: users}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, callerID, requestID uuid.UUID) (*RequestView, error) {
	if err := q.requireUser(ctx, callerID); err != nil {
		return nil, err
	}

	view, err := q.requests.FindViewByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	if err := q.attachFits(ctx, []*RequestView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *requestQueriesImpl) ListOwn(ctx context.Context, authorID uuid.UUID, p Page) ([]*RequestView, error) {
	if err := q.requireUser(ctx, authorID); err != nil {
		return nil, err
	}

	views, err := q.requests.ListViewsByAuthor(ctx, authorID, p)
	if err != nil {
		return nil, err
	}
	if err := q.attachFits(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

// ListOthers pages through every request the caller did not author.
func (q *requestQueriesImpl) ListOthers(ctx context.Context, callerID uuid.UUID, p Page) ([]*RequestView, error) {
	if err := q.requireUser(ctx, callerID); err != nil {
		return nil, err
	}

	views, err := q.requests.ListViewsExcludingAuthor(ctx, callerID, p)
	if err != nil {
		return nil, err
	}
	if err := q.attachFits(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (q *requestQueriesImpl) attachFits(ctx context.Context, views []*RequestView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}

	fits, err := q.fits.ListFitsByRequests(ctx, ids)
	if err != nil {
		return err
	}
	for _, v := range views {
		if items := fits[v.ID]; items != nil {
			v.Items = items
		} else {
			v.Items = []RequestFit{}
		}
	}
	return nil
}

func (q *requestQueriesImpl) requireUser(ctx context.Context, id uuid.UUID) error {
	if _, err := q.users.FindViewByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

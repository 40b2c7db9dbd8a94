package queries

import (
	"bytes"
	"context"
	"strings"
	"time"

	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrItemNotFound = errs.New("item not found")

// ItemReadStore returns bare item views; bookings and comments are
// attached by the projector.
type ItemReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	ListViewsByOwner(ctx context.Context, ownerID uuid.UUID, p Page) ([]*ItemView, error)
	// SearchViews matches name or description case-insensitively and only
	// returns available items.
	SearchViews(ctx context.Context, text string, p Page) ([]*ItemView, error)
}

type CommentReadStore interface {
	// ListByItems returns comments for all given items in one round trip,
	// newest first within each item.
	ListByItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]CommentView, error)
}

// ProjectionBookingStore supplies the booking rows the availability
// projector derives last/next from. Both listings are start-descending
// and unpaginated; the owner variant batches every item of the owner
// into a single query so the dashboard cost does not grow with the item
// count.
type ProjectionBookingStore interface {
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]*BookingView, error)
	ListByOwnerItems(ctx context.Context, ownerID uuid.UUID) ([]*BookingView, error)
}

// ItemViewCache holds viewer-independent item projections (no booking
// data, so nothing owner-only can leak from it). Get returns nil on miss.
type ItemViewCache interface {
	Get(ctx context.Context, itemID uuid.UUID) (*ItemView, error)
	Set(ctx context.Context, view *ItemView) error
	Invalidate(ctx context.Context, itemID uuid.UUID) error
}

type ItemQueries interface {
	GetByID(ctx context.Context, itemID, viewerID uuid.UUID) (*ItemView, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, p Page) ([]*ItemView, error)
	Search(ctx context.Context, text string, p Page) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	items    ItemReadStore
	bookings ProjectionBookingStore
	comments CommentReadStore
	users    UserReadStore
	cache    ItemViewCache
	clock    clock.Clock
}

func NewItemQueries(
	items ItemReadStore,
	bookings ProjectionBookingStore,
	comments CommentReadStore,
	users UserReadStore,
	cache ItemViewCache,
	clk clock.Clock,
) ItemQueries {
	return &itemQueriesImpl{
		items:    items,
		bookings: bookings,
		comments: comments,
		users:    users,
		cache:    cache,
		clock:    clk,
	}
}

// GetByID projects a single item. Booking info (lastBooking/nextBooking)
// is attached only for the owner; this is a privacy rule, not an
// authorization failure, so non-owners simply get the fields omitted.
func (q *itemQueriesImpl) GetByID(ctx context.Context, itemID, viewerID uuid.UUID) (*ItemView, error) {
	if err := q.requireUser(ctx, viewerID); err != nil {
		return nil, err
	}

	if cached, err := q.cache.Get(ctx, itemID); err == nil && cached != nil {
		if cached.OwnerID != viewerID {
			return cached, nil
		}
		// Owner views bypass the cached copy since it never carries
		// booking info.
	}

	view, err := q.items.FindViewByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	comments, err := q.comments.ListByItems(ctx, []uuid.UUID{itemID})
	if err != nil {
		return nil, err
	}
	view.Comments = commentsOrEmpty(comments[itemID])

	if view.OwnerID != viewerID {
		// Best-effort: a failed cache write never fails the read.
		_ = q.cache.Set(ctx, view)
		return view, nil
	}

	rows, err := q.bookings.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	view.LastBooking, view.NextBooking = projectLastNext(rows, itemID, q.clock.Now())
	return view, nil
}

// ListForOwner is the owner's dashboard: every item carries last/next
// booking and comments. Bookings are fetched once for the whole owner,
// not per item.
func (q *itemQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID, p Page) ([]*ItemView, error) {
	if err := q.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}

	views, err := q.items.ListViewsByOwner(ctx, ownerID, p)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return []*ItemView{}, nil
	}

	rows, err := q.bookings.ListByOwnerItems(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	comments, err := q.comments.ListByItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	for _, v := range views {
		v.LastBooking, v.NextBooking = projectLastNext(rows, v.ID, now)
		v.Comments = commentsOrEmpty(comments[v.ID])
	}
	return views, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string, p Page) ([]*ItemView, error) {
	if strings.TrimSpace(text) == "" {
		return []*ItemView{}, nil
	}
	views, err := q.items.SearchViews(ctx, text, p)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		v.Comments = []CommentView{}
	}
	return views, nil
}

func (q *itemQueriesImpl) requireUser(ctx context.Context, id uuid.UUID) error {
	if _, err := q.users.FindViewByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// projectLastNext derives the most recently concluded and the soonest
// upcoming booking for one item from rows that may span several items.
// lastBooking: greatest end among end < now; nextBooking: smallest start
// among start > now. Ties break toward the larger id so the pick is
// deterministic.
func projectLastNext(rows []*BookingView, itemID uuid.UUID, now time.Time) (last, next *BookingRef) {
	var lastRow, nextRow *BookingView
	for _, row := range rows {
		if row.Item.ID != itemID {
			continue
		}
		if row.End.Before(now) {
			if lastRow == nil || row.End.After(lastRow.End) ||
				(row.End.Equal(lastRow.End) && greaterID(row.ID, lastRow.ID)) {
				lastRow = row
			}
		}
		if row.Start.After(now) {
			if nextRow == nil || row.Start.Before(nextRow.Start) ||
				(row.Start.Equal(nextRow.Start) && greaterID(row.ID, nextRow.ID)) {
				nextRow = row
			}
		}
	}
	return toBookingRef(lastRow), toBookingRef(nextRow)
}

func toBookingRef(row *BookingView) *BookingRef {
	if row == nil {
		return nil
	}
	return &BookingRef{
		ID:       row.ID,
		BookerID: row.Booker.ID,
		Start:    row.Start,
		End:      row.End,
	}
}

func greaterID(a, b uuid.UUID) bool {
	return bytes.Compare(a[:], b[:]) > 0
}

func commentsOrEmpty(cs []CommentView) []CommentView {
	if cs == nil {
		return []CommentView{}
	}
	return cs
}

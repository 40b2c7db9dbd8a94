package commands

import (
	"context"
	"time"

	"gearshare/internal/domain/item"
	"gearshare/internal/infra"
	"gearshare/internal/metrics"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound = errs.New("item request not found")
	ErrInvalidItemData = errs.New("item data is invalid")
	// ErrCommentNotAllowed covers both "never rented" and "rental not yet
	// concluded"; callers get a single answer.
	ErrCommentNotAllowed = errs.New("user has not finished renting this item")
	ErrInvalidComment    = errs.New("comment text is invalid")
)

type ItemCommands interface {
	Create(ctx context.Context, callerID uuid.UUID, name, description string, available bool, requestID *uuid.UUID) (*queries.ItemView, error)
	Update(ctx context.Context, callerID, itemID uuid.UUID, patch item.Patch) (*queries.ItemView, error)
	Delete(ctx context.Context, callerID, itemID uuid.UUID) error
	AddComment(ctx context.Context, callerID, itemID uuid.UUID, text string) (*queries.CommentView, error)
}

type itemCommandsImpl struct {
	items    ItemStore
	bookings BookingStore
	comments CommentStore
	requests RequestStore
	users    UserStore
	cache    queries.ItemViewCache
	clock    clock.Clock
}

func NewItemCommands(
	items ItemStore,
	bookings BookingStore,
	comments CommentStore,
	requests RequestStore,
	users UserStore,
	cache queries.ItemViewCache,
	clk clock.Clock,
) ItemCommands {
	return &itemCommandsImpl{
		items:    items,
		bookings: bookings,
		comments: comments,
		requests: requests,
		users:    users,
		cache:    cache,
		clock:    clk,
	}
}

func (c *itemCommandsImpl) Create(ctx context.Context, callerID uuid.UUID, name, description string, available bool, requestID *uuid.UUID) (*queries.ItemView, error) {
	if err := requireUser(ctx, c.users, callerID); err != nil {
		return nil, err
	}

	if requestID != nil {
		ok, err := c.requests.Exists(ctx, *requestID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrRequestNotFound
		}
	}

	itm, err := item.NewItem(callerID, name, description, available, requestID)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidItemData)
	}

	return c.items.Create(ctx, itm)
}

// Update applies a partial patch. A non-owner gets the same answer as a
// missing item; existence is not leaked through authorization.
func (c *itemCommandsImpl) Update(ctx context.Context, callerID, itemID uuid.UUID, patch item.Patch) (*queries.ItemView, error) {
	if err := requireUser(ctx, c.users, callerID); err != nil {
		return nil, err
	}

	snap, err := c.findOwned(ctx, callerID, itemID)
	if err != nil {
		return nil, err
	}

	itm := reconstruct(snap)
	itm.Apply(patch)

	view, err := c.items.Update(ctx, itm)
	if err != nil {
		return nil, err
	}

	_ = c.cache.Invalidate(ctx, itemID)
	return view, nil
}

func (c *itemCommandsImpl) Delete(ctx context.Context, callerID, itemID uuid.UUID) error {
	if err := requireUser(ctx, c.users, callerID); err != nil {
		return err
	}

	if _, err := c.findOwned(ctx, callerID, itemID); err != nil {
		return err
	}

	if err := c.items.Delete(ctx, itemID); err != nil {
		return err
	}

	_ = c.cache.Invalidate(ctx, itemID)
	return nil
}

// AddComment is gated: the caller must hold an APPROVED booking of the
// item whose period concluded strictly before now.
func (c *itemCommandsImpl) AddComment(ctx context.Context, callerID, itemID uuid.UUID, text string) (*queries.CommentView, error) {
	if err := requireUser(ctx, c.users, callerID); err != nil {
		return nil, err
	}

	if _, err := c.items.FindByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	now := c.clock.Now()
	ok, err := c.bookings.HasConcludedApproved(ctx, itemID, callerID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCommentNotAllowed
	}

	cmt, err := item.NewComment(itemID, callerID, text, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidComment)
	}

	view, err := c.comments.Create(ctx, cmt)
	if err != nil {
		return nil, err
	}

	_ = c.cache.Invalidate(ctx, itemID)
	metrics.IncCommentAdded()
	return view, nil
}

func (c *itemCommandsImpl) findOwned(ctx context.Context, callerID, itemID uuid.UUID) (*ItemSnapshot, error) {
	snap, err := c.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if snap.OwnerID != callerID {
		return nil, ErrItemNotFound
	}
	return snap, nil
}


func reconstruct(snap *ItemSnapshot) *item.Item {
	return item.ReconstructItem(
		snap.ID,
		snap.OwnerID,
		snap.Name,
		snap.Description,
		snap.Available,
		snap.RequestID,
		// Timestamps are managed by the store on write.
		time.Time{}, time.Time{},
	)
}

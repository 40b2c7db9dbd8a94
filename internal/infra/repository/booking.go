package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingViewSelect = `
	SELECT b.id, i.id, i.name, i.owner_id, u.id, u.name,
	       b.start_date, b.end_date, b.status, b.created_at
	FROM bookings b
	JOIN items i ON i.id = b.item_id
	JOIN users u ON u.id = b.booker_id`

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (*queries.BookingView, error) {
	const q = `
		INSERT INTO bookings (id, item_id, booker_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, q,
		b.ID(), b.ItemID(), b.BookerID(), b.Period().Start(), b.Period().End(), string(b.Status()),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return r.FindViewByID(ctx, b.ID())
}

// Decide re-reads the booking under FOR UPDATE, runs fn against the
// locked state, and persists the status fn leaves behind. Everything
// happens in one transaction so concurrent decisions serialize.
func (r *BookingRepository) Decide(ctx context.Context, id uuid.UUID, fn func(b *booking.Booking, itemOwnerID uuid.UUID) error) (*queries.BookingView, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const lockQuery = `
		SELECT b.id, b.item_id, b.booker_id, b.start_date, b.end_date, b.status,
		       b.created_at, b.updated_at, i.owner_id
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		WHERE b.id = $1
		FOR UPDATE OF b`

	var (
		bookingID, itemID, bookerID, ownerID uuid.UUID
		start, end, createdAt, updatedAt     time.Time
		status                               string
	)
	err = tx.QueryRow(ctx, lockQuery, id).Scan(
		&bookingID, &itemID, &bookerID, &start, &end, &status, &createdAt, &updatedAt, &ownerID,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	b := booking.ReconstructBooking(
		bookingID, itemID, bookerID,
		booking.ReconstructDateRange(start, end),
		booking.Status(status),
		createdAt, updatedAt,
	)
	if err := fn(b, ownerID); err != nil {
		return nil, err
	}

	const update = `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`
	if _, err := tx.Exec(ctx, update, id, string(b.Status())); err != nil {
		return nil, infra.WrapRepoErr("failed to update booking status", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit decision", err)
	}

	return r.FindViewByID(ctx, id)
}

func (r *BookingRepository) HasConcludedApproved(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE item_id = $1 AND booker_id = $2 AND status = $3 AND end_date < $4
		)`

	var ok bool
	err := r.db.QueryRow(ctx, q, itemID, bookerID, string(booking.StatusApproved), now).Scan(&ok)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check concluded bookings", err)
	}
	return ok, nil
}

func (r *BookingRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	q := bookingViewSelect + ` WHERE b.id = $1`

	view, err := scanBookingView(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}
	return view, nil
}

func (r *BookingRepository) ListByBooker(ctx context.Context, bookerID uuid.UUID, f queries.BookingFilter, p queries.Page) ([]*queries.BookingView, error) {
	q, args := buildBookingQuery("b.booker_id", bookerID, f, &p)
	return r.listViews(ctx, q, args)
}

func (r *BookingRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, f queries.BookingFilter, p queries.Page) ([]*queries.BookingView, error) {
	q, args := buildBookingQuery("i.owner_id", ownerID, f, &p)
	return r.listViews(ctx, q, args)
}

func (r *BookingRepository) ListByItem(ctx context.Context, itemID uuid.UUID) ([]*queries.BookingView, error) {
	q, args := buildBookingQuery("b.item_id", itemID, queries.BookingFilter{}, nil)
	return r.listViews(ctx, q, args)
}

func (r *BookingRepository) ListByOwnerItems(ctx context.Context, ownerID uuid.UUID) ([]*queries.BookingView, error) {
	q, args := buildBookingQuery("i.owner_id", ownerID, queries.BookingFilter{}, nil)
	return r.listViews(ctx, q, args)
}

// buildBookingQuery assembles the filtered listing. subjectCol scopes the
// rows (booker vs item owner); the optional page appends the window.
// Ordering is always start descending.
func buildBookingQuery(subjectCol string, subjectID uuid.UUID, f queries.BookingFilter, p *queries.Page) (string, []any) {
	conds := []string{fmt.Sprintf("%s = $1", subjectCol)}
	args := []any{subjectID}

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Status != nil {
		add("b.status = $%d", string(*f.Status))
	}
	if f.StartedBefore != nil {
		add("b.start_date < $%d", *f.StartedBefore)
	}
	if f.StartsAfter != nil {
		add("b.start_date > $%d", *f.StartsAfter)
	}
	if f.EndedBefore != nil {
		add("b.end_date < $%d", *f.EndedBefore)
	}
	if f.EndsAfter != nil {
		add("b.end_date > $%d", *f.EndsAfter)
	}

	q := bookingViewSelect +
		"\n\tWHERE " + strings.Join(conds, " AND ") +
		"\n\tORDER BY b.start_date DESC"
	if p != nil {
		q += fmt.Sprintf("\n\tOFFSET $%d LIMIT $%d", len(args)+1, len(args)+2)
		args = append(args, p.From, p.Size)
	}
	return q, args
}

func (r *BookingRepository) listViews(ctx context.Context, q string, args []any) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := []*queries.BookingView{}
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return views, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view   queries.BookingView
		status string
	)
	err := row.Scan(
		&view.ID,
		&view.Item.ID, &view.Item.Name, &view.Item.OwnerID,
		&view.Booker.ID, &view.Booker.Name,
		&view.Start, &view.End, &status, &view.Created,
	)
	if err != nil {
		return nil, err
	}
	view.Status = booking.Status(status)
	return &view, nil
}

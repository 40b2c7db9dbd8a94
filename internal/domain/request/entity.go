package request

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyDescription = errors.New("request description cannot be empty")

// ItemRequest is a wish for an item that does not exist yet. Owners may
// answer it by listing an item that carries the request id.
type ItemRequest struct {
	id          uuid.UUID
	authorID    uuid.UUID
	description string
	createdAt   time.Time
}

func NewItemRequest(authorID uuid.UUID, description string, now time.Time) (*ItemRequest, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}

	return &ItemRequest{
		id:          uuid.New(),
		authorID:    authorID,
		description: description,
		createdAt:   now,
	}, nil
}

func (r *ItemRequest) ID() uuid.UUID        { return r.id }
func (r *ItemRequest) AuthorID() uuid.UUID  { return r.authorID }
func (r *ItemRequest) Description() string  { return r.description }
func (r *ItemRequest) CreatedAt() time.Time { return r.createdAt }

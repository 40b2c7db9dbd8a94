package item

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("item name cannot be empty")
	ErrEmptyDescription = errors.New("item description cannot be empty")
)

// Item is something an owner lists for others to rent. Availability is a
// manual flag controlled by the owner; booking activity never toggles it.
type Item struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	description string
	available   bool
	requestID   *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewItem(ownerID uuid.UUID, name, description string, available bool, requestID *uuid.UUID) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}

	return &Item{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
	}, nil
}

func ReconstructItem(
	id, ownerID uuid.UUID,
	name, description string,
	available bool,
	requestID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Patch carries the optional fields of a partial item update; nil fields
// keep their stored values.
type Patch struct {
	Name        *string
	Description *string
	Available   *bool
}

// Apply mutates the item with the non-nil patch fields. Blank name or
// description strings are ignored rather than rejected, matching the
// permissive PATCH surface.
func (i *Item) Apply(p Patch) {
	if p.Name != nil {
		if name := strings.TrimSpace(*p.Name); name != "" {
			i.name = name
		}
	}
	if p.Description != nil {
		if desc := strings.TrimSpace(*p.Description); desc != "" {
			i.description = desc
		}
	}
	if p.Available != nil {
		i.available = *p.Available
	}
}

func (i *Item) IsOwnedBy(userID uuid.UUID) bool {
	return i.ownerID == userID
}

func (i *Item) ID() uuid.UUID         { return i.id }
func (i *Item) OwnerID() uuid.UUID    { return i.ownerID }
func (i *Item) Name() string          { return i.name }
func (i *Item) Description() string   { return i.description }
func (i *Item) Available() bool       { return i.available }
func (i *Item) RequestID() *uuid.UUID { return i.requestID }
func (i *Item) CreatedAt() time.Time  { return i.createdAt }
func (i *Item) UpdatedAt() time.Time  { return i.updatedAt }

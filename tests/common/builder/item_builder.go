//go:build unit || e2e

package builder

import (
	domitem "gearshare/internal/domain/item"
	reqdto "gearshare/internal/handler/dto/request"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Name:        "Cordless Drill",
		Description: "18V drill with two batteries",
		Available:   true,
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) BuildDomain() (*domitem.Item, error) {
	return domitem.NewItem(b.OwnerID, b.Name, b.Description, b.Available, b.RequestID)
}

func (b *ItemBuilder) BuildSnapshot() *commands.ItemSnapshot {
	return &commands.ItemSnapshot{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
		RequestID:   b.RequestID,
	}
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
		RequestID:   b.RequestID,
		Comments:    []queries.CommentView{},
	}
}

func (b *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	available := b.Available
	return reqdto.CreateItemRequest{
		Name:        b.Name,
		Description: b.Description,
		Available:   &available,
		RequestID:   b.RequestID,
	}
}

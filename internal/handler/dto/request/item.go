package request

import (
	"gearshare/internal/domain/item"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Available   *bool      `json:"available" binding:"required"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

func (r UpdateItemRequest) ToPatch() item.Patch {
	return item.Patch{
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
	}
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

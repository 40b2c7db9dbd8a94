package response

import (
	"time"

	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemRequestResponse struct {
	ID          uuid.UUID    `json:"id"`
	AuthorID    uuid.UUID    `json:"authorId"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"created"`
	Items       []RequestFit `json:"items"`
}

type RequestFit struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	RequestID   uuid.UUID `json:"requestId"`
}

func FromRequestView(view *queries.RequestView) *ItemRequestResponse {
	var resp ItemRequestResponse
	_ = copier.Copy(&resp, view)
	if resp.Items == nil {
		resp.Items = []RequestFit{}
	}
	return &resp
}

func FromRequestViews(views []*queries.RequestView) []*ItemRequestResponse {
	resps := make([]*ItemRequestResponse, len(views))
	for i, v := range views {
		resps[i] = FromRequestView(v)
	}
	return resps
}

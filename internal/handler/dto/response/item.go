package response

import (
	"time"

	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID          uuid.UUID          `json:"id"`
	OwnerID     uuid.UUID          `json:"ownerId"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Available   bool               `json:"available"`
	RequestID   *uuid.UUID         `json:"requestId,omitempty"`
	LastBooking *BookingRef        `json:"lastBooking,omitempty"`
	NextBooking *BookingRef        `json:"nextBooking,omitempty"`
	Comments    []*CommentResponse `json:"comments"`
}

type BookingRef struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created"`
}

func FromItemView(view *queries.ItemView) *ItemResponse {
	var resp ItemResponse
	_ = copier.Copy(&resp, view)
	if resp.Comments == nil {
		resp.Comments = []*CommentResponse{}
	}
	return &resp
}

func FromItemViews(views []*queries.ItemView) []*ItemResponse {
	resps := make([]*ItemResponse, len(views))
	for i, v := range views {
		resps[i] = FromItemView(v)
	}
	return resps
}

func FromCommentView(view *queries.CommentView) *CommentResponse {
	var resp CommentResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

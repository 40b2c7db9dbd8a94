package response

import (
	"time"

	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID      uuid.UUID  `json:"id"`
	Item    ItemRef    `json:"item"`
	Booker  UserRef    `json:"booker"`
	Start   time.Time  `json:"start"`
	End     time.Time  `json:"end"`
	Status  string     `json:"status"`
	Created time.Time  `json:"created"`
}

type ItemRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:      view.ID,
		Item:    ItemRef{ID: view.Item.ID, Name: view.Item.Name},
		Booker:  UserRef{ID: view.Booker.ID, Name: view.Booker.Name},
		Start:   view.Start,
		End:     view.End,
		Status:  string(view.Status),
		Created: view.Created,
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	resps := make([]*BookingResponse, len(views))
	for i, v := range views {
		resps[i] = FromBookingView(v)
	}
	return resps
}

package response

import (
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

func FromUserView(view *queries.UserView) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromUserViews(views []*queries.UserView) []*UserResponse {
	resps := make([]*UserResponse, len(views))
	for i, v := range views {
		resps[i] = FromUserView(v)
	}
	return resps
}

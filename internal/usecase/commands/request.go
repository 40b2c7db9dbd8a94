package commands

import (
	"context"

	"gearshare/internal/domain/request"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrInvalidRequestData = errs.New("request data is invalid")

type RequestCommands interface {
	Create(ctx context.Context, callerID uuid.UUID, description string) (*queries.RequestView, error)
}

type requestCommandsImpl struct {
	requests RequestStore
	users    UserStore
	clock    clock.Clock
}

func NewRequestCommands(requests RequestStore, users UserStore, clk clock.Clock) RequestCommands {
	return &requestCommandsImpl{requests: requests, users: users, clock: clk}
}

func (c *requestCommandsImpl) Create(ctx context.Context, callerID uuid.UUID, description string) (*queries.RequestView, error) {
	if err := requireUser(ctx, c.users, callerID); err != nil {
		return nil, err
	}

	req, err := request.NewItemRequest(callerID, description, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequestData)
	}

	return c.requests.Create(ctx, req)
}

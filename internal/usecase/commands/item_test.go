//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gearshare/internal/domain/item"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"
	"gearshare/tests/common/builder"
	commandsmock "gearshare/tests/mock/commands"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ItemCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockItems    *commandsmock.MockItemStore
	mockBookings *commandsmock.MockBookingStore
	mockComments *commandsmock.MockCommentStore
	mockRequests *commandsmock.MockRequestStore
	mockUsers    *commandsmock.MockUserStore
	mockCache    *queriesmock.MockItemViewCache
	clock        *clock.MockClock
	commands     commands.ItemCommands
}

func (s *ItemCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockItems = commandsmock.NewMockItemStore(s.mockCtrl)
	s.mockBookings = commandsmock.NewMockBookingStore(s.mockCtrl)
	s.mockComments = commandsmock.NewMockCommentStore(s.mockCtrl)
	s.mockRequests = commandsmock.NewMockRequestStore(s.mockCtrl)
	s.mockUsers = commandsmock.NewMockUserStore(s.mockCtrl)
	s.mockCache = queriesmock.NewMockItemViewCache(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))
	s.commands = commands.NewItemCommands(
		s.mockItems, s.mockBookings, s.mockComments, s.mockRequests, s.mockUsers, s.mockCache, s.clock,
	)
}

func (s *ItemCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestItemCommandsSuite(t *testing.T) {
	suite.Run(t, new(ItemCommandsTestSuite))
}

func (s *ItemCommandsTestSuite) expectUser(id uuid.UUID) {
	s.mockUsers.EXPECT().FindByID(gomock.Any(), id).
		Return(&commands.UserSnapshot{ID: id}, nil).Times(1)
}

func (s *ItemCommandsTestSuite) TestCreate() {
	s.Run("success", func() {
		callerID := uuid.New()

		s.expectUser(callerID)
		s.mockItems.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, it *item.Item) (*queries.ItemView, error) {
				s.Equal(callerID, it.OwnerID())
				s.Equal("Ladder", it.Name())
				return builder.NewItemBuilder().BuildView(), nil
			}).Times(1)

		_, err := s.commands.Create(context.Background(), callerID, "Ladder", "3m aluminium", true, nil)
		s.Require().NoError(err)
	})

	s.Run("request binding is verified", func() {
		callerID := uuid.New()
		requestID := uuid.New()

		s.expectUser(callerID)
		s.mockRequests.EXPECT().Exists(gomock.Any(), requestID).Return(false, nil).Times(1)

		_, err := s.commands.Create(context.Background(), callerID, "Ladder", "3m aluminium", true, &requestID)
		s.Require().ErrorIs(err, commands.ErrRequestNotFound)
	})

	s.Run("blank name", func() {
		callerID := uuid.New()

		s.expectUser(callerID)

		_, err := s.commands.Create(context.Background(), callerID, "  ", "3m aluminium", true, nil)
		s.Require().ErrorIs(err, commands.ErrInvalidItemData)
	})

	s.Run("unknown caller", func() {
		callerID := uuid.New()
		s.mockUsers.EXPECT().FindByID(gomock.Any(), callerID).
			Return(nil, notFoundErr()).Times(1)

		_, err := s.commands.Create(context.Background(), callerID, "Ladder", "3m aluminium", true, nil)
		s.Require().ErrorIs(err, commands.ErrUserNotFound)
	})
}

func (s *ItemCommandsTestSuite) TestUpdate() {
	strPtr := func(v string) *string { return &v }

	s.Run("owner patch is applied and cache invalidated", func() {
		snap := builder.NewItemBuilder().BuildSnapshot()

		s.expectUser(snap.OwnerID)
		s.mockItems.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil).Times(1)
		s.mockItems.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, it *item.Item) (*queries.ItemView, error) {
				s.Equal("Impact Driver", it.Name())
				return builder.NewItemBuilder().BuildView(), nil
			}).Times(1)
		s.mockCache.EXPECT().Invalidate(gomock.Any(), snap.ID).Return(nil).Times(1)

		_, err := s.commands.Update(context.Background(), snap.OwnerID, snap.ID, item.Patch{Name: strPtr("Impact Driver")})
		s.Require().NoError(err)
	})

	s.Run("non-owner gets not found", func() {
		callerID := uuid.New()
		snap := builder.NewItemBuilder().BuildSnapshot()

		s.expectUser(callerID)
		s.mockItems.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil).Times(1)

		_, err := s.commands.Update(context.Background(), callerID, snap.ID, item.Patch{})
		s.Require().ErrorIs(err, commands.ErrItemNotFound)
	})
}

func (s *ItemCommandsTestSuite) TestDelete() {
	s.Run("owner delete invalidates the cache", func() {
		snap := builder.NewItemBuilder().BuildSnapshot()

		s.expectUser(snap.OwnerID)
		s.mockItems.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil).Times(1)
		s.mockItems.EXPECT().Delete(gomock.Any(), snap.ID).Return(nil).Times(1)
		s.mockCache.EXPECT().Invalidate(gomock.Any(), snap.ID).Return(nil).Times(1)

		s.Require().NoError(s.commands.Delete(context.Background(), snap.OwnerID, snap.ID))
	})

	s.Run("non-owner gets not found", func() {
		callerID := uuid.New()
		snap := builder.NewItemBuilder().BuildSnapshot()

		s.expectUser(callerID)
		s.mockItems.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil).Times(1)

		err := s.commands.Delete(context.Background(), callerID, snap.ID)
		s.Require().ErrorIs(err, commands.ErrItemNotFound)
	})
}

func (s *ItemCommandsTestSuite) TestAddComment() {
	s.Run("concluded approved rental may comment", func() {
		callerID := uuid.New()
		snap := builder.NewItemBuilder().BuildSnapshot()
		now := s.clock.Now()

		s.expectUser(callerID)
		s.mockItems.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil).Times(1)
		s.mockBookings.EXPECT().HasConcludedApproved(gomock.Any(), snap.ID, callerID, now).
			Return(true, nil).Times(1)
		s.mockComments.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *item.Comment) (*queries.CommentView, error) {
				s.Equal("Worked great", c.Text())
				s.Equal(callerID, c.AuthorID())
				return &queries.CommentView{ID: c.ID(), Text: c.Text()}, nil
			}).Times(1)
		s.mockCache.EXPECT().Invalidate(gomock.Any(), snap.ID).Return(nil).Times(1)

		view, err := s.commands.AddComment(context.Background(), callerID, snap.ID, "Worked great")
		s.Require().NoError(err)
		s.Equal("Worked great", view.Text)
	})

	s.Run("no concluded approved rental", func() {
		callerID := uuid.New()
		snap := builder.NewItemBuilder().BuildSnapshot()

		s.expectUser(callerID)
		s.mockItems.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil).Times(1)
		s.mockBookings.EXPECT().HasConcludedApproved(gomock.Any(), snap.ID, callerID, s.clock.Now()).
			Return(false, nil).Times(1)

		_, err := s.commands.AddComment(context.Background(), callerID, snap.ID, "Worked great")
		s.Require().ErrorIs(err, commands.ErrCommentNotAllowed)
	})

	s.Run("missing item", func() {
		callerID := uuid.New()
		itemID := uuid.New()

		s.expectUser(callerID)
		s.mockItems.EXPECT().FindByID(gomock.Any(), itemID).
			Return(nil, notFoundErr()).Times(1)

		_, err := s.commands.AddComment(context.Background(), callerID, itemID, "Worked great")
		s.Require().ErrorIs(err, commands.ErrItemNotFound)
	})

	s.Run("blank text fails validation after the gate", func() {
		callerID := uuid.New()
		snap := builder.NewItemBuilder().BuildSnapshot()

		s.expectUser(callerID)
		s.mockItems.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil).Times(1)
		s.mockBookings.EXPECT().HasConcludedApproved(gomock.Any(), snap.ID, callerID, s.clock.Now()).
			Return(true, nil).Times(1)

		_, err := s.commands.AddComment(context.Background(), callerID, snap.ID, "   ")
		s.Require().ErrorIs(err, commands.ErrInvalidComment)
	})
}

//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"gearshare/internal/domain/booking"
	"gearshare/internal/handler/api"
	"gearshare/internal/handler/middleware"
	resdto "gearshare/internal/handler/dto/response"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"
	"gearshare/tests/common/builder"
	"gearshare/tests/common/httptest"
	"gearshare/tests/common/testutil"
	commandsmock "gearshare/tests/mock/commands"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	withSharer := s.router.Group("", middleware.RequireSharer())
	withSharer.POST("/bookings", s.handler.Create)
	withSharer.GET("/bookings", s.handler.ListForBooker)
	withSharer.GET("/bookings/owner", s.handler.ListForOwner)
	withSharer.GET("/bookings/:id", s.handler.Get)
	withSharer.PATCH("/bookings/:id", s.handler.Decide)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	callerID := uuid.New()

	bb := builder.NewBookingBuilder()
	reqBody := bb.BuildCreateRequestDTO()
	returnView := bb.BuildView()

	s.Run("success: returns 201 Created with BookingResponse", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), callerID, reqBody.ItemID, reqBody.Start, reqBody.End).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, callerID)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(string(booking.StatusWaiting), response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: itemId", mutate: testutil.Field("itemId", nil)},
			{name: "missing field: start", mutate: testutil.Field("start", nil)},
			{name: "missing field: end", mutate: testutil.Field("end", nil)},
			{name: "malformed itemId", mutate: testutil.Field("itemId", "not-a-uuid")},
			{name: "malformed start", mutate: testutil.Field("start", "yesterday")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, callerID)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request without identity header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, uuid.Nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "X-Sharer-User-Id header is required")
	})

	s.Run("error: 400 Bad Request for malformed identity header", func() {
		rec := httptest.PerformRequestRawHeader(s.T(), s.router, http.MethodPost, url, reqBody, "not-a-uuid")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "X-Sharer-User-Id must be a valid UUID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown caller",
				commandsError:  commands.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
			},
			{
				name:           "missing item",
				commandsError:  commands.ErrItemNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Item not found",
			},
			{
				name:           "own item looks like a missing item",
				commandsError:  commands.ErrOwnItemBooking,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Item not found",
			},
			{
				name:           "unavailable item",
				commandsError:  commands.ErrItemNotAvailable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Item is not available for booking",
			},
			{
				name:           "invalid dates",
				commandsError:  commands.ErrInvalidBookingDates,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking dates",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Create(gomock.Any(), callerID, reqBody.ItemID, reqBody.Start, reqBody.End).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, callerID)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDecide
// ================================================================================

func (s *BookingHandlerTestSuite) TestDecide() {
	ownerID := uuid.New()
	returnView := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Status = booking.StatusApproved
	}).BuildView()
	url := "/bookings/" + returnView.ID.String()

	s.Run("success: approves with approved=true", func() {
		s.mockCommands.EXPECT().
			Decide(gomock.Any(), ownerID, returnView.ID, true, booking.AccessOwner).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=true", nil, ownerID)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(string(booking.StatusApproved), response.Status)
	})

	s.Run("success: rejects with approved=false", func() {
		s.mockCommands.EXPECT().
			Decide(gomock.Any(), ownerID, returnView.ID, false, booking.AccessOwner).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=false", nil, ownerID)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request without approved parameter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, ownerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "approved parameter must be true or false")
	})

	s.Run("error: 400 Bad Request for invalid booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/invalid-uuid?approved=true", nil, ownerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id format")
	})

	s.Run("error: access denied looks like a missing booking", func() {
		s.mockCommands.EXPECT().
			Decide(gomock.Any(), ownerID, returnView.ID, true, booking.AccessOwner).
			Return(nil, commands.ErrBookingAccessDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=true", nil, ownerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 Bad Request when already approved", func() {
		s.mockCommands.EXPECT().
			Decide(gomock.Any(), ownerID, returnView.ID, true, booking.AccessOwner).
			Return(nil, commands.ErrAlreadyDecided).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=true", nil, ownerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Booking is already approved")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	callerID := uuid.New()
	returnView := builder.NewBookingBuilder().BuildView()
	url := "/bookings/" + returnView.ID.String()

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), callerID, returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, callerID)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Item.ID, response.Item.ID)
		s.Equal(returnView.Booker.ID, response.Booker.ID)
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), callerID, returnView.ID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, callerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestListForBooker / TestListForOwner
// ================================================================================

func (s *BookingHandlerTestSuite) TestListForBooker() {
	callerID := uuid.New()
	returnViews := []*queries.BookingView{builder.NewBookingBuilder().BuildView()}

	s.Run("success: defaults to ALL with the standard window", func() {
		s.mockQueries.EXPECT().
			ListForBooker(gomock.Any(), callerID, booking.StateAll, queries.Page{From: 0, Size: 10}).
			Return(returnViews, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, callerID)

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: state and window pass through", func() {
		s.mockQueries.EXPECT().
			ListForBooker(gomock.Any(), callerID, booking.StateFuture, queries.Page{From: 20, Size: 5}).
			Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=FUTURE&from=20&size=5", nil, callerID)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for unknown state", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=UNSUPPORTED_STATUS", nil, callerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown state: UNSUPPORTED_STATUS")
	})

	s.Run("error: 400 Bad Request for a negative window", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?from=-1", nil, callerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid pagination window")
	})
}

func (s *BookingHandlerTestSuite) TestListForOwner() {
	callerID := uuid.New()

	s.Run("success: owner listing uses its own query", func() {
		s.mockQueries.EXPECT().
			ListForOwner(gomock.Any(), callerID, booking.StateWaiting, queries.Page{From: 0, Size: 10}).
			Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner?state=WAITING", nil, callerID)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 Not Found for unknown owner", func() {
		s.mockQueries.EXPECT().
			ListForOwner(gomock.Any(), callerID, booking.StateAll, queries.Page{From: 0, Size: 10}).
			Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner", nil, callerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}

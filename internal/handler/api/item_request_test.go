//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"gearshare/internal/handler/api"
	"gearshare/internal/handler/middleware"
	resdto "gearshare/internal/handler/dto/response"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"
	"gearshare/tests/common/httptest"
	commandsmock "gearshare/tests/mock/commands"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ItemRequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRequestCommands
	mockQueries  *queriesmock.MockRequestQueries
	handler      *api.ItemRequestHandler
}

func (s *ItemRequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRequestQueries(s.mockCtrl)
	s.handler = api.NewItemRequestHandler(s.mockCommands, s.mockQueries)

	withSharer := s.router.Group("", middleware.RequireSharer())
	withSharer.POST("/requests", s.handler.Create)
	withSharer.GET("/requests", s.handler.ListOwn)
	withSharer.GET("/requests/all", s.handler.ListOthers)
	withSharer.GET("/requests/:id", s.handler.Get)
}

func (s *ItemRequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestItemRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(ItemRequestHandlerTestSuite))
}

func requestView(authorID uuid.UUID) *queries.RequestView {
	return &queries.RequestView{
		ID:          uuid.New(),
		AuthorID:    authorID,
		Description: "Need a tile cutter for a weekend",
		CreatedAt:   time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
		Items:       []queries.RequestFit{},
	}
}

func (s *ItemRequestHandlerTestSuite) TestCreate() {
	callerID := uuid.New()
	returnView := requestView(callerID)
	reqBody := map[string]any{"description": returnView.Description}

	s.Run("success: returns 201 Created with ItemRequestResponse", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), callerID, returnView.Description).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests", reqBody, callerID)

		var response resdto.ItemRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.NotNil(response.Items)
	})

	s.Run("error: 400 Bad Request for missing description", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests", map[string]any{}, callerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 Bad Request for whitespace description", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), callerID, "   ").
			Return(nil, commands.ErrInvalidRequestData).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests", map[string]any{"description": "   "}, callerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request description")
	})

	s.Run("error: 404 Not Found for unknown caller", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), callerID, returnView.Description).
			Return(nil, commands.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests", reqBody, callerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}

func (s *ItemRequestHandlerTestSuite) TestGet() {
	callerID := uuid.New()
	returnView := requestView(uuid.New())
	url := "/requests/" + returnView.ID.String()

	s.Run("success: returns 200 OK with fits attached", func() {
		returnView.Items = []queries.RequestFit{{
			ID:        uuid.New(),
			OwnerID:   uuid.New(),
			Name:      "Tile Cutter",
			Available: true,
			RequestID: returnView.ID,
		}}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), callerID, returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, callerID)

		var response resdto.ItemRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Equal("Tile Cutter", response.Items[0].Name)
	})

	s.Run("error: 404 Not Found for missing request", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), callerID, returnView.ID).
			Return(nil, queries.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, callerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Item request not found")
	})
}

func (s *ItemRequestHandlerTestSuite) TestListOwn() {
	callerID := uuid.New()

	s.Run("success: lists the caller's requests", func() {
		s.mockQueries.EXPECT().
			ListOwn(gomock.Any(), callerID, queries.Page{From: 0, Size: 10}).
			Return([]*queries.RequestView{requestView(callerID)}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests", nil, callerID)

		var response []resdto.ItemRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})
}

func (s *ItemRequestHandlerTestSuite) TestListOthers() {
	callerID := uuid.New()

	s.Run("success: window passes through", func() {
		s.mockQueries.EXPECT().
			ListOthers(gomock.Any(), callerID, queries.Page{From: 10, Size: 20}).
			Return([]*queries.RequestView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/all?from=10&size=20", nil, callerID)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

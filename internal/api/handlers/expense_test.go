package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expense-portal-backend/internal/api/handlers"
	"expense-portal-backend/internal/database/models"
	apperrors "expense-portal-backend/internal/errors"
	"expense-portal-backend/internal/mocks"
	"expense-portal-backend/internal/service"
	"expense-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ExpenseHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockExpenseServiceInterface
	http        *testutils.HTTPTestSuite

	callerID uuid.UUID
	orgID    uuid.UUID
}

func (suite *ExpenseHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockExpenseServiceInterface(suite.ctrl)
	suite.callerID = uuid.New()
	suite.orgID = uuid.New()

	handler := handlers.NewExpenseHandler(suite.mockService)

	suite.http = testutils.SetupHTTPTest()
	// Stand-in for the auth middleware: inject the caller identity directly
	suite.http.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.callerID)
		c.Next()
	})
	suite.http.Router.POST("/organizations/:id/expenses", handler.SubmitExpense)
	suite.http.Router.GET("/organizations/:id/expenses", handler.ListExpenses)
	suite.http.Router.GET("/organizations/:id/expenses/review-queue", handler.ReviewQueue)
	suite.http.Router.GET("/expenses/:id", handler.GetExpense)
}

func (suite *ExpenseHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ExpenseHandlerTestSuite) submitBody(amount int64) map[string]interface{} {
	return map[string]interface{}{
		"category_id": uuid.New(),
		"amount":      amount,
		"date":        time.Now().Add(-time.Hour).Format(time.RFC3339),
		"description": "Team lunch",
	}
}

func (suite *ExpenseHandlerTestSuite) TestSubmitExpense_Created() {
	suite.mockService.EXPECT().
		Submit(suite.callerID, gomock.Any()).
		DoAndReturn(func(callerID uuid.UUID, req *service.SubmitExpenseRequest) (*service.SubmitExpenseResponse, error) {
			// The org ID comes from the path, not the body
			assert.Equal(suite.T(), suite.orgID, req.OrganizationID)
			return &service.SubmitExpenseResponse{
				Expense: service.ExpenseResponse{
					ID:             uuid.New(),
					OrganizationID: req.OrganizationID,
					UserID:         callerID,
					CategoryID:     req.CategoryID,
					Amount:         req.Amount,
					Status:         models.ExpenseStatusApproved,
				},
				Message: "Expense auto-approved",
			}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost,
		fmt.Sprintf("/organizations/%s/expenses", suite.orgID), suite.submitBody(30000))

	var resp service.SubmitExpenseResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	assert.Equal(suite.T(), "Expense auto-approved", resp.Message)
	assert.Equal(suite.T(), models.ExpenseStatusApproved, resp.Expense.Status)
}

func (suite *ExpenseHandlerTestSuite) TestSubmitExpense_NotMember() {
	suite.mockService.EXPECT().
		Submit(suite.callerID, gomock.Any()).
		Return(nil, apperrors.ErrNotOrganizationMember)

	recorder := suite.http.MakeRequest(http.MethodPost,
		fmt.Sprintf("/organizations/%s/expenses", suite.orgID), suite.submitBody(100))

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden,
		"You are not a member of this organization")
}

func (suite *ExpenseHandlerTestSuite) TestSubmitExpense_FutureDate() {
	suite.mockService.EXPECT().
		Submit(suite.callerID, gomock.Any()).
		Return(nil, apperrors.ErrExpenseDateInFuture)

	body := suite.submitBody(100)
	body["date"] = time.Now().Add(48 * time.Hour).Format(time.RFC3339)
	recorder := suite.http.MakeRequest(http.MethodPost,
		fmt.Sprintf("/organizations/%s/expenses", suite.orgID), body)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *ExpenseHandlerTestSuite) TestSubmitExpense_InvalidOrgID() {
	recorder := suite.http.MakeRequest(http.MethodPost,
		"/organizations/not-a-uuid/expenses", suite.submitBody(100))

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest,
		"Invalid organization ID: invalid UUID format")
}

func (suite *ExpenseHandlerTestSuite) TestSubmitExpense_InvalidBody() {
	req, _ := http.NewRequest(http.MethodPost,
		fmt.Sprintf("/organizations/%s/expenses", suite.orgID),
		bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	suite.http.Router.ServeHTTP(recorder, req)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *ExpenseHandlerTestSuite) TestListExpenses_Success() {
	suite.mockService.EXPECT().
		List(suite.callerID, suite.orgID, (*uuid.UUID)(nil)).
		Return([]service.ExpenseResponse{
			{ID: uuid.New(), OrganizationID: suite.orgID, Amount: 12500},
		}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet,
		fmt.Sprintf("/organizations/%s/expenses", suite.orgID), nil)

	var resp []service.ExpenseResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Len(suite.T(), resp, 1)
}

func (suite *ExpenseHandlerTestSuite) TestListExpenses_FilteredBySubmitter() {
	filterID := uuid.New()
	suite.mockService.EXPECT().
		List(suite.callerID, suite.orgID, gomock.Any()).
		DoAndReturn(func(callerID, orgID uuid.UUID, filterUserID *uuid.UUID) ([]service.ExpenseResponse, error) {
			assert.NotNil(suite.T(), filterUserID)
			assert.Equal(suite.T(), filterID, *filterUserID)
			return []service.ExpenseResponse{}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodGet,
		fmt.Sprintf("/organizations/%s/expenses?user_id=%s", suite.orgID, filterID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *ExpenseHandlerTestSuite) TestListExpenses_BadFilterUUID() {
	recorder := suite.http.MakeRequest(http.MethodGet,
		fmt.Sprintf("/organizations/%s/expenses?user_id=nope", suite.orgID), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest,
		"Invalid user_id: invalid UUID format")
}

func (suite *ExpenseHandlerTestSuite) TestReviewQueue_Success() {
	suite.mockService.EXPECT().
		ListForReview(suite.callerID, suite.orgID).
		Return([]service.ExpenseResponse{
			{ID: uuid.New(), Status: models.ExpenseStatusSubmitted},
			{ID: uuid.New(), Status: models.ExpenseStatusSubmitted},
		}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet,
		fmt.Sprintf("/organizations/%s/expenses/review-queue", suite.orgID), nil)

	var resp []service.ExpenseResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Len(suite.T(), resp, 2)
}

func (suite *ExpenseHandlerTestSuite) TestGetExpense_Success() {
	expenseID := uuid.New()
	suite.mockService.EXPECT().
		GetByID(suite.callerID, expenseID).
		Return(&service.ExpenseDetailResponse{
			Expense: service.ExpenseResponse{ID: expenseID, Status: models.ExpenseStatusRejected},
			Reviews: []service.ExpenseReviewResponse{
				{ID: uuid.New(), ExpenseID: expenseID, Status: models.ExpenseStatusRejected},
			},
		}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, fmt.Sprintf("/expenses/%s", expenseID), nil)

	var resp service.ExpenseDetailResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Len(suite.T(), resp.Reviews, 1)
}

func (suite *ExpenseHandlerTestSuite) TestGetExpense_NotFound() {
	expenseID := uuid.New()
	suite.mockService.EXPECT().
		GetByID(suite.callerID, expenseID).
		Return(nil, apperrors.ErrExpenseNotFound)

	recorder := suite.http.MakeRequest(http.MethodGet, fmt.Sprintf("/expenses/%s", expenseID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func TestExpenseHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerTestSuite))
}

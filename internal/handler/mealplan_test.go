package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pantryops/shoplist/internal/domain"
)

func TestHandleCreateMealPlan(t *testing.T) {
	InitValidator()

	week := domain.NewDate(2026, time.March, 2)
	servings := 2.0
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockMealPlanService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			requestBody: CreateMealPlanRequest{
				WeekStart: "2026-03-02",
				Entries: []MealPlanEntryRequest{
					{Day: "monday", Meal: "dinner", RecipeID: "a81bc81b-dead-4e5d-abff-90865d1e13b1", Servings: &servings},
				},
			},
			setupMock: func(m *MockMealPlanService) {
				m.On("CreatePlan", mock.Anything, week, mock.MatchedBy(func(entries []domain.MealPlanEntryInput) bool {
					return len(entries) == 1 && entries[0].Servings == 2.0
				})).Return(&domain.MealPlan{ID: "plan-1", WeekStart: week}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":"plan-1"`,
		},
		{
			name: "Defaults Servings To One",
			requestBody: CreateMealPlanRequest{
				WeekStart: "2026-03-02",
				Entries: []MealPlanEntryRequest{
					{Day: "monday", Meal: "dinner", RecipeID: "a81bc81b-dead-4e5d-abff-90865d1e13b1"},
				},
			},
			setupMock: func(m *MockMealPlanService) {
				m.On("CreatePlan", mock.Anything, week, mock.MatchedBy(func(entries []domain.MealPlanEntryInput) bool {
					return len(entries) == 1 && entries[0].Servings == 1.0
				})).Return(&domain.MealPlan{ID: "plan-1", WeekStart: week}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":"plan-1"`,
		},
		{
			name: "Invalid Request - Bad Weekday",
			requestBody: CreateMealPlanRequest{
				WeekStart: "2026-03-02",
				Entries: []MealPlanEntryRequest{
					{Day: "someday", Meal: "dinner", RecipeID: "a81bc81b-dead-4e5d-abff-90865d1e13b1"},
				},
			},
			setupMock:      func(m *MockMealPlanService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name: "Invalid Request - Malformed Date",
			requestBody: CreateMealPlanRequest{
				WeekStart: "March 2nd",
			},
			setupMock:      func(m *MockMealPlanService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name: "Unknown Recipe",
			requestBody: CreateMealPlanRequest{
				WeekStart: "2026-03-02",
				Entries: []MealPlanEntryRequest{
					{Day: "monday", Meal: "dinner", RecipeID: "a81bc81b-dead-4e5d-abff-90865d1e13b1"},
				},
			},
			setupMock: func(m *MockMealPlanService) {
				m.On("CreatePlan", mock.Anything, week, mock.Anything).
					Return(nil, domain.ErrRecipeNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgRecipeNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockMealPlanService)
			tt.setupMock(mockSvc)

			handler := HandleCreateMealPlan(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/meal-plans", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleGetMealPlan(t *testing.T) {
	week := domain.NewDate(2026, time.March, 2)
	tests := []struct {
		name           string
		query          string
		setupMock      func(*MockMealPlanService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "Success",
			query: "?week_start=2026-03-02",
			setupMock: func(m *MockMealPlanService) {
				m.On("GetPlanByWeek", mock.Anything, week).
					Return(&domain.MealPlan{ID: "plan-1", WeekStart: week}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"plan-1"`,
		},
		{
			name:           "Missing Week Start",
			query:          "",
			setupMock:      func(m *MockMealPlanService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "week_start",
		},
		{
			name:           "Malformed Week Start",
			query:          "?week_start=yesterday",
			setupMock:      func(m *MockMealPlanService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidWeekStart,
		},
		{
			name:  "Not Found",
			query: "?week_start=2026-03-02",
			setupMock: func(m *MockMealPlanService) {
				m.On("GetPlanByWeek", mock.Anything, week).
					Return(nil, domain.ErrMealPlanNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgMealPlanNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockMealPlanService)
			tt.setupMock(mockSvc)

			handler := HandleGetMealPlan(mockSvc)

			req := httptest.NewRequest("GET", "/meal-plans"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleConsumeMeal(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		planID         string
		requestBody    interface{}
		setupMock      func(*MockMealPlanService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			planID:      "plan-1",
			requestBody: ConsumeMealRequest{Day: "monday", Meal: "dinner"},
			setupMock: func(m *MockMealPlanService) {
				m.On("ConsumeMeal", mock.Anything, "plan-1", "monday", "dinner").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"ok"`,
		},
		{
			name:           "Invalid Request - Missing Meal",
			planID:         "plan-1",
			requestBody:    ConsumeMealRequest{Day: "monday"},
			setupMock:      func(m *MockMealPlanService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:        "Entry Not Found",
			planID:      "plan-1",
			requestBody: ConsumeMealRequest{Day: "sunday", Meal: "brunch"},
			setupMock: func(m *MockMealPlanService) {
				m.On("ConsumeMeal", mock.Anything, "plan-1", "sunday", "brunch").
					Return(domain.ErrEntryNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgEntryNotFoundError,
		},
		{
			name:        "Plan Not Found",
			planID:      "missing",
			requestBody: ConsumeMealRequest{Day: "monday", Meal: "dinner"},
			setupMock: func(m *MockMealPlanService) {
				m.On("ConsumeMeal", mock.Anything, "missing", "monday", "dinner").
					Return(domain.ErrMealPlanNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgMealPlanNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockMealPlanService)
			tt.setupMock(mockSvc)

			handler := HandleConsumeMeal(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/meal-plans/"+tt.planID+"/consume", bytes.NewBuffer(body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.planID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

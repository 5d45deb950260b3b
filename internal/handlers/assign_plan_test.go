package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mentorhq/mentorship-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAssignPlanHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	planID := uuid.New()
	userPlanID := uuid.New()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		body         UserPlanCreateRequest
		rawBody      string
		mockSetup    func(m *MockPlanAssigner)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: UserPlanCreateRequest{UserID: userID, PlanID: planID, StartDate: start, EndDate: end},
			mockSetup: func(m *MockPlanAssigner) {
				m.EXPECT().
					AssignPlan(gomock.Any(), userID, planID, start, end).
					Return(userPlanID, nil)
			},
			expectedCode: 201,
			expectedBody: `{"id":"` + userPlanID.String() + `"}`,
		},
		{
			name: "unknown user or plan",
			body: UserPlanCreateRequest{UserID: userID, PlanID: planID, StartDate: start, EndDate: end},
			mockSetup: func(m *MockPlanAssigner) {
				m.EXPECT().
					AssignPlan(gomock.Any(), userID, planID, start, end).
					Return(uuid.Nil, services.ErrInvalidPlanAssignment)
			},
			expectedCode: 400,
			expectedBody: `{"error":"Invalid user or plan"}`,
		},
		{
			name:         "missing plan_id",
			body:         UserPlanCreateRequest{UserID: userID, StartDate: start, EndDate: end},
			expectedCode: 400,
			expectedBody: `{"error":"Invalid request payload"}`,
		},
		{
			name:         "invalid json",
			rawBody:      "{invalid json}",
			expectedCode: 400,
			expectedBody: `{"error":"Invalid request payload"}`,
		},
		{
			name: "internal server error",
			body: UserPlanCreateRequest{UserID: userID, PlanID: planID, StartDate: start, EndDate: end},
			mockSetup: func(m *MockPlanAssigner) {
				m.EXPECT().
					AssignPlan(gomock.Any(), userID, planID, start, end).
					Return(uuid.Nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPlanAssigner(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewAssignPlanHandler(mockSvc)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/pricing/user-plans", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(tt.body)
				req = httptest.NewRequest(http.MethodPost, "/pricing/user-plans", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

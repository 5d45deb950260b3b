package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mentorhq/mentorship-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAddAvailabilityHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mentorID := uuid.New()

	tests := []struct {
		name         string
		body         AvailabilityCreateRequest
		rawBody      string
		mockSetup    func(m *MockAvailabilityAdder)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: AvailabilityCreateRequest{MentorID: mentorID, Day: "monday", StartTime: "09:00", EndTime: "12:00"},
			mockSetup: func(m *MockAvailabilityAdder) {
				m.EXPECT().
					AddAvailability(gomock.Any(), mentorID, "monday", "09:00", "12:00").
					Return(nil)
			},
			expectedCode: 201,
			expectedBody: `{"ok":true}`,
		},
		{
			name: "mentor not found",
			body: AvailabilityCreateRequest{MentorID: mentorID, Day: "monday", StartTime: "09:00", EndTime: "12:00"},
			mockSetup: func(m *MockAvailabilityAdder) {
				m.EXPECT().
					AddAvailability(gomock.Any(), mentorID, "monday", "09:00", "12:00").
					Return(services.ErrMentorNotFound)
			},
			expectedCode: 404,
			expectedBody: `{"error":"Mentor not found"}`,
		},
		{
			name:         "missing day",
			body:         AvailabilityCreateRequest{MentorID: mentorID, StartTime: "09:00", EndTime: "12:00"},
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
			body: AvailabilityCreateRequest{MentorID: mentorID, Day: "friday", StartTime: "10:00", EndTime: "11:00"},
			mockSetup: func(m *MockAvailabilityAdder) {
				m.EXPECT().
					AddAvailability(gomock.Any(), mentorID, "friday", "10:00", "11:00").
					Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAvailabilityAdder(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewAddAvailabilityHandler(mockSvc)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/mentors/availability", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(tt.body)
				req = httptest.NewRequest(http.MethodPost, "/mentors/availability", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

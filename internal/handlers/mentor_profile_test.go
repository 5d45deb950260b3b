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

func TestCreateMentorProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	bio := "10 years of backend experience"
	rate := 50

	tests := []struct {
		name         string
		body         MentorProfileCreateRequest
		rawBody      string
		mockSetup    func(m *MockMentorProfileCreator)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: MentorProfileCreateRequest{UserID: userID, Bio: &bio, HourlyRate: &rate},
			mockSetup: func(m *MockMentorProfileCreator) {
				m.EXPECT().
					CreateProfile(gomock.Any(), userID, &bio, nil, nil, nil, &rate).
					Return(nil)
			},
			expectedCode: 201,
			expectedBody: `{"ok":true}`,
		},
		{
			name: "user missing or not a mentor",
			body: MentorProfileCreateRequest{UserID: userID},
			mockSetup: func(m *MockMentorProfileCreator) {
				m.EXPECT().
					CreateProfile(gomock.Any(), userID, nil, nil, nil, nil, nil).
					Return(services.ErrInvalidMentorUser)
			},
			expectedCode: 400,
			expectedBody: `{"error":"Invalid mentor user_id"}`,
		},
		{
			name: "duplicate profile",
			body: MentorProfileCreateRequest{UserID: userID},
			mockSetup: func(m *MockMentorProfileCreator) {
				m.EXPECT().
					CreateProfile(gomock.Any(), userID, nil, nil, nil, nil, nil).
					Return(services.ErrMentorProfileExists)
			},
			expectedCode: 400,
			expectedBody: `{"error":"Mentor profile already exists"}`,
		},
		{
			name:         "missing user_id",
			body:         MentorProfileCreateRequest{},
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
			body: MentorProfileCreateRequest{UserID: userID},
			mockSetup: func(m *MockMentorProfileCreator) {
				m.EXPECT().
					CreateProfile(gomock.Any(), userID, nil, nil, nil, nil, nil).
					Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMentorProfileCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateMentorProfileHandler(mockSvc)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/mentors/profiles", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(tt.body)
				req = httptest.NewRequest(http.MethodPost, "/mentors/profiles", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

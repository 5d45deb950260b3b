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

func TestAddSkillHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mentorID := uuid.New()

	tests := []struct {
		name         string
		body         SkillCreateRequest
		rawBody      string
		mockSetup    func(m *MockSkillAdder)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: SkillCreateRequest{MentorID: mentorID, Skill: "Go"},
			mockSetup: func(m *MockSkillAdder) {
				m.EXPECT().
					AddSkill(gomock.Any(), mentorID, "Go").
					Return(nil)
			},
			expectedCode: 201,
			expectedBody: `{"ok":true}`,
		},
		{
			name: "mentor not found",
			body: SkillCreateRequest{MentorID: mentorID, Skill: "Go"},
			mockSetup: func(m *MockSkillAdder) {
				m.EXPECT().
					AddSkill(gomock.Any(), mentorID, "Go").
					Return(services.ErrMentorNotFound)
			},
			expectedCode: 404,
			expectedBody: `{"error":"Mentor not found"}`,
		},
		{
			name:         "missing skill",
			body:         SkillCreateRequest{MentorID: mentorID},
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
			body: SkillCreateRequest{MentorID: mentorID, Skill: "Kubernetes"},
			mockSetup: func(m *MockSkillAdder) {
				m.EXPECT().
					AddSkill(gomock.Any(), mentorID, "Kubernetes").
					Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSkillAdder(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewAddSkillHandler(mockSvc)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/mentors/skills", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(tt.body)
				req = httptest.NewRequest(http.MethodPost, "/mentors/skills", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mentorhq/mentorship-api/internal/models"
	"github.com/mentorhq/mentorship-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestPricingService_CreatePlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	desc := "Two sessions per month"

	tests := []struct {
		name    string
		saveErr error
		wantErr error
	}{
		{
			name: "successful creation",
		},
		{
			name:    "writer error",
			saveErr: errors.New("save error"),
			wantErr: errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPlans := services.NewMockPlanWriter(ctrl)
			svc := services.NewPricingService(mockPlans, services.NewMockUserPlanWriter(ctrl))

			mockPlans.EXPECT().
				Save(gomock.Any(), "Starter", &desc, 4900, models.PlanMonthly, nil).
				Return(uuid.New(), tt.saveErr)

			id, err := svc.CreatePlan(context.Background(), "Starter", &desc, 4900, models.PlanMonthly, nil)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, id)
			}
		})
	}
}

func TestPricingService_AssignPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	planID := uuid.New()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		saveErr error
		wantErr error
	}{
		{
			name: "successful assignment",
		},
		{
			name:    "unknown user or plan hits foreign key",
			saveErr: &pgconn.PgError{Code: "23503"},
			wantErr: services.ErrInvalidPlanAssignment,
		},
		{
			name:    "writer error",
			saveErr: errors.New("save error"),
			wantErr: errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserPlans := services.NewMockUserPlanWriter(ctrl)
			svc := services.NewPricingService(services.NewMockPlanWriter(ctrl), mockUserPlans)

			mockUserPlans.EXPECT().
				Save(gomock.Any(), userID, planID, start, end).
				Return(uuid.New(), tt.saveErr)

			id, err := svc.AssignPlan(context.Background(), userID, planID, start, end)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, id)
			}
		})
	}
}

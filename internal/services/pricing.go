package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mentorhq/mentorship-api/internal/logger"
)

// ErrInvalidPlanAssignment is returned when a plan assignment references a
// user or plan that does not exist. There is no pre-check; the foreign keys
// report it at commit time.
var ErrInvalidPlanAssignment = errors.New("invalid user or plan")

// PlanWriter defines write operations for pricing plans.
type PlanWriter interface {
	Save(ctx context.Context, name string, description *string, price int, duration string, features *string) (uuid.UUID, error)
}

// UserPlanWriter defines write operations for plan assignments.
type UserPlanWriter interface {
	Save(ctx context.Context, userID, planID uuid.UUID, startDate, endDate time.Time) (uuid.UUID, error)
}

// PricingService handles plans and plan assignments.
type PricingService struct {
	planWriter     PlanWriter
	userPlanWriter UserPlanWriter
}

// NewPricingService creates a new PricingService instance.
func NewPricingService(planWriter PlanWriter, userPlanWriter UserPlanWriter) *PricingService {
	return &PricingService{
		planWriter:     planWriter,
		userPlanWriter: userPlanWriter,
	}
}

// CreatePlan inserts a pricing plan unconditionally.
func (svc *PricingService) CreatePlan(
	ctx context.Context,
	name string,
	description *string,
	price int,
	duration string,
	features *string,
) (uuid.UUID, error) {
	id, err := svc.planWriter.Save(ctx, name, description, price, duration, features)
	if err != nil {
		logger.Log.Errorw("failed to save plan", "err", err)
		return uuid.Nil, err
	}
	return id, nil
}

// AssignPlan assigns a plan to a user over a date range.
func (svc *PricingService) AssignPlan(ctx context.Context, userID, planID uuid.UUID, startDate, endDate time.Time) (uuid.UUID, error) {
	id, err := svc.userPlanWriter.Save(ctx, userID, planID, startDate, endDate)
	if err != nil {
		if isForeignKeyViolation(err) {
			return uuid.Nil, ErrInvalidPlanAssignment
		}
		logger.Log.Errorw("failed to save user plan", "err", err)
		return uuid.Nil, err
	}
	return id, nil
}

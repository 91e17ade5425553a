package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/notify"
)

var ErrInvalidProfile = errors.New("invalid user profile")

type ReminderCanceller interface {
	CancelUser(ctx context.Context, userID string, remove func(context.Context) error) (*notify.Result, error)
}

// Service manages the meal-time profile that owns a user's medicines.
type Service struct {
	users     domain.UserRepository
	canceller ReminderCanceller
}

func NewService(users domain.UserRepository, canceller ReminderCanceller) *Service {
	return &Service{
		users:     users,
		canceller: canceller,
	}
}

func (s *Service) Create(ctx context.Context, user domain.User) (*domain.User, error) {
	user.Name = strings.TrimSpace(user.Name)
	if user.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidProfile)
	}

	mealTimes, err := user.MealTimes()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	user.Breakfast = mealTimes.Breakfast.String()
	user.Lunch = mealTimes.Lunch.String()
	user.Dinner = mealTimes.Dinner.String()

	if err := s.users.CreateUser(ctx, &user); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user created", slog.String("user_id", user.ID))
	return &user, nil
}

func (s *Service) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetUser(ctx, userID)
}

// Delete cancels the user's reminders and only then removes the user with
// all of its medicines. If any reminder is still registered the user is kept,
// so a later sync or delete can retry the cancellation.
func (s *Service) Delete(ctx context.Context, userID string) error {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return err
	}

	remove := func(ctx context.Context) error {
		return s.users.DeleteUser(ctx, userID)
	}

	var err error
	if s.canceller != nil {
		_, err = s.canceller.CancelUser(ctx, userID, remove)
	} else {
		err = remove(ctx)
	}
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "user deleted", slog.String("user_id", userID))
	return nil
}

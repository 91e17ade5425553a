package course

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/due"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/duration"
)

var ErrInvalidInput = errors.New("invalid medicine input")

const (
	MinDurationValue = 1
	MaxDurationValue = 31
)

// Syncer re-plans a user's reminders after their medicines change.
type Syncer interface {
	SyncUser(ctx context.Context, userID string) error
}

// Input is what the edit screen submits for a course.
type Input struct {
	Name      string
	StartDate string
	Duration  duration.Duration
	EveryDay  bool
	Days      []domain.Weekday
	Slots     []domain.Slot
}

// Course is a stored medicine with its course summary. Summary is nil and
// Invalid is set when the row's dates cannot be parsed.
type Course struct {
	Medicine domain.Medicine
	Summary  *duration.Status
	Invalid  string
}

type Service struct {
	medicines domain.MedicineRepository
	users     domain.UserRepository
	syncer    Syncer
	now       func() time.Time
}

func NewService(medicines domain.MedicineRepository, users domain.UserRepository, syncer Syncer, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		medicines: medicines,
		users:     users,
		syncer:    syncer,
		now:       func() time.Time { return time.Now().In(loc) },
	}
}

func (s *Service) Create(ctx context.Context, userID string, in Input) (*domain.Medicine, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	med, err := build(user, in)
	if err != nil {
		return nil, err
	}

	if err := s.medicines.CreateMedicine(ctx, med); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "medicine created",
		slog.String("user_id", userID),
		slog.String("medicine_id", med.ID),
		slog.String("start_date", med.StartDate),
		slog.String("end_date", med.EndDate),
		slog.Int("slot_count", len(med.TimeSlots)),
	)

	s.sync(ctx, userID)
	return med, nil
}

func (s *Service) Update(ctx context.Context, userID, medicineID string, in Input) (*domain.Medicine, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.medicines.GetMedicine(ctx, userID, medicineID); err != nil {
		return nil, err
	}

	med, err := build(user, in)
	if err != nil {
		return nil, err
	}
	med.ID = medicineID

	if err := s.medicines.UpdateMedicine(ctx, med); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "medicine updated",
		slog.String("user_id", userID),
		slog.String("medicine_id", medicineID),
	)

	s.sync(ctx, userID)
	return med, nil
}

func (s *Service) Delete(ctx context.Context, userID, medicineID string) error {
	if err := s.medicines.DeleteMedicine(ctx, userID, medicineID); err != nil {
		return err
	}

	slog.InfoContext(ctx, "medicine deleted",
		slog.String("user_id", userID),
		slog.String("medicine_id", medicineID),
	)

	s.sync(ctx, userID)
	return nil
}

// List returns every stored course of the user with its summary as of today.
func (s *Service) List(ctx context.Context, userID string) ([]Course, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	meds, err := s.medicines.GetMedicinesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := domain.DateOf(s.now())

	courses := make([]Course, 0, len(meds))
	for _, m := range meds {
		c := Course{Medicine: m}
		status, err := duration.StatusOf(m, today)
		if err != nil {
			c.Invalid = err.Error()
		} else {
			c.Summary = &status
		}
		courses = append(courses, c)
	}
	return courses, nil
}

// Due returns the user's medicines that are due on date.
func (s *Service) Due(ctx context.Context, userID string, date domain.Date) (due.Result, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return due.Result{}, err
	}

	meds, err := s.medicines.GetMedicinesForUser(ctx, userID)
	if err != nil {
		return due.Result{}, err
	}
	return due.FilterDueOn(meds, date), nil
}

// sync failures do not undo the change; the daily run retries.
func (s *Service) sync(ctx context.Context, userID string) {
	if s.syncer == nil {
		return
	}
	if err := s.syncer.SyncUser(ctx, userID); err != nil {
		slog.WarnContext(ctx, "failed to sync reminders after medicine change",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}
}

func build(user *domain.User, in Input) (*domain.Medicine, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	start, err := domain.ParseDate(in.StartDate)
	if err != nil {
		return nil, err
	}

	if in.Duration.Value < MinDurationValue || in.Duration.Value > MaxDurationValue {
		return nil, fmt.Errorf("%w: %d is outside %d..%d", duration.ErrInvalidValue, in.Duration.Value, MinDurationValue, MaxDurationValue)
	}
	end, err := duration.EndDate(start, in.Duration)
	if err != nil {
		return nil, err
	}

	for _, slot := range in.Slots {
		if !slot.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSlot, slot)
		}
	}

	for _, day := range in.Days {
		if !day.Valid() {
			return nil, fmt.Errorf("%w: weekday %d", ErrInvalidInput, int(day))
		}
	}

	mealTimes, err := user.MealTimes()
	if err != nil {
		return nil, fmt.Errorf("%w: meal times of user %s: %w", ErrInvalidInput, user.ID, err)
	}

	days := domain.NewWeekdayMask(in.Days...)
	if in.EveryDay {
		days = domain.EveryDay()
	}

	slots := make(map[domain.Slot]string, len(in.Slots))
	for slot, t := range SlotTimes(mealTimes, in.Slots) {
		slots[slot] = t.String()
	}

	return &domain.Medicine{
		UserID:     user.ID,
		Name:       name,
		StartDate:  start.String(),
		EndDate:    end.String(),
		ActiveDays: days,
		TimeSlots:  slots,
	}, nil
}

package syncer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/notify"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/reminder"
	"go.uber.org/mock/gomock"
)

type fakeScheduler struct {
	enabled     bool
	scheduled   [][]domain.ReminderInstance
	stamps      []notify.Stamp
	cancelled   []string
	scheduleRes *notify.Result
	scheduleErr error
	cancelErr   error
}

func (f *fakeScheduler) Enabled() bool { return f.enabled }

func (f *fakeScheduler) Schedule(_ context.Context, _ string, instances []domain.ReminderInstance, stamp notify.Stamp) (*notify.Result, error) {
	f.scheduled = append(f.scheduled, instances)
	f.stamps = append(f.stamps, stamp)
	if f.scheduleRes != nil || f.scheduleErr != nil {
		return f.scheduleRes, f.scheduleErr
	}
	return &notify.Result{Scheduled: len(instances)}, nil
}

func (f *fakeScheduler) Cancel(_ context.Context, userID string) (*notify.Result, error) {
	f.cancelled = append(f.cancelled, userID)
	if f.cancelErr != nil {
		return &notify.Result{CancelFailed: 1}, f.cancelErr
	}
	return &notify.Result{Cancelled: 1}, nil
}

type fakeRecorder struct {
	records []domain.SyncResultRecord
}

func (f *fakeRecorder) RecordSyncResult(_ context.Context, r domain.SyncResultRecord) error {
	f.records = append(f.records, r)
	return nil
}

func (f *fakeRecorder) Close() error { return nil }

var syncNow = time.Date(2024, time.January, 3, 7, 0, 0, 0, time.UTC)

func dueMedicine() domain.Medicine {
	return domain.Medicine{
		ID:         "med-1",
		UserID:     "user-1",
		Name:       "Amoxicillin",
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-10",
		ActiveDays: domain.NewWeekdayMask(domain.Monday, domain.Wednesday, domain.Friday),
		TimeSlots:  map[domain.Slot]string{domain.SlotAfterBreakfast: "08:00"},
	}
}

func TestSync_SchedulesWhenNoState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeds := domain.NewMockMedicineRepository(ctrl)
	mockState := domain.NewMockScheduleStateRepository(ctrl)
	scheduler := &fakeScheduler{enabled: true}
	recorder := &fakeRecorder{}

	mockMeds.EXPECT().GetMedicinesForUser(gomock.Any(), "user-1").Return([]domain.Medicine{dueMedicine()}, nil)
	mockState.EXPECT().GetScheduleState(gomock.Any(), "user-1").Return(nil, domain.ErrScheduleStateNotFound)

	svc := NewService(mockMeds, mockState, scheduler, recorder, nil, time.UTC)

	result, err := svc.Sync(context.Background(), "user-1", syncNow, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != OutcomeScheduled {
		t.Errorf("Outcome = %s, want %s", result.Outcome, OutcomeScheduled)
	}
	if len(scheduler.scheduled) != 1 || len(scheduler.scheduled[0]) != 1 {
		t.Fatalf("unexpected schedule calls: %v", scheduler.scheduled)
	}
	if scheduler.stamps[0].PlanDate != "2024-01-03" || scheduler.stamps[0].Fingerprint != result.Fingerprint {
		t.Errorf("unexpected stamp: %+v", scheduler.stamps[0])
	}
	if len(recorder.records) != 1 || recorder.records[0].Outcome != string(OutcomeScheduled) || recorder.records[0].Trigger != string(TriggerManual) {
		t.Errorf("unexpected records: %+v", recorder.records)
	}
}

func TestSync_ChangeDetection(t *testing.T) {
	plan := reminder.PlanForToday([]domain.Medicine{dueMedicine()}, syncNow)
	fp := Fingerprint(plan)

	tests := []struct {
		name         string
		state        *domain.ScheduleState
		force        bool
		wantOutcome  Outcome
		wantSchedule bool
	}{
		{
			name:        "same fingerprint and date is unchanged",
			state:       &domain.ScheduleState{Fingerprint: fp, PlanDate: "2024-01-03", NotificationIDs: []string{"n"}},
			wantOutcome: OutcomeUnchanged,
		},
		{
			name:         "force reschedules",
			state:        &domain.ScheduleState{Fingerprint: fp, PlanDate: "2024-01-03", NotificationIDs: []string{"n"}},
			force:        true,
			wantOutcome:  OutcomeScheduled,
			wantSchedule: true,
		},
		{
			name:         "different plan date reschedules",
			state:        &domain.ScheduleState{Fingerprint: fp, PlanDate: "2024-01-02", NotificationIDs: []string{"n"}},
			wantOutcome:  OutcomeScheduled,
			wantSchedule: true,
		},
		{
			name:         "incomplete previous pass reschedules",
			state:        &domain.ScheduleState{Fingerprint: 0, PlanDate: "2024-01-03", NotificationIDs: []string{"n"}},
			wantOutcome:  OutcomeScheduled,
			wantSchedule: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMeds := domain.NewMockMedicineRepository(ctrl)
			mockState := domain.NewMockScheduleStateRepository(ctrl)
			scheduler := &fakeScheduler{enabled: true}

			mockMeds.EXPECT().GetMedicinesForUser(gomock.Any(), "user-1").Return([]domain.Medicine{dueMedicine()}, nil)
			mockState.EXPECT().GetScheduleState(gomock.Any(), "user-1").Return(tt.state, nil)

			svc := NewService(mockMeds, mockState, scheduler, nil, nil, time.UTC)

			result, err := svc.Sync(context.Background(), "user-1", syncNow, tt.force)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Outcome != tt.wantOutcome {
				t.Errorf("Outcome = %s, want %s", result.Outcome, tt.wantOutcome)
			}
			if (len(scheduler.scheduled) > 0) != tt.wantSchedule {
				t.Errorf("scheduled = %v, wantSchedule %v", scheduler.scheduled, tt.wantSchedule)
			}
		})
	}
}

func TestSync_EmptyPlan(t *testing.T) {
	lateNow := time.Date(2024, time.January, 3, 21, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		state       *domain.ScheduleState
		stateErr    error
		wantOutcome Outcome
		wantCancel  bool
	}{
		{
			name:        "cancels what was registered",
			state:       &domain.ScheduleState{NotificationIDs: []string{"n-1"}},
			wantOutcome: OutcomeCancelled,
			wantCancel:  true,
		},
		{
			name:        "nothing registered",
			stateErr:    domain.ErrScheduleStateNotFound,
			wantOutcome: OutcomeEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMeds := domain.NewMockMedicineRepository(ctrl)
			mockState := domain.NewMockScheduleStateRepository(ctrl)
			scheduler := &fakeScheduler{enabled: true}

			mockMeds.EXPECT().GetMedicinesForUser(gomock.Any(), "user-1").Return([]domain.Medicine{dueMedicine()}, nil)
			mockState.EXPECT().GetScheduleState(gomock.Any(), "user-1").Return(tt.state, tt.stateErr)

			svc := NewService(mockMeds, mockState, scheduler, nil, nil, time.UTC)

			result, err := svc.Sync(context.Background(), "user-1", lateNow, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Outcome != tt.wantOutcome {
				t.Errorf("Outcome = %s, want %s", result.Outcome, tt.wantOutcome)
			}
			if (len(scheduler.cancelled) > 0) != tt.wantCancel {
				t.Errorf("cancelled = %v, wantCancel %v", scheduler.cancelled, tt.wantCancel)
			}
			if len(scheduler.scheduled) != 0 {
				t.Errorf("expected no scheduling, got %v", scheduler.scheduled)
			}
		})
	}
}

func TestSync_PartialAndFailure(t *testing.T) {
	tests := []struct {
		name        string
		res         *notify.Result
		err         error
		wantOutcome Outcome
		wantErr     bool
	}{
		{name: "partial", res: &notify.Result{Scheduled: 0, Failed: 1}, wantOutcome: OutcomePartial},
		{name: "state save failure", res: &notify.Result{Scheduled: 1}, err: errors.New("redis down"), wantOutcome: OutcomeFailed, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMeds := domain.NewMockMedicineRepository(ctrl)
			mockState := domain.NewMockScheduleStateRepository(ctrl)
			scheduler := &fakeScheduler{enabled: true, scheduleRes: tt.res, scheduleErr: tt.err}
			recorder := &fakeRecorder{}

			mockMeds.EXPECT().GetMedicinesForUser(gomock.Any(), "user-1").Return([]domain.Medicine{dueMedicine()}, nil)
			mockState.EXPECT().GetScheduleState(gomock.Any(), "user-1").Return(nil, domain.ErrScheduleStateNotFound)

			svc := NewService(mockMeds, mockState, scheduler, recorder, nil, time.UTC)

			result, err := svc.Sync(context.Background(), "user-1", syncNow, false)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if result.Outcome != tt.wantOutcome {
				t.Errorf("Outcome = %s, want %s", result.Outcome, tt.wantOutcome)
			}
			if len(recorder.records) != 1 || recorder.records[0].Outcome != string(tt.wantOutcome) {
				t.Errorf("unexpected records: %+v", recorder.records)
			}
		})
	}
}

func TestSync_DisabledSchedulerOnlyPlans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeds := domain.NewMockMedicineRepository(ctrl)
	mockState := domain.NewMockScheduleStateRepository(ctrl)
	scheduler := &fakeScheduler{enabled: false}

	mockMeds.EXPECT().GetMedicinesForUser(gomock.Any(), "user-1").Return([]domain.Medicine{dueMedicine()}, nil)
	mockState.EXPECT().GetScheduleState(gomock.Any(), gomock.Any()).Times(0)

	svc := NewService(mockMeds, mockState, scheduler, nil, nil, time.UTC)

	result, err := svc.Sync(context.Background(), "user-1", syncNow, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != OutcomeSkipped || len(result.Instances) != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestSync_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeds := domain.NewMockMedicineRepository(ctrl)
	mockState := domain.NewMockScheduleStateRepository(ctrl)

	mockMeds.EXPECT().GetMedicinesForUser(gomock.Any(), "user-1").Return(nil, errors.New("db locked"))

	svc := NewService(mockMeds, mockState, &fakeScheduler{enabled: true}, nil, nil, time.UTC)

	result, err := svc.Sync(context.Background(), "user-1", syncNow, false)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if result.Outcome != OutcomeFailed {
		t.Errorf("Outcome = %s, want %s", result.Outcome, OutcomeFailed)
	}
}

func TestPreview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeds := domain.NewMockMedicineRepository(ctrl)
	mockState := domain.NewMockScheduleStateRepository(ctrl)
	scheduler := &fakeScheduler{enabled: true}

	bad := dueMedicine()
	bad.ID = "med-bad"
	bad.EndDate = "never"

	mockMeds.EXPECT().GetMedicinesForUser(gomock.Any(), "user-1").Return([]domain.Medicine{dueMedicine(), bad}, nil)

	svc := NewService(mockMeds, mockState, scheduler, nil, nil, time.UTC)

	plan, err := svc.Preview(context.Background(), "user-1", syncNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Instances) != 1 || len(plan.Invalid) != 1 {
		t.Errorf("unexpected plan: %+v", plan)
	}
	if len(scheduler.scheduled) != 0 {
		t.Error("preview must not schedule")
	}
}

func TestCancelUser(t *testing.T) {
	t.Run("removes after cancelling", func(t *testing.T) {
		scheduler := &fakeScheduler{enabled: true}
		recorder := &fakeRecorder{}
		svc := NewService(nil, nil, scheduler, recorder, nil, time.UTC)

		removed := false
		res, err := svc.CancelUser(context.Background(), "user-1", func(context.Context) error {
			removed = true
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !removed {
			t.Error("expected remove to run")
		}
		if res.Cancelled != 1 {
			t.Errorf("Cancelled = %d, want 1", res.Cancelled)
		}
		if len(recorder.records) != 1 ||
			recorder.records[0].Trigger != string(TriggerDelete) ||
			recorder.records[0].Outcome != string(OutcomeCancelled) {
			t.Errorf("unexpected records: %+v", recorder.records)
		}
	})

	t.Run("leftover notifications block removal", func(t *testing.T) {
		scheduler := &fakeScheduler{enabled: true, cancelErr: errors.New("1 notifications could not be cancelled")}
		recorder := &fakeRecorder{}
		svc := NewService(nil, nil, scheduler, recorder, nil, time.UTC)

		removed := false
		_, err := svc.CancelUser(context.Background(), "user-1", func(context.Context) error {
			removed = true
			return nil
		})
		if !errors.Is(err, ErrRemindersPending) {
			t.Fatalf("expected ErrRemindersPending, got %v", err)
		}
		if removed {
			t.Error("user removed while notifications are still registered")
		}
		if len(recorder.records) != 1 || recorder.records[0].Outcome != string(OutcomeFailed) {
			t.Errorf("unexpected records: %+v", recorder.records)
		}
	})

	t.Run("remove failure is returned", func(t *testing.T) {
		svc := NewService(nil, nil, &fakeScheduler{enabled: true}, nil, nil, time.UTC)
		removeErr := errors.New("db locked")

		_, err := svc.CancelUser(context.Background(), "user-1", func(context.Context) error {
			return removeErr
		})
		if !errors.Is(err, removeErr) {
			t.Errorf("expected remove error, got %v", err)
		}
	})

	t.Run("sync waits until removal finishes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMeds := domain.NewMockMedicineRepository(ctrl)
		mockState := domain.NewMockScheduleStateRepository(ctrl)
		scheduler := &fakeScheduler{enabled: true}

		var removed atomic.Bool
		mockMeds.EXPECT().GetMedicinesForUser(gomock.Any(), "user-1").
			DoAndReturn(func(context.Context, string) ([]domain.Medicine, error) {
				if !removed.Load() {
					t.Error("sync loaded medicines before the user was removed")
				}
				return nil, nil
			})
		mockState.EXPECT().GetScheduleState(gomock.Any(), "user-1").Return(nil, domain.ErrScheduleStateNotFound)

		svc := NewService(mockMeds, mockState, scheduler, nil, nil, time.UTC)

		done := make(chan *Result, 1)
		_, err := svc.CancelUser(context.Background(), "user-1", func(context.Context) error {
			go func() {
				res, _ := svc.Sync(context.Background(), "user-1", syncNow, true)
				done <- res
			}()
			time.Sleep(50 * time.Millisecond)
			removed.Store(true)
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		res := <-done
		if res.Outcome != OutcomeEmpty {
			t.Errorf("Outcome = %s, want %s", res.Outcome, OutcomeEmpty)
		}
		if len(scheduler.scheduled) != 0 {
			t.Errorf("expected nothing scheduled, got %v", scheduler.scheduled)
		}
	})
}

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(context.Background(), Options{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "memory", path: ":memory:", want: ":memory:"},
		{name: "plain file", path: "medication.db", want: "medication.db?" + pragmas},
		{name: "file with query", path: "medication.db?_txlock=immediate", want: "medication.db?_txlock=immediate&" + pragmas},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildDSN(tt.path))
		})
	}
}

func TestOpen_FileWithQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medication.db") + "?_txlock=immediate"

	s, err := Open(context.Background(), Options{Path: path, MaxOpenConns: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	users := NewUserStore(s)
	createTestUser(t, users)
	require.NoError(t, s.Ping(context.Background()))
}

func createTestUser(t *testing.T, users domain.UserRepository) *domain.User {
	t.Helper()

	user := &domain.User{Name: "Alex", Breakfast: "08:00", Lunch: "12:30", Dinner: "19:00"}
	require.NoError(t, users.CreateUser(context.Background(), user))
	require.NotEmpty(t, user.ID)
	return user
}

func TestUserStore_CreateAndGet(t *testing.T) {
	s := setupTestStore(t)
	users := NewUserStore(s)
	ctx := context.Background()

	user := createTestUser(t, users)

	got, err := users.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = users.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	ids, err := users.ListUserIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{user.ID}, ids)
}

func TestMedicineStore_RoundTrip(t *testing.T) {
	s := setupTestStore(t)
	users := NewUserStore(s)
	medicines := NewMedicineStore(s)
	ctx := context.Background()

	user := createTestUser(t, users)

	med := &domain.Medicine{
		UserID:     user.ID,
		Name:       "Amoxicillin",
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-10",
		ActiveDays: domain.NewWeekdayMask(domain.Monday, domain.Wednesday, domain.Friday),
		TimeSlots: map[domain.Slot]string{
			domain.SlotBeforeBreakfast: "07:30",
			domain.SlotAfterBreakfast:  "08:00",
		},
	}
	require.NoError(t, medicines.CreateMedicine(ctx, med))
	require.NotEmpty(t, med.ID)

	got, err := medicines.GetMedicine(ctx, user.ID, med.ID)
	require.NoError(t, err)
	assert.Equal(t, *med, *got)

	var raw struct {
		Monday         int
		Tuesday        int
		AfterBreakfast string
	}
	require.NoError(t, s.DB().Raw(
		`SELECT monday, tuesday, "AfterBreakfast" FROM medicine_list WHERE id = ?`, med.ID,
	).Row().Scan(&raw.Monday, &raw.Tuesday, &raw.AfterBreakfast))
	assert.Equal(t, 1, raw.Monday)
	assert.Equal(t, 0, raw.Tuesday)
	assert.Equal(t, "08:00", raw.AfterBreakfast)

	_, err = medicines.GetMedicine(ctx, "someone-else", med.ID)
	assert.ErrorIs(t, err, domain.ErrMedicineNotFound)
}

func TestMedicineStore_UpdateClearsSlots(t *testing.T) {
	s := setupTestStore(t)
	users := NewUserStore(s)
	medicines := NewMedicineStore(s)
	ctx := context.Background()

	user := createTestUser(t, users)

	med := &domain.Medicine{
		UserID:     user.ID,
		Name:       "Vitamin D",
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-31",
		ActiveDays: domain.EveryDay(),
		TimeSlots:  map[domain.Slot]string{domain.SlotAfterDinner: "19:00", domain.SlotAfterLunch: "12:30"},
	}
	require.NoError(t, medicines.CreateMedicine(ctx, med))

	med.Name = "Vitamin D3"
	med.ActiveDays = domain.WeekdayMask{}
	med.TimeSlots = map[domain.Slot]string{domain.SlotAfterDinner: "19:30"}
	require.NoError(t, medicines.UpdateMedicine(ctx, med))

	got, err := medicines.GetMedicine(ctx, user.ID, med.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vitamin D3", got.Name)
	assert.True(t, got.ActiveDays.IsEmpty())
	assert.Equal(t, map[domain.Slot]string{domain.SlotAfterDinner: "19:30"}, got.TimeSlots)

	missing := *med
	missing.ID = "missing"
	assert.ErrorIs(t, medicines.UpdateMedicine(ctx, &missing), domain.ErrMedicineNotFound)
}

func TestMedicineStore_ListAndDelete(t *testing.T) {
	s := setupTestStore(t)
	users := NewUserStore(s)
	medicines := NewMedicineStore(s)
	ctx := context.Background()

	user := createTestUser(t, users)
	other := createTestUser(t, users)

	for _, name := range []string{"A", "B"} {
		require.NoError(t, medicines.CreateMedicine(ctx, &domain.Medicine{
			UserID: user.ID, Name: name, StartDate: "2024-01-01", EndDate: "2024-01-02",
		}))
	}
	require.NoError(t, medicines.CreateMedicine(ctx, &domain.Medicine{
		UserID: other.ID, Name: "C", StartDate: "2024-01-01", EndDate: "2024-01-02",
	}))

	list, err := medicines.GetMedicinesForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, medicines.DeleteMedicine(ctx, user.ID, list[0].ID))
	assert.ErrorIs(t, medicines.DeleteMedicine(ctx, user.ID, list[0].ID), domain.ErrMedicineNotFound)

	list, err = medicines.GetMedicinesForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUserStore_DeleteRemovesMedicines(t *testing.T) {
	s := setupTestStore(t)
	users := NewUserStore(s)
	medicines := NewMedicineStore(s)
	ctx := context.Background()

	user := createTestUser(t, users)
	require.NoError(t, medicines.CreateMedicine(ctx, &domain.Medicine{
		UserID: user.ID, Name: "A", StartDate: "2024-01-01", EndDate: "2024-01-02",
	}))

	require.NoError(t, users.DeleteUser(ctx, user.ID))

	list, err := medicines.GetMedicinesForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, users.DeleteUser(ctx, user.ID), domain.ErrUserNotFound)
}

package course

import (
	"testing"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

func TestSlotTimes(t *testing.T) {
	profile := domain.MealTimes{
		Breakfast: domain.ClockTime{Hour: 8, Minute: 0},
		Lunch:     domain.ClockTime{Hour: 12, Minute: 15},
		Dinner:    domain.ClockTime{Hour: 0, Minute: 10},
	}

	tests := []struct {
		name     string
		selected []domain.Slot
		want     map[domain.Slot]string
	}{
		{
			name:     "before meal is thirty minutes earlier",
			selected: []domain.Slot{domain.SlotBeforeBreakfast, domain.SlotBeforeLunch},
			want: map[domain.Slot]string{
				domain.SlotBeforeBreakfast: "07:30",
				domain.SlotBeforeLunch:     "11:45",
			},
		},
		{
			name:     "after meal is the meal time",
			selected: []domain.Slot{domain.SlotAfterBreakfast, domain.SlotAfterLunch},
			want: map[domain.Slot]string{
				domain.SlotAfterBreakfast: "08:00",
				domain.SlotAfterLunch:     "12:15",
			},
		},
		{
			name:     "before meal wraps past midnight",
			selected: []domain.Slot{domain.SlotBeforeDinner, domain.SlotAfterDinner},
			want: map[domain.Slot]string{
				domain.SlotBeforeDinner: "23:40",
				domain.SlotAfterDinner:  "00:10",
			},
		},
		{
			name:     "unknown slots ignored",
			selected: []domain.Slot{"Midnight"},
			want:     map[domain.Slot]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SlotTimes(profile, tt.selected)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d slots, want %d: %v", len(got), len(tt.want), got)
			}
			for slot, want := range tt.want {
				if got[slot].String() != want {
					t.Errorf("%s = %s, want %s", slot, got[slot], want)
				}
			}
		})
	}
}

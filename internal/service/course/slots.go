package course

import "github.com/KasumiMercury/primind-medication-reminder/internal/domain"

// beforeMealOffset is how long before a meal a Before* slot fires.
const beforeMealOffset = -30

// SlotTimes derives the clock time of each selected slot from the meal-time
// profile. Before* slots are 30 minutes ahead of the meal, wrapping past
// midnight; After* slots are the meal time itself. Unknown slots are
// ignored.
func SlotTimes(profile domain.MealTimes, selected []domain.Slot) map[domain.Slot]domain.ClockTime {
	times := make(map[domain.Slot]domain.ClockTime, len(selected))
	for _, slot := range selected {
		if !slot.Valid() {
			continue
		}
		meal := profile.For(slot.Meal())
		if slot.IsBeforeMeal() {
			meal = meal.AddMinutes(beforeMealOffset)
		}
		times[slot] = meal
	}
	return times
}

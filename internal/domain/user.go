package domain

import "fmt"

// User is the local profile that owns medicines. Meal times are "HH:MM".
type User struct {
	ID        string
	Name      string
	Breakfast string
	Lunch     string
	Dinner    string
}

// MealTimes is the parsed meal-time profile.
type MealTimes struct {
	Breakfast ClockTime
	Lunch     ClockTime
	Dinner    ClockTime
}

func (u User) MealTimes() (MealTimes, error) {
	breakfast, err := ParseClockTime(u.Breakfast)
	if err != nil {
		return MealTimes{}, fmt.Errorf("breakfast: %w", err)
	}
	lunch, err := ParseClockTime(u.Lunch)
	if err != nil {
		return MealTimes{}, fmt.Errorf("lunch: %w", err)
	}
	dinner, err := ParseClockTime(u.Dinner)
	if err != nil {
		return MealTimes{}, fmt.Errorf("dinner: %w", err)
	}
	return MealTimes{Breakfast: breakfast, Lunch: lunch, Dinner: dinner}, nil
}

func (m MealTimes) For(meal Meal) ClockTime {
	switch meal {
	case MealBreakfast:
		return m.Breakfast
	case MealLunch:
		return m.Lunch
	default:
		return m.Dinner
	}
}

package domain

import "fmt"

// Slot is one of the six meal-relative reminder points. The string values
// are the legacy column names of the medicine table.
type Slot string

const (
	SlotBeforeBreakfast Slot = "BeforeBreakfast"
	SlotAfterBreakfast  Slot = "AfterBreakfast"
	SlotBeforeLunch     Slot = "BeforeLunch"
	SlotAfterLunch      Slot = "AfterLunch"
	SlotBeforeDinner    Slot = "BeforeDinner"
	SlotAfterDinner     Slot = "AfterDinner"
)

// Meal anchors a slot to one of the user's meal times.
type Meal string

const (
	MealBreakfast Meal = "breakfast"
	MealLunch     Meal = "lunch"
	MealDinner    Meal = "dinner"
)

// AllSlots is the canonical slot order.
var AllSlots = []Slot{
	SlotBeforeBreakfast,
	SlotAfterBreakfast,
	SlotBeforeLunch,
	SlotAfterLunch,
	SlotBeforeDinner,
	SlotAfterDinner,
}

var slotInfo = map[Slot]struct {
	label  string
	meal   Meal
	before bool
	order  int
}{
	SlotBeforeBreakfast: {"Before Breakfast", MealBreakfast, true, 0},
	SlotAfterBreakfast:  {"After Breakfast", MealBreakfast, false, 1},
	SlotBeforeLunch:     {"Before Lunch", MealLunch, true, 2},
	SlotAfterLunch:      {"After Lunch", MealLunch, false, 3},
	SlotBeforeDinner:    {"Before Dinner", MealDinner, true, 4},
	SlotAfterDinner:     {"After Dinner", MealDinner, false, 5},
}

func ParseSlot(s string) (Slot, error) {
	slot := Slot(s)
	if !slot.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlot, s)
	}
	return slot, nil
}

func (s Slot) Valid() bool {
	_, ok := slotInfo[s]
	return ok
}

// Label is the human readable form used in notification bodies.
func (s Slot) Label() string {
	return slotInfo[s].label
}

func (s Slot) Meal() Meal {
	return slotInfo[s].meal
}

func (s Slot) IsBeforeMeal() bool {
	return slotInfo[s].before
}

// Order is the slot's position in AllSlots, or -1.
func (s Slot) Order() int {
	info, ok := slotInfo[s]
	if !ok {
		return -1
	}
	return info.order
}

func (s Slot) String() string {
	return string(s)
}

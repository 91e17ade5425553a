package store

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

// medicineRow keeps the column names of the original medicine_list table.
type medicineRow struct {
	ID           string `gorm:"column:id;primaryKey;type:text"`
	UserID       string `gorm:"column:user_id;type:text;index;not null"`
	MedicineName string `gorm:"column:medicineName;type:text;not null"`
	StartDate    string `gorm:"column:startDate;type:text"`
	EndDate      string `gorm:"column:endDate;type:text"`

	Sunday    int `gorm:"column:sunday;not null;default:0"`
	Monday    int `gorm:"column:monday;not null;default:0"`
	Tuesday   int `gorm:"column:tuesday;not null;default:0"`
	Wednesday int `gorm:"column:wednesday;not null;default:0"`
	Thursday  int `gorm:"column:thursday;not null;default:0"`
	Friday    int `gorm:"column:friday;not null;default:0"`
	Saturday  int `gorm:"column:saturday;not null;default:0"`

	BeforeBreakfast string `gorm:"column:BeforeBreakfast;type:text"`
	AfterBreakfast  string `gorm:"column:AfterBreakfast;type:text"`
	BeforeLunch     string `gorm:"column:BeforeLunch;type:text"`
	AfterLunch      string `gorm:"column:AfterLunch;type:text"`
	BeforeDinner    string `gorm:"column:BeforeDinner;type:text"`
	AfterDinner     string `gorm:"column:AfterDinner;type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (medicineRow) TableName() string {
	return "medicine_list"
}

func (r *medicineRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type userRow struct {
	ID        string `gorm:"column:id;primaryKey;type:text"`
	Name      string `gorm:"column:name;type:text"`
	Breakfast string `gorm:"column:breakfast;type:text"`
	Lunch     string `gorm:"column:lunch;type:text"`
	Dinner    string `gorm:"column:dinner;type:text"`

	Medicines []medicineRow `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (userRow) TableName() string {
	return "userData"
}

func (r *userRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (r *medicineRow) days() *[7]*int {
	return &[7]*int{&r.Sunday, &r.Monday, &r.Tuesday, &r.Wednesday, &r.Thursday, &r.Friday, &r.Saturday}
}

func (r *medicineRow) slots() map[domain.Slot]*string {
	return map[domain.Slot]*string{
		domain.SlotBeforeBreakfast: &r.BeforeBreakfast,
		domain.SlotAfterBreakfast:  &r.AfterBreakfast,
		domain.SlotBeforeLunch:     &r.BeforeLunch,
		domain.SlotAfterLunch:      &r.AfterLunch,
		domain.SlotBeforeDinner:    &r.BeforeDinner,
		domain.SlotAfterDinner:     &r.AfterDinner,
	}
}

func medicineRowFrom(m *domain.Medicine) *medicineRow {
	r := &medicineRow{
		ID:           m.ID,
		UserID:       m.UserID,
		MedicineName: m.Name,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
	}
	for i, p := range r.days() {
		*p = flag(m.ActiveDays[i])
	}
	for slot, p := range r.slots() {
		*p = m.TimeSlots[slot]
	}
	return r
}

func (r *medicineRow) toDomain() domain.Medicine {
	m := domain.Medicine{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.MedicineName,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		TimeSlots: make(map[domain.Slot]string),
	}
	for i, p := range r.days() {
		m.ActiveDays[i] = *p != 0
	}
	for slot, p := range r.slots() {
		if *p != "" {
			m.TimeSlots[slot] = *p
		}
	}
	return m
}

func userRowFrom(u *domain.User) *userRow {
	return &userRow{
		ID:        u.ID,
		Name:      u.Name,
		Breakfast: u.Breakfast,
		Lunch:     u.Lunch,
		Dinner:    u.Dinner,
	}
}

func (r *userRow) toDomain() *domain.User {
	return &domain.User{
		ID:        r.ID,
		Name:      r.Name,
		Breakfast: r.Breakfast,
		Lunch:     r.Lunch,
		Dinner:    r.Dinner,
	}
}

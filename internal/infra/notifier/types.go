package notifier

import "time"

const (
	defaultMaxRetries = 3
	defaultTimeout    = 30 * time.Second
)

type pushRequest struct {
	UserID        string    `json:"user_id"`
	MedicineID    string    `json:"medicine_id"`
	Slot          string    `json:"slot"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Trigger       pushTime  `json:"trigger"`
	FirstFireTime string    `json:"first_fire_time,omitempty"`
	RequestedAt   time.Time `json:"requested_at"`
}

type pushTime struct {
	Hour    int  `json:"hour"`
	Minute  int  `json:"minute"`
	Weekday int  `json:"weekday"`
	Repeats bool `json:"repeats"`
}

type pushResponse struct {
	ID string `json:"id"`
}

// taskPayload is the body Cloud Tasks delivers to the push target.
type taskPayload struct {
	NotificationID string   `json:"notification_id"`
	UserID         string   `json:"user_id"`
	MedicineID     string   `json:"medicine_id"`
	Slot           string   `json:"slot"`
	Title          string   `json:"title"`
	Body           string   `json:"body"`
	Trigger        pushTime `json:"trigger"`
}

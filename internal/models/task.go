package models

import "time"

// Task is a one-off scheduled item with a due day and reminder time
type Task struct {
	ID           string    `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	DueDate      string    `json:"due_date" db:"due_date"`           // YYYY-MM-DD format
	ReminderTime string    `json:"reminder_time" db:"reminder_time"` // hh:mm AM/PM format
	Priority     string    `json:"priority" db:"priority"`
	Category     string    `json:"category" db:"category"`
	Completed    bool      `json:"completed" db:"completed"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

package model

import "time"

// Project is a grouping container for related tasks and proposals.
type Project struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Color       string    `json:"color" db:"color"`
	StartDate   *Date     `json:"start_date,omitempty" db:"start_date"`
	EndDate     *Date     `json:"end_date,omitempty" db:"end_date"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

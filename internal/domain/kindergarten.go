package domain

import "time"

type Kindergarten struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required,min=3"`
	District  string    `json:"district" validate:"required,min=3"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type KindergartenClass struct {
	ID             int64     `json:"id"`
	KindergartenID int64     `json:"kindergarten_id" gorm:"index" validate:"required"`
	Name           string    `json:"name" validate:"required,min=2"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Preschool struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required,min=3"`
	District  string    `json:"district" validate:"required,min=3"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

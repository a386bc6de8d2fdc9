package response_models

import (
	"time"

	"ecotours/internal/models/db_models"
)

type Booking struct {
	ID           uint      `json:"id"`
	Place        uint      `json:"place"`
	UserName     string    `json:"user_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	ArrivalDate  string    `json:"arrival_date"`
	Price        float64   `json:"price"`
	Adults       int       `json:"adults"`
	Children     int       `json:"children"`
	ChildrenAges []string  `json:"children_ages"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	User         *uint     `json:"user"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewBooking(b *db_models.Booking) Booking {
	ages := make([]string, 0, len(b.ChildrenAges))
	ages = append(ages, b.ChildrenAges...)

	return Booking{
		ID:           b.ID,
		Place:        b.PlaceID,
		UserName:     b.UserName,
		Email:        b.Email,
		Phone:        b.Phone,
		ArrivalDate:  b.ArrivalDate.Format("2006-01-02"),
		Price:        b.Price,
		Adults:       b.Adults,
		Children:     b.Children,
		ChildrenAges: ages,
		Description:  b.Description,
		Status:       b.Status,
		User:         b.UserID,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

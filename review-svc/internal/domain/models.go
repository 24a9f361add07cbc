package domain

import "time"

type Review struct {
	ID           string    `json:"id"`
	MenuItemID   string    `json:"menuItemId"`
	RestaurantID string    `json:"restaurantId"`
	UserID       string    `json:"userId"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Fields renders the review the way the document store exposes it to
// change listeners.
func (r Review) Fields() map[string]any {
	return map[string]any{
		"menuItemId":   r.MenuItemID,
		"restaurantId": r.RestaurantID,
		"userId":       r.UserID,
		"rating":       r.Rating,
		"comment":      r.Comment,
		"createdAt":    r.CreatedAt,
	}
}

type CreateReviewInput struct {
	MenuItemID   string `json:"menuItemId" validate:"required"`
	RestaurantID string `json:"restaurantId" validate:"required"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	Comment      string `json:"comment" validate:"max=2000"`
}

type UpdateReviewInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

type EventType string

const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventDeleted EventType = "deleted"
)

// ReviewEvent is published on every review mutation with the document
// images before and after the change.
type ReviewEvent struct {
	EventID   string         `json:"event_id"`
	Type      EventType      `json:"type"`
	ReviewID  string         `json:"review_id"`
	Before    map[string]any `json:"before,omitempty"`
	After     map[string]any `json:"after,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

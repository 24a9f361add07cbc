package domain

import (
	"encoding/json"
	"reflect"
	"time"
)

type EventType string

const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventDeleted EventType = "deleted"
)

// Fields is a raw review document image as delivered by the store trigger.
type Fields map[string]any

// ID returns the non-empty string stored under key.
func (f Fields) ID(key string) (string, bool) {
	s, ok := f[key].(string)
	return s, ok && s != ""
}

func (f Fields) MenuItemID() (string, bool)   { return f.ID("menuItemId") }
func (f Fields) RestaurantID() (string, bool) { return f.ID("restaurantId") }

// SameRating reports whether two images carry the same rating. Numbers are
// compared by value regardless of their decoded type.
func SameRating(before, after Fields) bool {
	b, bok := NumericRating(before["rating"])
	a, aok := NumericRating(after["rating"])
	if bok && aok {
		return a == b
	}
	return reflect.DeepEqual(before["rating"], after["rating"])
}

// NumericRating converts a stored rating to float64. Anything that is not a
// number is reported as not ok.
func NumericRating(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// ReviewEvent is one review document change.
type ReviewEvent struct {
	EventID   string    `json:"event_id"`
	Type      EventType `json:"type"`
	ReviewID  string    `json:"review_id"`
	Before    Fields    `json:"before,omitempty"`
	After     Fields    `json:"after,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Review is the part of a review the aggregator reads. Rating is nil when the
// stored value is missing or not a number.
type Review struct {
	ID     string
	Rating *float64
}

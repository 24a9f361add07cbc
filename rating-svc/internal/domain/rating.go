package domain

type RatingStats struct {
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
}

type ItemRating struct {
	ItemID       string `json:"menuItemId"`
	RestaurantID string `json:"restaurantId"`
	RatingStats
}

type RestaurantRating struct {
	RestaurantID string `json:"restaurantId"`
	RatingStats
}

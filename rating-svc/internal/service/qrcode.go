package service

import (
	"net/url"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(restaurantID, itemID string) ([]byte, error)
}

// ReviewLinkQR encodes a deep link to the review form of one menu item.
type ReviewLinkQR struct {
	BaseURL string
}

func (g ReviewLinkQR) Generate(restaurantID, itemID string) ([]byte, error) {
	return qrcode.Encode(g.Link(restaurantID, itemID), qrcode.Medium, 256)
}

func (g ReviewLinkQR) Link(restaurantID, itemID string) string {
	q := url.Values{}
	q.Set("restaurantId", restaurantID)
	q.Set("menuItemId", itemID)
	return g.BaseURL + "/review?" + q.Encode()
}

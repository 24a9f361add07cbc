// Package mapbox calls the Mapbox Directions API.
package mapbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"fooddelivery/route-svc/internal/domain"
	"fooddelivery/route-svc/internal/httpclient"
)

const (
	drivingPath = "/directions/v5/mapbox/driving/"
	maxBodySize = 4 << 20
)

// Error codes Mapbox uses when the points cannot be connected.
var noRouteCodes = map[string]bool{"NoRoute": true, "NoSegment": true}

type Client struct {
	http    httpclient.HTTPClient
	baseURL string
	token   string
}

func NewClient(client httpclient.HTTPClient, baseURL, token string) *Client {
	return &Client{http: client, baseURL: strings.TrimRight(baseURL, "/"), token: token}
}

type directionsResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Geometry string  `json:"geometry"`
		Distance float64 `json:"distance"`
	} `json:"routes"`
}

// Directions returns the first driving route between the two points.
func (c *Client) Directions(ctx context.Context, req domain.DirectionsRequest) (*domain.Route, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.directionsURL(req), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build directions request: %w", err)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("directions request: %w", c.redact(err))
	}
	defer resp.Body.Close()

	var body directionsResponse
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&body)

	if noRouteCodes[body.Code] {
		return nil, domain.ErrNoRoute
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directions returned status %d: %s", resp.StatusCode, body.Message)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode directions response: %w", decodeErr)
	}
	if len(body.Routes) == 0 {
		return nil, domain.ErrNoRoute
	}

	return &domain.Route{
		EncodedPolyline: body.Routes[0].Geometry,
		DistanceMeters:  body.Routes[0].Distance,
	}, nil
}

func (c *Client) directionsURL(req domain.DirectionsRequest) string {
	coords := coord(*req.StartLon) + "," + coord(*req.StartLat) + ";" + coord(*req.EndLon) + "," + coord(*req.EndLat)
	query := url.Values{
		"alternatives": {"false"},
		"geometries":   {"polyline"},
		"overview":     {"full"},
		"access_token": {c.token},
	}
	return c.baseURL + drivingPath + coords + "?" + query.Encode()
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// redact strips the access token from URLs embedded in transport errors.
func (c *Client) redact(err error) error {
	var urlErr *url.Error
	if c.token != "" && errors.As(err, &urlErr) {
		urlErr.URL = strings.ReplaceAll(urlErr.URL, url.QueryEscape(c.token), "REDACTED")
	}
	return err
}

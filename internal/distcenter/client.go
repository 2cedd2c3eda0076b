// Package distcenter implements the HTTP client for the external
// distribution-center API. All calls authenticate with HTTP Basic credentials
// and run under the client's bounded timeout; transport problems are converted
// to core sentinel errors at the operation boundary.
package distcenter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"warehouse-server/internal/core"

	"github.com/shopspring/decimal"
)

// DefaultTimeout bounds every API call when the caller does not configure one.
const DefaultTimeout = 10 * time.Second

// Client talks to one distribution-center API endpoint. It is stateless apart
// from configuration and safe for concurrent use.
type Client struct {
	http      *http.Client
	baseURL   string
	username  string
	password  string
	warehouse core.Coordinate
}

// NewClient builds a client for the API at baseURL (e.g.
// "http://localhost:8081/api/distribution-centers"). warehouse is the fixed
// warehouse location passed to the closest-center search and used to compute
// display distances. A non-positive timeout falls back to DefaultTimeout.
func NewClient(baseURL, username, password string, warehouse core.Coordinate, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		username:  username,
		password:  password,
		warehouse: warehouse,
	}
}

// Wire shapes. The API reports coordinates as top-level latitude/longitude
// fields and prices as JSON numbers.
type centerPayload struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Items     []itemPayload `json:"items"`
}

type itemPayload struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Brand    string          `json:"brand"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Year     int             `json:"year"`
	Quantity int             `json:"quantity"`
}

type findRequest struct {
	Brand string `json:"brand"`
	Name  string `json:"name"`
}

// ListCenters fetches every center. The upstream listing may or may not carry
// item arrays; item count and the catalog view use them when present.
func (c *Client) ListCenters(ctx context.Context) ([]core.DistributionCenter, error) {
	resp, err := c.do(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, unavailable("list centers", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, unavailable("list centers", fmt.Errorf("status %d", resp.StatusCode))
	}

	var payload []centerPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, unavailable("list centers", err)
	}

	centers := make([]core.DistributionCenter, 0, len(payload))
	for i := range payload {
		centers = append(centers, c.toCenter(&payload[i]))
	}
	return centers, nil
}

// GetCenter fetches one center with its full item list.
func (c *Client) GetCenter(ctx context.Context, id int64) (*core.DistributionCenter, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", c.baseURL, id), nil)
	if err != nil {
		return nil, unavailable("get center", err)
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("get center %d: %w", id, core.ErrCenterNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, unavailable("get center", fmt.Errorf("status %d", resp.StatusCode))
	}

	var payload centerPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, unavailable("get center", err)
	}
	center := c.toCenter(&payload)
	return &center, nil
}

// FindClosestStocking delegates closest-center selection to the external
// service: the warehouse coordinates travel as query parameters, the item
// identity as the request body. The service answers with the nearest center
// that stocks the item, or a 4xx when none does.
func (c *Client) FindClosestStocking(ctx context.Context, brand, name string) (*core.DistributionCenter, error) {
	query := url.Values{}
	query.Set("warehouseLatitude", strconv.FormatFloat(c.warehouse.Latitude, 'f', -1, 64))
	query.Set("warehouseLongitude", strconv.FormatFloat(c.warehouse.Longitude, 'f', -1, 64))

	resp, err := c.do(ctx, http.MethodPost, c.baseURL+"/find-closest?"+query.Encode(), findRequest{Brand: brand, Name: name})
	if err != nil {
		return nil, unavailable("find closest center", err)
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		// The API answers 4xx both when the item is stocked nowhere and when
		// it does not recognize the item at all; treat both as not found.
		return nil, fmt.Errorf("find closest center for %s/%s: %w", brand, name, core.ErrCenterNotFound)
	default:
		return nil, unavailable("find closest center", fmt.Errorf("status %d", resp.StatusCode))
	}

	var payload centerPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, unavailable("find closest center", err)
	}
	center := c.toCenter(&payload)
	return &center, nil
}

// RequestFulfillment asks one center to ship quantity units of (brand, name).
// Anything but a 200 means nothing was transferred.
func (c *Client) RequestFulfillment(ctx context.Context, centerID int64, brand, name string, quantity int) error {
	target := fmt.Sprintf("%s/%d/request?quantity=%d", c.baseURL, centerID, quantity)
	resp, err := c.do(ctx, http.MethodPost, target, findRequest{Brand: brand, Name: name})
	if err != nil {
		return unavailable("request fulfillment", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request fulfillment from center %d: rejected with status %d", centerID, resp.StatusCode)
	}
	return nil
}

// AddItem creates a catalog entry at a center.
func (c *Client) AddItem(ctx context.Context, centerID int64, item core.CenterItem) error {
	body := itemPayload{
		Name:     item.Name,
		Brand:    item.Brand,
		Category: item.Category,
		Price:    item.Price,
		Year:     item.Year,
		Quantity: item.Quantity,
	}
	resp, err := c.do(ctx, http.MethodPost, fmt.Sprintf("%s/%d/items", c.baseURL, centerID), body)
	if err != nil {
		return unavailable("add center item", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("add item to center %d: status %d", centerID, resp.StatusCode)
	}
	return nil
}

// DeleteItem removes a catalog entry from a center.
func (c *Client) DeleteItem(ctx context.Context, centerID, itemID int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d/items/%d", c.baseURL, centerID, itemID), nil)
	if err != nil {
		return unavailable("delete center item", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("delete item %d from center %d: status %d", itemID, centerID, resp.StatusCode)
	}
	return nil
}

// do issues one authenticated JSON request. body, when non-nil, is encoded as
// the JSON request body.
func (c *Client) do(ctx context.Context, method, target string, body any) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.username, c.password)
	return c.http.Do(req)
}

// toCenter maps a wire payload to the domain snapshot, computing the display
// distance from the warehouse.
func (c *Client) toCenter(p *centerPayload) core.DistributionCenter {
	location := core.Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
	items := make([]core.CenterItem, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, core.CenterItem(it))
	}
	return core.DistributionCenter{
		ID:                      p.ID,
		Name:                    p.Name,
		Location:                location,
		DistanceFromWarehouseKm: core.RoundKm(core.DistanceKm(c.warehouse, location)),
		ItemCount:               len(items),
		Items:                   items,
	}
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, core.ErrServiceUnavailable, err)
}

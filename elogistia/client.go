package elogistia

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

const defaultBaseURL = "https://api.elogistia.com"

// The wilaya table changes a few times a year; cache it briefly so the
// checkout page does not hammer the carrier.
const wilayaCacheTTL = 10 * time.Minute

type Config struct {
	APIKey  string
	BaseURL string
}

// ConfigFromEnv reads ELOGISTIA_API_KEY and ELOGISTIA_BASE_URL.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		APIKey:  os.Getenv("ELOGISTIA_API_KEY"),
		BaseURL: os.Getenv("ELOGISTIA_BASE_URL"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.APIKey == "" {
		return Config{}, fmt.Errorf("elogistia configuration missing: ELOGISTIA_API_KEY not set")
	}
	return cfg, nil
}

type Client struct {
	cfg  Config
	http *http.Client

	mu            sync.Mutex
	cachedWilayas []Wilaya
	wilayasExpiry time.Time
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// GetWilayas returns the carrier's wilaya/shipping-cost table. Any transport
// or payload failure yields an empty list; callers must treat empty as
// "try later", never as "no provinces exist".
func (c *Client) GetWilayas() []Wilaya {
	c.mu.Lock()
	if c.cachedWilayas != nil && time.Now().Before(c.wilayasExpiry) {
		cached := c.cachedWilayas
		c.mu.Unlock()
		return cached
	}
	c.mu.Unlock()

	body, err := c.get("/getWilayas/", url.Values{"key": {c.cfg.APIKey}})
	if err != nil {
		log.Printf("elogistia: fetching wilayas failed: %v", err)
		return []Wilaya{}
	}

	var wilayas []Wilaya
	if err := decodeList(body, &wilayas); err != nil {
		log.Printf("elogistia: decoding wilayas failed: %v", err)
		return []Wilaya{}
	}

	c.mu.Lock()
	c.cachedWilayas = wilayas
	c.wilayasExpiry = time.Now().Add(wilayaCacheTTL)
	c.mu.Unlock()
	return wilayas
}

// FindWilaya looks up a wilaya row by ID in the cached table.
func (c *Client) FindWilaya(wilayaID string) *Wilaya {
	for _, w := range c.GetWilayas() {
		if w.WilayaID == wilayaID {
			return &w
		}
	}
	return nil
}

// GetMunicipalities returns the communes of one wilaya. An empty wilayaID
// short-circuits to an empty list without touching the network.
func (c *Client) GetMunicipalities(wilayaID string) []Municipality {
	if wilayaID == "" {
		return []Municipality{}
	}

	body, err := c.get("/getMunicipalities/", url.Values{
		"key":    {c.cfg.APIKey},
		"wilaya": {wilayaID},
	})
	if err != nil {
		log.Printf("elogistia: fetching municipalities for wilaya %s failed: %v", wilayaID, err)
		return []Municipality{}
	}

	var municipalities []Municipality
	if err := decodeList(body, &municipalities); err != nil {
		log.Printf("elogistia: decoding municipalities failed: %v", err)
		return []Municipality{}
	}
	return municipalities
}

// GetOrders fetches the full order feed as raw records. The carrier does not
// reliably filter by status server-side, so callers filter after
// normalization.
func (c *Client) GetOrders() []map[string]any {
	body, err := c.get("/getOrders/", url.Values{"key": {c.cfg.APIKey}})
	if err != nil {
		log.Printf("elogistia: fetching orders failed: %v", err)
		return []map[string]any{}
	}

	var records []map[string]any
	if err := decodeList(body, &records); err != nil {
		log.Printf("elogistia: decoding orders failed: %v", err)
		return []map[string]any{}
	}
	return records
}

// GetTracking returns the carrier's tracking record, or nil on any failure.
func (c *Client) GetTracking(trackingNumber string) *TrackingStatus {
	if trackingNumber == "" {
		return nil
	}

	body, err := c.get("/getTracking/", url.Values{
		"apiKey":   {c.cfg.APIKey},
		"tracking": {trackingNumber},
	})
	if err != nil {
		log.Printf("elogistia: fetching tracking %s failed: %v", trackingNumber, err)
		return nil
	}

	var status TrackingStatus
	if err := json.Unmarshal(body, &status); err != nil {
		log.Printf("elogistia: decoding tracking failed: %v", err)
		return nil
	}
	return &status
}

// CreateOrder forwards an order through insertCommande and maps the outcome
// to an explicit result. It never returns a Go error: transport failures and
// provider refusals are both OrderResult{Success: false}.
func (c *Client) CreateOrder(req OrderRequest) OrderResult {
	firstname, name := SplitName(req.CustomerName)

	stopDesk := "1"
	if strings.EqualFold(req.DeliveryType, "STOPDESK") {
		stopDesk = "2"
	}

	names := make([]string, len(req.Products))
	prices := make([]string, len(req.Products))
	for i, p := range req.Products {
		names[i] = p.Name
		prices[i] = strconv.FormatFloat(p.Price, 'f', -1, 64)
	}

	params := url.Values{
		"apiKey":           {c.cfg.APIKey},
		"name":             {name},
		"firstname":        {firstname},
		"mail":             {req.CustomerEmail},
		"phone":            {req.CustomerPhone},
		"address":          {req.Address},
		"commune":          {req.Municipality},
		"fraisDeLivraison": {strconv.FormatFloat(req.ShippingCost, 'f', -1, 64)},
		"remarque":         {req.Notes},
		"stop_desk":        {stopDesk},
		"wilaya":           {req.WilayaID},
		"product":          {strings.Join(names, ",")},
		"price":            {strings.Join(prices, ",")},
		"modeDeLivraison":  {"1"},
		"IdCommande":       {req.OrderNumber},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/insertCommande/?" + params.Encode()
	resp, err := c.http.Post(endpoint, "application/json", nil)
	if err != nil {
		return OrderResult{Success: false, Error: fmt.Sprintf("failed to reach carrier: %v", err)}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return OrderResult{Success: false, Error: fmt.Sprintf("carrier API error (%d): %s", resp.StatusCode, string(body))}
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return OrderResult{Success: false, Error: fmt.Sprintf("failed to parse carrier response: %v", err)}
	}

	tracking := stringField(payload, "trackingNumber")
	if tracking == "" {
		tracking = stringField(payload, "tracking")
	}
	if tracking == "" {
		return OrderResult{Success: false, Error: "carrier returned no tracking number", Response: payload}
	}

	return OrderResult{Success: true, TrackingNumber: tracking, Response: payload}
}

// SplitName cuts a full name at the first whitespace: the first token is the
// carrier's "firstname", the remainder its "name". A single-token name is
// used for both.
func SplitName(fullName string) (firstname, name string) {
	parts := strings.Fields(strings.TrimSpace(fullName))
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], parts[0]
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func (c *Client) get(path string, params url.Values) ([]byte, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + path + "?" + params.Encode()
	resp, err := c.http.Get(endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("carrier API error (%d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}

func stringField(payload map[string]any, key string) string {
	if v, ok := payload[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

package elogistia

// Wilaya is one row of the carrier's shipping-cost table. Home and Stopdesk
// are numeric strings on the wire; unparseable values count as 0.
type Wilaya struct {
	WilayaLabel string `json:"wilayaLabel"`
	WilayaID    string `json:"wilayaID"`
	Home        string `json:"home"`
	Stopdesk    string `json:"stopdesk"`
}

type Municipality struct {
	ID     string `json:"Id"`
	Name   string `json:"name"`
	Wilaya string `json:"wilaya"`
}

type TrackingEvent struct {
	Date     string `json:"date"`
	Status   string `json:"status"`
	Location string `json:"location,omitempty"`
}

type TrackingStatus struct {
	Tracking string          `json:"tracking"`
	Status   string          `json:"status"`
	History  []TrackingEvent `json:"history,omitempty"`
}

// OrderProduct is one line forwarded to the carrier: a display name and the
// amount to collect for it.
type OrderProduct struct {
	Name  string
	Price float64
}

// OrderRequest carries everything insertCommande needs.
type OrderRequest struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Address       string
	WilayaID      string
	Municipality  string
	DeliveryType  string // "HOME" or "STOPDESK"
	ShippingCost  float64
	Products      []OrderProduct
	Notes         string
	OrderNumber   string
}

// OrderResult is the explicit outcome of an order forward. Provider refusals
// and transport failures both land here as Success=false; the client never
// returns a Go error for them.
type OrderResult struct {
	Success        bool           `json:"success"`
	TrackingNumber string         `json:"trackingNumber,omitempty"`
	Error          string         `json:"error,omitempty"`
	Response       map[string]any `json:"response,omitempty"`
}

package domain

// OrderItem is one extracted purchase-order line.
type OrderItem struct {
	VendorName   string `json:"vendorName"`
	ProductName  string `json:"productName"`
	ProductCode  string `json:"productCode,omitempty"`
	Quantity     string `json:"quantity"`
	DeliveryDate string `json:"deliveryDate,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

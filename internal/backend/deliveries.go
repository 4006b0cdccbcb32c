package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"suriname/internal/page"
	"suriname/internal/search"
)

// Delivery is one outbound shipment of a repaired product.
type Delivery struct {
	DeliveryID     int64  `json:"deliveryId"`
	RequestNo      string `json:"requestNo"`
	CustomerName   string `json:"customerName"`
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"trackingNumber"`
	Status         string `json:"deliveryStatus"`
	ShippedAt      string `json:"shippedAt"`
	CompletedAt    string `json:"completedAt"`
}

// ListDeliveries runs the filtered delivery list.
func (c *Client) ListDeliveries(ctx context.Context, q search.Query, pageIdx, size int) (page.Page[Delivery], error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/deliveries", search.Encode(q, pageIdx, size), &raw); err != nil {
		return page.Empty[Delivery](), err
	}
	return page.Normalize[Delivery](raw)
}

// TrackDelivery fetches carrier tracking events for one shipment.
func (c *Client) TrackDelivery(ctx context.Context, id int64) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.get(ctx, fmt.Sprintf("/api/deliveries/%d/tracking", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

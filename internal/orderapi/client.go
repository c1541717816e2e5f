// Package orderapi is a thin HTTP client for the external order service.
// Each operation is a single request/response round trip; retries are a
// caller policy, not built in.
package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"luxera-storefront/internal/domain"
)

// Client talks to the order service at a fixed base URL, e.g.
// "http://localhost:5000/api".
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New builds a Client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// NewWithHTTPClient builds a Client with a caller-supplied http.Client.
func NewWithHTTPClient(baseURL string, httpc *http.Client) *Client {
	return &Client{baseURL: baseURL, httpc: httpc}
}

// Order is the order service's view of a created order. Fields beyond the
// id are informational; the storefront only depends on ID and WhatsAppSent.
type Order struct {
	ID           int    `json:"id"`
	Status       string `json:"status,omitempty"`
	Subtotal     int    `json:"subtotal,omitempty"`
	Shipping     int    `json:"shipping,omitempty"`
	Total        int    `json:"total,omitempty"`
	WhatsAppSent bool   `json:"whatsappSent,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// CreateOrderResult is the successful response of CreateOrder.
type CreateOrderResult struct {
	Order       Order  `json:"order"`
	WhatsAppURL string `json:"whatsappUrl"`
	Message     string `json:"message,omitempty"`
}

type orderProduct struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Image string `json:"image"`
}

type createOrderRequest struct {
	Product         orderProduct           `json:"product"`
	Quantity        int                    `json:"quantity"`
	SelectedSize    string                 `json:"selectedSize"`
	SelectedColor   string                 `json:"selectedColor"`
	CustomerDetails domain.CustomerDetails `json:"customerDetails"`
}

type createOrderResponse struct {
	Success     bool   `json:"success"`
	Order       Order  `json:"order"`
	WhatsAppURL string `json:"whatsappUrl"`
	Message     string `json:"message"`
	Error       string `json:"error"`
}

type ackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// CreateOrder submits a finalized draft. The draft must already carry
// validated customer details.
func (c *Client) CreateOrder(ctx context.Context, draft domain.OrderDraft) (*CreateOrderResult, error) {
	if draft.CustomerDetails == nil {
		return nil, fmt.Errorf("create order: draft has no customer details")
	}

	req := createOrderRequest{
		Product: orderProduct{
			ID:    draft.Product.ID,
			Name:  draft.Product.Name,
			Price: draft.Product.Price,
			Image: draft.Product.Image(),
		},
		Quantity:        draft.Quantity,
		SelectedSize:    draft.SelectedSize,
		SelectedColor:   draft.SelectedColor,
		CustomerDetails: *draft.CustomerDetails,
	}

	var resp createOrderResponse
	if err := c.post(ctx, "/orders", req, &resp); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = resp.Message
		}
		return nil, fmt.Errorf("create order: rejected by order service: %s", msg)
	}

	return &CreateOrderResult{
		Order:       resp.Order,
		WhatsAppURL: resp.WhatsAppURL,
		Message:     resp.Message,
	}, nil
}

// MarkWhatsAppSent records that the WhatsApp deep-link was opened for the
// order. Callers treat this as best-effort and must not surface failures.
func (c *Client) MarkWhatsAppSent(ctx context.Context, orderID int) error {
	var resp ackResponse
	if err := c.post(ctx, fmt.Sprintf("/orders/%d/whatsapp-sent", orderID), nil, &resp); err != nil {
		return fmt.Errorf("mark whatsapp sent: %w", err)
	}
	return nil
}

// SubmitContactForm forwards a validated contact submission.
func (c *Client) SubmitContactForm(ctx context.Context, sub domain.ContactSubmission) error {
	var resp ackResponse
	if err := c.post(ctx, "/contact", sub, &resp); err != nil {
		return fmt.Errorf("submit contact form: %w", err)
	}
	if !resp.Success {
		return fmt.Errorf("submit contact form: rejected by order service: %s", resp.Error)
	}
	return nil
}

// GetOrder fetches an order by id.
func (c *Client) GetOrder(ctx context.Context, orderID int) (*Order, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+fmt.Sprintf("/orders/%d", orderID), nil)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	res, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("get order: unexpected status %d", res.StatusCode)
	}

	var resp struct {
		Order Order `json:"order"`
	}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("get order: decode response: %w", err)
	}
	return &resp.Order, nil
}

// Ping reports whether the order service origin is reachable. Any HTTP
// response counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/orders", nil)
	if err != nil {
		return err
	}
	res, err := c.httpc.Do(httpReq)
	if err != nil {
		return err
	}
	io.Copy(io.Discard, res.Body)
	res.Body.Close()
	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.httpc.Do(httpReq)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	// Non-2xx is a failure regardless of body content.
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

package orderapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"luxera-storefront/internal/domain"
)

func testDraft() domain.OrderDraft {
	return domain.OrderDraft{
		Product: domain.Product{
			ID:     1,
			Name:   "Luxera Smart Elite",
			Price:  45000,
			Images: []string{"/assets/product-1.jpg"},
		},
		Quantity:     2,
		SelectedSize: "42mm",
		CustomerDetails: &domain.CustomerDetails{
			FullName:     "Ahmed Khan",
			MobileNumber: "03001234567",
			Email:        "a@b.com",
			Address:      "123 St",
			City:         "Karachi",
			Province:     "Sindh",
		},
	}
}

func TestCreateOrderSuccess(t *testing.T) {
	var gotBody createOrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/orders" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(createOrderResponse{
			Success:     true,
			Order:       Order{ID: 42, Status: "pending", Total: 90000},
			WhatsAppURL: "https://api.whatsapp.com/send/?phone=923261300101",
			Message:     "Order created successfully",
		})
	}))
	defer srv.Close()

	client := New(srv.URL + "/api")
	res, err := client.CreateOrder(context.Background(), testDraft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Order.ID != 42 {
		t.Fatalf("expected order id 42, got %d", res.Order.ID)
	}
	if res.WhatsAppURL == "" {
		t.Fatalf("expected whatsapp url")
	}

	if gotBody.Product.ID != 1 || gotBody.Product.Price != 45000 {
		t.Fatalf("unexpected product payload: %+v", gotBody.Product)
	}
	if gotBody.Product.Image != "/assets/product-1.jpg" {
		t.Fatalf("unexpected product image: %q", gotBody.Product.Image)
	}
	if gotBody.Quantity != 2 || gotBody.SelectedSize != "42mm" {
		t.Fatalf("unexpected selection payload: %+v", gotBody)
	}
	if gotBody.CustomerDetails.FullName != "Ahmed Khan" {
		t.Fatalf("unexpected customer payload: %+v", gotBody.CustomerDetails)
	}
}

func TestCreateOrderNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL + "/api")
	if _, err := client.CreateOrder(context.Background(), testDraft()); err == nil {
		t.Fatalf("expected error on 500 response")
	}
}

func TestCreateOrderSuccessFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(createOrderResponse{Success: false, Error: "out of stock"})
	}))
	defer srv.Close()

	client := New(srv.URL + "/api")
	if _, err := client.CreateOrder(context.Background(), testDraft()); err == nil {
		t.Fatalf("expected error on success:false response")
	}
}

func TestCreateOrderRequiresCustomerDetails(t *testing.T) {
	client := New("http://unreachable.invalid/api")
	draft := testDraft()
	draft.CustomerDetails = nil
	if _, err := client.CreateOrder(context.Background(), draft); err == nil {
		t.Fatalf("expected error for draft without customer details")
	}
}

func TestMarkWhatsAppSent(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(ackResponse{Success: true, Message: "Order marked as WhatsApp sent"})
	}))
	defer srv.Close()

	client := New(srv.URL + "/api")
	if err := client.MarkWhatsAppSent(context.Background(), 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/orders/42/whatsapp-sent" {
		t.Fatalf("unexpected path %q", gotPath)
	}
}

func TestMarkWhatsAppSentFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := New(srv.URL + "/api")
	if err := client.MarkWhatsAppSent(context.Background(), 42); err == nil {
		t.Fatalf("expected error on 404 response")
	}
}

func TestSubmitContactForm(t *testing.T) {
	var got domain.ContactSubmission
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/contact" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(ackResponse{Success: true})
	}))
	defer srv.Close()

	client := New(srv.URL + "/api")
	sub := domain.ContactSubmission{Name: "Sarah Ali", Email: "sarah@example.com", Message: "I love the watches"}
	if err := client.SubmitContactForm(context.Background(), sub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != sub {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestGetOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/orders/7" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]Order{"order": {ID: 7, Status: "pending"}})
	}))
	defer srv.Close()

	client := New(srv.URL + "/api")
	order, err := client.GetOrder(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != 7 || order.Status != "pending" {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	client := New(srv.URL + "/api")
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	srv.Close()
	if err := client.Ping(context.Background()); err == nil {
		t.Fatalf("expected error when service is down")
	}
}

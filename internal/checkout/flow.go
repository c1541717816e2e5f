// Package checkout owns the order checkout state machine. A Flow carries
// one OrderDraft from product selection through customer details, review
// and confirmation; every transition takes the current draft and either
// produces the next state or reports why it cannot.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"luxera-storefront/internal/catalog"
	"luxera-storefront/internal/domain"
	"luxera-storefront/internal/orderapi"
	"luxera-storefront/internal/validate"
)

// State is the checkout flow position.
type State string

const (
	StateBrowsing                State = "browsing"
	StateAwaitingCustomerDetails State = "awaiting_customer_details"
	StateReviewingOrder          State = "reviewing_order"
	StateSubmitting              State = "submitting"
	StateConfirmed               State = "confirmed"
)

var (
	// ErrNoProduct indicates a checkout step was reached without a
	// selected product.
	ErrNoProduct = errors.New("no product selected")
	// ErrInvalidQuantity indicates a quantity below 1.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrInvalidVariant indicates a size or color the product does not offer.
	ErrInvalidVariant = errors.New("selected variant is not offered for this product")
	// ErrWrongState indicates the transition is not allowed from the
	// current state.
	ErrWrongState = errors.New("not allowed in current checkout state")
	// ErrSubmitInFlight indicates a confirm was requested while a previous
	// submission is still running.
	ErrSubmitInFlight = errors.New("order submission already in flight")
)

// OrderClient is the slice of the order service the flow needs.
type OrderClient interface {
	CreateOrder(ctx context.Context, draft domain.OrderDraft) (*orderapi.CreateOrderResult, error)
	MarkWhatsAppSent(ctx context.Context, orderID int) error
}

// ConfirmResult is returned when an order is created.
type ConfirmResult struct {
	OrderID     int
	WhatsAppURL string
}

// Flow is the checkout state machine for one session. All methods are safe
// for concurrent use, though a session only ever drives one action at a
// time.
type Flow struct {
	catalog catalog.Repository
	orders  OrderClient
	logger  zerolog.Logger

	mu          sync.Mutex
	state       State
	draft       *domain.OrderDraft
	orderID     int
	whatsappURL string
}

// NewFlow builds a Flow in the Browsing state.
func NewFlow(cat catalog.Repository, orders OrderClient, logger zerolog.Logger) *Flow {
	return &Flow{
		catalog: cat,
		orders:  orders,
		logger:  logger.With().Str("component", "checkout").Logger(),
		state:   StateBrowsing,
	}
}

// State returns the current flow state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Draft returns a copy of the current draft, if one exists.
func (f *Flow) Draft() (domain.OrderDraft, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.draft == nil {
		return domain.OrderDraft{}, false
	}
	return copyDraft(*f.draft), true
}

// SelectProduct starts a checkout for the given product, quantity and
// optional variant. It resolves the product from the catalog; an unknown id
// rejects the transition. Starting a new selection abandons any previous
// draft or confirmation.
func (f *Flow) SelectProduct(ctx context.Context, productID, quantity int, size, color string) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	product, err := f.catalog.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrNoProduct
		}
		return fmt.Errorf("resolve product %d: %w", productID, err)
	}
	if size != "" && !product.HasSize(size) {
		return ErrInvalidVariant
	}
	if color != "" && !product.HasColor(color) {
		return ErrInvalidVariant
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSubmitting {
		return ErrSubmitInFlight
	}
	f.draft = &domain.OrderDraft{
		Product:       *product,
		Quantity:      quantity,
		SelectedSize:  size,
		SelectedColor: color,
	}
	f.orderID = 0
	f.whatsappURL = ""
	f.state = StateAwaitingCustomerDetails
	return nil
}

// SubmitDetails validates the customer details and, when they pass,
// attaches them to the draft and advances to ReviewingOrder. On validation
// failure the flow stays put and the full field error mapping is returned;
// nothing already entered is lost.
func (f *Flow) SubmitDetails(details domain.CustomerDetails) (validate.Errors, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateAwaitingCustomerDetails {
		return nil, ErrWrongState
	}
	if f.draft == nil {
		return nil, ErrNoProduct
	}

	errs := validate.Checkout(details)
	if !errs.Valid() {
		return errs, nil
	}

	d := details
	f.draft.CustomerDetails = &d
	f.state = StateReviewingOrder
	return nil, nil
}

// Edit steps back from review to the details form. The draft, including
// the already entered customer details, is preserved for pre-filling.
func (f *Flow) Edit() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateReviewingOrder {
		return ErrWrongState
	}
	f.state = StateAwaitingCustomerDetails
	return nil
}

// Confirm submits the reviewed draft to the order service. While the
// request is in flight the flow sits in Submitting and rejects further
// confirms. On success the flow enters Confirmed, stores the WhatsApp
// deep-link and fires the best-effort mark-sent call; on failure it falls
// back to ReviewingOrder with the draft untouched so the user can retry.
func (f *Flow) Confirm(ctx context.Context) (*ConfirmResult, error) {
	f.mu.Lock()
	switch f.state {
	case StateSubmitting:
		f.mu.Unlock()
		return nil, ErrSubmitInFlight
	case StateReviewingOrder:
		// proceed
	default:
		f.mu.Unlock()
		return nil, ErrWrongState
	}
	draft := copyDraft(*f.draft)
	f.state = StateSubmitting
	f.mu.Unlock()

	result, err := f.orders.CreateOrder(ctx, draft)

	f.mu.Lock()
	if f.state != StateSubmitting {
		// The session moved on (e.g. reset) while the request was in
		// flight; discard the result.
		f.mu.Unlock()
		return nil, ErrWrongState
	}
	if err != nil {
		f.state = StateReviewingOrder
		f.mu.Unlock()
		return nil, fmt.Errorf("confirm order: %w", err)
	}

	f.state = StateConfirmed
	f.orderID = result.Order.ID
	f.whatsappURL = result.WhatsAppURL
	f.mu.Unlock()

	// Confirmed is committed at this point; the best-effort call runs
	// outside the lock so it cannot stall reads for this session.
	f.markWhatsAppSent(ctx, result.Order.ID)

	return &ConfirmResult{OrderID: result.Order.ID, WhatsAppURL: result.WhatsAppURL}, nil
}

// markWhatsAppSent is best-effort telemetry: failures are logged and
// discarded, never surfaced, and never revert the Confirmed state.
func (f *Flow) markWhatsAppSent(ctx context.Context, orderID int) {
	if err := f.orders.MarkWhatsAppSent(ctx, orderID); err != nil {
		f.logger.Warn().Err(err).Int("orderId", orderID).Msg("mark whatsapp sent failed")
	}
}

// WhatsAppURL returns the stored deep-link for the confirmed order. It is
// idempotent; reopening never re-submits anything.
func (f *Flow) WhatsAppURL() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateConfirmed {
		return "", ErrWrongState
	}
	return f.whatsappURL, nil
}

// OrderID returns the id of the confirmed order, or 0 before confirmation.
func (f *Flow) OrderID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orderID
}

// Reset discards the draft and returns to Browsing ("continue shopping",
// or navigating away without confirming).
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = nil
	f.orderID = 0
	f.whatsappURL = ""
	f.state = StateBrowsing
}

func copyDraft(d domain.OrderDraft) domain.OrderDraft {
	if d.CustomerDetails != nil {
		details := *d.CustomerDetails
		d.CustomerDetails = &details
	}
	return d
}

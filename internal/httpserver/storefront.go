package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"luxera-storefront/internal/catalog"
	"luxera-storefront/internal/checkout"
	"luxera-storefront/internal/domain"
	"luxera-storefront/internal/validate"
)

type storefrontHandler struct {
	catalog  catalog.Repository
	contacts *formRegistry
	logger   zerolog.Logger
}

type beginCheckoutRequest struct {
	ProductID int `json:"productId"`
	// Absent quantity means one item; an explicit 0 is still rejected.
	Quantity      *int   `json:"quantity"`
	SelectedSize  string `json:"selectedSize"`
	SelectedColor string `json:"selectedColor"`
}

type checkoutView struct {
	State           checkout.State          `json:"state"`
	Product         domain.Product          `json:"product"`
	Quantity        int                     `json:"quantity"`
	SelectedSize    string                  `json:"selectedSize,omitempty"`
	SelectedColor   string                  `json:"selectedColor,omitempty"`
	CustomerDetails *domain.CustomerDetails `json:"customerDetails,omitempty"`
	Subtotal        int                     `json:"subtotal"`
	Shipping        int                     `json:"shipping"`
	Total           int                     `json:"total"`
	Cities          []string                `json:"cities,omitempty"`
	Provinces       []string                `json:"provinces,omitempty"`
}

func viewOf(state checkout.State, draft domain.OrderDraft) checkoutView {
	return checkoutView{
		State:           state,
		Product:         draft.Product,
		Quantity:        draft.Quantity,
		SelectedSize:    draft.SelectedSize,
		SelectedColor:   draft.SelectedColor,
		CustomerDetails: draft.CustomerDetails,
		Subtotal:        draft.Subtotal(),
		Shipping:        draft.Shipping(),
		Total:           draft.Total(),
	}
}

func (h *storefrontHandler) listProducts(c *gin.Context) {
	products, err := h.catalog.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *storefrontHandler) getProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	product, err := h.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *storefrontHandler) beginCheckout(c *gin.Context) {
	var req beginCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	flow := flowFrom(c)
	err := flow.SelectProduct(c.Request.Context(), req.ProductID, quantity, req.SelectedSize, req.SelectedColor)
	switch {
	case err == nil:
	case errors.Is(err, checkout.ErrNoProduct):
		c.JSON(http.StatusNotFound, gin.H{"error": "No product selected"})
		return
	case errors.Is(err, checkout.ErrInvalidQuantity), errors.Is(err, checkout.ErrInvalidVariant):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, checkout.ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "order submission already in flight"})
		return
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start checkout"})
		return
	}

	draft, _ := flow.Draft()
	c.JSON(http.StatusOK, viewOf(flow.State(), draft))
}

func (h *storefrontHandler) getCheckout(c *gin.Context) {
	flow := flowFrom(c)
	draft, ok := flow.Draft()
	if !ok {
		redirect(c, "/")
		return
	}
	if flow.State() == checkout.StateConfirmed {
		redirect(c, "/checkout/confirmation")
		return
	}

	view := viewOf(flow.State(), draft)
	view.Cities = validate.Cities
	view.Provinces = validate.Provinces
	c.JSON(http.StatusOK, view)
}

func (h *storefrontHandler) submitDetails(c *gin.Context) {
	var details domain.CustomerDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	flow := flowFrom(c)
	fieldErrs, err := flow.SubmitDetails(details)
	if err != nil {
		h.guardRedirect(c, flow)
		return
	}
	if !fieldErrs.Valid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}

	draft, _ := flow.Draft()
	c.JSON(http.StatusOK, viewOf(flow.State(), draft))
}

func (h *storefrontHandler) getReview(c *gin.Context) {
	flow := flowFrom(c)
	state := flow.State()
	if state != checkout.StateReviewingOrder && state != checkout.StateSubmitting {
		h.guardRedirect(c, flow)
		return
	}
	draft, _ := flow.Draft()
	c.JSON(http.StatusOK, viewOf(state, draft))
}

func (h *storefrontHandler) editOrder(c *gin.Context) {
	flow := flowFrom(c)
	if err := flow.Edit(); err != nil {
		h.guardRedirect(c, flow)
		return
	}
	draft, _ := flow.Draft()
	c.JSON(http.StatusOK, viewOf(flow.State(), draft))
}

func (h *storefrontHandler) confirmOrder(c *gin.Context) {
	flow := flowFrom(c)
	res, err := flow.Confirm(c.Request.Context())
	switch {
	case err == nil:
	case errors.Is(err, checkout.ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "order submission already in flight"})
		return
	case errors.Is(err, checkout.ErrWrongState):
		h.guardRedirect(c, flow)
		return
	default:
		h.logger.Error().Err(err).Msg("create order failed")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "There was an error processing your order. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"orderId":     res.OrderID,
		"whatsappUrl": res.WhatsAppURL,
	})
}

func (h *storefrontHandler) getConfirmation(c *gin.Context) {
	flow := flowFrom(c)
	url, err := flow.WhatsAppURL()
	if err != nil {
		h.guardRedirect(c, flow)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orderId":     flow.OrderID(),
		"whatsappUrl": url,
	})
}

func (h *storefrontHandler) resetCheckout(c *gin.Context) {
	flow := flowFrom(c)
	flow.Reset()
	c.JSON(http.StatusOK, gin.H{"state": checkout.StateBrowsing})
}

// guardRedirect sends the session to the nearest valid earlier step for
// its current state. Never surfaced as an error.
func (h *storefrontHandler) guardRedirect(c *gin.Context, flow *checkout.Flow) {
	switch flow.State() {
	case checkout.StateAwaitingCustomerDetails:
		redirect(c, "/checkout")
	case checkout.StateReviewingOrder, checkout.StateSubmitting:
		redirect(c, "/checkout/review")
	case checkout.StateConfirmed:
		redirect(c, "/checkout/confirmation")
	default:
		redirect(c, "/")
	}
}

func (h *storefrontHandler) contactStatus(c *gin.Context) {
	form := h.contacts.forSession(sessionIDFrom(c))
	c.JSON(http.StatusOK, gin.H{"submitted": form.Submitted()})
}

func (h *storefrontHandler) submitContact(c *gin.Context) {
	var sub domain.ContactSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	form := h.contacts.forSession(sessionIDFrom(c))
	fieldErrs, err := form.Submit(c.Request.Context(), sub)
	if err != nil {
		h.logger.Error().Err(err).Msg("contact form submission failed")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "There was an error sending your message. Please try again.",
		})
		return
	}
	if !fieldErrs.Valid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "submitted": true})
}

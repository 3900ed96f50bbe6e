package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/checkout"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/session"
	"github.com/rs/zerolog"
)

type CheckoutHandler struct {
	log      zerolog.Logger
	sessions *session.Store
	views    *cart.Service
}

func NewCheckoutHandler(log zerolog.Logger, sessions *session.Store, views *cart.Service) *CheckoutHandler {
	return &CheckoutHandler{
		log:      log,
		sessions: sessions,
		views:    views,
	}
}

func (h *CheckoutHandler) GetFlow(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	sess := h.sessions.Get(userID)

	var out FlowDTO
	sess.Do(func(s *session.Session) {
		out = flowDTO(s)
	})

	respondJSON(w, http.StatusOK, out)
}

func (h *CheckoutHandler) BeginCheckout(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	sess := h.sessions.Get(userID)

	var out FlowDTO
	var flowErr error
	sess.Do(func(s *session.Session) {
		flowErr = s.Flow.BeginCheckout()
		out = flowDTO(s)
	})

	if flowErr != nil {
		respondFlowError(w, flowErr)
		return
	}

	respondJSON(w, http.StatusOK, out)
}

func (h *CheckoutHandler) SubmitDetails(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req domain.CustomerDetails
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	sess := h.sessions.Get(userID)

	var out FlowDTO
	var fe checkout.FieldErrors
	var flowErr error
	sess.Do(func(s *session.Session) {
		fe, flowErr = s.Flow.SubmitDetails(req)
		out = flowDTO(s)
	})

	if errors.Is(flowErr, checkout.ErrInvalidDetails) {
		respondFieldErrors(w, fe)
		return
	}
	if flowErr != nil {
		respondFlowError(w, flowErr)
		return
	}

	respondJSON(w, http.StatusOK, out)
}

func (h *CheckoutHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req domain.PaymentForm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	sess := h.sessions.Get(userID)

	var out FlowDTO
	var fe checkout.FieldErrors
	var flowErr error
	sess.Do(func(s *session.Session) {
		_, fe, flowErr = s.Flow.SubmitPayment(r.Context(), req)
		out = flowDTO(s)
	})

	if errors.Is(flowErr, checkout.ErrInvalidPayment) {
		respondFieldErrors(w, fe)
		return
	}
	if flowErr != nil {
		respondFlowError(w, flowErr)
		return
	}

	// successful payment emptied the cart
	h.views.Invalidate(userID)

	respondJSON(w, http.StatusOK, out)
}

func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	sess := h.sessions.Get(userID)

	var out FlowDTO
	var flowErr error
	sess.Do(func(s *session.Session) {
		flowErr = s.Flow.Back()
		out = flowDTO(s)
	})

	if flowErr != nil {
		respondFlowError(w, flowErr)
		return
	}

	respondJSON(w, http.StatusOK, out)
}

func (h *CheckoutHandler) ContinueShopping(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	sess := h.sessions.Get(userID)

	var out FlowDTO
	var flowErr error
	sess.Do(func(s *session.Session) {
		flowErr = s.Flow.ContinueShopping()
		out = flowDTO(s)
	})

	if flowErr != nil {
		respondFlowError(w, flowErr)
		return
	}

	respondJSON(w, http.StatusOK, out)
}

func flowDTO(s *session.Session) FlowDTO {
	return FlowDTO{
		State:       s.Flow.State().String(),
		OrderNumber: s.Flow.OrderNumber(),
		Details:     s.Flow.Details(),
		Receipt:     toReceiptDTO(s.Flow.Receipt()),
	}
}

func respondFlowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusConflict, "empty_cart", err.Error())
	case errors.Is(err, checkout.ErrIllegalTransition):
		respondError(w, http.StatusConflict, "illegal_transition", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

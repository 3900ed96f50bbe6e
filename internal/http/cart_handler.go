package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/notify"
	"github.com/fjod/go_storefront/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type CartHandler struct {
	log      zerolog.Logger
	sessions *session.Store
	views    *cart.Service
	catalog  catalog.RepoInterface
	sink     notify.Sink
}

func NewCartHandler(log zerolog.Logger, sessions *session.Store, views *cart.Service, repo catalog.RepoInterface, sink notify.Sink) *CartHandler {
	return &CartHandler{
		log:      log,
		sessions: sessions,
		views:    views,
		catalog:  repo,
		sink:     sink,
	}
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	view, err := h.views.View(r.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("failed to build cart view")
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, toCartViewDTO(view))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		h.log.Error().Err(err).Int64("product_id", req.ProductID).Msg("catalog lookup failed")
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	sess := h.sessions.Get(userID)
	sess.Do(func(s *session.Session) {
		cart.AddItem(s.Cart, *product)
	})
	h.views.Invalidate(userID)

	event := notify.Event{
		Name:     notify.EventAddedToCart,
		Message:  fmt.Sprintf("%s has been added to your cart.", product.Name),
		Severity: notify.SeverityNormal,
	}
	if err := h.sink.Publish(r.Context(), event); err != nil {
		h.log.Warn().Err(err).Msg("failed to publish cart event")
	}

	view, err := h.views.View(r.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("failed to build cart view")
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, toCartViewDTO(view))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	productIDStr := chi.URLParam(r, "product_id")
	productID, err := strconv.ParseInt(productIDStr, 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must not exceed 99")
		return
	}

	sess := h.sessions.Get(userID)
	var found bool
	sess.Do(func(s *session.Session) {
		found = cart.SetQuantity(s.Cart, productID, req.Quantity)
	})

	if !found {
		respondError(w, http.StatusNotFound, "not_found", "product is not in the cart")
		return
	}
	h.views.Invalidate(userID)

	view, err := h.views.View(r.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("failed to build cart view")
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, toCartViewDTO(view))
}

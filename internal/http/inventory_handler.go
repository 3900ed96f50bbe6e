package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/inventory"
	"github.com/fjod/go_storefront/internal/notify"
	"github.com/fjod/go_storefront/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type InventoryHandler struct {
	log      zerolog.Logger
	store    *inventory.Store
	sessions *session.Store
	views    *cart.Service
	sink     notify.Sink
}

func NewInventoryHandler(log zerolog.Logger, store *inventory.Store, sessions *session.Store, views *cart.Service, sink notify.Sink) *InventoryHandler {
	return &InventoryHandler{
		log:      log,
		store:    store,
		sessions: sessions,
		views:    views,
		sink:     sink,
	}
}

func (h *InventoryHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	items := h.store.List()

	out := make([]InventoryItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toInventoryItemDTO(item))
	}

	respondJSON(w, http.StatusOK, out)
}

// AddToCart puts a stocked item into the user's cart. Out of stock items are
// rejected and raise a notification instead.
func (h *InventoryHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
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

	item, err := h.store.Get(productID)
	if err != nil {
		if errors.Is(err, inventory.ErrItemNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "inventory item not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	if item.Status() == domain.StockOutOfStock {
		event := notify.Event{
			Name:     notify.EventOutOfStock,
			Message:  fmt.Sprintf("%s is currently out of stock.", item.Name),
			Severity: notify.SeverityError,
		}
		if errPub := h.sink.Publish(r.Context(), event); errPub != nil {
			h.log.Warn().Err(errPub).Msg("failed to publish out of stock event")
		}

		respondError(w, http.StatusConflict, "out_of_stock", "item is out of stock")
		return
	}

	sess := h.sessions.Get(userID)
	sess.Do(func(s *session.Session) {
		cart.AddItem(s.Cart, item.Product())
	})
	h.views.Invalidate(userID)

	event := notify.Event{
		Name:     notify.EventAddedToCart,
		Message:  fmt.Sprintf("%s has been added to your cart.", item.Name),
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

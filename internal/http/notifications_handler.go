package http

import (
	"net/http"

	"github.com/fjod/go_storefront/internal/notify"
)

// NotificationsHandler serves and drains the in-memory notification feed.
// Clients poll it; each poll returns the events raised since the last one.
type NotificationsHandler struct {
	feed *notify.MemorySink
}

func NewNotificationsHandler(feed *notify.MemorySink) *NotificationsHandler {
	return &NotificationsHandler{feed: feed}
}

func (h *NotificationsHandler) Drain(w http.ResponseWriter, r *http.Request) {
	events := h.feed.Drain()
	if events == nil {
		events = []notify.Event{}
	}
	respondJSON(w, http.StatusOK, events)
}

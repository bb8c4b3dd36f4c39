package handlers

import (
	"fmt"
	"net/http"
)

// StreamEvents is a server-sent-events feed of the domain change signal.
// Clients receive a "changed" event after every committed mutation and are
// expected to re-query whatever they display; there is no payload.
func (h *Handler) StreamEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// buffered so a slow client never blocks the notifying write path;
	// a missed tick is fine because the signal carries no payload
	ticks := make(chan struct{}, 1)
	unsubscribe := h.svc.Subscribe(func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	fmt.Fprint(w, "event: connected\ndata: {}\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticks:
			fmt.Fprint(w, "event: changed\ndata: {}\n\n")
			flusher.Flush()
		}
	}
}

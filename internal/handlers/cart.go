package handlers

import (
	"encoding/gob"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/sessions"

	"seat-ticketing-platform/internal/models"
	"seat-ticketing-platform/internal/services"
)

const cartSessionKey = "cart"

// The cookie store gob-encodes session values, so the cart types must be
// registered before the first save.
func init() {
	gob.Register(&models.Cart{})
	gob.Register(models.CartItem{})
}

// CartHandler keeps the shopping cart in a cookie-backed session. The cart is
// a browsing convenience only: checkout re-validates items and recomputes all
// totals, so nothing here is trusted downstream.
type CartHandler struct {
	store     sessions.Store
	inventory services.InventoryServiceInterface
}

// NewCartHandler creates a new cart handler
func NewCartHandler(store sessions.Store, inventory services.InventoryServiceInterface) *CartHandler {
	return &CartHandler{store: store, inventory: inventory}
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, "session")
	if err != nil {
		h.handleSessionError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.cartFromSession(session))
}

// GetCartSummary handles GET /api/cart/summary
func (h *CartHandler) GetCartSummary(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, "session")
	if err != nil {
		h.handleSessionError(w, r, err)
		return
	}

	cart := h.cartFromSession(session)
	writeJSON(w, http.StatusOK, models.Summarize(cart.Items))
}

// AddItem handles POST /api/cart. Adding an item for a different event
// replaces the cart: a cart is always bound to exactly one event.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EventID int             `json:"eventId"`
		Item    models.CartItem `json:"item"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Item.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	event, err := h.inventory.GetEvent(req.EventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !event.CanSellOnline() {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("event %q is not selling online", event.Name))
		return
	}

	session, err := h.store.Get(r, "session")
	if err != nil {
		h.handleSessionError(w, r, err)
		return
	}

	cart := h.cartFromSession(session)
	if cart.EventID != 0 && cart.EventID != event.ID {
		cart = &models.Cart{}
	}
	if cart.EventID == 0 {
		cart.EventID = event.ID
		cart.EventName = event.Name
	}

	for _, existing := range cart.Items {
		if existing.ID == req.Item.ID {
			writeError(w, http.StatusConflict, fmt.Sprintf("item %s is already in the cart", req.Item.ID))
			return
		}
	}
	cart.Items = append(cart.Items, req.Item)

	session.Values[cartSessionKey] = cart
	if err := session.Save(r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save session")
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// RemoveItem handles DELETE /api/cart. With an itemId query parameter it
// removes one item; without it the whole cart is cleared.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, "session")
	if err != nil {
		h.handleSessionError(w, r, err)
		return
	}

	cart := h.cartFromSession(session)
	itemID := r.URL.Query().Get("itemId")
	if itemID == "" {
		cart = &models.Cart{}
	} else {
		kept := cart.Items[:0]
		for _, item := range cart.Items {
			if item.ID != itemID {
				kept = append(kept, item)
			}
		}
		cart.Items = kept
		if len(cart.Items) == 0 {
			cart = &models.Cart{}
		}
	}

	session.Values[cartSessionKey] = cart
	if err := session.Save(r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save session")
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// cartFromSession reads the cart, tolerating a missing or corrupted value
func (h *CartHandler) cartFromSession(session *sessions.Session) *models.Cart {
	if raw, ok := session.Values[cartSessionKey]; ok {
		if cart, ok := raw.(*models.Cart); ok && cart != nil {
			return cart
		}
	}
	return &models.Cart{}
}

// handleSessionError resets an undecodable session cookie and starts fresh.
// Stale cookies after a secret rotation land here.
func (h *CartHandler) handleSessionError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("session decode failed, resetting: %v", err)
	session, newErr := h.store.New(r, "session")
	if newErr != nil {
		writeError(w, http.StatusInternalServerError, "session error")
		return
	}
	session.Values[cartSessionKey] = &models.Cart{}
	if saveErr := session.Save(r, w); saveErr != nil {
		writeError(w, http.StatusInternalServerError, "session error")
		return
	}
	writeJSON(w, http.StatusOK, &models.Cart{})
}

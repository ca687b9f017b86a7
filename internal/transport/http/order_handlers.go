package http

import (
	"encoding/json"
	"net/http"

	"storefront-api/internal/authz"
	"storefront-api/internal/dto"
	"storefront-api/internal/service"
)

func actor(r *http.Request) *service.Claims {
	claims, _ := authz.ClaimsFrom(r.Context())
	return claims
}

func (h *handlers) createOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
		return
	}
	ord, err := h.orders.Create(r.Context(), actor(r), req)
	if err != nil {
		writeErr(w, r, "create order", err)
		return
	}
	writeJSON(w, http.StatusCreated, ord)
}

func (h *handlers) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUint(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var req dto.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
		return
	}
	ord, err := h.orders.SetStatus(r.Context(), actor(r), id, req.Status)
	if err != nil {
		writeErr(w, r, "update order status", err)
		return
	}
	writeJSON(w, http.StatusOK, ord)
}

func (h *handlers) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUint(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := h.orders.Delete(r.Context(), actor(r), id); err != nil {
		writeErr(w, r, "delete order", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) addOrderItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUint(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var req dto.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
		return
	}
	item, err := h.orders.AddItem(r.Context(), actor(r), id, req)
	if err != nil {
		writeErr(w, r, "add order item", err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *handlers) currentOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUint(r, "userID")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user id"})
		return
	}
	ord, err := h.orders.Current(r.Context(), actor(r), userID)
	if err != nil {
		writeErr(w, r, "current order", err)
		return
	}
	writeJSON(w, http.StatusOK, ord)
}

func (h *handlers) completedOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUint(r, "userID")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user id"})
		return
	}
	orders, err := h.orders.Completed(r.Context(), actor(r), userID)
	if err != nil {
		writeErr(w, r, "completed orders", err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

package http

import (
	"encoding/json"
	"net/http"

	"storefront-api/internal/dto"
)

func (h *handlers) register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
		return
	}
	res, err := h.auth.Register(r.Context(), req)
	if err != nil {
		writeErr(w, r, "register", err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
		return
	}
	res, err := h.auth.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeErr(w, r, "login", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handlers) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.auth.ListUsers(r.Context())
	if err != nil {
		writeErr(w, r, "list users", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *handlers) showUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUint(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	user, err := h.auth.GetUser(r.Context(), id)
	if err != nil {
		writeErr(w, r, "show user", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

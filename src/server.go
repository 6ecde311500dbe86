package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

type Server struct {
	svc      *OrderService
	verifier TokenVerifier
}

func NewServer(svc *OrderService, verifier TokenVerifier) *Server {
	return &Server{svc: svc, verifier: verifier}
}

func (s *Server) Router() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	r := chi.NewRouter()
	r.Use(c.Handler)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("NovelNest: Order Service Running"))
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return RequireAuth(s.verifier, next)
		})
		r.Post("/", s.handleCreate)
		r.Get("/", s.handleListForSeller)
		r.Patch("/{id}", s.handleUpdateStatus)
	})
	return r
}

// POST /api/orders
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := s.svc.Create(r.Context(), req, identityFrom(r.Context()), credentialFrom(r.Context()))
	if err != nil {
		log.Error().Err(err).Msg("error creating order")
		writeServiceError(w, err)
		return
	}

	log.Info().Str("order_id", order.ID).Msg("order created")
	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Order created successfully",
		"book":    order,
	})
}

// GET /api/orders?sellerId=...
func (s *Server) handleListForSeller(w http.ResponseWriter, r *http.Request) {
	sellerID := r.URL.Query().Get("sellerId")

	orders, err := s.svc.ListForSeller(r.Context(), sellerID)
	if err != nil {
		log.Error().Err(err).Str("seller_id", sellerID).Msg("error fetching orders for seller")
		writeServiceError(w, err)
		return
	}

	views := make([]SellerOrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, o.SellerView())
	}
	log.Info().Str("seller_id", sellerID).Int("count", len(views)).Msg("orders fetched for seller")
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    views,
	})
}

// PATCH /api/orders/{id}
func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	var body struct {
		OrderStatus string `json:"order_status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := s.svc.UpdateStatus(r.Context(), orderID, body.OrderStatus)
	if err != nil {
		log.Error().Err(err).Str("order_id", orderID).Msg("error updating order")
		writeServiceError(w, err)
		return
	}

	log.Info().Str("order_id", order.ID).Str("status", order.OrderStatus).Msg("order updated")
	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"message":      "Order updated successfully",
		"updatedOrder": order,
	})
}

// Traducción de la taxonomía de errores a códigos HTTP
func writeServiceError(w http.ResponseWriter, err error) {
	var (
		vErr *ValidationError
		nErr *NotFoundError
	)
	switch {
	case errors.As(err, &vErr):
		writeError(w, http.StatusBadRequest, vErr.Msg)
	case errors.As(err, &nErr):
		writeError(w, http.StatusNotFound, nErr.Msg)
	default:
		// UpstreamError y StorageError se reportan como error del servidor
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"success": false, "message": msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("error writing response")
	}
}

package main

import "time"

// Eventos que Order publica hacia otros servicios
const (
	EventOrderCreated = "ORDER_CREATED"
	EventOrderUpdated = "ORDER_UPDATED"
)

// Envoltura común de todos los eventos de dominio
type Event struct {
	EventType string    `json:"eventType"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type OrderCreatedPayload struct {
	OrderID      string    `json:"order_id"`
	CustomerID   string    `json:"customer_id"`
	BookID       string    `json:"book_id"`
	BookTitle    string    `json:"book_title"`
	BookAuthor   string    `json:"book_author"`
	BookGenre    string    `json:"book_genre"`
	PurchaseDate time.Time `json:"purchase_date"`
	OrderStatus  string    `json:"order_status"`
}

type OrderUpdatedPayload struct {
	OrderID     string `json:"order_id"`
	OrderStatus string `json:"order_status"`
}

func newEvent(eventType string, data any) Event {
	return Event{
		EventType: eventType,
		Timestamp: nowUTC(),
		Data:      data,
	}
}

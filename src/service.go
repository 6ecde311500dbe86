package main

import (
	"context"
	"strings"
	"sync"
)

// Colaboradores del servicio de órdenes
type OrderStore interface {
	Create(ctx context.Context, o *Order) (*Order, error)
	FindBySellerID(ctx context.Context, sellerID string) ([]*Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*Order, error)
}

type EventSink interface {
	Publish(evt Event)
}

type BookFetcher interface {
	FetchBook(ctx context.Context, bookID, credential string) (*BookInfo, error)
}

type CreateOrderRequest struct {
	BookID        string `json:"book_id"`
	BookTitle     string `json:"book_title"`
	CustomerName  string `json:"customer_name"`
	PaymentStatus string `json:"payment_status"`
	OrderStatus   string `json:"order_status"`
}

// OrderService orquesta el ciclo de vida de las órdenes: valida la entrada,
// resuelve el vendedor contra inventario, persiste y anuncia cada transición.
type OrderService struct {
	store  OrderStore
	events EventSink
	books  BookFetcher

	pubWG sync.WaitGroup
}

func NewOrderService(store OrderStore, events EventSink, books BookFetcher) *OrderService {
	return &OrderService{store: store, events: events, books: books}
}

func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest, identity Identity, credential string) (*Order, error) {
	if req.BookID == "" || req.BookTitle == "" || req.CustomerName == "" || req.PaymentStatus == "" {
		return nil, validationErr("missing required fields")
	}
	if !ValidOrderStatus(req.OrderStatus) {
		return nil, validationErr("invalid order status")
	}

	// El sellerId nunca viene del cliente: se resuelve desde inventario
	book, err := s.books.FetchBook(ctx, req.BookID, credential)
	if err != nil {
		return nil, err
	}

	order := &Order{
		SellerID:      book.Data.UserID,
		CustomerID:    identity.UserID,
		BookID:        req.BookID,
		BookTitle:     req.BookTitle,
		CustomerName:  req.CustomerName,
		PaymentStatus: req.PaymentStatus,
		OrderStatus:   req.OrderStatus,
	}
	created, err := s.store.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	s.emit(newEvent(EventOrderCreated, OrderCreatedPayload{
		OrderID:      created.ID,
		CustomerID:   created.CustomerID,
		BookID:       created.BookID,
		BookTitle:    created.BookTitle,
		BookAuthor:   book.Data.Author.Name,
		BookGenre:    book.Data.Genre.Name,
		PurchaseDate: nowUTC(),
		OrderStatus:  created.OrderStatus,
	}))

	return created, nil
}

func (s *OrderService) ListForSeller(ctx context.Context, sellerID string) ([]*Order, error) {
	if sellerID == "" {
		return nil, validationErr("seller id required")
	}
	if strings.TrimSpace(sellerID) == "" {
		return nil, validationErr("invalid seller id")
	}

	orders, err := s.store.FindBySellerID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, notFoundErr("no orders found for this seller")
	}
	return orders, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (*Order, error) {
	if orderID == "" || status == "" {
		return nil, validationErr("missing required fields")
	}
	if !ValidOrderStatus(status) {
		return nil, validationErr("invalid order status")
	}

	updated, err := s.store.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}

	s.emit(newEvent(EventOrderUpdated, OrderUpdatedPayload{
		OrderID:     updated.ID,
		OrderStatus: updated.OrderStatus,
	}))

	return updated, nil
}

// emit lanza la publicación en segundo plano: la respuesta al cliente no
// espera al broker y un fallo del publish no afecta la operación ya confirmada.
func (s *OrderService) emit(evt Event) {
	s.pubWG.Add(1)
	go func() {
		defer s.pubWG.Done()
		s.events.Publish(evt)
	}()
}

// Wait bloquea hasta drenar las publicaciones en vuelo (apagado limpio).
func (s *OrderService) Wait() { s.pubWG.Wait() }

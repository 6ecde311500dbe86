package main

import "time"

// Estados válidos de una orden (enumeración cerrada)
const (
	OrderStatusPending   = "PENDING"
	OrderStatusAccepted  = "ACCEPTED"
	OrderStatusRejected  = "REJECTED"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

var orderStatuses = map[string]bool{
	OrderStatusPending:   true,
	OrderStatusAccepted:  true,
	OrderStatusRejected:  true,
	OrderStatusShipped:   true,
	OrderStatusDelivered: true,
	OrderStatusCancelled: true,
}

func ValidOrderStatus(s string) bool { return orderStatuses[s] }

type Order struct {
	ID            string    `json:"id"`
	SellerID      string    `json:"sellerId"`
	CustomerID    string    `json:"customerId"`
	BookID        string    `json:"bookId"`
	BookTitle     string    `json:"bookTitle"`
	CustomerName  string    `json:"customerName"`
	PaymentStatus string    `json:"paymentStatus"`
	OrderStatus   string    `json:"orderStatus"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Vista que se devuelve al vendedor en el listado
type SellerOrderView struct {
	ID            string `json:"id"`
	BookID        string `json:"book_id"`
	BookTitle     string `json:"book_title"`
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	PaymentStatus string `json:"payment_status"`
	OrderStatus   string `json:"order_status"`
}

func (o *Order) SellerView() SellerOrderView {
	return SellerOrderView{
		ID:            o.ID,
		BookID:        o.BookID,
		BookTitle:     o.BookTitle,
		CustomerID:    o.CustomerID,
		CustomerName:  o.CustomerName,
		PaymentStatus: o.PaymentStatus,
		OrderStatus:   o.OrderStatus,
	}
}

func nowUTC() time.Time { return time.Now().UTC() }

package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func testOrder() *Order {
	return &Order{
		SellerID:      "s1",
		CustomerID:    "u1",
		BookID:        "b1",
		BookTitle:     "Dune",
		CustomerName:  "Alice",
		PaymentStatus: "PAID",
		OrderStatus:   OrderStatusPending,
	}
}

func TestRepositoryCreateAssignsID(t *testing.T) {
	repo := testRepo(t)

	created, err := repo.Create(context.Background(), testOrder())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	other, err := repo.Create(context.Background(), testOrder())
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID)
}

func TestRepositoryFindBySellerID(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, testOrder())
	require.NoError(t, err)
	_, err = repo.Create(ctx, testOrder())
	require.NoError(t, err)

	stranger := testOrder()
	stranger.SellerID = "s2"
	_, err = repo.Create(ctx, stranger)
	require.NoError(t, err)

	orders, err := repo.FindBySellerID(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, "s1", o.SellerID)
		assert.Equal(t, "Dune", o.BookTitle)
		assert.Equal(t, "PAID", o.PaymentStatus)
	}

	// creación durablemente visible para lecturas posteriores
	assert.Contains(t, []string{orders[0].ID, orders[1].ID}, first.ID)

	none, err := repo.FindBySellerID(ctx, "s-nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRepositoryUpdateStatus(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testOrder())
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, created.ID, OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, OrderStatusShipped, updated.OrderStatus)
	// los campos inmutables no cambian
	assert.Equal(t, created.SellerID, updated.SellerID)
	assert.Equal(t, created.CustomerID, updated.CustomerID)
	assert.Equal(t, created.BookID, updated.BookID)
}

func TestRepositoryUpdateStatusUnknownOrder(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.UpdateStatus(context.Background(), "no-such-order", OrderStatusShipped)
	var sErr *StorageError
	require.ErrorAs(t, err, &sErr)
}

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"tableside/order"
)

type orderCreator interface {
	Create(ctx context.Context, customerName string, tableNumber int, orders string) (order.Order, error)
}

// seedOrders fills the store with n random orders for demos.
func seedOrders(ctx context.Context, store orderCreator, n int) error {
	for i := range n {
		if _, err := store.Create(ctx, gofakeit.Name(), gofakeit.Number(1, 20), fakeOrderLines()); err != nil {
			return fmt.Errorf("seed order %d: %w", i+1, err)
		}
	}
	return nil
}

// fakeOrderLines returns a few "Nx dish" lines.
func fakeOrderLines() string {
	n := gofakeit.Number(1, 4)
	lines := make([]string, 0, n)
	for range n {
		lines = append(lines, fmt.Sprintf("%dx %s", gofakeit.Number(1, 3), gofakeit.Dinner()))
	}
	return strings.Join(lines, "\n")
}

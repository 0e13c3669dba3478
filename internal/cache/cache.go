// Package cache stores JSON encoded read payloads until they are explicitly
// invalidated. Entries never expire on their own.
package cache

import (
	"context"
	"fmt"
)

type Cache interface {
	// Get decodes the entry stored under key into dst and reports whether it
	// was present.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

const (
	KeyAllOrders      = "all-orders"
	KeyLatestProducts = "latest-products"
	KeyCategories     = "categories"
	KeyAllProducts    = "all-products"
)

func OrderKey(id int) string { return fmt.Sprintf("order-%d", id) }

func MyOrdersKey(user string) string { return "my-orders-" + user }

func ProductKey(id int) string { return fmt.Sprintf("product-%d", id) }

// OrderKeys lists the entries an order mutation makes stale.
func OrderKeys(user string, orderIDs ...int) []string {
	keys := []string{KeyAllOrders, MyOrdersKey(user)}
	for _, id := range orderIDs {
		keys = append(keys, OrderKey(id))
	}
	return keys
}

// ProductKeys lists the entries a product or stock mutation makes stale.
func ProductKeys(productIDs ...int) []string {
	keys := []string{KeyLatestProducts, KeyCategories, KeyAllProducts}
	for _, id := range productIDs {
		keys = append(keys, ProductKey(id))
	}
	return keys
}

// Nop caches nothing.
type Nop struct{}

func (Nop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Nop) Set(context.Context, string, any) error         { return nil }
func (Nop) Delete(context.Context, ...string) error        { return nil }

package memory

import (
	"context"
	"sync"

	"github.com/mkamau/warehouse-api/internal/domain/order"
)

type OrdersRepo struct {
	mu    sync.RWMutex
	items []order.Order
}

// NewOrdersRepo seeds the repo with the given orders; the API never
// writes this collection.
func NewOrdersRepo(seed ...order.Order) *OrdersRepo {
	return &OrdersRepo{items: seed}
}

func (r *OrdersRepo) List(ctx context.Context, f order.Filter) ([]order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]order.Order, 0)

	for _, o := range r.items {
		if f.UserID != nil && o.UserID != *f.UserID {
			continue
		}

		out = append(out, o)

		if len(out) == resultCap {
			break
		}
	}

	return out, nil
}

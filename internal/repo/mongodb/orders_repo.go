package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mkamau/warehouse-api/internal/db"
	"github.com/mkamau/warehouse-api/internal/domain/order"
	"github.com/mkamau/warehouse-api/internal/observability"
)

type OrdersRepo struct {
	col  *mongo.Collection
	prom *observability.Prom
}

func NewOrdersRepo(database *mongo.Database, prom *observability.Prom) *OrdersRepo {
	return &OrdersRepo{
		col:  database.Collection(db.CollectionOrders),
		prom: prom,
	}
}

func (repo *OrdersRepo) observe(op string, fn func() error) error {
	if repo.prom != nil {
		return repo.prom.ObserveStore(op, fn)
	}
	return fn()
}

// List serves both the plain listing and the search endpoint; an empty
// filter reads the collection unfiltered, subject to the cap.
func (repo *OrdersRepo) List(ctx context.Context, f order.Filter) ([]order.Order, error) {
	out := make([]order.Order, 0, resultCap)

	err := repo.observe("orders.list", func() error {
		opts := options.Find().
			SetProjection(orderProjection).
			SetLimit(resultCap)

		cur, err := repo.col.Find(ctx, orderFilter(f), opts)

		if err != nil {
			return err
		}

		return cur.All(ctx, &out)
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

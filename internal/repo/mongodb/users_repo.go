package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mkamau/warehouse-api/internal/db"
	"github.com/mkamau/warehouse-api/internal/domain/user"
	"github.com/mkamau/warehouse-api/internal/observability"
)

type UsersRepo struct {
	col  *mongo.Collection
	prom *observability.Prom
}

func NewUsersRepo(database *mongo.Database, prom *observability.Prom) *UsersRepo {
	return &UsersRepo{
		col:  database.Collection(db.CollectionUsers),
		prom: prom,
	}
}

func (repo *UsersRepo) observe(op string, fn func() error) error {
	if repo.prom != nil {
		return repo.prom.ObserveStore(op, fn)
	}
	return fn()
}

// List serves both the plain listing and the search endpoint; an empty
// filter reads the collection unfiltered, subject to the cap.
func (repo *UsersRepo) List(ctx context.Context, f user.Filter) ([]user.User, error) {
	out := make([]user.User, 0, resultCap)

	err := repo.observe("users.list", func() error {
		opts := options.Find().
			SetProjection(userProjection).
			SetLimit(resultCap)

		cur, err := repo.col.Find(ctx, userFilter(f), opts)

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

package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mkamau/warehouse-api/internal/db"
	"github.com/mkamau/warehouse-api/internal/domain/product"
	"github.com/mkamau/warehouse-api/internal/observability"
)

type ProductsRepo struct {
	col  *mongo.Collection
	prom *observability.Prom
}

func NewProductsRepo(database *mongo.Database, prom *observability.Prom) *ProductsRepo {
	return &ProductsRepo{
		col:  database.Collection(db.CollectionProducts),
		prom: prom,
	}
}

func (repo *ProductsRepo) observe(op string, fn func() error) error {
	if repo.prom != nil {
		return repo.prom.ObserveStore(op, fn)
	}
	return fn()
}

// List returns every product, identifier included. The listing is the
// one read that is not capped.
func (repo *ProductsRepo) List(ctx context.Context) ([]product.Product, error) {
	out := make([]product.Product, 0)

	err := repo.observe("products.list", func() error {
		cur, err := repo.col.Find(ctx, bson.M{}, options.Find().SetProjection(productListProjection))

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

func (repo *ProductsRepo) Search(ctx context.Context, f product.Filter) ([]product.Product, error) {
	out := make([]product.Product, 0, resultCap)

	err := repo.observe("products.search", func() error {
		opts := options.Find().
			SetProjection(productSearchProjection).
			SetLimit(resultCap)

		cur, err := repo.col.Find(ctx, productFilter(f), opts)

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

// Create inserts the document and returns it with the store-generated
// identifier filled in.
func (repo *ProductsRepo) Create(ctx context.Context, p product.Product) (product.Product, error) {
	err := repo.observe("products.create", func() error {
		res, err := repo.col.InsertOne(ctx, p)

		if err != nil {
			return err
		}

		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			p.ID = oid
		}

		return nil
	})

	if err != nil {
		return product.Product{}, err
	}

	return p, nil
}

// Update applies a field-level $set and re-fetches the document so the
// caller gets the post-update state.
func (repo *ProductsRepo) Update(ctx context.Context, id string, fields map[string]any) (product.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return product.Product{}, product.ErrNotFound
	}

	var updated product.Product

	err = repo.observe("products.update", func() error {
		res, err := repo.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M(fields)})

		if err != nil {
			return err
		}

		if res.MatchedCount == 0 {
			return product.ErrNotFound
		}

		return repo.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&updated)
	})

	if err != nil {
		return product.Product{}, err
	}

	return updated, nil
}

func (repo *ProductsRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return product.ErrNotFound
	}

	return repo.observe("products.delete", func() error {
		res, err := repo.col.DeleteOne(ctx, bson.M{"_id": oid})

		if err != nil {
			return err
		}

		if res.DeletedCount == 0 {
			return product.ErrNotFound
		}

		return nil
	})
}

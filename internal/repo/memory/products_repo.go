// Package memory holds map-backed repositories that mirror the MongoDB
// gateway's semantics: same filters, same projections, same cap. They
// back handler tests and local runs without a store.
package memory

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mkamau/warehouse-api/internal/domain/product"
)

const resultCap = 20

type ProductsRepo struct {
	mu    sync.RWMutex
	items map[string]product.Product
}

func NewProductsRepo() *ProductsRepo {
	return &ProductsRepo{
		items: make(map[string]product.Product),
	}
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// listShape drops the fields the read projections leave out.
func listShape(p product.Product) product.Product {
	p.Quantity = nil
	p.ImageURL = nil
	return p
}

func (r *ProductsRepo) List(ctx context.Context) ([]product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]product.Product, 0, len(r.items))

	for _, p := range r.items {
		out = append(out, listShape(p))
	}

	return out, nil
}

func (r *ProductsRepo) Search(ctx context.Context, f product.Filter) ([]product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]product.Product, 0)

	for _, p := range r.items {
		if f.Name != nil && !containsFold(p.Name, *f.Name) {
			continue
		}

		if f.Category != nil && !containsFold(p.Category, *f.Category) {
			continue
		}

		p = listShape(p)
		p.ID = primitive.NilObjectID

		out = append(out, p)

		if len(out) == resultCap {
			break
		}
	}

	return out, nil
}

func (r *ProductsRepo) Create(ctx context.Context, p product.Product) (product.Product, error) {
	p.ID = primitive.NewObjectID()

	r.mu.Lock()
	r.items[p.ID.Hex()] = p
	r.mu.Unlock()

	return p, nil
}

func (r *ProductsRepo) Update(ctx context.Context, id string, fields map[string]any) (product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.items[id]

	if !ok {
		return product.Product{}, product.ErrNotFound
	}

	for name, value := range fields {
		switch name {
		case "name":
			cur.Name = value.(string)
		case "description":
			cur.Description = value.(string)
		case "price":
			cur.Price = value.(float64)
		case "category":
			cur.Category = value.(string)
		case "quantity":
			q := value.(int)
			cur.Quantity = &q
		case "imageURL":
			u := value.(string)
			cur.ImageURL = &u
		}
	}

	r.items[id] = cur

	return cur, nil
}

func (r *ProductsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return product.ErrNotFound
	}

	delete(r.items, id)

	return nil
}

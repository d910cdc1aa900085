package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkamau/warehouse-api/internal/domain/product"
)

// ProductsStore is the gateway surface the handler needs; the MongoDB
// and memory repositories both satisfy it.
type ProductsStore interface {
	List(ctx context.Context) ([]product.Product, error)
	Search(ctx context.Context, f product.Filter) ([]product.Product, error)
	Create(ctx context.Context, p product.Product) (product.Product, error)
	Update(ctx context.Context, id string, fields map[string]any) (product.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductsHandler struct {
	repo ProductsStore
}

func NewProductsHandler(repo ProductsStore) *ProductsHandler {
	return &ProductsHandler{repo: repo}
}

func (h *ProductsHandler) ListProducts(ctx *gin.Context) {
	products, err := h.repo.List(ctx.Request.Context())

	if err != nil {
		RespondInternal(ctx, "Could not list products")
		return
	}

	out := make([]product.WithID, 0, len(products))

	for _, p := range products {
		out = append(out, p.Wire())
	}

	ctx.JSON(http.StatusOK, out)
}

func (h *ProductsHandler) SearchProducts(ctx *gin.Context) {
	var f product.Filter

	if v, ok := ctx.GetQuery("name"); ok && v != "" {
		f.Name = &v
	}

	if v, ok := ctx.GetQuery("category"); ok && v != "" {
		f.Category = &v
	}

	products, err := h.repo.Search(ctx.Request.Context(), f)

	if err != nil {
		RespondInternal(ctx, "Could not search products")
		return
	}

	ctx.JSON(http.StatusOK, products)
}

func (h *ProductsHandler) CreateProduct(ctx *gin.Context) {
	var req product.CreateProductRequest

	if !BindJSON(ctx, &req) {
		return
	}

	created, err := h.repo.Create(ctx.Request.Context(), req.Document())

	if err != nil {
		RespondInternal(ctx, "Could not create product")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Product added successfully",
		"product": created.Wire(),
	})
}

func (h *ProductsHandler) UpdateProduct(ctx *gin.Context) {
	id := ctx.Param("id")

	if !product.ValidID(id) {
		RespondBadRequest(ctx, "Invalid product ID")
		return
	}

	var req product.UpdateProductRequest

	if !BindJSON(ctx, &req) {
		return
	}

	if req.Empty() {
		RespondBadRequest(ctx, "No valid fields provided for update")
		return
	}

	updated, err := h.repo.Update(ctx.Request.Context(), id, req.Fields())

	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			RespondNotFound(ctx, "Product not found")
			return
		}

		RespondInternal(ctx, "Could not update product")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": updated.Wire(),
	})
}

func (h *ProductsHandler) DeleteProduct(ctx *gin.Context) {
	id := ctx.Param("id")

	if !product.ValidID(id) {
		RespondBadRequest(ctx, "Invalid product ID")
		return
	}

	err := h.repo.Delete(ctx.Request.Context(), id)

	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			RespondNotFound(ctx, "Product not found")
			return
		}

		RespondInternal(ctx, "Could not delete product")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

package product

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("product not found")

// Product is the stored document shape. rating, reviews and status are
// written by other systems and pass through reads untouched.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	Quantity    *int               `bson:"quantity,omitempty" json:"quantity,omitempty"`
	ImageURL    *string            `bson:"imageURL" json:"imageURL,omitempty"`
	Stock       any                `bson:"stock,omitempty" json:"stock,omitempty"`
	Rating      any                `bson:"rating,omitempty" json:"rating,omitempty"`
	Reviews     any                `bson:"reviews,omitempty" json:"reviews,omitempty"`
	Status      any                `bson:"status,omitempty" json:"status,omitempty"`
}

// WithID is the wire form of a product that carries its identifier,
// rendered as the canonical hex string under "_id".
type WithID struct {
	ID string `json:"_id"`
	Product
}

func (p Product) Wire() WithID {
	return WithID{ID: p.ID.Hex(), Product: p}
}

// ValidID reports whether id is a well-formed store object identifier
// (a 24-character hex token). Malformed ids must be rejected before any
// store call is made.
func ValidID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

// Filter holds the optional search predicates. Nil means the field
// imposes no constraint; present fields combine with logical AND.
type Filter struct {
	Name     *string
	Category *string
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       Number  `json:"price" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Quantity    Count   `json:"quantity" binding:"required"`
	Image       *string `json:"image"`
}

// Document builds the document to insert. Price and quantity are stored
// as numeric types regardless of how the client sent them.
func (r CreateProductRequest) Document() Product {
	q := int(r.Quantity)

	return Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       float64(r.Price),
		Category:    r.Category,
		Quantity:    &q,
		ImageURL:    r.Image,
	}
}

// UpdateProductRequest is a partial update: every field is optional and
// only keys present in the body are applied. A present-but-zero price or
// quantity is a legitimate update.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *Number `json:"price"`
	Category    *string `json:"category"`
	Quantity    *Count  `json:"quantity"`
	ImageURL    *string `json:"imageURL"`
}

// Empty reports whether the request carries no updatable field.
func (r UpdateProductRequest) Empty() bool {
	return r.Name == nil &&
		r.Description == nil &&
		r.Price == nil &&
		r.Category == nil &&
		r.Quantity == nil &&
		r.ImageURL == nil
}

// Fields returns the field-level changes to apply, keyed by stored field
// name. Price and quantity come out as float64 and int.
func (r UpdateProductRequest) Fields() map[string]any {
	set := make(map[string]any)

	if r.Name != nil {
		set["name"] = *r.Name
	}
	if r.Description != nil {
		set["description"] = *r.Description
	}
	if r.Price != nil {
		set["price"] = float64(*r.Price)
	}
	if r.Category != nil {
		set["category"] = *r.Category
	}
	if r.Quantity != nil {
		set["quantity"] = int(*r.Quantity)
	}
	if r.ImageURL != nil {
		set["imageURL"] = *r.ImageURL
	}

	return set
}

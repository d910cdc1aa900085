// Package mongodb implements the store gateway against MongoDB
// collections. Filters and projections are built by pure functions so
// the query shapes can be tested without a running server.
package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mkamau/warehouse-api/internal/domain/order"
	"github.com/mkamau/warehouse-api/internal/domain/product"
	"github.com/mkamau/warehouse-api/internal/domain/user"
)

// resultCap bounds every filtered read. Callers must not assume any
// ordering beyond the store's natural iteration order.
const resultCap = 20

// regexFold yields a case-insensitive substring predicate. The input is
// quoted so user text is matched literally, never as a pattern.
func regexFold(value string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
}

func productFilter(f product.Filter) bson.M {
	filter := bson.M{}

	if f.Name != nil {
		filter["name"] = regexFold(*f.Name)
	}

	if f.Category != nil {
		filter["category"] = regexFold(*f.Category)
	}

	return filter
}

func orderFilter(f order.Filter) bson.M {
	filter := bson.M{}

	if f.UserID != nil {
		filter["user_id"] = *f.UserID
	}

	return filter
}

func userFilter(f user.Filter) bson.M {
	filter := bson.M{}

	if f.Username != nil {
		filter["username"] = regexFold(*f.Username)
	}

	if f.Email != nil {
		filter["email"] = regexFold(*f.Email)
	}

	return filter
}

// Read projections are allow-lists. The identifier is only projected in
// for the product listing; search responses and the other collections
// leave it out.
var (
	productListProjection = bson.M{
		"_id": 1, "name": 1, "description": 1, "price": 1,
		"category": 1, "stock": 1, "rating": 1, "reviews": 1, "status": 1,
	}

	productSearchProjection = bson.M{
		"_id": 0, "name": 1, "description": 1, "price": 1,
		"category": 1, "stock": 1, "rating": 1, "reviews": 1, "status": 1,
	}

	orderProjection = bson.M{
		"_id": 0, "user_id": 1, "products": 1, "totalAmount": 1,
		"orderDate": 1, "status": 1,
	}

	userProjection = bson.M{
		"_id": 0, "username": 1, "fullName": 1, "email": 1,
		"roles": 1, "status": 1, "address": 1, "preferences": 1,
		"createdAt": 1, "lastUpdated": 1, "activity": 1, "notifications": 1,
	}
)

package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eshop-platform/eshop-api/internal/core/ports"
)

// listFilter translates optional filter criteria into a Mongo query
// document. Absent criteria impose no constraint; active ones combine with
// logical AND. Min and max price form a closed or half-open range on the
// same price field; a min greater than max therefore matches nothing.
func listFilter(f ports.ProductFilter) bson.M {
	query := bson.M{}

	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.ProductCollection != "" {
		query["product_collection"] = f.ProductCollection
	}

	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	return query
}

// searchFilter matches q as a case-insensitive substring of the product
// name or description. The query is quoted so user input cannot inject
// regex operators.
func searchFilter(q string) bson.M {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"name": re},
		bson.M{"description": re},
	}}
}

// lowStockFilter matches products where at least one variant's stock is
// strictly below threshold.
func lowStockFilter(threshold int) bson.M {
	return bson.M{"variants.stock": bson.M{"$lt": threshold}}
}

func mongoFindOneAndUpdateAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

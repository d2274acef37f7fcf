// Package catalog provides read-only access to the product collection.
// The catalog is owned elsewhere; this system never writes to it and
// makes no assumptions about document shape beyond the Mongo _id.
package catalog

import "go.mongodb.org/mongo-driver/bson"

// Product is an externally-owned catalog document, passed through to
// clients as-is.
type Product = bson.M

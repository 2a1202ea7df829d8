package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// DefaultOrderStatus is assigned when an order payload omits status.
const DefaultOrderStatus = "completed"

// Order represents a purchase of a listing as stored in the "order" collection.
// ListingID is kept in the store's native reference type and marshals to a hex
// string in JSON output.
type Order struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ListingID  primitive.ObjectID `bson:"listing_id" json:"listing_id"`
	BuyerName  string             `bson:"buyer_name" json:"buyer_name"`
	BuyerEmail string             `bson:"buyer_email" json:"buyer_email"`
	Status     string             `bson:"status" json:"status"`
}

// CreateOrderRequest is the payload accepted by POST /api/orders. ListingID
// arrives as an opaque string and is parsed into an ObjectID by the service.
type CreateOrderRequest struct {
	ListingID  string `json:"listing_id" validate:"required"`
	BuyerName  string `json:"buyer_name" validate:"required"`
	BuyerEmail string `json:"buyer_email" validate:"required,email"`
	Status     string `json:"status"`
}

// OrderFilter describes the optional query parameters of GET /api/orders.
type OrderFilter struct {
	BuyerEmail string
	Limit      int64
}

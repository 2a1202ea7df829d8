package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Listing represents a sellable AI product as stored in the "listing" collection.
// The ObjectID marshals to its hex string form in JSON output.
type Listing struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Type         string             `bson:"type" json:"type"` // e.g. chatbot, webflow, workflow, template, other
	Description  string             `bson:"description" json:"description"`
	Price        float64            `bson:"price" json:"price"`
	Tags         []string           `bson:"tags" json:"tags"`
	SellerName   string             `bson:"seller_name" json:"seller_name"`
	SellerEmail  string             `bson:"seller_email" json:"seller_email"`
	DemoURL      string             `bson:"demo_url,omitempty" json:"demo_url,omitempty"`
	ThumbnailURL string             `bson:"thumbnail_url,omitempty" json:"thumbnail_url,omitempty"`
}

// CreateListingRequest is the payload accepted by POST /api/listings.
// Price is a pointer so that a missing price fails "required" while an
// explicit 0 still passes "gte=0".
type CreateListingRequest struct {
	Title        string   `json:"title" validate:"required"`
	Type         string   `json:"type" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Price        *float64 `json:"price" validate:"required,gte=0"`
	Tags         []string `json:"tags"`
	SellerName   string   `json:"seller_name" validate:"required"`
	SellerEmail  string   `json:"seller_email" validate:"required,email"`
	DemoURL      string   `json:"demo_url" validate:"omitempty,url"`
	ThumbnailURL string   `json:"thumbnail_url" validate:"omitempty,url"`
}

// ToListing converts a validated request into a storable document.
// Tags default to an empty list so responses serialize as [] rather than null.
func (r *CreateListingRequest) ToListing() *Listing {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return &Listing{
		Title:        r.Title,
		Type:         r.Type,
		Description:  r.Description,
		Price:        *r.Price,
		Tags:         tags,
		SellerName:   r.SellerName,
		SellerEmail:  r.SellerEmail,
		DemoURL:      r.DemoURL,
		ThumbnailURL: r.ThumbnailURL,
	}
}

// ListingFilter describes the optional query parameters of GET /api/listings.
// Query matches case-insensitively against title, description, or tags;
// Type is an exact match; Tag is an exact membership test against tags.
type ListingFilter struct {
	Query string
	Type  string
	Tag   string
	Limit int64
}

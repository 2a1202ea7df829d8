package models

// Schemas returns JSON-schema-shaped documents describing the three entity
// shapes, keyed by entity name, for the introspection endpoint.
func Schemas() map[string]any {
	return map[string]any{
		"user":    userSchema(),
		"listing": listingSchema(),
		"order":   orderSchema(),
	}
}

func property(typ, description string, extra map[string]any) map[string]any {
	p := map[string]any{"type": typ, "description": description}
	for k, v := range extra {
		p[k] = v
	}
	return p
}

func userSchema() map[string]any {
	return map[string]any{
		"title": "User",
		"type":  "object",
		"properties": map[string]any{
			"name":       property("string", "Full name", nil),
			"email":      property("string", "Email address", map[string]any{"format": "email"}),
			"avatar_url": property("string", "Profile avatar URL", map[string]any{"format": "uri"}),
			"is_seller":  property("boolean", "Whether user is a seller", map[string]any{"default": false}),
		},
		"required": []string{"name", "email"},
	}
}

func listingSchema() map[string]any {
	return map[string]any{
		"title": "Listing",
		"type":  "object",
		"properties": map[string]any{
			"title":       property("string", "Product title", nil),
			"type":        property("string", "Type of AI product (chatbot, webflow, workflow, template, other)", nil),
			"description": property("string", "Detailed description of the product", nil),
			"price":       property("number", "Price in USD", map[string]any{"minimum": 0}),
			"tags": property("array", "Searchable tags", map[string]any{
				"items":   map[string]any{"type": "string"},
				"default": []string{},
			}),
			"seller_name":   property("string", "Seller display name", nil),
			"seller_email":  property("string", "Seller contact email", map[string]any{"format": "email"}),
			"demo_url":      property("string", "Demo or preview URL", map[string]any{"format": "uri"}),
			"thumbnail_url": property("string", "Thumbnail or cover image URL", map[string]any{"format": "uri"}),
		},
		"required": []string{"title", "type", "description", "price", "seller_name", "seller_email"},
	}
}

func orderSchema() map[string]any {
	return map[string]any{
		"title": "Order",
		"type":  "object",
		"properties": map[string]any{
			"listing_id":  property("string", "ID of the purchased listing", nil),
			"buyer_name":  property("string", "Buyer name", nil),
			"buyer_email": property("string", "Buyer email", map[string]any{"format": "email"}),
			"status":      property("string", "Order status", map[string]any{"default": DefaultOrderStatus}),
		},
		"required": []string{"listing_id", "buyer_name", "buyer_email"},
	}
}

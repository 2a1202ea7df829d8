package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a marketplace account. The entity is defined for the "user"
// collection and exposed through schema introspection, but no endpoint
// currently operates on it.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	AvatarURL string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty" validate:"omitempty,url"`
	IsSeller  bool               `bson:"is_seller" json:"is_seller"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection agrupa goodies y aporta el prefijo del slug.
// Se gestiona desde otro servicio: aquí solo se lee, nunca se muta.
type Collection struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Slug      string             `json:"slug" bson:"slug"`
	Colors    string             `json:"colors" bson:"colors"`
	Image     GoodieImage        `json:"image" bson:"image"`
	Views     int64              `json:"views" bson:"views"`
	Show      bool               `json:"show" bson:"show"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

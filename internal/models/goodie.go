package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GoodieImage es una imagen ya subida al host de medios
type GoodieImage struct {
	PublicID string `json:"public_id" bson:"public_id"`
	URL      string `json:"url" bson:"url"`
}

// Goodie representa un artículo del catálogo
type Goodie struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Description      string             `json:"description" bson:"description"`
	Slug             string             `json:"slug" bson:"slug"`
	FromCollection   primitive.ObjectID `json:"fromCollection" bson:"fromCollection"`
	Price            float64            `json:"price" bson:"price"`
	InPromo          bool               `json:"inPromo" bson:"inPromo"`
	PromoPercentage  float64            `json:"promoPercentage" bson:"promoPercentage"`
	Sizes            []string           `json:"sizes" bson:"sizes"`
	AvailableColors  []string           `json:"availableColors" bson:"availableColors"`
	BackgroundColors []string           `json:"backgroundColors" bson:"backgroundColors"`
	MainImage        GoodieImage        `json:"mainImage" bson:"mainImage"`
	Images           []GoodieImage      `json:"images" bson:"images"`
	Likes            int64              `json:"likes" bson:"likes"`
	Views            int64              `json:"views" bson:"views"`
	Show             bool               `json:"show" bson:"show"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// GoodieDraft es el cuerpo recibido al crear un goodie; las imágenes
// vienen como referencias (path local o URL remota) todavía sin subir
type GoodieDraft struct {
	Name             string   `json:"name" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	Slug             string   `json:"slug" binding:"required"`
	FromCollection   string   `json:"fromCollection" binding:"required"`
	Price            float64  `json:"price" binding:"required"`
	InPromo          bool     `json:"inPromo"`
	PromoPercentage  float64  `json:"promoPercentage"`
	Sizes            []string `json:"sizes"`
	AvailableColors  []string `json:"availableColors"`
	BackgroundColors []string `json:"backgroundColors"`
	Images           []string `json:"images"`
	Show             bool     `json:"show"`
}

// GoodieWithCollection es la respuesta de detalle con la colección resuelta
type GoodieWithCollection struct {
	Goodie     `bson:",inline"`
	Collection *Collection `json:"collection"`
}

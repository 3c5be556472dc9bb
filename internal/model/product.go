package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Image struct {
	Mobile  string `json:"mobile,omitempty" bson:"mobile,omitempty" yaml:"mobile"`
	Tablet  string `json:"tablet,omitempty" bson:"tablet,omitempty" yaml:"tablet"`
	Desktop string `json:"desktop,omitempty" bson:"desktop,omitempty" yaml:"desktop"`
}

// Include is a line item bundled with a product.
type Include struct {
	Quantity int    `json:"quantity" bson:"quantity" yaml:"quantity"`
	Item     string `json:"item" bson:"item" yaml:"item"`
}

// Other is a denormalized summary of a related product. Slug is not checked
// against the collection.
type Other struct {
	Slug  string `json:"slug,omitempty" bson:"slug,omitempty" yaml:"slug"`
	Name  string `json:"name,omitempty" bson:"name,omitempty" yaml:"name"`
	Image *Image `json:"image,omitempty" bson:"image,omitempty" yaml:"image"`
}

type Product struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty" yaml:"-" swaggertype:"string"`
	Slug          string             `json:"slug,omitempty" bson:"slug,omitempty" yaml:"slug"`
	Name          string             `json:"name" bson:"name" yaml:"name" validate:"required"`
	Image         *Image             `json:"image,omitempty" bson:"image,omitempty" yaml:"image"`
	Category      string             `json:"category" bson:"category" yaml:"category" validate:"required"`
	CategoryImage *Image             `json:"categoryImage,omitempty" bson:"categoryImage,omitempty" yaml:"categoryImage"`
	IsNew         bool               `json:"isNew" bson:"isNew" yaml:"isNew"`
	Price         *float64           `json:"price" bson:"price" yaml:"price" validate:"required"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty" yaml:"description"`
	Features      string             `json:"features,omitempty" bson:"features,omitempty" yaml:"features"`
	Includes      []Include          `json:"includes" bson:"includes" yaml:"includes"`
	Gallery       []Image            `json:"gallery" bson:"gallery" yaml:"gallery"`
	Others        []Other            `json:"others" bson:"others" yaml:"others"`
	Tasks         []Task             `json:"tasks" bson:"tasks" yaml:"tasks" validate:"dive"`
	Owner         string             `json:"owner,omitempty" bson:"owner,omitempty" yaml:"-"`
}

// ProductRef is the id-only projection of a product.
type ProductRef struct {
	ID primitive.ObjectID `json:"_id" bson:"_id" swaggertype:"string"`
}

// ProductSlug is the slug-only projection of a product.
type ProductSlug struct {
	Slug string `json:"slug" bson:"slug"`
}

// CategorySummary is the representative product returned for a category.
type CategorySummary struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id" swaggertype:"string"`
	Slug          string             `json:"slug,omitempty" bson:"slug,omitempty"`
	Category      string             `json:"category" bson:"category"`
	CategoryImage *Image             `json:"categoryImage,omitempty" bson:"categoryImage,omitempty"`
}

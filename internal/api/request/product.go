package request

import "github.com/edvin/catalog/internal/model"

// CreateProduct is the body of POST /. Only name is checked here; the
// product schema is enforced by the store.
type CreateProduct struct {
	Slug          string          `json:"slug"`
	Name          string          `json:"name" validate:"required"`
	Image         *model.Image    `json:"image"`
	Category      string          `json:"category"`
	CategoryImage *model.Image    `json:"categoryImage"`
	IsNew         bool            `json:"isNew"`
	Price         *float64        `json:"price"`
	Description   string          `json:"description"`
	Features      string          `json:"features"`
	Includes      []model.Include `json:"includes"`
	Gallery       []model.Image   `json:"gallery"`
	Others        []model.Other   `json:"others"`
	Tasks         []CreateTask    `json:"tasks"`
}

func (c CreateProduct) Product() *model.Product {
	p := &model.Product{
		Slug:          c.Slug,
		Name:          c.Name,
		Image:         c.Image,
		Category:      c.Category,
		CategoryImage: c.CategoryImage,
		IsNew:         c.IsNew,
		Price:         c.Price,
		Description:   c.Description,
		Features:      c.Features,
		Includes:      c.Includes,
		Gallery:       c.Gallery,
		Others:        c.Others,
	}
	if c.Tasks != nil {
		p.Tasks = make([]model.Task, len(c.Tasks))
		for i, t := range c.Tasks {
			p.Tasks[i] = *t.Task()
		}
	}
	return p
}

// UpdateProduct is the body of PUT /. Absent fields are left untouched.
type UpdateProduct struct {
	Slug          *string         `json:"slug"`
	Name          *string         `json:"name"`
	Image         *model.Image    `json:"image"`
	Category      *string         `json:"category"`
	CategoryImage *model.Image    `json:"categoryImage"`
	IsNew         *bool           `json:"isNew"`
	Price         *float64        `json:"price"`
	Description   *string         `json:"description"`
	Features      *string         `json:"features"`
	Includes      []model.Include `json:"includes"`
	Gallery       []model.Image   `json:"gallery"`
	Others        []model.Other   `json:"others"`
	Tasks         []ProductTask   `json:"tasks"`
}

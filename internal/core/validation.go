package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/edvin/catalog/internal/model"
	"github.com/edvin/catalog/internal/platform"
)

var validate = platform.NewValidator()

// validateSchema runs the struct tag constraints on v. Failures are returned
// as a *ValidationError keyed by JSON field path.
func validateSchema(resource string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %s: %w", resource, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		path := fe.Namespace()
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		fields = append(fields, fmt.Sprintf("%s is %s", path, fe.Tag()))
	}
	return &ValidationError{Resource: resource, Fields: fields}
}

// normalizeProduct applies the write-time transforms: all strings trimmed,
// category lower-cased, nil arrays stored as empty.
func normalizeProduct(p *model.Product) {
	p.Slug = strings.TrimSpace(p.Slug)
	p.Name = strings.TrimSpace(p.Name)
	p.Category = normalizeCategory(p.Category)
	p.Description = strings.TrimSpace(p.Description)
	p.Features = strings.TrimSpace(p.Features)
	normalizeImage(p.Image)
	normalizeImage(p.CategoryImage)

	if p.Includes == nil {
		p.Includes = []model.Include{}
	}
	for i := range p.Includes {
		p.Includes[i].Item = strings.TrimSpace(p.Includes[i].Item)
	}
	if p.Gallery == nil {
		p.Gallery = []model.Image{}
	}
	for i := range p.Gallery {
		normalizeImage(&p.Gallery[i])
	}
	if p.Others == nil {
		p.Others = []model.Other{}
	}
	for i := range p.Others {
		p.Others[i].Slug = strings.TrimSpace(p.Others[i].Slug)
		p.Others[i].Name = strings.TrimSpace(p.Others[i].Name)
		normalizeImage(p.Others[i].Image)
	}
	if p.Tasks == nil {
		p.Tasks = []model.Task{}
	}
	for i := range p.Tasks {
		normalizeTask(&p.Tasks[i])
	}
}

func normalizeCategory(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}

func normalizeImage(img *model.Image) {
	if img == nil {
		return
	}
	img.Mobile = strings.TrimSpace(img.Mobile)
	img.Tablet = strings.TrimSpace(img.Tablet)
	img.Desktop = strings.TrimSpace(img.Desktop)
}

func normalizeTask(t *model.Task) {
	t.Title = strings.TrimSpace(t.Title)
	t.Description = strings.TrimSpace(t.Description)
	t.Status = strings.TrimSpace(t.Status)
	if t.Subtasks == nil {
		t.Subtasks = []model.Subtask{}
	}
	for i := range t.Subtasks {
		t.Subtasks[i].Title = strings.TrimSpace(t.Subtasks[i].Title)
	}
}

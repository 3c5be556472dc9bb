package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/edvin/catalog/internal/core"
	"github.com/edvin/catalog/internal/model"
)

// File is the layout of a seed YAML file.
type File struct {
	Owner    string          `yaml:"owner"`
	Products []model.Product `yaml:"products"`
}

// ProductStore is the subset of core.ProductService the seeder needs.
type ProductStore interface {
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)
	Create(ctx context.Context, p *model.Product, owner string) (*model.Product, error)
}

type Result struct {
	Created int
	Skipped int
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

// Run inserts the seed products through the store so they pass the same
// schema as API writes. Products whose slug already exists are skipped, which
// makes repeated runs idempotent.
func Run(ctx context.Context, store ProductStore, f *File, logger zerolog.Logger) (Result, error) {
	var res Result
	for i := range f.Products {
		p := f.Products[i]

		if p.Slug != "" {
			_, err := store.GetBySlug(ctx, p.Slug)
			if err == nil {
				logger.Debug().Str("slug", p.Slug).Msg("product exists, skipping")
				res.Skipped++
				continue
			}
			if !errors.Is(err, core.ErrNotFound) {
				return res, fmt.Errorf("check product %s: %w", p.Slug, err)
			}
		}

		created, err := store.Create(ctx, &p, f.Owner)
		if err != nil {
			return res, fmt.Errorf("seed product %d (%s): %w", i, p.Name, err)
		}
		logger.Info().
			Str("id", created.ID.Hex()).
			Str("slug", created.Slug).
			Str("category", created.Category).
			Msg("seeded product")
		res.Created++
	}
	return res, nil
}

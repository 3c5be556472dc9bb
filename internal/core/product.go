package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edvin/catalog/internal/model"
)

type ProductService struct {
	coll Collection
}

func NewProductService(coll Collection) *ProductService {
	return &ProductService{coll: coll}
}

// ProductUpdate carries the fields of a partial update. Nil fields are left
// untouched; a non-nil slice replaces the stored array.
type ProductUpdate struct {
	Slug          *string
	Name          *string
	Image         *model.Image
	Category      *string
	CategoryImage *model.Image
	IsNew         *bool
	Price         *float64
	Description   *string
	Features      *string
	Includes      []model.Include
	Gallery       []model.Image
	Others        []model.Other
	Tasks         []model.Task
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	products := []model.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// ListByCategory returns the products whose stored category equals the
// lower-cased category.
func (s *ProductService) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	cur, err := s.coll.Find(ctx, bson.M{"category": normalizeCategory(category)})
	if err != nil {
		return nil, fmt.Errorf("list products by category %s: %w", category, err)
	}
	products := []model.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var p model.Product
	err := s.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("product with slug %s: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("get product by slug %s: %w", slug, err)
	}
	return &p, nil
}

func (s *ProductService) ListIDs(ctx context.Context) ([]model.ProductRef, error) {
	return s.listRefs(ctx, bson.M{})
}

func (s *ProductService) ListIDsByCategory(ctx context.Context, category string) ([]model.ProductRef, error) {
	return s.listRefs(ctx, bson.M{"category": normalizeCategory(category)})
}

func (s *ProductService) listRefs(ctx context.Context, filter bson.M) ([]model.ProductRef, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list product ids: %w", err)
	}
	refs := []model.ProductRef{}
	if err := cur.All(ctx, &refs); err != nil {
		return nil, fmt.Errorf("decode product ids: %w", err)
	}
	return refs, nil
}

func (s *ProductService) ListSlugsByCategory(ctx context.Context, category string) ([]model.ProductSlug, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "_id", Value: 0}, {Key: "slug", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.M{"category": normalizeCategory(category)}, opts)
	if err != nil {
		return nil, fmt.Errorf("list product slugs by category %s: %w", category, err)
	}
	slugs := []model.ProductSlug{}
	if err := cur.All(ctx, &slugs); err != nil {
		return nil, fmt.Errorf("decode product slugs: %w", err)
	}
	return slugs, nil
}

// categoryPipeline groups products by category and keeps the first document
// of each group in natural order.
var categoryPipeline = mongo.Pipeline{
	{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$category"},
		{Key: "first", Value: bson.D{{Key: "$first", Value: "$$ROOT"}}},
	}}},
	{{Key: "$project", Value: bson.D{
		{Key: "_id", Value: "$first._id"},
		{Key: "slug", Value: "$first.slug"},
		{Key: "category", Value: "$first.category"},
		{Key: "categoryImage", Value: "$first.categoryImage"},
	}}},
}

func (s *ProductService) GroupFirstByCategory(ctx context.Context) ([]model.CategorySummary, error) {
	cur, err := s.coll.Aggregate(ctx, categoryPipeline)
	if err != nil {
		return nil, fmt.Errorf("group products by category: %w", err)
	}
	summaries := []model.CategorySummary{}
	if err := cur.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("decode category summaries: %w", err)
	}
	return summaries, nil
}

// Create validates p against the product schema and inserts it. A non-empty
// owner is stamped on the document.
func (s *ProductService) Create(ctx context.Context, p *model.Product, owner string) (*model.Product, error) {
	normalizeProduct(p)
	for i := range p.Tasks {
		if p.Tasks[i].ID.IsZero() {
			p.Tasks[i].ID = primitive.NewObjectID()
		}
	}
	if err := validateSchema("Product", p); err != nil {
		return nil, err
	}
	if owner != "" {
		p.Owner = owner
	}

	res, err := s.coll.InsertOne(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return p, nil
}

// Update sets the supplied fields on the product and returns the updated
// document.
func (s *ProductService) Update(ctx context.Context, id string, u ProductUpdate) (*model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}

	set, err := u.setDocument()
	if err != nil {
		return nil, err
	}

	var p model.Product
	if len(set) == 0 {
		err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	} else {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&p)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}
	return &p, nil
}

func (u ProductUpdate) setDocument() (bson.D, error) {
	var set bson.D
	var invalid []string

	str := func(key string, v *string, required bool) {
		if v == nil {
			return
		}
		val := strings.TrimSpace(*v)
		if key == "category" {
			val = normalizeCategory(val)
		}
		if required && val == "" {
			invalid = append(invalid, key+" is required")
			return
		}
		set = append(set, bson.E{Key: key, Value: val})
	}

	str("slug", u.Slug, false)
	str("name", u.Name, true)
	str("category", u.Category, true)
	str("description", u.Description, false)
	str("features", u.Features, false)

	if u.Image != nil {
		normalizeImage(u.Image)
		set = append(set, bson.E{Key: "image", Value: u.Image})
	}
	if u.CategoryImage != nil {
		normalizeImage(u.CategoryImage)
		set = append(set, bson.E{Key: "categoryImage", Value: u.CategoryImage})
	}
	if u.IsNew != nil {
		set = append(set, bson.E{Key: "isNew", Value: *u.IsNew})
	}
	if u.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *u.Price})
	}

	// Arrays go through the product normalizer so they get the same
	// trimming and task ids as on create.
	var arrays model.Product
	arrays.Includes, arrays.Gallery, arrays.Others, arrays.Tasks = u.Includes, u.Gallery, u.Others, u.Tasks
	normalizeProduct(&arrays)
	if u.Includes != nil {
		set = append(set, bson.E{Key: "includes", Value: arrays.Includes})
	}
	if u.Gallery != nil {
		set = append(set, bson.E{Key: "gallery", Value: arrays.Gallery})
	}
	if u.Others != nil {
		set = append(set, bson.E{Key: "others", Value: arrays.Others})
	}
	if u.Tasks != nil {
		for i := range arrays.Tasks {
			if arrays.Tasks[i].Title == "" {
				invalid = append(invalid, fmt.Sprintf("tasks[%d].title is required", i))
			}
			if arrays.Tasks[i].ID.IsZero() {
				arrays.Tasks[i].ID = primitive.NewObjectID()
			}
		}
		set = append(set, bson.E{Key: "tasks", Value: arrays.Tasks})
	}

	if len(invalid) > 0 {
		return nil, &ValidationError{Resource: "Product", Fields: invalid}
	}
	return set, nil
}

// Delete removes the product and returns the deleted document.
func (s *ProductService) Delete(ctx context.Context, id string) (*model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}

	var p model.Product
	if err := s.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("delete product %s: %w", id, err)
	}
	return &p, nil
}

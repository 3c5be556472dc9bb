package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	mw "github.com/edvin/catalog/internal/api/middleware"
	"github.com/edvin/catalog/internal/api/request"
	"github.com/edvin/catalog/internal/api/response"
	"github.com/edvin/catalog/internal/core"
	"github.com/edvin/catalog/internal/model"
)

type Product struct {
	svc *core.ProductService
}

func NewProduct(svc *core.ProductService) *Product {
	return &Product{svc: svc}
}

// List godoc
//
//	@Summary		List all products
//	@Description	Returns every product in the catalog with its embedded tasks. An empty catalog is an empty list, not a 404.
//	@Tags			Products
//	@Success		200	{object}	response.Envelope{data=[]model.Product}
//	@Failure		500	{object}	response.ErrorResponse
//	@Router			/all [get]
func (h *Product) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}

	response.WriteSuccess(w, http.StatusOK, products)
}

// ListByCategory godoc
//
//	@Summary		List products in a category
//	@Description	Returns the products whose category matches, compared lower-cased.
//	@Tags			Products
//	@Param			category	path		string	true	"Category name"
//	@Success		200			{object}	response.Envelope{data=[]model.Product}
//	@Failure		404			{object}	response.Envelope{data=string}
//	@Failure		500			{object}	response.ErrorResponse
//	@Router			/{category} [get]
func (h *Product) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	products, err := h.svc.ListByCategory(r.Context(), category)
	if err != nil {
		internalError(w, r, err)
		return
	}
	if len(products) == 0 {
		response.WriteFailure(w, http.StatusNotFound, fmt.Sprintf("Product with category %s not found", category))
		return
	}

	response.WriteSuccess(w, http.StatusOK, products)
}

// GetBySlug godoc
//
//	@Summary		Get a product by slug
//	@Description	Returns the first product stored with the given slug.
//	@Tags			Products
//	@Param			slug	query		string	true	"Product slug"
//	@Success		200		{object}	response.Envelope{data=model.Product}
//	@Failure		400		{object}	response.Envelope{data=string}
//	@Failure		404		{object}	response.Envelope{data=string}
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/ [get]
func (h *Product) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug, err := request.RequireParam(r.URL.Query().Get("slug"), "Product slug")
	if err != nil {
		response.WriteFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.svc.GetBySlug(r.Context(), slug)
	if err != nil {
		writeStoreError(w, r, err, http.StatusNotFound, fmt.Sprintf("Product with slug %s not found", slug))
		return
	}

	response.WriteSuccess(w, http.StatusOK, product)
}

// ListIDs godoc
//
//	@Summary	List product ids
//	@Tags		Products
//	@Success	200	{object}	response.Envelope{data=[]model.ProductRef}
//	@Failure	500	{object}	response.ErrorResponse
//	@Router		/all/ids [get]
func (h *Product) ListIDs(w http.ResponseWriter, r *http.Request) {
	refs, err := h.svc.ListIDs(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}

	response.WriteSuccess(w, http.StatusOK, refs)
}

// ListIDsByCategory godoc
//
//	@Summary	List product ids in a category
//	@Tags		Products
//	@Param		category	path		string	true	"Category name"
//	@Success	200			{object}	response.Envelope{data=[]model.ProductRef}
//	@Failure	404			{object}	response.Envelope{data=string}
//	@Failure	500			{object}	response.ErrorResponse
//	@Router		/{category}/ids [get]
func (h *Product) ListIDsByCategory(w http.ResponseWriter, r *http.Request) {
	category := strings.ToLower(chi.URLParam(r, "category"))

	refs, err := h.svc.ListIDsByCategory(r.Context(), category)
	if err != nil {
		internalError(w, r, err)
		return
	}
	if len(refs) == 0 {
		response.WriteFailure(w, http.StatusNotFound, fmt.Sprintf("Product with category %s not found", category))
		return
	}

	response.WriteSuccess(w, http.StatusOK, refs)
}

// ListSlugsByCategory godoc
//
//	@Summary	List product slugs in a category
//	@Tags		Products
//	@Param		category	path		string	true	"Category name"
//	@Success	200			{object}	response.Envelope{data=[]model.ProductSlug}
//	@Failure	404			{object}	response.Envelope{data=string}
//	@Failure	500			{object}	response.ErrorResponse
//	@Router		/{category}/slugs [get]
func (h *Product) ListSlugsByCategory(w http.ResponseWriter, r *http.Request) {
	category := strings.ToLower(chi.URLParam(r, "category"))

	slugs, err := h.svc.ListSlugsByCategory(r.Context(), category)
	if err != nil {
		internalError(w, r, err)
		return
	}
	if len(slugs) == 0 {
		response.WriteFailure(w, http.StatusNotFound, fmt.Sprintf("Product with category %s not found", category))
		return
	}

	response.WriteSuccess(w, http.StatusOK, slugs)
}

// Categories godoc
//
//	@Summary		List categories
//	@Description	Returns one representative product per distinct category, with its category image.
//	@Tags			Products
//	@Success		200	{object}	response.Envelope{data=[]model.CategorySummary}
//	@Failure		500	{object}	response.ErrorResponse
//	@Router			/categories [get]
func (h *Product) Categories(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.GroupFirstByCategory(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}

	response.WriteSuccess(w, http.StatusOK, summaries)
}

// Create godoc
//
//	@Summary		Create a product
//	@Description	Inserts a product. name, category and price are required; category is stored lower-cased and the caller becomes the owner.
//	@Tags			Products
//	@Security		BearerAuth
//	@Param			body	body		request.CreateProduct	true	"Product"
//	@Success		201		{object}	response.Envelope{data=model.Product}
//	@Failure		400		{object}	response.Envelope{data=string}
//	@Failure		401		{object}	response.ErrorResponse
//	@Failure		413		{object}	response.Envelope{data=string}
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/ [post]
func (h *Product) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProduct
	if err := request.Decode(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	var owner string
	if identity := mw.GetIdentity(r.Context()); identity != nil {
		owner = identity.ID
	}

	product, err := h.svc.Create(r.Context(), req.Product(), owner)
	if err != nil {
		writeStoreError(w, r, err, http.StatusNotFound, "")
		return
	}

	response.WriteSuccess(w, http.StatusCreated, product)
}

// Update godoc
//
//	@Summary		Update a product
//	@Description	Sets only the fields present in the body. Arrays replace the stored array; tasks sent with their _id keep it.
//	@Tags			Products
//	@Security		BearerAuth
//	@Param			_id		query		string					true	"Product ID"
//	@Param			body	body		request.UpdateProduct	true	"Fields to change"
//	@Success		201		{object}	response.BoardEnvelope{board=model.Product}
//	@Failure		400		{object}	response.Envelope{data=string}
//	@Failure		401		{object}	response.ErrorResponse
//	@Failure		404		{object}	response.Envelope{data=string}
//	@Failure		413		{object}	response.Envelope{data=string}
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/ [put]
func (h *Product) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireParam(r.URL.Query().Get("_id"), "Product id")
	if err != nil {
		response.WriteFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	var req request.UpdateProduct
	if err := request.Decode(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	product, err := h.svc.Update(r.Context(), id, toProductUpdate(req))
	if err != nil {
		writeStoreError(w, r, err, http.StatusNotFound, fmt.Sprintf("Product with id %s not found", id))
		return
	}

	response.WriteBoard(w, http.StatusCreated, product)
}

// Delete godoc
//
//	@Summary		Delete a product
//	@Description	Removes the product and its tasks. A product that does not exist is answered 400.
//	@Tags			Products
//	@Security		BearerAuth
//	@Param			id	query		string	true	"Product ID"
//	@Success		200	{object}	response.Envelope{data=string}
//	@Failure		400	{object}	response.Envelope{data=string}
//	@Failure		401	{object}	response.ErrorResponse
//	@Failure		500	{object}	response.ErrorResponse
//	@Router			/ [delete]
func (h *Product) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireParam(r.URL.Query().Get("id"), "Product id")
	if err != nil {
		response.WriteFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, http.StatusBadRequest, fmt.Sprintf("Product with %s not found", id))
		return
	}

	response.WriteSuccess(w, http.StatusOK, fmt.Sprintf("Successfully deleted product: %s", product.Name))
}

func toProductUpdate(req request.UpdateProduct) core.ProductUpdate {
	u := core.ProductUpdate{
		Slug:          req.Slug,
		Name:          req.Name,
		Image:         req.Image,
		Category:      req.Category,
		CategoryImage: req.CategoryImage,
		IsNew:         req.IsNew,
		Price:         req.Price,
		Description:   req.Description,
		Features:      req.Features,
		Includes:      req.Includes,
		Gallery:       req.Gallery,
		Others:        req.Others,
	}
	if req.Tasks != nil {
		u.Tasks = make([]model.Task, len(req.Tasks))
		for i, t := range req.Tasks {
			u.Tasks[i] = *t.Task()
		}
	}
	return u
}

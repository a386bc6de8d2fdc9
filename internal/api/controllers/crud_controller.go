package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"ecotours/internal/services"
	"ecotours/pkg/utils"
)

// CrudController serves the five CRUD actions of one resource.
type CrudController[In any, Out any] struct {
	service  services.CrudService[In, Out]
	resource string
	bind     func(c *gin.Context, in *In) error
}

type CrudOption[In any, Out any] func(*CrudController[In, Out])

// WithBinder replaces the default binding, for inputs that need more than
// the declared form and JSON fields.
func WithBinder[In any, Out any](bind func(c *gin.Context, in *In) error) CrudOption[In, Out] {
	return func(cc *CrudController[In, Out]) {
		cc.bind = bind
	}
}

func NewCrudController[In any, Out any](resource string, service services.CrudService[In, Out], opts ...CrudOption[In, Out]) *CrudController[In, Out] {
	cc := &CrudController[In, Out]{
		service:  service,
		resource: resource,
		bind: func(c *gin.Context, in *In) error {
			return bindBody(c, in)
		},
	}
	for _, opt := range opts {
		opt(cc)
	}
	return cc
}

// bindBody binds like ShouldBind. JSON bodies are first checked for nulls on
// fields that cannot hold one, which decoding would otherwise skip.
func bindBody(c *gin.Context, obj interface{}) error {
	if c.ContentType() != binding.MIMEJSON {
		return c.ShouldBind(obj)
	}
	body, err := c.GetRawData()
	if err != nil {
		return err
	}
	if err := utils.RejectNulls(body, obj); err != nil {
		return err
	}
	return binding.JSON.BindBody(body, obj)
}

func (cc *CrudController[In, Out]) binder(c *gin.Context) func(*In) error {
	return func(in *In) error {
		return utils.BindingError(cc.bind(c, in))
	}
}

// List godoc
// @Summary List a resource
// @Description Returns every row ordered by id. With ?page the list is paginated (pageSize 1-100, default 20).
// @Tags CRUD
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {array} object
// @Failure 400 {object} utils.APIResponse
// @Router /{resource}/ [get]
func (cc *CrudController[In, Out]) List(c *gin.Context) {
	page, err := utils.ParsePage(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	items, err := cc.service.List(c.Request.Context(), page)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, items)
}

// Get godoc
// @Summary Get one row of a resource
// @Tags CRUD
// @Produce json
// @Param id path int true "Identifier"
// @Success 200 {object} object
// @Failure 404 {object} utils.APIResponse
// @Router /{resource}/{id}/ [get]
func (cc *CrudController[In, Out]) Get(c *gin.Context) {
	id, ok := cc.pathID(c, "id")
	if !ok {
		return
	}

	item, err := cc.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, item)
}

// Create godoc
// @Summary Create a row
// @Description Accepts JSON or multipart/form-data (image fields are files).
// @Tags CRUD
// @Accept json,mpfd
// @Produce json
// @Success 201 {object} object
// @Failure 400 {object} utils.APIResponse
// @Failure 413 {object} utils.APIResponse
// @Router /{resource}/create/ [post]
func (cc *CrudController[In, Out]) Create(c *gin.Context) {
	item, err := cc.service.Create(c.Request.Context(), cc.binder(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, item)
}

// Update godoc
// @Summary Update a row
// @Description PUT replaces every writable field, PATCH only the supplied ones. Omitted files keep the stored image.
// @Tags CRUD
// @Accept json,mpfd
// @Produce json
// @Param id path int true "Identifier"
// @Success 200 {object} object
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /{resource}/{id}/update/ [put]
// @Router /{resource}/{id}/update/ [patch]
func (cc *CrudController[In, Out]) Update(c *gin.Context) {
	id, ok := cc.pathID(c, "id")
	if !ok {
		return
	}

	partial := c.Request.Method == http.MethodPatch
	item, err := cc.service.Update(c.Request.Context(), id, partial, cc.binder(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, item)
}

// Delete godoc
// @Summary Delete a row and what it owns
// @Tags CRUD
// @Param id path int true "Identifier"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /{resource}/{id}/delete/ [delete]
func (cc *CrudController[In, Out]) Delete(c *gin.Context) {
	id, ok := cc.pathID(c, "id")
	if !ok {
		return
	}

	if err := cc.service.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

// pathID parses a numeric path parameter. Anything else cannot name a row,
// so it is answered with 404 like an unknown id.
func (cc *CrudController[In, Out]) pathID(c *gin.Context, name string) (uint, bool) {
	return parseID(c, name, cc.resource)
}

func parseID(c *gin.Context, name, resource string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusNotFound, resource+" not found")
		return 0, false
	}
	return uint(id), true
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hbnb/internal/facade"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
	"github.com/BruksfildServices01/hbnb/internal/httpresp"
	"github.com/BruksfildServices01/hbnb/internal/middleware"
	amenityuc "github.com/BruksfildServices01/hbnb/internal/usecase/amenity"
)

type AmenityHandler struct {
	facade *facade.Facade
}

func NewAmenityHandler(f *facade.Facade) *AmenityHandler {
	return &AmenityHandler{facade: f}
}

// --------- Requests ---------

type AmenityRequest struct {
	Name string `json:"name" binding:"max=50"`
}

type UpdateAmenityRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,max=50"`
}

// --------- Handlers ---------

func (h *AmenityHandler) List(c *gin.Context) {
	amenities, err := h.facade.ListAmenities(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, amenities)
}

func (h *AmenityHandler) Get(c *gin.Context) {
	a, err := h.facade.GetAmenity(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, a)
}

func (h *AmenityHandler) Create(c *gin.Context) {
	var req AmenityRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.facade.CreateAmenity(c.Request.Context(), middleware.CallerFrom(c), amenityuc.CreateAmenityInput{
		Name: req.Name,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, a)
}

func (h *AmenityHandler) Update(c *gin.Context) {
	var req UpdateAmenityRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.facade.UpdateAmenity(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), amenityuc.UpdateAmenityInput{
		Name: req.Name,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, a)
}

func (h *AmenityHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteAmenity(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}

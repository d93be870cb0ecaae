package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hbnb/internal/facade"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
	"github.com/BruksfildServices01/hbnb/internal/httpresp"
	"github.com/BruksfildServices01/hbnb/internal/middleware"
	placeuc "github.com/BruksfildServices01/hbnb/internal/usecase/place"
)

type PlaceHandler struct {
	facade *facade.Facade
}

func NewPlaceHandler(f *facade.Facade) *PlaceHandler {
	return &PlaceHandler{facade: f}
}

// --------- Requests ---------

type CreatePlaceRequest struct {
	Title       string   `json:"title" binding:"max=100"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	OwnerID     string   `json:"owner_id"`
	UserID      string   `json:"user_id"`
	Amenities   []string `json:"amenities"`
}

type UpdatePlaceRequest struct {
	Title       *string   `json:"title,omitempty" binding:"omitempty,max=100"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	OwnerID     *string   `json:"owner_id,omitempty"`
	UserID      *string   `json:"user_id,omitempty"`
	Amenities   *[]string `json:"amenities,omitempty"`
}

// --------- Handlers ---------

func (h *PlaceHandler) List(c *gin.Context) {
	places, err := h.facade.ListPlaces(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, places)
}

func (h *PlaceHandler) Get(c *gin.Context) {
	p, err := h.facade.GetPlace(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PlaceHandler) Create(c *gin.Context) {
	var req CreatePlaceRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.facade.CreatePlace(c.Request.Context(), middleware.CallerFrom(c), placeuc.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OwnerID:     req.OwnerID,
		UserID:      req.UserID,
		Amenities:   req.Amenities,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, p)
}

func (h *PlaceHandler) Update(c *gin.Context) {
	var req UpdatePlaceRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.facade.UpdatePlace(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), placeuc.UpdatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OwnerID:     req.OwnerID,
		UserID:      req.UserID,
		Amenities:   req.Amenities,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PlaceHandler) Delete(c *gin.Context) {
	if err := h.facade.DeletePlace(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *PlaceHandler) RemoveAmenity(c *gin.Context) {
	p, err := h.facade.RemovePlaceAmenity(
		c.Request.Context(),
		middleware.CallerFrom(c),
		c.Param("id"),
		c.Param("amenityID"),
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PlaceHandler) Reviews(c *gin.Context) {
	reviews, err := h.facade.ListReviewsByPlace(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, reviews)
}

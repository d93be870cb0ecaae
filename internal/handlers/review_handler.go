package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hbnb/internal/facade"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
	"github.com/BruksfildServices01/hbnb/internal/httpresp"
	"github.com/BruksfildServices01/hbnb/internal/middleware"
	reviewuc "github.com/BruksfildServices01/hbnb/internal/usecase/review"
)

type ReviewHandler struct {
	facade *facade.Facade
}

func NewReviewHandler(f *facade.Facade) *ReviewHandler {
	return &ReviewHandler{facade: f}
}

// --------- Requests ---------

type CreateReviewRequest struct {
	PlaceID string `json:"place_id"`
	Text    string `json:"text"`
	Rating  *int   `json:"rating"`
}

type UpdateReviewRequest struct {
	Text   *string `json:"text,omitempty"`
	Rating *int    `json:"rating,omitempty"`
}

// --------- Handlers ---------

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.facade.ListReviews(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, reviews)
}

func (h *ReviewHandler) Get(c *gin.Context) {
	r, err := h.facade.GetReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, r)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.facade.CreateReview(c.Request.Context(), middleware.CallerFrom(c), reviewuc.CreateReviewInput{
		PlaceID: req.PlaceID,
		Text:    req.Text,
		Rating:  req.Rating,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, r)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	var req UpdateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.facade.UpdateReview(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), reviewuc.UpdateReviewInput{
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, r)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteReview(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}

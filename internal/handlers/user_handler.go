package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hbnb/internal/dto"
	"github.com/BruksfildServices01/hbnb/internal/facade"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
	"github.com/BruksfildServices01/hbnb/internal/httpresp"
	"github.com/BruksfildServices01/hbnb/internal/middleware"
	useruc "github.com/BruksfildServices01/hbnb/internal/usecase/user"
)

type UserHandler struct {
	facade *facade.Facade
}

func NewUserHandler(f *facade.Facade) *UserHandler {
	return &UserHandler{facade: f}
}

// --------- Requests ---------

type CreateUserRequest struct {
	FirstName string `json:"first_name" binding:"max=50"`
	LastName  string `json:"last_name" binding:"max=50"`
	Email     string `json:"email" binding:"max=120"`
	Password  string `json:"password"`
	IsAdmin   bool   `json:"is_admin"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty" binding:"omitempty,max=50"`
	LastName  *string `json:"last_name,omitempty" binding:"omitempty,max=50"`
	Email     *string `json:"email,omitempty" binding:"omitempty,max=120"`
	Password  *string `json:"password,omitempty"`
	IsAdmin   *bool   `json:"is_admin,omitempty"`
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.facade.ListUsers(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.NewUsers(users))
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.facade.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.NewUser(user))
}

func (h *UserHandler) Me(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	user, err := h.facade.GetUser(c.Request.Context(), caller.ID())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.NewUser(user))
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.facade.CreateUser(c.Request.Context(), middleware.CallerFrom(c), useruc.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, dto.NewUser(user))
}

func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.facade.UpdateUser(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), useruc.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.NewUser(user))
}

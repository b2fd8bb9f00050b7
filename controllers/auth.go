package controllers

import (
	"context"
	"net/http"

	"WellnessHub/middleware"
	"WellnessHub/models"
	"WellnessHub/services"
	"WellnessHub/util"

	"github.com/gin-gonic/gin"
)

type AuthService interface {
	Register(ctx context.Context, in models.StaffInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.Session, error)
}

type AuthController struct {
	service AuthService
}

func NewAuthController(service AuthService) *AuthController {
	return &AuthController{service: service}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Routes registers the public endpoints, no token required.
func (ctl *AuthController) Routes(api *gin.RouterGroup) {
	auth := api.Group("auth")
	{
		auth.POST("/register", middleware.Handle(ctl.Register))
		auth.POST("/login", middleware.Handle(ctl.Login))
	}
}

func (ctl *AuthController) Register(c *gin.Context) error {
	var req createStaffRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	user, err := ctl.service.Register(c.Request.Context(), models.StaffInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		Address:     req.Address,
		IDCard:      req.IDCard,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, util.ACCOUNT_REGISTERED, user)
}

/*
* Here binding happens with the respective fields if any error return error
* And if no error moves to services
 */
func (ctl *AuthController) Login(c *gin.Context) error {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	session, err := ctl.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, util.LOGIN_SUCCESS, session)
}

package controllers

import (
	"context"
	"net/http"

	"WellnessHub/middleware"
	"WellnessHub/models"
	"WellnessHub/role"
	"WellnessHub/util"

	"github.com/gin-gonic/gin"
)

type UserService interface {
	Profile(ctx context.Context, actor models.Actor) (*models.User, error)
	Employees(ctx context.Context, rawRole string, page models.PageRequest) (models.Paginated[models.User], error)
	Users(ctx context.Context, page models.PageRequest) (models.Paginated[models.User], error)
	Deactivate(ctx context.Context, rawID string) (*models.User, error)
}

type UserController struct {
	service UserService
}

func NewUserController(service UserService) *UserController {
	return &UserController{service: service}
}

func (ctl *UserController) Routes(api *gin.RouterGroup) {
	user := api.Group("users")
	{
		user.GET("/profile", middleware.Authorize(role.User, role.Admin, role.Therapist, role.Doctor), middleware.Handle(ctl.Profile))
		user.GET("/employees", middleware.Authorize(role.Admin), middleware.Handle(ctl.FetchEmployees))
		user.GET("", middleware.Authorize(role.Admin), middleware.Handle(ctl.FetchUsers))
		user.DELETE("/:userId/delete", middleware.Authorize(role.Admin), middleware.Handle(ctl.Delete))
	}
}

func (ctl *UserController) Profile(c *gin.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	user, err := ctl.service.Profile(c.Request.Context(), actor)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, util.PROFILE_FETCHED, user)
}

func (ctl *UserController) FetchEmployees(c *gin.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}
	res, err := ctl.service.Employees(c.Request.Context(), c.Query("role"), page)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, util.EMPLOYEES_FETCHED, res)
}

func (ctl *UserController) FetchUsers(c *gin.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}
	res, err := ctl.service.Users(c.Request.Context(), page)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, util.USERS_FETCHED, res)
}

func (ctl *UserController) Delete(c *gin.Context) error {
	user, err := ctl.service.Deactivate(c.Request.Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, util.USER_DELETED, user)
}

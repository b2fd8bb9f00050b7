package controllers

import (
	"WellnessHub/apierror"
	"WellnessHub/middleware"
	"WellnessHub/models"
	"WellnessHub/util"

	"github.com/gin-gonic/gin"
)

func respond(c *gin.Context, status int, message string, data any) error {
	c.JSON(status, util.SuccessResponse(status, message, data))
	return nil
}

func actorOf(c *gin.Context) (models.Actor, error) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return models.Actor{}, apierror.Unauthorized(util.NOT_AUTHENTICATED)
	}
	return actor, nil
}

// pageQuery uses pointers so an explicit page=0 fails validation instead of defaulting.
type pageQuery struct {
	Page  *int `form:"page" binding:"omitempty,min=1"`
	Limit *int `form:"limit" binding:"omitempty,min=1,max=100"`
}

func bindPage(c *gin.Context) (models.PageRequest, error) {
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return models.PageRequest{}, apierror.BadRequest(util.INVALID_QUERY_PARAMETERS, err.Error())
	}
	var page models.PageRequest
	if q.Page != nil {
		page.Page = *q.Page
	}
	if q.Limit != nil {
		page.Limit = *q.Limit
	}
	return page.Normalize(), nil
}

func bindJSON(c *gin.Context, dest any) error {
	if err := c.ShouldBindJSON(dest); err != nil {
		return apierror.BadRequest(util.INVALID_REQUEST_BODY, err.Error())
	}
	return nil
}

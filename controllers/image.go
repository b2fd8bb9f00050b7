package controllers

import (
	"context"
	"io"
	"log"
	"net/http"

	"WellnessHub/apierror"
	"WellnessHub/middleware"
	"WellnessHub/role"
	"WellnessHub/util"

	"github.com/gin-gonic/gin"
)

type ImageService interface {
	Upload(ctx context.Context, contentType string, size int64, file io.Reader) (string, error)
}

type ImageController struct {
	service ImageService
}

func NewImageController(service ImageService) *ImageController {
	return &ImageController{service: service}
}

func (ctl *ImageController) Routes(api *gin.RouterGroup) {
	api.POST("/uploads/image", middleware.Authorize(role.Admin), middleware.Handle(ctl.Upload))
}

/*
* Read the multipart field "image"
* Pass the stream with its declared type and size to the service
 */
func (ctl *ImageController) Upload(c *gin.Context) error {
	header, err := c.FormFile("image")
	if err != nil {
		return apierror.BadRequest(util.IMAGE_REQUIRED)
	}
	file, err := header.Open()
	if err != nil {
		log.Println("Error opening uploaded file: ", err)
		return apierror.BadRequest(util.IMAGE_REQUIRED)
	}
	defer file.Close()

	url, err := ctl.service.Upload(c.Request.Context(), header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, util.IMAGE_UPLOADED, gin.H{"url": url})
}

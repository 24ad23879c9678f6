package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ian-shakespeare/tapster/middlewares"
	"github.com/ian-shakespeare/tapster/services"
	"github.com/ian-shakespeare/tapster/utils"
)

type MediaController struct {
	media *services.MediaService
}

func NewMediaController(media *services.MediaService) *MediaController {
	return &MediaController{media: media}
}

// Create accepts a multipart upload with a single "file" field.
func (mc *MediaController) Create(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, utils.BadRequest("invalid multipart"))
		return
	}
	files := form.File["file"]
	if len(files) == 0 {
		respondError(c, utils.BadRequest("missing file field"))
		return
	}
	file := files[0]

	src, err := file.Open()
	if err != nil {
		respondError(c, utils.BadRequest("invalid multipart"))
		return
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	media, err := mc.media.Create(c.Request.Context(), middlewares.OwnerID(c), src, contentType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, media)
}

// Get streams the object back with the stored content type. The body is
// forwarded from the object store without buffering.
func (mc *MediaController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media id"})
		return
	}

	media, body, err := mc.media.Get(c.Request.Context(), middlewares.OwnerID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	defer body.Close()

	size := int64(-1)
	if media.Size != nil {
		size = *media.Size
	}
	contentType := "application/octet-stream"
	if media.ContentType != nil {
		contentType = *media.ContentType
	}

	c.DataFromReader(http.StatusOK, size, contentType, body, nil)
}

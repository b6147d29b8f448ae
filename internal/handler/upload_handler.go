package handler

import (
	"net/http"

	"github.com/SafidyRH/test-technique-nexta/internal/storage"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploader *storage.Uploader
}

func NewUploadHandler(uploader *storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// UploadProjectImage 上传项目图片，返回公开URL
func (h *UploadHandler) UploadProjectImage(c *gin.Context) {
	if h.uploader == nil {
		ErrorResponse(c, http.StatusServiceUnavailable, "图片上传未启用")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "缺少image文件字段")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := storage.ValidateImage(contentType, fileHeader.Size); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "读取上传文件失败")
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadProjectImage(c.Request.Context(), file, contentType, fileHeader.Size)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    gin.H{"url": url},
	})
}

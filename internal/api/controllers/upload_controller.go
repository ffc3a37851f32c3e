package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostlane/internal/services"
	"hostlane/pkg/utils"
)

type UploadController struct {
	uploadService services.UploadServiceInterface
}

func NewUploadController(uploadService services.UploadServiceInterface) *UploadController {
	return &UploadController{
		uploadService: uploadService,
	}
}

// UploadPaymentProof accepts a multipart "file" field and stores it on the
// first storage backend that works.
func (u *UploadController) UploadPaymentProof(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A file field is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}

	resp, err := u.uploadService.UploadPaymentProof(c.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "File uploaded successfully")
}

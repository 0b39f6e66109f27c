package controllers

import (
	"io"
	"log"
	"net/http"

	"autoshop-backend/services"
	"autoshop-backend/utils"

	"github.com/gin-gonic/gin"
)

type base64UploadPayload struct {
	Image    string `json:"image" binding:"required"`
	Filename string `json:"filename"`
}

type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// Upload (POST /api/uploads) stores a blob under a key scoped by the
// authenticated account and returns its public URL. Accepts a multipart
// "file" field or a JSON base64 payload.
func (ctrl *UploadController) Upload(c *gin.Context) {
	accountID := c.GetString("accountId")
	if accountID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	var key string
	var err error

	if file, fErr := c.FormFile("file"); fErr == nil {
		src, oErr := file.Open()
		if oErr != nil {
			utils.JSONError(c, http.StatusBadRequest, "failed to read upload")
			return
		}
		defer src.Close()

		data, rErr := io.ReadAll(src)
		if rErr != nil {
			utils.JSONError(c, http.StatusBadRequest, "failed to read upload")
			return
		}
		key, err = services.SaveUpload(accountID, data, file.Filename)
	} else {
		var payload base64UploadPayload
		if bErr := c.ShouldBindJSON(&payload); bErr != nil {
			utils.JSONError(c, http.StatusBadRequest, "file field or base64 image payload required")
			return
		}
		key, err = services.SaveBase64Upload(accountID, payload.Image, payload.Filename)
	}

	if err != nil {
		log.Printf("Upload error for account %s: %v", accountID, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to store upload")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"key": key,
		"url": services.PublicURL(key),
	})
}

package controllers

import (
	"encoding/json"
	"net/http"

	"flare_server/services"
	"flare_server/utils"
)

// S3Controller handles presigned photo upload URLs.
type S3Controller struct {
	S3 *services.S3Service
}

// NewS3Controller creates a new S3Controller instance
func NewS3Controller(s3 *services.S3Service) *S3Controller {
	return &S3Controller{S3: s3}
}

// GetUploadURL returns a presigned PUT URL for a profile photo.
func (sc *S3Controller) GetUploadURL(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if request.FileName == "" || request.FileType == "" {
		utils.WriteError(w, http.StatusBadRequest, "fileName and fileType are required")
		return
	}

	uploadURL, key, err := sc.S3.GenerateUploadURL(r.Context(), request.FileName, request.FileType)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data": map[string]string{
			"uploadUrl": uploadURL,
			"key":       key,
		},
	})
}

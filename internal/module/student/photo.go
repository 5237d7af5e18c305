package student

import (
	"github.com/gin-gonic/gin"

	"student-portal-system/internal/global/photostore"
	"student-portal-system/internal/global/response"
	"student-portal-system/internal/global/store"
	"student-portal-system/internal/model"
)

// UploadPhoto receives a profile photo as multipart form data, stores it in
// the photo bucket and, when a student id is supplied, records the URL on
// the student.
func UploadPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("Photo file required").WithOrigin(err))
		return
	}

	url, err := photos.SaveImage(c.Request.Context(), fileHeader)
	if err != nil {
		log.Error("photo upload failed", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if id := c.Query("id"); id != "" {
		if err := store.UpdateByID[model.Student](id, map[string]any{"photo_url": url}); err != nil {
			log.Error("photo url update failed", "error", err, "id", id)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
	}

	response.Success(c, map[string]string{"photoUrl": url})
}

type photoURLReq struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"contentType"`
}

// PhotoUploadURL issues a presigned PUT URL so the admin panel can push the
// photo straight to object storage.
func PhotoUploadURL(c *gin.Context) {
	var req photoURLReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	resp, err := photos.GeneratePresignedUploadURL(c.Request.Context(), photostore.PresignedUploadRequest{
		Filename:    req.Filename,
		ContentType: req.ContentType,
	})
	if err != nil {
		log.Error("presign photo upload failed", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, resp)
}

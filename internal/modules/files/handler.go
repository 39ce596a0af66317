package files

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploadFile", h.UploadFile)
	rg.GET("/getFiles", h.GetFiles)
	rg.GET("/downloadFile", h.DownloadFile)
	rg.DELETE("/deleteFile", h.DeleteFile)
}

// UploadFile godoc
// @Summary Upload a source document
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to upload"
// @Router /uploadFile [post]
func (h *Handler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	src, err := h.service.Upload(c.Request.Context(), fileHeader.Filename, data, contentType)
	if err != nil {
		switch err {
		case ErrEmptyFile, ErrValidation:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case ErrFileTooLarge:
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   err.Error(),
				"message": "Upload failed. Please check the file and try again.",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "File uploaded successfully",
		"fileName":   src.StorageKey,
		"size":       src.Size,
		"uploadDate": src.UploadedAt,
	})
}

// GetFiles godoc
// @Summary List uploaded files grouped with their translations
// @Produce json
// @Router /getFiles [get]
func (h *Handler) GetFiles(c *gin.Context) {
	groups, err := h.service.ListGroups(c.Request.Context())
	if err != nil {
		// Lenient listing: the UI renders an empty library on failure.
		c.JSON(http.StatusOK, gin.H{"fileGroups": []FileGroup{}, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, GetFilesResponse{FileGroups: groups})
}

// DownloadFile godoc
// @Summary Download a blob from the source or translated container
// @Produce octet-stream
// @Param fileName query string true "Storage key"
// @Param container query string true "Container name"
// @Router /downloadFile [get]
func (h *Handler) DownloadFile(c *gin.Context) {
	fileName := c.Query("fileName")
	container := c.Query("container")
	if fileName == "" || container == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		return
	}

	data, err := h.service.Download(c.Request.Context(), container, fileName)
	if err != nil {
		switch err {
		case ErrUnknownContainer:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case ErrFileNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", DisplayName(fileName)))
	c.Data(http.StatusOK, "application/octet-stream", data)
}

// DeleteFile godoc
// @Summary Delete a source file and its translations
// @Accept json
// @Produce json
// @Router /deleteFile [delete]
func (h *Handler) DeleteFile(c *gin.Context) {
	var req DeleteFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.FileName); err != nil {
		switch err {
		case ErrFileNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case ErrValidation:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "message": "Deletion failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}

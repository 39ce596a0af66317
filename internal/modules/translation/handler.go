package translation

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"doctrans/internal/extract"
	"doctrans/internal/modules/jobs"
	"doctrans/internal/pkg/response"
	"doctrans/internal/pkg/validator"
	"doctrans/internal/translator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/translateText", h.TranslateText)
	rg.POST("/translateFile", h.TranslateFile)
	rg.POST("/translateExistingFile", h.TranslateExistingFile)
}

// TranslateText godoc
// @Summary Translate a short text synchronously
// @Accept json
// @Produce json
// @Router /translateText [post]
func (h *Handler) TranslateText(c *gin.Context) {
	var req TranslateTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Missing required parameters")
		return
	}

	res, err := h.service.TranslateText(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// TranslateFile godoc
// @Summary Translate an uploaded document, returning plain text
// @Accept multipart/form-data
// @Produce octet-stream
// @Router /translateFile [post]
func (h *Handler) TranslateFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	targetLanguage := c.PostForm("targetLanguage")
	if targetLanguage == "" {
		targetLanguage = "en"
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	res, err := h.service.TranslateFile(c.Request.Context(), fileHeader.Filename, data, targetLanguage)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.TranslatedFileName))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", res.Content)
}

// TranslateExistingFile godoc
// @Summary Translate a file already in the library
// @Accept json
// @Produce json
// @Router /translateExistingFile [post]
func (h *Handler) TranslateExistingFile(c *gin.Context) {
	var req TranslateExistingFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Missing required parameters", fields)
		return
	}

	res, err := h.service.TranslateExistingFile(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, jobs.ErrValidation):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, extract.ErrUnsupportedFormat):
		response.ErrorWithHint(c, http.StatusBadRequest, "Unsupported file format",
			"Supported formats: .txt, .doc, .docx, .pdf")
	case errors.Is(err, extract.ErrNoExtractableText):
		response.ErrorWithHint(c, http.StatusBadRequest, "No text extracted",
			"The file appears to be empty or contains no extractable text.")
	case errors.Is(err, jobs.ErrSourceNotFound):
		response.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, translator.ErrTranslationService), errors.Is(err, jobs.ErrExternalService):
		response.ErrorWithHint(c, http.StatusInternalServerError, err.Error(),
			"Translation failed. Please try again.")
	default:
		response.ErrorWithHint(c, http.StatusInternalServerError, err.Error(),
			"Internal server error")
	}
}

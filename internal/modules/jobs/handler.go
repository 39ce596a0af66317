package jobs

import (
	"errors"
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
	rg.GET("/translationStatus/:jobId", h.TranslationStatus)
}

// TranslationStatus godoc
// @Summary Poll the status of an asynchronous translation job
// @Produce json
// @Param jobId path string true "Job ID"
// @Router /translationStatus/{jobId} [get]
func (h *Handler) TranslationStatus(c *gin.Context) {
	view, err := h.service.PollStatus(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		switch {
		case errors.Is(err, ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Translation job not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

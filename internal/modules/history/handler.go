package history

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/getTranslations", h.GetTranslations)
}

// GetTranslations godoc
// @Summary Most recent translations, newest first
// @Produce json
// @Router /getTranslations [get]
func (h *Handler) GetTranslations(c *gin.Context) {
	records, err := h.repo.Recent(c.Request.Context(), RecentLimit)
	if err != nil {
		// History is a convenience view; degrade to empty rather than fail.
		log.Printf("history: failed to query records: %v", err)
		c.JSON(http.StatusOK, gin.H{"translations": []Record{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"translations": records})
}

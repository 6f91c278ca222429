package api

import (
	"bytes"         // Byte comparison
	"encoding/json" // Raw JSON passthrough
	"net/http"      // HTTP status codes
	"strings"       // String manipulation

	"soulid/internal/suggestions" // Opportunity catalog

	"github.com/gin-gonic/gin" // Gin web framework
)

// SuggestionsRequest carries the caller's prompt and profile. Neither affects the result.
type SuggestionsRequest struct {
	Prompt  string          `json:"prompt"`
	Profile json.RawMessage `json:"profile" swaggertype:"object"`
}

// SuggestionsHandler godoc
// @Summary      Opportunity suggestions
// @Description  Returns the fixed opportunity catalog ranked by match score
// @Tags         Suggestions
// @Accept       json
// @Produce      json
// @Param        body  body      SuggestionsRequest  true  "Prompt and profile"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /api/ai-suggestions [post]
func SuggestionsHandler(catalog *suggestions.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SuggestionsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		profile := bytes.TrimSpace(req.Profile)
		if strings.TrimSpace(req.Prompt) == "" || len(profile) == 0 || bytes.Equal(profile, []byte("null")) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":     "Suggestions generated successfully",
			"suggestions": catalog.Suggest(),
		})
	}
}

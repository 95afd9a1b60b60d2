package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/password-meter/backend/internal/integration/entrypoint/web"
)

// PageController serves the single-page UI.
type PageController struct {
	title   string
	apiPath string
}

// NewPageController creates a new page controller instance.
// apiPath is the endpoint the page calls on every input change.
func NewPageController(title, apiPath string) *PageController {
	return &PageController{
		title:   title,
		apiPath: apiPath,
	}
}

// Index handles GET / requests.
func (p *PageController) Index(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, web.IndexTemplate, gin.H{
		"Title":   p.title,
		"APIPath": p.apiPath,
	})
}

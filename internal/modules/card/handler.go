package card

import (
	"bytes"
	"net/http"

	"github.com/CyberTud/dracula-wtf/internal/middleware"
	"github.com/CyberTud/dracula-wtf/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves share card images.
type Handler struct {
	log *zap.Logger
}

func NewHandler(log *zap.Logger) *Handler { return &Handler{log: log} }

// RegisterRoutes mounts the card under api and the preview at the root.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, root gin.IRoutes, cache gin.HandlerFunc) {
	api.GET("/card.png", cache, h.render)
	root.GET("/og", cache, h.render)
}

func (h *Handler) render(c *gin.Context) {
	p := ParseParams(c.Request.URL.Query())

	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		h.log.Error("card render failed", zap.Error(err))
		middleware.NoStore(c)
		response.InternalError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// frontendHandler serves the built frontend from dir. Unknown paths get
// index.html so client-side routes resolve; /api paths stay JSON 404s.
func frontendHandler(dir string) gin.HandlerFunc {
	index := filepath.Join(dir, "index.html")

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
			respondNotFound(c, "route")
			return
		}

		file := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+path)))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(index)
	}
}

package server

import (
	"context"
	"errors"
	"io/fs"
	"mime"
	"net/http"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"devctl/internal/system"
	webembed "devctl/internal/webui/embed"
)

type Server struct {
	Addr string
}

func (s *Server) Start(ctx context.Context) error {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	mountAPI(r)
	mountEmbeddedUI(r)

	srv := &http.Server{Addr: s.Addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	system.Logger.Info("status server listening", "addr", s.Addr)
	return srv.ListenAndServe()
}

// OpenBrowser tries to open a URL in the system browser.
func OpenBrowser(url string) error {
	var cmd string
	var args []string
	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
		args = []string{url}
	case "windows":
		cmd = "rundll32"
		args = []string{"url.dll,FileProtocolHandler", url}
	default:
		cmd = "xdg-open"
		args = []string{url}
	}
	return runCmd(cmd, args...)
}

// mountEmbeddedUI serves the embedded status page at all non-/api GET routes
// with index fallback.
func mountEmbeddedUI(r *gin.Engine) {
	dist, err := fs.Sub(webembed.DistFS, "dist")
	if err != nil {
		r.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.URL.Path == "/api" {
				c.Status(http.StatusNotFound)
				return
			}
			c.String(http.StatusNotFound, "status page assets not found.")
		})
		return
	}
	httpFS := http.FS(dist)
	r.NoRoute(func(c *gin.Context) {
		// Do not hijack API routes
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.URL.Path == "/api" {
			c.Status(http.StatusNotFound)
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}
		p := strings.TrimPrefix(c.Request.URL.Path, "/")
		if p == "" {
			p = "index.html"
		}
		f, err := httpFS.Open(p)
		if err == nil {
			_ = f.Close()
			if ct := mime.TypeByExtension(filepath.Ext(p)); ct != "" {
				c.Header("Content-Type", ct)
			}
			c.FileFromFS(p, httpFS)
			return
		}
		// fallback to index.html
		if _, err := httpFS.Open("index.html"); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				c.String(http.StatusNotFound, "index.html not found in embedded dist.")
				return
			}
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.FileFromFS("index.html", httpFS)
	})
}

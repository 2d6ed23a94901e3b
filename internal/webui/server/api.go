package server

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"devctl/internal/manifest"
	"devctl/internal/provision"
	"devctl/internal/system"
	"devctl/internal/tools"
	appver "devctl/internal/version"
)

var runner tools.CommandRunner = tools.ExecRunner{}

func mountAPI(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": appver.AppVersion})
	})
	api.GET("/status", statusHandler)
	api.GET("/report", reportHandler)
}

type toolStatus struct {
	Name      string `json:"name"`
	Origin    string `json:"origin"` // built-in | manifest
	Installed bool   `json:"installed"`
	Version   string `json:"version,omitempty"`
	Path      string `json:"path,omitempty"`
	Latest    string `json:"latest,omitempty"`
	Err       string `json:"err,omitempty"`
}

type statusPayload struct {
	Brew    string       `json:"brew,omitempty"`
	Tools   []toolStatus `json:"tools"`
	Missing int          `json:"missing"`
}

func statusHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	out := statusPayload{Tools: []toolStatus{}}
	if path, err := tools.DetectBrew(runner); err == nil {
		out.Brew = path
	}

	var outdated map[string]string
	if out.Brew != "" {
		var err error
		outdated, err = tools.BrewOutdated(ctx, runner)
		if err != nil {
			system.Logger.Warn("brew outdated query failed", "err", err)
		}
	}

	builtin := tools.ReportList()
	specs := append(builtin, manifestExtras()...)
	for i, t := range specs {
		res := tools.Check(ctx, runner, t)
		ts := toolStatus{
			Name:      t.Name,
			Origin:    "built-in",
			Installed: res.Installed,
			Version:   res.Version,
			Path:      res.Path,
			Err:       res.Err,
		}
		if i >= len(builtin) {
			ts.Origin = "manifest"
		}
		if v, ok := outdated[t.Package]; ok && res.Installed {
			ts.Latest = v
		}
		if !ts.Installed {
			out.Missing++
		}
		out.Tools = append(out.Tools, ts)
	}
	c.JSON(http.StatusOK, out)
}

func reportHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	p := provision.New(runner, io.Discard)
	entries := p.VersionReport(ctx)
	entries = append(entries, p.ReportFor(ctx, manifestExtras())...)
	c.JSON(http.StatusOK, entries)
}

// manifestExtras returns manifest tools not already covered by the built-in
// report set.
func manifestExtras() []tools.ToolSpec {
	names, err := manifest.Load()
	if err != nil || len(names) == 0 {
		return nil
	}
	known := make(map[string]bool)
	for _, t := range tools.ReportList() {
		known[strings.ToLower(t.Name)] = true
	}
	var out []tools.ToolSpec
	for _, t := range manifest.Specs(names) {
		key := strings.ToLower(t.Name)
		if known[key] {
			continue
		}
		known[key] = true
		out = append(out, t)
	}
	return out
}

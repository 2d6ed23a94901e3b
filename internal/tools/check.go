package tools

import (
	"context"
	"strings"
	"time"
)

const versionProbeTimeout = 3 * time.Second

// Check probes a single tool: PATH lookup first, then a version query.
// A tool that resolves on PATH counts as installed even when the version
// probe fails; Raw stays empty in that case.
func Check(ctx context.Context, r CommandRunner, t ToolSpec) CheckResult {
	path, err := r.LookPath(t.Binary)
	if err != nil {
		return CheckResult{Installed: false, Err: "not found on PATH"}
	}

	probeCtx, cancel := context.WithTimeout(ctx, versionProbeTimeout)
	defer cancel()

	stdout, stderr, _, err := r.Run(probeCtx, t.Binary, t.VersionArgs...)
	line := firstLine(stdout)
	if line == "" {
		// some tools print their version to stderr
		line = firstLine(stderr)
	}
	if err != nil && line == "" {
		return CheckResult{Installed: true, Path: path}
	}

	res := CheckResult{Installed: true, Path: path, Raw: line}
	if v, ok := ParseVersion(line); ok {
		res.Version = v
	}
	return res
}

// CheckAll probes every tool in specs, in order.
func CheckAll(ctx context.Context, r CommandRunner, specs []ToolSpec) map[string]CheckResult {
	out := make(map[string]CheckResult, len(specs))
	for _, t := range specs {
		out[t.Name] = Check(ctx, r, t)
	}
	return out
}

func firstLine(b []byte) string {
	s := strings.TrimSpace(string(b))
	if s == "" {
		return ""
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

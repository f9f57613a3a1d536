package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/scanmark/internal/client/models"
)

// HealthCheckFailed is the fixed placeholder shown when the health call
// itself fails.
const HealthCheckFailed = "System health: check failed\n"

// ServiceStatusPositive reports whether a sub-service status string counts
// as good: only "connected" and "available" do.
func ServiceStatusPositive(status string) bool {
	return status == "connected" || status == "available"
}

// RenderHealth renders the overall binary badge ("healthy" vs anything
// else) and one line per sub-service, sorted by name.
func RenderHealth(h *models.Health) string {
	var b strings.Builder

	badge := "DOWN"
	if h.Status == "healthy" {
		badge = "OK"
	}
	fmt.Fprintf(&b, "System health: %s\n", badge)

	names := make([]string, 0, len(h.Services))
	for name := range h.Services {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		marker := "-"
		if ServiceStatusPositive(h.Services[name]) {
			marker = "+"
		}
		fmt.Fprintf(&b, "  [%s] %s: %s\n", marker, name, h.Services[name])
	}
	return b.String()
}

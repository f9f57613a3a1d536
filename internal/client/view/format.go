// Package view contains the pure rendering logic of the client: formatting,
// table generation, status coloring and chart-series shaping. Nothing here
// touches the terminal or the network; a thin adapter in the cli package
// mounts the output.
package view

import (
	"math"
	"strconv"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders a byte count using 1024-based units, rounded to at
// most two decimals with trailing zeros dropped: 0 -> "0 Bytes",
// 1536 -> "1.5 KB", 1048576 -> "1 MB".
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}

	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}

	v := float64(bytes) / math.Pow(1024, float64(i))
	v = math.Round(v*100) / 100

	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}

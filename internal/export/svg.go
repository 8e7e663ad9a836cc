package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/cosmic/internal/cosmo"
	"github.com/san-kum/cosmic/internal/viz"
)

type Point struct{ X, Y float64 }

// LineSVG draws points as a single polyline scaled to width x height, with
// a tenth of each range as padding. Fewer than two points give "".
func LineSVG(points []Point, width, height int, strokeColor, caption string) string {
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor)

	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)

		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}
	sb.WriteString(`"/>
`)

	if caption != "" {
		fmt.Fprintf(&sb, `<text x="8" y="18" fill="#888888" font-family="monospace" font-size="12">%s</text>
`, escape(caption))
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string { return escaper.Replace(s) }

// QuantitySVG plots q against redshift.
func QuantitySVG(samples []cosmo.Snapshot, q viz.Quantity, width, height int) string {
	points := make([]Point, len(samples))
	for i, s := range samples {
		points[i] = Point{X: s.Z, Y: q.Value(s)}
	}
	return LineSVG(points, width, height, "#00d7af", q.Caption)
}

package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/cosmic/internal/cosmo"
)

const (
	plotHeight = 12
	plotWidth  = 72
)

// ASCII plots q against redshift for the given samples.
func ASCII(samples []cosmo.Snapshot, q Quantity) (string, error) {
	if len(samples) == 0 {
		return "", fmt.Errorf("no data to plot")
	}

	zMin, zMax := samples[0].Z, samples[len(samples)-1].Z
	caption := fmt.Sprintf("%s, z = %.3g .. %.3g", q.Caption, zMin, zMax)

	graph := asciigraph.Plot(Column(samples, q),
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
	return graph, nil
}

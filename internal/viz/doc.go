// Package viz turns cosmology samples into pictures.
//
// The package provides:
//
//   - [Sample]: evaluate a cosmology on an even redshift grid
//   - [ASCII]: terminal line plot of one quantity against z (asciigraph)
//   - [Chart]: interactive HTML line chart of the distance measures (go-echarts)
//   - [Styles]: lipgloss styles derived from a [Theme], shared by the
//     styled report and the interactive prompt
//
// # Themes
//
// Four built-in color schemes are available: night, retro, minimal and
// sunset. Unknown names fall back to night.
package viz

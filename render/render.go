// Package render turns datasets into displayable artifacts for the chat
// transport.  Only the column/row shape of the dataset is guaranteed by
// the core, styling is entirely ours.
package render

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"
	"strings"
	"unicode/utf8"

	"github.com/araddon/qlbridge/value"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Phaust94/sqlite-interface/models"
)

// Text render the dataset as a bordered ascii table.
func Text(ds *models.Dataset) string {
	var buf bytes.Buffer
	tw := tablewriter.NewWriter(&buf)
	tw.SetHeader(ds.Columns)
	tw.SetAutoFormatHeaders(false)
	for _, row := range ds.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = cellString(v)
		}
		tw.Append(cells)
	}
	tw.Render()
	return buf.String()
}

func cellString(v value.Value) string {
	if v == nil || v.Nil() {
		return ""
	}
	return v.ToString()
}

// PNG rasterize the ascii rendering with a fixed-width bitmap font.
func PNG(ds *models.Dataset) ([]byte, error) {
	lines := strings.Split(strings.TrimRight(Text(ds), "\n"), "\n")

	face := basicfont.Face7x13
	const pad = 10
	const lineH = 13
	width := 0
	for _, l := range lines {
		if ct := utf8.RuneCountInString(l); ct > width {
			width = ct
		}
	}
	img := image.NewRGBA(image.Rect(0, 0, width*7+pad*2, len(lines)*lineH+pad*2))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	d := &font.Drawer{Dst: img, Src: image.Black, Face: face}
	for i, l := range lines {
		d.Dot = fixed.P(pad, pad+(i+1)*lineH-3)
		d.DrawString(l)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

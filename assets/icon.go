// Package assets embeds the application icon.
package assets

import (
	_ "embed"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
)

//go:embed gridsheet_icon.svg
var iconSVG string

// RenderIconSizes renders the embedded SVG icon at the sizes GLFW
// expects for SetIcon. The SVG is rasterized once at the largest size
// and downscaled for the rest.
func RenderIconSizes() []image.Image {
	const baseSize = 256
	base := renderSVG(iconSVG, baseSize)
	if base == nil {
		return nil
	}

	sizes := []int{16, 32, 48, 64, 128}
	icons := make([]image.Image, 0, len(sizes)+1)
	for _, size := range sizes {
		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), base, base.Bounds(), xdraw.Over, nil)
		icons = append(icons, dst)
	}
	return append(icons, base)
}

// renderSVG rasterizes an SVG string to an RGBA image of the given size.
func renderSVG(svgData string, size int) *image.RGBA {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svgData))
	if err != nil {
		return nil
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return rgba
}

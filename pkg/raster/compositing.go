package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// composite flattens the background (with optional hillshade baked in),
// the edges/nodes/labels layer, via a final multiply blend with
// premultiplied alpha, per spec §4.4's layer order: background ←
// hillshade; layered ← edges → nodes → labels; final = overlay(background,
// layered, "multiply").
func composite(background, layered *gg.Context) *image.RGBA {
	bg := background.Image()
	fg := layered.Image()
	bounds := bg.Bounds()
	out := image.NewRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.Set(x, y, multiplyBlend(bg.At(x, y), fg.At(x, y)))
		}
	}
	return out
}

// multiplyBlend combines two colors with a premultiplied-alpha multiply:
// each channel is the product of the two (normalized) channel values,
// composited over the background using the foreground's alpha.
func multiplyBlend(bg, fg color.Color) color.Color {
	br, bgc, bb, ba := bg.RGBA()
	fr, fgc, fb, fa := fg.RGBA()

	mr := uint32(uint64(br) * uint64(fr) / 0xffff)
	mg := uint32(uint64(bgc) * uint64(fgc) / 0xffff)
	mb := uint32(uint64(bb) * uint64(fb) / 0xffff)

	alpha := fa
	inv := 0xffff - alpha

	r := (mr*alpha + br*inv) / 0xffff
	g := (mg*alpha + bgc*inv) / 0xffff
	b := (mb*alpha + bb*inv) / 0xffff
	a := (ba*0xffff + alpha*(0xffff-ba)) / 0xffff

	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)}
}

// resampleToOutputDPI resizes img from renderingDPI to outputDPI using
// bilinear filtering. When the two DPI values match, img is returned
// unchanged.
func resampleToOutputDPI(img *image.RGBA, renderingDPI, outputDPI float64) *image.RGBA {
	if renderingDPI == outputDPI || outputDPI <= 0 {
		return img
	}
	scale := outputDPI / renderingDPI
	b := img.Bounds()
	newW := int(float64(b.Dx()) * scale)
	newH := int(float64(b.Dy()) * scale)
	resized := imaging.Resize(img, newW, newH, imaging.Linear)

	out := image.NewRGBA(resized.Bounds())
	draw.Draw(out, out.Bounds(), resized, image.Point{}, draw.Src)
	return out
}

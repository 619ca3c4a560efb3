package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

const (
	margin     = 48
	heroWidth  = 240
	heroHeight = 360
	heroGap    = 16
	qrSize     = heroHeight
)

// ComposeDeckImage lays out hero art left to right with the deck code's QR
// on the right. Missing heroes leave an empty slot.
func ComposeDeckImage(heroes []image.Image, qr image.Image) *image.NRGBA {
	slots := len(heroes)
	w := 2*margin + slots*heroWidth
	if slots > 1 {
		w += (slots - 1) * heroGap
	}
	if qr != nil {
		w += heroGap*2 + qrSize
	}
	h := 2*margin + heroHeight
	canvas := imaging.New(w, h, color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff})

	x := margin
	for _, hero := range heroes {
		if hero != nil {
			canvas = imaging.Paste(canvas, imaging.Fill(hero, heroWidth, heroHeight, imaging.Center, imaging.Lanczos), image.Pt(x, margin))
		}
		x += heroWidth + heroGap
	}

	if qr != nil {
		q := imaging.Resize(qr, qrSize, qrSize, imaging.NearestNeighbor)
		canvas = imaging.Paste(canvas, q, image.Pt(w-margin-qrSize, margin))
	}
	return canvas
}

// Package card renders share cards and Open Graph previews as PNG images.
package card

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"
	"strings"

	"github.com/CyberTud/dracula-wtf/internal/rubric"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	Width  = 1200
	Height = 630
)

var (
	backgroundTop    = color.RGBA{0x0a, 0x0a, 0x0a, 0xff}
	backgroundBottom = color.RGBA{0x2d, 0x0f, 0x0f, 0xff}
	textColor        = color.RGBA{0xff, 0xff, 0xff, 0xff}
	mutedColor       = color.RGBA{0x9c, 0xa3, 0xaf, 0xff}
	trackColor       = color.RGBA{0x26, 0x26, 0x26, 0xff}

	bucketColors = map[rubric.Bucket]color.RGBA{
		rubric.BucketPureSoul:       {0x22, 0xc5, 0x5e, 0xff},
		rubric.BucketSlightFang:     {0x84, 0xcc, 0x16, 0xff},
		rubric.BucketOpportunistic:  {0xea, 0xb3, 0x08, 0xff},
		rubric.BucketThirsty:        {0xf9, 0x73, 0x16, 0xff},
		rubric.BucketAncientVampire: {0xdc, 0x26, 0x26, 0xff},
	}
)

// BucketColor returns the accent color of a bucket.
func BucketColor(b rubric.Bucket) color.RGBA {
	if c, ok := bucketColors[b]; ok {
		return c
	}
	return bucketColors[rubric.BucketAncientVampire]
}

// Render draws the card for p.
func Render(p Params) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	fillGradient(img, backgroundTop, backgroundBottom)
	accent := BucketColor(p.Bucket)

	// top line
	quote := p.Quote()
	quoteScale := 4
	if textWidth(quote)*quoteScale > Width-80 {
		quoteScale = 3
	}
	drawCentered(img, strings.ToUpper(quote), 50, quoteScale, textColor)

	drawCentered(img, strconv.Itoa(p.Score), 150, 14, accent)
	drawCentered(img, strings.ToUpper(string(p.Bucket)), 350, 5, accent)
	drawCentered(img, strings.ToUpper(string(p.Mode))+" MODE", 425, 2, mutedColor)

	// score bar
	bar := image.Rect(200, 465, Width-200, 481)
	draw.Draw(img, bar, image.NewUniform(trackColor), image.Point{}, draw.Src)
	filled := bar
	filled.Max.X = bar.Min.X + bar.Dx()*p.Score/100
	draw.Draw(img, filled, image.NewUniform(accent), image.Point{}, draw.Src)

	y := 510
	for _, line := range wrap(p.Roast, 70) {
		if y > Height-40 {
			break
		}
		drawCentered(img, line, y, 2, textColor)
		y += 32
	}

	drawText(img, "DRACULA.WTF", Width-textWidth("DRACULA.WTF")*2-24, Height-40, 2, mutedColor)
	return img
}

// Encode renders p and writes it as PNG.
func Encode(w io.Writer, p Params) error {
	if err := png.Encode(w, Render(p)); err != nil {
		return fmt.Errorf("encode card: %w", err)
	}
	return nil
}

func fillGradient(img *image.RGBA, top, bottom color.RGBA) {
	h := img.Bounds().Dy()
	for y := 0; y < h; y++ {
		c := color.RGBA{
			R: lerp(top.R, bottom.R, y, h-1),
			G: lerp(top.G, bottom.G, y, h-1),
			B: lerp(top.B, bottom.B, y, h-1),
			A: 0xff,
		}
		draw.Draw(img, image.Rect(0, y, img.Bounds().Dx(), y+1), image.NewUniform(c), image.Point{}, draw.Src)
	}
}

func lerp(a, b uint8, step, steps int) uint8 {
	if steps <= 0 {
		return a
	}
	return uint8(int(a) + (int(b)-int(a))*step/steps)
}

var face = basicfont.Face7x13

func textWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}

func drawCentered(dst *image.RGBA, s string, y, scale int, col color.Color) {
	x := (Width - textWidth(s)*scale) / 2
	if x < 0 {
		x = 0
	}
	drawText(dst, s, x, y, scale, col)
}

// drawText renders s with the bitmap face and scales it up by an integer
// factor with nearest-neighbour sampling.
func drawText(dst *image.RGBA, s string, x, y, scale int, col color.Color) {
	w := textWidth(s)
	if w == 0 {
		return
	}
	metrics := face.Metrics()
	h := metrics.Height.Ceil()

	glyphs := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, metrics.Ascent.Ceil()),
	}
	d.DrawString(s)

	target := image.Rect(x, y, x+w*scale, y+h*scale)
	xdraw.NearestNeighbor.Scale(dst, target, glyphs, glyphs.Bounds(), xdraw.Over, nil)
}

// wrap breaks s into lines of at most width characters on word boundaries.
func wrap(s string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range strings.Fields(s) {
		if line.Len() > 0 && len([]rune(line.String()))+1+len([]rune(word)) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

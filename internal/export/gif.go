package export

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"

	"github.com/san-kum/bloom/internal/garden"
	"github.com/san-kum/bloom/internal/scene"
	"github.com/san-kum/bloom/internal/viz"
)

// Frame rasterizes a scene into a size x size image. Text is not drawn.
func Frame(sc scene.Scene, size int) *image.NRGBA {
	ip := viz.NewImagePlotter(size, size)
	viz.Rasterize(ip, sc)
	return ip.Img
}

// WritePNG encodes a single frame.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// FramesToGIF encodes frames as a looping animation. Delay is in 100ths of
// a second per frame.
func FramesToGIF(w io.Writer, frames []*image.NRGBA, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("export: no frames")
	}
	anim := gif.GIF{LoopCount: 0}
	for _, f := range frames {
		p := image.NewPaletted(f.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(p, f.Bounds(), f, image.Point{})
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}

// Record ticks g for frames frames and rasterizes every every-th one.
func Record(g *garden.Garden, frames, every, size int) []*image.NRGBA {
	if every < 1 {
		every = 1
	}
	out := make([]*image.NRGBA, 0, frames/every+1)
	for i := 0; i < frames; i++ {
		g.Tick()
		if i%every == 0 {
			out = append(out, Frame(scene.Build(g.Snapshot()), size))
		}
	}
	return out
}

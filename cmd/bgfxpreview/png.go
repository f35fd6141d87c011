package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/flavioheleno/bgfx"
	"github.com/flavioheleno/bgfx/internal/scene"
	xdraw "golang.org/x/image/draw"
)

// render draws pg into an RGB 5-6-5 buffer and returns it magnified by scale.
func render(pg scene.Page, opts *bgfx.Opts, pal scene.Palette, scale int) (*image.RGBA, error) {
	o := *opts
	o.Sink = bgfx.Direct16Buffer(make([]uint16, o.W*o.H))
	d, err := bgfx.New(&o)
	if err != nil {
		return nil, err
	}
	if err := pg.Draw(d, pal); err != nil {
		return nil, err
	}

	src := d.Image()
	scale = max(scale, 1)
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst, nil
}

func writePNG(path string, pg scene.Page, opts *bgfx.Opts, pal scene.Palette, scale int) error {
	img, err := render(pg, opts, pal, scale)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

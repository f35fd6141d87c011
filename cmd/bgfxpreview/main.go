// Command bgfxpreview renders the bgfx demo pages without hardware, either to
// scaled PNG files or to the terminal.
//
// Usage:
//
//	bgfxpreview -page circles -out circles.png -scale 4
//	bgfxpreview -page all -out previews/
//	bgfxpreview -term
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/flavioheleno/bgfx"
	"github.com/flavioheleno/bgfx/framebuf"
	"github.com/flavioheleno/bgfx/internal/scene"
)

var (
	width    = flag.Int("width", 128, "Display width in pixels")
	height   = flag.Int("height", 64, "Display height in pixels")
	rotation = flag.Uint("rotate", 0, "Software rotation in 90° steps")
	pageName = flag.String("page", "all", "Page to render: all or a page name")
	out      = flag.String("out", ".", "PNG file, or directory when rendering all pages")
	scale    = flag.Int("scale", 4, "PNG magnification")
	fgColor  = flag.String("fg", "#ffffff", "Foreground color")
	bgColor  = flag.String("bg", "#000000", "Background color")
	term     = flag.Bool("term", false, "Render in the terminal instead of PNG")
	mono     = flag.Bool("mono", false, "Force on/off cells in the terminal")
	list     = flag.Bool("list", false, "List the pages and exit")
)

func main() {
	flag.Parse()

	if *list {
		for _, pg := range scene.Pages() {
			fmt.Println(pg.Name)
		}
		return
	}

	pages := scene.Pages()
	if *pageName != "all" {
		pg, ok := scene.ByName(*pageName)
		if !ok {
			log.Fatalf("Unknown page: %s", *pageName)
		}
		pages = []scene.Page{pg}
	}

	fg, err := framebuf.ParseRGB565(*fgColor)
	if err != nil {
		log.Fatalf("Invalid -fg: %v", err)
	}
	bg, err := framebuf.ParseRGB565(*bgColor)
	if err != nil {
		log.Fatalf("Invalid -bg: %v", err)
	}
	pal := scene.Palette{Fg: fg, Bg: bg}

	if *term {
		if err := runTerm(pages, pal); err != nil {
			log.Fatalf("Terminal preview failed: %v", err)
		}
		return
	}

	opts := &bgfx.Opts{W: *width, H: *height, Rotation: bgfx.Rotation(*rotation)}
	for _, pg := range pages {
		path := *out
		if len(pages) > 1 || isDir(path) {
			path = filepath.Join(path, pg.Name+".png")
		}
		if err := writePNG(path, pg, opts, pal, *scale); err != nil {
			log.Fatalf("Failed to render %s: %v", pg.Name, err)
		}
		fmt.Printf("Wrote %s\n", path)
	}
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

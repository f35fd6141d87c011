package main

import (
	"time"

	"github.com/flavioheleno/bgfx"
	"github.com/flavioheleno/bgfx/internal/scene"
	"github.com/flavioheleno/bgfx/tcellsink"
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
)

// runTerm shows pages in the terminal. Any key moves to the next page; q or
// Esc quits. The sine page animates until a key is pressed.
func runTerm(pages []scene.Page, pal scene.Palette) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	// Terminals without color get on/off cells.
	monoCells := *mono || termenv.ColorProfile() == termenv.Ascii
	if monoCells {
		pal = scene.Mono
	}

	sc := tcellsink.New(s, &tcellsink.Opts{W: *width, Mono: monoCells})
	d, err := bgfx.New(&bgfx.Opts{
		W:        *width,
		H:        *height,
		Rotation: bgfx.Rotation(*rotation),
		Sink:     sc.Sink(),
	})
	if err != nil {
		return err
	}

	keys := make(chan *tcell.EventKey)
	go func() {
		for {
			switch ev := s.PollEvent().(type) {
			case nil:
				close(keys)
				return
			case *tcell.EventKey:
				keys <- ev
			}
		}
	}()

	caption := tcellsink.Rows(*height) + 1
	for _, pg := range pages {
		s.Clear()
		if err := pg.Draw(d, pal); err != nil {
			return err
		}
		sc.Caption(caption, pg.Name, tcell.StyleDefault)
		s.Show()

		var tick <-chan time.Time
		if pg.Name == "sine" {
			t := time.NewTicker(50 * time.Millisecond)
			defer t.Stop()
			tick = t.C
		}

	wait:
		for frame := 0; ; {
			select {
			case ev, ok := <-keys:
				if !ok || ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					return nil
				}
				break wait
			case <-tick:
				frame += 2
				scene.Sine(d, pal, frame)
				s.Show()
			}
		}
	}
	return nil
}

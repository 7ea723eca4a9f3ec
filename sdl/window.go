package sdl

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Window paints a board, one pixel per cell, scaled up to the window size.
type Window struct {
	Width, Height int32
	window        *sdl.Window
	renderer      *sdl.Renderer
	texture       *sdl.Texture
	pixels        []byte // ARGB8888, 4 bytes per cell
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

// NewWindow opens a window for a board of width x height cells.
func NewWindow(width, height int32) *Window {
	check(sdl.Init(sdl.INIT_EVERYTHING))

	scale := int32(1)
	for width*scale < 512 && height*scale < 512 {
		scale *= 2
	}
	window, err := sdl.CreateWindow("Game of Life", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width*scale, height*scale, sdl.WINDOW_SHOWN)
	check(err)

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	check(err)
	check(renderer.SetLogicalSize(width, height))

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888, sdl.TEXTUREACCESS_STATIC, width, height)
	check(err)

	return &Window{
		Width:    width,
		Height:   height,
		window:   window,
		renderer: renderer,
		texture:  texture,
		pixels:   make([]byte, width*height*4),
	}
}

// Destroy releases every SDL resource held by the window.
func (w *Window) Destroy() {
	check(w.texture.Destroy())
	check(w.renderer.Destroy())
	check(w.window.Destroy())
	sdl.Quit()
}

// FlipPixel toggles the cell at (x, y) between black and white.
func (w *Window) FlipPixel(x, y int) {
	offset := (int32(y)*w.Width + int32(x)) * 4
	for i := int32(0); i != 4; i++ {
		w.pixels[offset+i] = ^w.pixels[offset+i]
	}
}

// RenderFrame copies the pixel buffer onto the screen.
func (w *Window) RenderFrame() {
	check(w.texture.Update(nil, w.pixels, int(w.Width*4)))
	check(w.renderer.Clear())
	check(w.renderer.Copy(w.texture, nil, nil))
	w.renderer.Present()
}

func (w *Window) PollEvent() sdl.Event {
	return sdl.PollEvent()
}

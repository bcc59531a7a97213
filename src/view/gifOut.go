package view

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"
	"time"

	"golang.org/x/image/draw"

	"lifegif/src/universe"
)

const (
	DefResolution = 256
	DefFrameDelay = 150 * time.Millisecond
)

var (
	DeadColor  = color.RGBA{0x00, 0x00, 0x00, 0xff}
	AliveColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

//GifOut renders the universe history as an endlessly looping animated GIF
type GifOut struct {
	Resolution int           //frame width and height in pixels
	Delay      time.Duration //display time of one frame
	palette    color.Palette
}

func NewGifOut(resolution int, delay time.Duration) *GifOut {
	if resolution <= 0 {
		resolution = DefResolution
	}
	if delay <= 0 {
		delay = DefFrameDelay
	}
	return &GifOut{
		Resolution: resolution,
		Delay:      delay,
		palette:    color.Palette{DeadColor, AliveColor},
	}
}

//Frame renders one area as a Resolution x Resolution paletted image
//cells are scaled with the nearest neighbour interpolation
func (g *GifOut) Frame(a *universe.Area) *image.Paletted {
	cells := image.NewPaletted(image.Rect(0, 0, a.Size(), a.Size()), g.palette)
	a.Walk(func(row int, col int, c universe.Cell) {
		//palette index 0 is dead, 1 is alive
		cells.SetColorIndex(col, row, uint8(c))
	})
	frame := image.NewPaletted(image.Rect(0, 0, g.Resolution, g.Resolution), g.palette)
	draw.NearestNeighbor.Scale(frame, frame.Bounds(), cells, cells.Bounds(), draw.Src, nil)
	return frame
}

//Encode writes one frame per area to w
func (g *GifOut) Encode(w io.Writer, history []*universe.Area) error {
	if len(history) == 0 {
		return fmt.Errorf("nothing to encode: the history is empty")
	}
	//the gif delay unit is 1/100 of a second
	delay := int(g.Delay / (10 * time.Millisecond))
	anim := gif.GIF{
		Image:     make([]*image.Paletted, 0, len(history)),
		Delay:     make([]int, 0, len(history)),
		LoopCount: 0,
	}
	for _, a := range history {
		anim.Image = append(anim.Image, g.Frame(a))
		anim.Delay = append(anim.Delay, delay)
	}
	if err := gif.EncodeAll(w, &anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}

//WriteFile encodes the history to the file at path, the file is truncated if exists
func (g *GifOut) WriteFile(path string, history []*universe.Area) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", cerr)
		}
	}()
	return g.Encode(f, history)
}

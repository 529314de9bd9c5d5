package ascii

import (
	"strconv"

	"github.com/matthew-mcallister/cammy/internal/camel"
)

// Example frame:
//
//	             22
//	             C
//	``` ``` ``` ``` ```
//	 12   2   0   1   0
type frame struct {
	data      []Texel
	width     int
	pileWidth int
}

func (f *frame) draw(x, y int, ch rune, fg, bg RGB) {
	f.data[y*f.width+x] = Texel{Ch: ch, FG: fg, BG: bg}
}

// drawNum draws value right-aligned so its last digit lands at column x-1.
func (f *frame) drawNum(x, y, value int, fg, bg RGB) {
	s := strconv.Itoa(value)
	for i := 0; i < len(s); i++ {
		f.draw(x-i-1, y, rune(s[len(s)-1-i]), fg, bg)
	}
}

func (f *frame) drawPile(index, bananas int) {
	x0 := index * (f.pileWidth + 1)
	y0 := 2
	for i := 0; i < f.pileWidth; i++ {
		f.draw(x0+i, y0, '`', white, black)
	}
	fg := grey
	if bananas > 0 {
		fg = white
	}
	f.drawNum(x0+f.pileWidth, y0+1, bananas, fg, black)
}

func (f *frame) drawCammy(index, held int) {
	x0 := index * (f.pileWidth + 1)
	f.drawNum(x0+f.pileWidth, 0, held, white, black)
	f.draw(x0+f.pileWidth/2, 1, 'C', orange, black)
}

// Render builds the animation for a solution path, one frame per state.
// Columns are sized to the largest number that appears anywhere in the
// path, so nothing jumps around between frames.
func Render(path []camel.State) *Animation {
	distance := path[0].Key.Piles.Len()

	maxNum := 0
	for _, s := range path {
		if s.Held > maxNum {
			maxNum = s.Held
		}
		for i := 0; i < distance; i++ {
			if c := s.Key.Piles.At(i); c > maxNum {
				maxNum = c
			}
		}
	}
	pileWidth := len(strconv.Itoa(maxNum))

	width := (pileWidth + 1) * distance
	height := 4
	blank := Texel{Ch: ' ', FG: white, BG: black}

	anim := NewAnimation(width, height, 4.0)
	f := &frame{
		data:      make([]Texel, width*height),
		width:     width,
		pileWidth: pileWidth,
	}

	for _, s := range path {
		for i := range f.data {
			f.data[i] = blank
		}
		for i := 0; i < distance; i++ {
			f.drawPile(i, s.Key.Piles.At(i))
		}
		f.drawCammy(s.Key.X, s.Held)
		anim.PushFrame(f.data)
	}
	return anim
}

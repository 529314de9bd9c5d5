package ascii

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/muesli/termenv"
)

// RGB is a 24-bit color.
type RGB [3]uint8

var (
	white  = RGB{0xff, 0xff, 0xff}
	black  = RGB{0x00, 0x00, 0x00}
	grey   = RGB{0x7f, 0x7f, 0x7f}
	orange = RGB{0xff, 0xa5, 0x00}
)

// Texel is one character cell of a frame.
type Texel struct {
	Ch rune
	FG RGB
	BG RGB
}

// Animation is a fixed-size frame sequence, texels stored row-major.
type Animation struct {
	Cols, Rows int
	FPS        float64

	data   []Texel
	frames int
}

// NewAnimation creates an empty animation with the given geometry.
func NewAnimation(cols, rows int, fps float64) *Animation {
	return &Animation{Cols: cols, Rows: rows, FPS: fps}
}

// Frames returns the number of frames pushed so far.
func (a *Animation) Frames() int {
	return a.frames
}

// PushFrame appends one frame, which must match the animation geometry.
func (a *Animation) PushFrame(frame []Texel) {
	if len(frame) != a.Cols*a.Rows {
		panic(fmt.Sprintf("ascii: frame has %d texels, want %d", len(frame), a.Cols*a.Rows))
	}
	a.data = append(a.data, frame...)
	a.frames++
}

// frameData renders frame f as a terminal escape sequence: cursor home
// (no screen clear, which would flicker), then the texels with color
// changes emitted only when the color actually changes, and a reset at
// the end of every row so the background cannot bleed.
func (a *Animation) frameData(f int) string {
	var b strings.Builder
	b.WriteString("\x1b[0m\x1b[H")

	var fg, bg RGB
	var haveFG, haveBG bool
	for y := 0; y < a.Rows; y++ {
		for x := 0; x < a.Cols; x++ {
			t := a.data[f*a.Cols*a.Rows+y*a.Cols+x]
			if !haveFG || t.FG != fg {
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm", t.FG[0], t.FG[1], t.FG[2])
				fg, haveFG = t.FG, true
			}
			if !haveBG || t.BG != bg {
				fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm", t.BG[0], t.BG[1], t.BG[2])
				bg, haveBG = t.BG, true
			}
			b.WriteRune(t.Ch)
		}
		b.WriteString("\x1b[0m")
		if y < a.Rows-1 {
			b.WriteString("\r\n")
		}
		haveFG, haveBG = false, false
	}
	return b.String()
}

type castHeader struct {
	Version int `json:"version"`
	Width   int `json:"width"`
	Height  int `json:"height"`
}

// EncodeAsciicast writes the animation as an asciicast v2 recording: a
// JSON header line followed by one output event per frame.
func (a *Animation) EncodeAsciicast(w io.Writer) error {
	header, err := json.Marshal(castHeader{Version: 2, Width: a.Cols, Height: a.Rows})
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", header); err != nil {
		return err
	}

	for f := 0; f < a.frames; f++ {
		event, err := json.Marshal([]any{float64(f) / a.FPS, "o", a.frameData(f)})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", event); err != nil {
			return err
		}
	}
	return nil
}

// Play runs the animation on a terminal at its native frame rate, on the
// alternate screen with the cursor hidden.
func (a *Animation) Play(o *termenv.Output) error {
	o.AltScreen()
	defer o.ExitAltScreen()
	o.HideCursor()
	defer o.ShowCursor()

	ticker := time.NewTicker(time.Duration(float64(time.Second) / a.FPS))
	defer ticker.Stop()
	for f := 0; f < a.frames; f++ {
		if f > 0 {
			<-ticker.C
		}
		if _, err := o.WriteString(a.frameData(f)); err != nil {
			return err
		}
	}
	// Hold the last frame for a beat before restoring the screen.
	<-ticker.C
	return nil
}

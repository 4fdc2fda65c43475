// Package display renders rain sensor readings on a small character display.
//
// The layout follows a 128x64 OLED with an 8x16 font: 16 columns and four
// text rows addressed by page (0, 2, 4, 6).
package display

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Geometry of the text grid.
const (
	Columns = 16
	Rows    = 4
	// Pages per text row.
	PageStep = 2
)

// Title is drawn on the first row by Refresh.
const Title = "RainSense"

// ErrOutOfRange is returned when text would be drawn outside the grid.
var ErrOutOfRange = errors.New("display: position out of range")

// Display is a character display showing the filtered sensor value.
type Display interface {
	Init() error
	Clear() error
	ShowChar(x, y uint8, c byte) error
	ShowStr(x, y uint8, s string) error
	// ShowNum draws n right aligned in width columns, zero padded.
	ShowNum(x, y uint8, n uint, width uint8) error
	// Refresh redraws the whole screen for a new reading.
	Refresh(adc byte) error
}

// Console is a Display that prints the grid to a writer.
type Console struct {
	w    io.Writer
	grid [Rows][Columns]byte
}

var _ Display = (*Console)(nil)

// NewConsole returns a new console display writing to w.
func NewConsole(w io.Writer) *Console {
	c := &Console{w: w}
	c.blank()
	return c
}

// Init clears the grid.
func (c *Console) Init() error {
	return c.Clear()
}

// Clear blanks the grid.
func (c *Console) Clear() error {
	c.blank()
	return nil
}

func (c *Console) blank() {
	for r := range c.grid {
		for i := range c.grid[r] {
			c.grid[r][i] = ' '
		}
	}
}

func (c *Console) row(x, y uint8, n int) (int, error) {
	if y%PageStep != 0 || int(y/PageStep) >= Rows || int(x)+n > Columns {
		return 0, fmt.Errorf("%w: x=%d y=%d len=%d", ErrOutOfRange, x, y, n)
	}
	return int(y / PageStep), nil
}

// ShowChar draws c at column x of page y.
func (c *Console) ShowChar(x, y uint8, ch byte) error {
	r, err := c.row(x, y, 1)
	if err != nil {
		return err
	}
	c.grid[r][x] = ch
	return nil
}

// ShowStr draws s starting at column x of page y.
func (c *Console) ShowStr(x, y uint8, s string) error {
	r, err := c.row(x, y, len(s))
	if err != nil {
		return err
	}
	copy(c.grid[r][x:], s)
	return nil
}

// ShowNum draws n right aligned in width columns. Digits that do not fit are
// dropped from the left.
func (c *Console) ShowNum(x, y uint8, n uint, width uint8) error {
	s := strconv.FormatUint(uint64(n), 10)
	if len(s) > int(width) {
		s = s[len(s)-int(width):]
	}
	for len(s) < int(width) {
		s = "0" + s
	}
	return c.ShowStr(x, y, s)
}

// Refresh draws the title and the reading, then prints the grid.
func (c *Console) Refresh(adc byte) error {
	c.blank()
	if err := c.ShowStr(0, 0, Title); err != nil {
		return err
	}
	if err := c.ShowStr(0, 2, "ADC:"); err != nil {
		return err
	}
	if err := c.ShowNum(4, 2, uint(adc), 3); err != nil {
		return err
	}

	var b bytes.Buffer
	for _, r := range c.grid {
		b.Write(bytes.TrimRight(r[:], " "))
		b.WriteByte('\n')
	}
	if _, err := c.w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("display: could not write: %w", err)
	}
	return nil
}

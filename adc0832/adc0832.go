// Package adc0832 reads an ADC0832 8-bit serial A/D converter through four
// bit-banged GPIO lines.
package adc0832

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/host"
)

var (
	// ErrNoPin is returned when a line name is not found in the GPIO
	// registry.
	ErrNoPin = errors.New("adc0832: pin not found")
	// ErrSettle is returned when the settling time is not positive.
	ErrSettle = errors.New("adc0832: settling time must be positive")
)

// Output is a line driven by the host. Any gpio.PinOut satisfies it.
type Output interface {
	Out(l gpio.Level) error
}

// Input is a line sampled by the host. Any gpio.PinIn satisfies it.
type Input interface {
	Read() gpio.Level
}

// Device defines an ADC0832 connected by chip-select, clock, data-in and
// data-out lines. Data-in and data-out are named from the converter's side:
// the host drives DI and samples DO.
type Device struct {
	mu sync.Mutex

	cs  Output
	clk Output
	di  Output
	do  Input

	settle time.Duration
	delay  func(time.Duration)
}

// New returns a new ADC0832 on the GPIO lines named cs, clk, di and do
// ("GPIO17", "17", ...). The lines are parked at their idle levels and the
// settling time defaults to DefaultSettle.
func New(cs, clk, di, do string, opts ...Option) (*Device, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("adc0832: could not initialize host: %w", err)
	}

	var outs [3]gpio.PinIO
	for i, name := range []string{cs, clk, di} {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("%w: %q", ErrNoPin, name)
		}
		outs[i] = p
	}

	in := gpioreg.ByName(do)
	if in == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoPin, do)
	}
	if err := in.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("adc0832: could not configure %s as input: %w", do, err)
	}

	return FromLines(outs[0], outs[1], outs[2], in, opts...)
}

// FromLines returns a new ADC0832 over already opened lines.
func FromLines(cs, clk, di Output, do Input, opts ...Option) (*Device, error) {
	d := &Device{
		cs:     cs,
		clk:    clk,
		di:     di,
		do:     do,
		settle: DefaultSettle,
		delay:  spin,
	}

	if _, err := d.Options(opts...); err != nil {
		return nil, err
	}
	if err := d.idle(); err != nil {
		return nil, fmt.Errorf("adc0832: could not park lines: %w", err)
	}

	return d, nil
}

// Close parks the lines at their idle levels.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.idle()
}

func (d *Device) idle() error {
	if err := d.cs.Out(idleCS); err != nil {
		return err
	}
	if err := d.clk.Out(idleCLK); err != nil {
		return err
	}
	return d.di.Out(idleDI)
}

// ReadCH0 runs one single-ended conversion of channel 0 and returns the
// result, MSB first on the wire. 0 is the lowest input voltage and 255 the
// highest.
//
// Chip-select is released on return, also when a line fails.
func (d *Device) ReadCH0() (v byte, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	defer func() {
		if cerr := d.set(d.cs, idleCS); cerr != nil && err == nil {
			v, err = 0, fmt.Errorf("adc0832: could not deselect: %w", cerr)
		}
	}()

	if err := d.set(d.cs, gpio.Low); err != nil {
		return 0, fmt.Errorf("adc0832: could not select: %w", err)
	}
	if err := d.set(d.clk, gpio.Low); err != nil {
		return 0, fmt.Errorf("adc0832: could not reset clock: %w", err)
	}

	for _, b := range [...]gpio.Level{StartBit, SingleEnded, Channel0} {
		if err := d.clockOut(b); err != nil {
			return 0, fmt.Errorf("adc0832: could not send configuration: %w", err)
		}
	}

	// release DI and let the multiplexer settle before the first data bit
	if err := d.set(d.di, idleDI); err != nil {
		return 0, fmt.Errorf("adc0832: could not release data-in: %w", err)
	}

	for i := 0; i < Bits; i++ {
		bit, err := d.clockIn()
		if err != nil {
			return 0, fmt.Errorf("adc0832: could not read bit %d: %w", Bits-1-i, err)
		}
		v <<= 1
		if bit {
			v |= 0x01
		}
	}

	return v, nil
}

// set drives a line and waits for it to settle.
func (d *Device) set(l Output, level gpio.Level) error {
	if err := l.Out(level); err != nil {
		return err
	}
	d.delay(d.settle)
	return nil
}

// clockOut presents b on DI, then pulses the clock. The converter samples DI
// on the rising edge.
func (d *Device) clockOut(b gpio.Level) error {
	if err := d.set(d.di, b); err != nil {
		return err
	}
	if err := d.set(d.clk, gpio.High); err != nil {
		return err
	}
	return d.set(d.clk, gpio.Low)
}

// clockIn raises the clock, samples DO while it is high, then lowers it.
func (d *Device) clockIn() (bool, error) {
	if err := d.set(d.clk, gpio.High); err != nil {
		return false, err
	}
	bit := d.do.Read() == gpio.High
	if err := d.set(d.clk, gpio.Low); err != nil {
		return false, err
	}
	return bit, nil
}

// spin busy-waits for t. time.Sleep cannot resolve microsecond pauses.
func spin(t time.Duration) {
	start := time.Now()
	for time.Since(start) < t {
	}
}

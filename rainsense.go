// Package rainsense reads a resistive rain sensor through an ADC0832 and
// smooths the readings with a moving average.
//
// Lower values mean more water on the sensor; Dry (255) means no rain.
package rainsense

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cgxeiji/rainsense/adc0832"
)

var (
	// ErrWrongDevice is thrown when trying to convert the source of a Device
	// to an *adc0832.Device and the source is something else.
	ErrWrongDevice = errors.New("wrong device")
	// ErrStuck is thrown by Read when the sensor returned only Soaked or only
	// Dry for StuckLimit consecutive samples, which usually means the bus is
	// disconnected or a line is shorted.
	ErrStuck = errors.New("bus looks stuck")
)

// Source produces raw 8-bit samples of channel 0. *adc0832.Device is a
// Source.
type Source interface {
	ReadCH0() (byte, error)
}

// Device defines a rain sensor.
type Device struct {
	src    Source
	avg    movingAverage
	stuck  run
	readCh chan struct{}

	pins   [4]string
	settle time.Duration
}

// New returns a new rain sensor on an ADC0832 connected to the lines set by
// OnPins.
func New(opts ...Option) (*Device, error) {
	d := newDevice(opts)

	var aopts []adc0832.Option
	if d.settle != 0 {
		aopts = append(aopts, adc0832.Settle(d.settle))
	}
	adc, err := adc0832.New(d.pins[0], d.pins[1], d.pins[2], d.pins[3], aopts...)
	if err != nil {
		return nil, fmt.Errorf("rainsense: could not open ADC0832: %w", err)
	}
	d.src = adc

	return d, nil
}

// FromSource returns a new rain sensor reading raw samples from src.
func FromSource(src Source, opts ...Option) *Device {
	d := newDevice(opts)
	d.src = src
	return d
}

func newDevice(opts []Option) *Device {
	d := &Device{
		readCh: make(chan struct{}, 1),
		pins:   [4]string{PinCS, PinCLK, PinDI, PinDO},
	}
	for _, opt := range opts {
		opt(d)
	}
	d.readCh <- struct{}{}
	return d
}

// Close closes the underlying source if it can be closed.
func (d *Device) Close() error {
	<-d.readCh
	defer func() { d.readCh <- struct{}{} }()

	switch c := d.src.(type) {
	case io.Closer:
		return c.Close()
	case interface{ Close() }:
		c.Close()
	}
	return nil
}

// Read takes one raw sample and returns the mean of the last WindowSize
// samples. The first call returns its raw sample unchanged.
//
// If the sample cannot be taken, the moving average is left untouched. When
// the bus looks stuck, the mean is returned together with ErrStuck.
func (d *Device) Read() (byte, error) {
	<-d.readCh
	defer func() { d.readCh <- struct{}{} }()

	raw, err := d.src.ReadCH0()
	if err != nil {
		return 0, fmt.Errorf("rainsense: could not read sensor: %w", err)
	}

	v := d.avg.add(raw)
	if d.stuck.add(raw) {
		return v, fmt.Errorf("rainsense: %d samples at %#02x: %w", d.stuck.n, raw, ErrStuck)
	}

	return v, nil
}

// Raw returns one unfiltered sample. It does not affect Read.
func (d *Device) Raw() (byte, error) {
	<-d.readCh
	defer func() { d.readCh <- struct{}{} }()

	raw, err := d.src.ReadCH0()
	if err != nil {
		return 0, fmt.Errorf("rainsense: could not read sensor: %w", err)
	}
	return raw, nil
}

// Reset forgets the sample history. The next Read starts over as the first.
func (d *Device) Reset() {
	<-d.readCh
	defer func() { d.readCh <- struct{}{} }()

	d.avg.reset()
	d.stuck.reset()
}

// ToADC0832 converts the source of the device to an ADC0832 to access low
// level functions. Check the package rainsense/adc0832 for detailed behavior.
func (d *Device) ToADC0832() (*adc0832.Device, error) {
	adc, ok := d.src.(*adc0832.Device)
	if !ok {
		return nil, ErrWrongDevice
	}

	return adc, nil
}

// run counts consecutive samples stuck at one extreme.
type run struct {
	limit int
	last  byte
	n     int
}

// add records v and reports whether the run reached the limit.
func (r *run) add(v byte) bool {
	if r.limit == 0 {
		return false
	}
	if v != Soaked && v != Dry {
		r.n = 0
		return false
	}
	if r.n > 0 && v == r.last {
		r.n++
	} else {
		r.n = 1
	}
	r.last = v
	return r.n >= r.limit
}

func (r *run) reset() {
	r.last = 0
	r.n = 0
}

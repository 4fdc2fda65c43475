package adc0832

import (
	"fmt"
	"time"
)

// Option defines a functional option for the device.
type Option func(d *Device) (Option, error)

// Options set different configuration options and returns the previous value
// of the last option passed.
func (d *Device) Options(options ...Option) (Option, error) {
	var old Option
	var err error
	for _, opt := range options {
		old, err = opt(d)
		if err != nil {
			return nil, err
		}
	}

	return old, nil
}

// Settle sets the pause that follows every line transition. The ADC0832
// needs a non-zero setup and hold time, so t must be positive.
func Settle(t time.Duration) Option {
	return func(d *Device) (Option, error) {
		if t <= 0 {
			return nil, fmt.Errorf("%w: got %v", ErrSettle, t)
		}
		old := d.settle
		d.settle = t

		return Settle(old), nil
	}
}

// Delay replaces the primitive used to wait for the settling time. By default
// the device busy-waits. A nil function restores the default.
func Delay(fn func(time.Duration)) Option {
	return func(d *Device) (Option, error) {
		if fn == nil {
			fn = spin
		}
		old := d.delay
		d.delay = fn

		return Delay(old), nil
	}
}

package rainsense

import "time"

// An Option configures a device.
type Option func(d *Device) Option

// OnPins can be used to specify the GPIO lines of the ADC0832 ("GPIO17",
// "17", ...). By default, the lines are PinCS, PinCLK, PinDI and PinDO.
// It only has an effect when passed to New.
func OnPins(cs, clk, di, do string) Option {
	return func(d *Device) Option {
		old := d.pins
		d.pins = [4]string{cs, clk, di, do}
		return OnPins(old[0], old[1], old[2], old[3])
	}
}

// WithSettle can be used to specify the pause after every line transition
// of the ADC0832. By default, it is adc0832.DefaultSettle. It only has an
// effect when passed to New.
func WithSettle(t time.Duration) Option {
	return func(d *Device) Option {
		old := d.settle
		d.settle = t
		return WithSettle(old)
	}
}

// StuckLimit makes Read fail with ErrStuck once n consecutive raw samples
// are all Soaked or all Dry. A dry sensor legitimately reads Dry, so the
// check is disabled by default (n = 0).
func StuckLimit(n int) Option {
	return func(d *Device) Option {
		old := d.stuck.limit
		if n < 0 {
			n = 0
		}
		d.stuck.limit = n
		d.stuck.reset()
		return StuckLimit(old)
	}
}

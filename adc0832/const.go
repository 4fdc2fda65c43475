package adc0832

import (
	"time"

	"periph.io/x/periph/conn/gpio"
)

// Configuration bits, clocked out in this order after chip-select goes low.
const (
	// StartBit must be high to begin a conversion.
	StartBit = gpio.High
	// SingleEnded selects single-ended input (SGL/DIF = 1).
	SingleEnded = gpio.High
	// Channel0 selects CH0 as the positive input (ODD/SIGN = 0).
	Channel0 = gpio.Low
)

// Bits is the resolution of a conversion result.
const Bits = 8

// DefaultSettle is the pause after every line transition. At 2µs per edge the
// clock runs at 250kHz, inside the 10kHz-400kHz range of the datasheet.
const DefaultSettle = 2 * time.Microsecond

// Idle line levels, held between transactions.
const (
	idleCS  = gpio.High
	idleCLK = gpio.Low
	idleDI  = gpio.High
)

package rainsense

// WindowSize is the number of raw samples averaged by Read.
const WindowSize = 8

// Default GPIO lines of the ADC0832 (BCM numbering).
const (
	PinCS  = "GPIO17"
	PinCLK = "GPIO18"
	PinDI  = "GPIO27"
	PinDO  = "GPIO22"
)

// Reading extremes. The sensor reads Dry with no water on it and falls
// towards Soaked as it gets wet.
const (
	Soaked byte = 0x00
	Dry    byte = 0xFF
)

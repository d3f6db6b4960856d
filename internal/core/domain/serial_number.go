package domain

// SerialNumberStatus is the stock status of a serial-numbered item.
type SerialNumberStatus string

const (
	SerialNumberInactive  SerialNumberStatus = "Inactive"
	SerialNumberActive    SerialNumberStatus = "Active"
	SerialNumberDelivered SerialNumberStatus = "Delivered"
)

// Color returns the badge color. Unknown statuses are gray.
func (s SerialNumberStatus) Color() string {
	switch s {
	case SerialNumberActive:
		return ColorGreen
	case SerialNumberDelivered:
		return ColorBlue
	default:
		return ColorGray
	}
}

// Label returns the display text. Unknown statuses read as Inactive.
func (s SerialNumberStatus) Label() string {
	switch s {
	case SerialNumberActive:
		return "Active"
	case SerialNumberDelivered:
		return "Delivered"
	default:
		return "Inactive"
	}
}

package tellduslive

import "strings"

/*
 *   Tellstick method codes and sensor scale identifiers
 */

// Method is a bit-flag identifying a device capability. A device
// advertises the set it supports as a bitmask; its current state is
// always a single method code, never a composite.
type Method int

const (
	TurnOn     Method = 1
	TurnOff    Method = 2
	Bell       Method = 4
	Toggle     Method = 8
	Dim        Method = 16
	Learn      Method = 32
	Up         Method = 128
	Down       Method = 256
	Stop       Method = 512
	RGBW       Method = 1024
	Thermostat Method = 2048
)

// SupportedMethods is the subset this client asks the server for and
// is willing to execute. Anything else a device advertises is not
// expressible through the Device view.
const SupportedMethods = TurnOn | TurnOff | Dim | Up | Down | Stop

// methodOrder fixes the iteration order for rendering flag sets.
var methodOrder = []Method{
	TurnOn, TurnOff, Bell, Toggle, Dim, Learn,
	Up, Down, Stop, RGBW, Thermostat,
}

var methodNames = map[Method]string{
	TurnOn:     "TURNON",
	TurnOff:    "TURNOFF",
	Bell:       "BELL",
	Toggle:     "TOGGLE",
	Dim:        "DIM",
	Learn:      "LEARN",
	Up:         "UP",
	Down:       "DOWN",
	Stop:       "STOP",
	RGBW:       "RGBW",
	Thermostat: "THERMOSTAT",
}

// apiMethods maps the executable method codes to their API endpoints.
// Exactly the SupportedMethods set is wired here.
var apiMethods = map[Method]string{
	TurnOn:  "device/turnOn",
	TurnOff: "device/turnOff",
	Dim:     "device/dim",
	Up:      "device/up",
	Down:    "device/down",
	Stop:    "device/stop",
}

// String renders the set bits of m in registry order, eg. "TURNON|DIM".
func (m Method) String() string {
	var names []string
	for _, method := range methodOrder {
		if m&method != 0 {
			names = append(names, methodNames[method])
		}
	}

	return strings.Join(names, "|")
}

// Sensor scale identifiers as reported in sensors/list data entries.
const (
	ScaleTemperature   = "temperature"
	ScaleHumidity      = "humidity"
	ScaleRainRate      = "rrate"
	ScaleRainTotal     = "rtot"
	ScaleWindDirection = "wdir"
	ScaleWindAverage   = "wavg"
	ScaleWindGust      = "wgust"
	ScaleUV            = "uv"
	ScaleWatt          = "watt"
	ScaleLuminance     = "lum"

	// Inherited from the upstream protocol tables but not confirmed
	// against current documentation; treat as provisional.
	ScaleDewPoint           = "dew"
	ScaleBarometricPressure = "?"
)

package tellduslive

import (
	"fmt"
	"net/url"
	"strconv"
)

const unnamedDevice = "NO NAME"

// Device is a view over one cached device record. It holds no state of
// its own: every read goes through the owning client's current cache,
// so two reads spanning a refresh may observe different values.
type Device struct {
	client *Client
	id     string
}

// ID returns the server-assigned device id.
func (d *Device) ID() string {
	return d.id
}

func (d *Device) record() (*DeviceRecord, error) {
	return d.client.Device(d.id)
}

func (d *Device) Name() (string, error) {
	record, err := d.record()
	if err != nil {
		return "", err
	}

	return record.Name, nil
}

// State returns the device's last known method code.
func (d *Device) State() (Method, error) {
	record, err := d.record()
	if err != nil {
		return 0, err
	}

	return record.State, nil
}

func (d *Device) StateValue() (string, error) {
	record, err := d.record()
	if err != nil {
		return "", err
	}

	return record.StateValue, nil
}

// Methods returns the bitmask of method codes the device supports.
func (d *Device) Methods() (Method, error) {
	record, err := d.record()
	if err != nil {
		return 0, err
	}

	return record.Methods, nil
}

// IsOn reports whether the last known state is on or dimmed.
func (d *Device) IsOn() (bool, error) {
	state, err := d.State()
	if err != nil {
		return false, err
	}

	return state == TurnOn || state == Dim, nil
}

// DimLevel parses statevalue as a dim level. A statevalue that is not
// an integer (eg. "unknown") yields nil rather than an error.
func (d *Device) DimLevel() (*int, error) {
	value, err := d.StateValue()
	if err != nil {
		return nil, err
	}

	level, err := strconv.Atoi(value)
	if err != nil {
		return nil, nil
	}

	return &level, nil
}

// execute sends one command for this device and, only after the server
// confirms success, patches the cached state to the issued method
// code. The patch is deliberately minimal: statevalue keeps its
// pre-command value until the next refresh, also after a dim. Methods
// outside the endpoint registry are not executable at all.
func (d *Device) execute(method Method, params url.Values) bool {
	path, ok := apiMethods[method]
	if !ok {
		return false
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("id", d.id)

	if !d.client.Execute(path, params) {
		return false
	}

	if record, err := d.record(); err == nil {
		record.State = method
	}

	return true
}

func (d *Device) TurnOn() bool {
	return d.execute(TurnOn, nil)
}

func (d *Device) TurnOff() bool {
	return d.execute(TurnOff, nil)
}

func (d *Device) Dim(level int) bool {
	params := url.Values{}
	params.Set("level", strconv.Itoa(level))

	return d.execute(Dim, params)
}

func (d *Device) Up() bool {
	return d.execute(Up, nil)
}

func (d *Device) Down() bool {
	return d.execute(Down, nil)
}

func (d *Device) Stop() bool {
	return d.execute(Stop, nil)
}

func (d *Device) String() string {
	record, err := d.record()
	if err != nil {
		return fmt.Sprintf("Device@%s:<gone>", d.id)
	}

	name := record.Name
	if name == "" {
		name = unnamedDevice
	}

	return fmt.Sprintf("Device@%s:%s(%s:%s)(%s)",
		d.id, name, record.State, record.StateValue, record.Methods)
}

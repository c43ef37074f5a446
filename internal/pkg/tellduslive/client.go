package tellduslive

import (
	"encoding/json"
	"iter"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/jake-scott/telldus-live/internal/pkg/logging"
)

// ErrNotFound is returned by cache lookups whose id is absent from the
// current snapshot, eg. a view handle held across a refresh that
// dropped its device.
var ErrNotFound = errors.New("not found in cache")

// Client owns the transport and the point-in-time cache of device and
// sensor records. View objects never copy cache entries; they hold an
// id and read through the client on every access.
//
// The cache has no locking discipline: refreshes and command execution
// must not run from more than one goroutine at a time.
type Client struct {
	transport Transport
	devices   map[string]*DeviceRecord
	sensors   map[string]*SensorRecord
}

func New(transport Transport) *Client {
	return &Client{
		transport: transport,
		devices:   make(map[string]*DeviceRecord),
		sensors:   make(map[string]*SensorRecord),
	}
}

// Request performs one signed GET and decodes the response into out,
// which may be nil when the caller only cares about success. Transport
// failures and explicit remote errors are logged and reduced to a
// false return: a false result means the operation did not complete
// and out must not be trusted.
func (c *Client) Request(path string, params url.Values, out interface{}) bool {
	logging.Logger(nil).Debugf("request %s %s", path, params.Encode())

	body, err := c.transport.Get(path, params)
	if err != nil {
		logging.Logger(nil).WithError(err).Errorf("failed request: %s", path)
		return false
	}

	var remote struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &remote); err != nil {
		logging.Logger(nil).WithError(err).Errorf("decoding %s response", path)
		return false
	}
	if remote.Error != "" {
		logging.Logger(nil).Errorf("remote error from %s: %s", path, remote.Error)
		return false
	}

	if out == nil {
		return true
	}

	if err := json.Unmarshal(body, out); err != nil {
		logging.Logger(nil).WithError(err).Errorf("decoding %s response", path)
		return false
	}

	return true
}

// Execute sends one command request and reports whether the server
// confirmed it. Any other outcome - transport failure, remote error,
// missing or non-success status - is false, never an error.
func (c *Client) Execute(path string, params url.Values) bool {
	var resp struct {
		Status string `json:"status"`
	}

	return c.Request(path, params, &resp) && resp.Status == "success"
}

// Refresh pulls the device and sensor lists and replaces the cache
// wholesale. Both fetches must succeed before either map is touched: a
// partial failure leaves the previous snapshot intact.
func (c *Client) Refresh() error {
	params := url.Values{}
	params.Set("supportedMethods", strconv.Itoa(int(SupportedMethods)))
	params.Set("includeIgnored", "0")

	var deviceList deviceListResponse
	if !c.Request("devices/list", params, &deviceList) {
		return errors.New("fetching device list")
	}

	params = url.Values{}
	params.Set("includeValues", "1")
	params.Set("includeScale", "1")
	params.Set("includeIgnored", "0")

	var sensorList sensorListResponse
	if !c.Request("sensors/list", params, &sensorList) {
		return errors.New("fetching sensor list")
	}

	c.devices = make(map[string]*DeviceRecord, len(deviceList.Device))
	for i := range deviceList.Device {
		c.devices[deviceList.Device[i].ID] = &deviceList.Device[i]
	}

	c.sensors = make(map[string]*SensorRecord, len(sensorList.Sensor))
	for i := range sensorList.Sensor {
		c.sensors[sensorList.Sensor[i].ID] = &sensorList.Sensor[i]
	}

	return nil
}

// Device returns the raw cached record for a device id.
func (c *Client) Device(id string) (*DeviceRecord, error) {
	record, ok := c.devices[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "device %s", id)
	}

	return record, nil
}

// Sensor returns the raw cached record for a sensor id.
func (c *Client) Sensor(id string) (*SensorRecord, error) {
	record, ok := c.sensors[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "sensor %s", id)
	}

	return record, nil
}

// Devices yields one view per cached device. The sequence is lazy and
// restartable; ordering across entries is not defined.
func (c *Client) Devices() iter.Seq[*Device] {
	return func(yield func(*Device) bool) {
		for id := range c.devices {
			if !yield(&Device{client: c, id: id}) {
				return
			}
		}
	}
}

// Sensors yields one view per cached sensor.
func (c *Client) Sensors() iter.Seq[*Sensor] {
	return func(yield func(*Sensor) bool) {
		for id := range c.sensors {
			if !yield(&Sensor{client: c, id: id}) {
				return
			}
		}
	}
}

// SensorDataItems yields every data item of every cached sensor, in
// sensor-then-data order.
func (c *Client) SensorDataItems() iter.Seq[DataItem] {
	return func(yield func(DataItem) bool) {
		for sensor := range c.Sensors() {
			items, err := sensor.DataItems()
			if err != nil {
				continue
			}

			for _, item := range items {
				if !yield(item) {
					return
				}
			}
		}
	}
}

// Profile fetches the account's user details.
func (c *Client) Profile() (*UserProfile, bool) {
	var profile UserProfile
	if !c.Request("user/profile", nil, &profile) {
		return nil, false
	}

	return &profile, true
}

package tellduslive

import (
	"fmt"
	"strings"
)

// Sensor is a view over one cached sensor record, with the same
// read-through semantics as Device.
type Sensor struct {
	client *Client
	id     string
}

// ID returns the server-assigned sensor id.
func (s *Sensor) ID() string {
	return s.id
}

func (s *Sensor) record() (*SensorRecord, error) {
	return s.client.Sensor(s.id)
}

func (s *Sensor) Name() (string, error) {
	record, err := s.record()
	if err != nil {
		return "", err
	}

	return record.Name, nil
}

// Data returns the sensor's raw measurement list.
func (s *Sensor) Data() ([]SensorData, error) {
	record, err := s.record()
	if err != nil {
		return nil, err
	}

	return record.Data, nil
}

// DataItems builds one DataItem view per measurement entry. Views are
// cheap handles; a fresh set is constructed on every call.
func (s *Sensor) DataItems() ([]DataItem, error) {
	data, err := s.Data()
	if err != nil {
		return nil, err
	}

	items := make([]DataItem, 0, len(data))
	for _, entry := range data {
		items = append(items, DataItem{
			client:   s.client,
			sensorID: s.id,
			name:     entry.Name,
			scale:    entry.Scale,
		})
	}

	return items, nil
}

func (s *Sensor) String() string {
	record, err := s.record()
	if err != nil {
		return fmt.Sprintf("Sensor@%s:<gone>", s.id)
	}

	name := record.Name
	if name == "" {
		name = unnamedDevice
	}

	values := make([]string, 0, len(record.Data))
	for _, entry := range record.Data {
		values = append(values, fmt.Sprintf("%s=%s", entry.Name, entry.Value))
	}

	return fmt.Sprintf("Sensor@%s:%s(%s)", s.id, name, strings.Join(values, ","))
}

// DataItem identifies one (sensor, measurement name, scale) triple. It
// never stores a value; Value resolves against the owning sensor's
// current data list on every call.
type DataItem struct {
	client   *Client
	sensorID string
	name     string
	scale    string
}

// SensorID returns the id of the owning sensor.
func (d DataItem) SensorID() string {
	return d.sensorID
}

// Name returns the measurement name.
func (d DataItem) Name() string {
	return d.name
}

// Scale returns the scale identifier.
func (d DataItem) Scale() string {
	return d.scale
}

// Sensor returns a fresh view of the owning sensor.
func (d DataItem) Sensor() *Sensor {
	return &Sensor{client: d.client, id: d.sensorID}
}

// Value looks the triple up in the sensor's current data list. A
// missing entry means the value is unknown and yields nil, not an
// error; the error case is the sensor itself having left the cache.
func (d DataItem) Value() (*string, error) {
	record, err := d.client.Sensor(d.sensorID)
	if err != nil {
		return nil, err
	}

	for _, entry := range record.Data {
		if entry.Name == d.name && entry.Scale == d.scale {
			value := entry.Value
			return &value, nil
		}
	}

	return nil, nil
}

func (d DataItem) String() string {
	sensor := d.Sensor()

	name, err := sensor.Name()
	if err != nil {
		return fmt.Sprintf("DataItem@%s:<gone>", d.sensorID)
	}
	if name == "" {
		name = unnamedDevice
	}

	value := "unknown"
	if v, err := d.Value(); err == nil && v != nil {
		value = *v
	}

	return fmt.Sprintf("DataItem@%s:%s(%s=%s)", d.sensorID, name, d.name, value)
}

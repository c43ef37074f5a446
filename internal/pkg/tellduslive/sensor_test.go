package tellduslive

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sensorByID(t *testing.T, client *Client, id string) *Sensor {
	t.Helper()

	for sensor := range client.Sensors() {
		if sensor.ID() == id {
			return sensor
		}
	}

	t.Fatalf("no sensor view for id %s", id)
	return nil
}

func TestSensorReadThrough(t *testing.T) {
	client, _ := refreshedClient(t)
	sensor := sensorByID(t, client, "5")

	name, err := sensor.Name()
	require.NoError(t, err)
	assert.Equal(t, "Outside", name)

	data, err := sensor.Data()
	require.NoError(t, err)
	assert.Equal(t, []SensorData{
		{Name: "temp", Scale: "0", Value: "21.5"},
		{Name: "humidity", Scale: "0", Value: "40"},
	}, data)
}

func TestDataItemsOnePerEntry(t *testing.T) {
	client, _ := refreshedClient(t)
	sensor := sensorByID(t, client, "5")

	items, err := sensor.DataItems()
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "5", items[0].SensorID())
	assert.Equal(t, "temp", items[0].Name())
	assert.Equal(t, "0", items[0].Scale())
	assert.Equal(t, "humidity", items[1].Name())
}

func TestDataItemValueLookup(t *testing.T) {
	client, _ := refreshedClient(t)

	t.Run("matching triple resolves to the entry value", func(t *testing.T) {
		item := DataItem{client: client, sensorID: "5", name: "temp", scale: "0"}

		value, err := item.Value()
		require.NoError(t, err)
		require.NotNil(t, value)
		assert.Equal(t, "21.5", *value)
	})

	t.Run("unmatched scale resolves to nil", func(t *testing.T) {
		item := DataItem{client: client, sensorID: "5", name: "temp", scale: "1"}

		value, err := item.Value()
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("missing sensor is an error", func(t *testing.T) {
		item := DataItem{client: client, sensorID: "99", name: "temp", scale: "0"}

		_, err := item.Value()
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestDataItemTracksCacheAcrossRefresh(t *testing.T) {
	client, fs := refreshedClient(t)
	item := DataItem{client: client, sensorID: "5", name: "temp", scale: "0"}

	fs.responses["/sensors/list"] = `{"sensor":[{"id":"5","name":"Outside","data":[{"name":"temp","scale":"0","value":"19.0"}]}]}`
	require.NoError(t, client.Refresh())

	value, err := item.Value()
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, "19.0", *value)
}

func TestDataItemSensorBackReference(t *testing.T) {
	client, _ := refreshedClient(t)
	item := DataItem{client: client, sensorID: "5", name: "temp", scale: "0"}

	name, err := item.Sensor().Name()
	require.NoError(t, err)
	assert.Equal(t, "Outside", name)
}

func TestSensorDataItemsConcatenation(t *testing.T) {
	client, fs := refreshedClient(t)
	fs.responses["/sensors/list"] = `{"sensor":[` +
		`{"id":"5","name":"Outside","data":[{"name":"temp","scale":"0","value":"21.5"}]},` +
		`{"id":"6","name":"Attic","data":[{"name":"temp","scale":"0","value":"30"},{"name":"humidity","scale":"0","value":"12"}]}]}`
	require.NoError(t, client.Refresh())

	perSensor := map[string][]string{}
	total := 0
	for item := range client.SensorDataItems() {
		perSensor[item.SensorID()] = append(perSensor[item.SensorID()], item.Name())
		total++
	}

	assert.Equal(t, 3, total)
	assert.Equal(t, []string{"temp"}, perSensor["5"])
	// Per-sensor items keep the data list's order.
	assert.Equal(t, []string{"temp", "humidity"}, perSensor["6"])
}

func TestSensorStrings(t *testing.T) {
	client, _ := refreshedClient(t)

	sensor := sensorByID(t, client, "5")
	assert.Equal(t, "Sensor@5:Outside(temp=21.5,humidity=40)", sensor.String())

	item := DataItem{client: client, sensorID: "5", name: "temp", scale: "0"}
	assert.Equal(t, "DataItem@5:Outside(temp=21.5)", item.String())

	missing := DataItem{client: client, sensorID: "5", name: "temp", scale: "9"}
	assert.Equal(t, "DataItem@5:Outside(temp=unknown)", missing.String())
}

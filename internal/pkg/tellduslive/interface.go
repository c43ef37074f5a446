package tellduslive

import "net/url"

// Transport performs one signed GET against the Telldus Live API and
// returns the raw response body. Implementations must convert HTTP
// status failures into errors; request signing is their concern, not
// the client's.
type Transport interface {
	Get(path string, params url.Values) ([]byte, error)
}

// DeviceRecord is the raw cache entry for one device, exactly as
// parsed from a devices/list response.
type DeviceRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	State      Method `json:"state"`
	StateValue string `json:"statevalue"`
	Methods    Method `json:"methods"`
}

// SensorData is one measurement entry in a sensor's data list.
type SensorData struct {
	Name  string `json:"name"`
	Scale string `json:"scale"`
	Value string `json:"value"`
}

// SensorRecord is the raw cache entry for one sensor.
type SensorRecord struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Data []SensorData `json:"data"`
}

// UserProfile is the response to a user/profile request.
type UserProfile struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
}

type deviceListResponse struct {
	Device []DeviceRecord `json:"device"`
}

type sensorListResponse struct {
	Sensor []SensorRecord `json:"sensor"`
}

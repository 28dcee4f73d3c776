package models

// ServiceName is reported in the "service" field of every response document
const ServiceName = "python-api"

// ServiceVersion is reported by GET /api/info
const ServiceVersion = "1.0.0"

// HealthResponse represents the response structure for GET /api/health
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Service   string `json:"service" example:"python-api"`
	Hostname  string `json:"hostname" example:"web-01"`
	Timestamp string `json:"timestamp" example:"2024-01-01T00:00:00.000000"`
}

// DataItems is the nested "datetime" object of a DataResponse.
// Count always equals len(Items).
type DataItems struct {
	Items []string `json:"items" example:"item1,item2,item3"`
	Count int      `json:"count" example:"3"`
}

// DataResponse represents the response structure for GET /api/data
type DataResponse struct {
	Message   string    `json:"message" example:"data from python api"`
	Service   string    `json:"service" example:"python-api"`
	Hostname  string    `json:"hostname" example:"web-01"`
	Datetime  DataItems `json:"datetime"`
	Timestamp string    `json:"timestamp" example:"2024-01-01T00:00:00.000000"`
}

// InfoResponse represents the response structure for GET /api/info
type InfoResponse struct {
	Service         string `json:"service" example:"python-api"`
	Version         string `json:"version" example:"1.0.0"`
	Hostname        string `json:"hostname" example:"web-01"`
	Platform        string `json:"platform" example:"Linux"`
	PlatformVersion string `json:"platform_version" example:"go1.24.0"`
	Timestamp       string `json:"timestamp" example:"2024-01-01T00:00:00.000000"`
}

// NewDataItems builds the nested data object, keeping Count in sync with Items
func NewDataItems(items ...string) DataItems {
	copied := make([]string, len(items))
	copy(copied, items)
	return DataItems{
		Items: copied,
		Count: len(copied),
	}
}

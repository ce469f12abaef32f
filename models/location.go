package models

// Location is the control plane's geo-IP verdict about the client, used to
// preselect a nearby server.
type Location struct {
	Country string `json:"country"`
	City    string `json:"city"`
	IP      string `json:"ip"`
}

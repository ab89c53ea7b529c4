package models

// Location is an approximate device position in decimal degrees.
type Location struct {
	Latitude  float64
	Longitude float64
}

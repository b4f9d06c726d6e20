package models

// Coordinates is the {lat, long} object stores and orders carry.
type Coordinates struct {
	Lat  float64 `firestore:"lat" json:"lat"`
	Long float64 `firestore:"long" json:"long"`
}

package types

// ResolvedLocation is the result of geocoding a free-text place description.
// DisplayName carries the geocoder's full canonical address string.
type ResolvedLocation struct {
	Coordinates Coords `json:"coordinates"`
	DisplayName string `json:"display_name"`
}

package domain

// City is a referenced place that groups points of interest.
// Name is unique, as is the (Latitude, Longitude) pair.
type City struct {
	ID        int64
	Name      string
	Latitude  string
	Longitude string
	Picture   string
	User      *User
	Pois      []Poi
}

package domain

// Poi is a point of interest inside a city. Name, address, picture and
// the (Latitude, Longitude) pair are each unique. City and Type must
// resolve to stored rows, as must every tag.
type Poi struct {
	ID        int64
	Name      string
	Address   string
	Latitude  string
	Longitude string
	Picture   string
	City      *City
	Type      *Type
	Tags      []Tag
}

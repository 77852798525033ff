package domain

// Tag is a free label attached to points of interest. Name is unique,
// icon is optional.
type Tag struct {
	ID   int64
	Name string
	Icon string
}

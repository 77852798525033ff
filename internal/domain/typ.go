package domain

// Type categorizes points of interest. Name, logo and color are unique.
type Type struct {
	ID    int64
	Name  string
	Logo  string
	Color string
}

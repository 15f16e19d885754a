package models

// Flavor is a selectable rodízio option. Category is one of CategorySweet
// or CategorySavory.
type Flavor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Server is a member of the wait staff.
type Server struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Catalog holds the reference lists shared across all nights.
type Catalog struct {
	Flavors []Flavor `json:"flavors"`
	Servers []Server `json:"servers"`
}

package models

// MainCategory is the top level of the catalog hierarchy.
//
// ReactivateOn is an ISO date string; an entity with active=false and a
// ReactivateOn at or before now is treated as active on read, and the
// repository layer persists the flip (active=true, reactivateOn="").
type MainCategory struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Active       bool   `bson:"active" json:"active"`
	ReactivateOn string `bson:"reactivateOn,omitempty" json:"reactivateOn,omitempty"`
}

// Category belongs to a MainCategory.
type Category struct {
	ID             string `bson:"id" json:"id"`
	Name           string `bson:"name" json:"name"`
	MainCategoryID string `bson:"mainCategoryId" json:"mainCategoryId"`
	Active         bool   `bson:"active" json:"active"`
	ReactivateOn   string `bson:"reactivateOn,omitempty" json:"reactivateOn,omitempty"`
}

// Subcategory belongs to a Category. Subcategories have no reactivation
// grace: only the Active flag counts for visibility.
type Subcategory struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	CategoryID   string `bson:"categoryId" json:"categoryId"`
	Active       bool   `bson:"active" json:"active"`
	ReactivateOn string `bson:"reactivateOn,omitempty" json:"reactivateOn,omitempty"`
}

// Item is a sellable catalog entry. SubcategoryID and SubcategoryName are
// two historical addressing schemes for the same linkage; either may be
// set, and both must be consulted when resolving the item's subcategory.
type Item struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	CategoryID      string  `bson:"categoryId" json:"categoryId"`
	SubcategoryID   string  `bson:"subcategoryId,omitempty" json:"subcategoryId,omitempty"`
	SubcategoryName string  `bson:"subcategoryName,omitempty" json:"subcategoryName,omitempty"`
	Price           float64 `bson:"price" json:"price"`
	Description     string  `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL        string  `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Active          bool    `bson:"active" json:"active"`
	ReactivateOn    string  `bson:"reactivateOn,omitempty" json:"reactivateOn,omitempty"`
}

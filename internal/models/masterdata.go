package models

// Master-data item kinds.
const (
	MasterDataCategory  = "category"
	MasterDataTag       = "tag"
	MasterDataAttribute = "attribute"
)

// Category is one row of the categories tab.
type Category struct {
	ID           string
	Name         string
	Slug         string
	ProductCount int
	Status       string
}

// MasterDataItem is one row of the tags and attributes tabs.
type MasterDataItem struct {
	ID         string
	Type       string
	Name       string
	Code       string
	Status     string
	UsageCount int
}

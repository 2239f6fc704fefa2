package models

// Review is a single star rating with a comment left by a user for a brewery.
type Review struct {
	BreweryId     string `json:"BreweryId"`
	BreweryName   string `json:"BreweryName"`
	Stars         int    `json:"Stars"`
	Email         string `json:"Email"`
	ReviewComment string `json:"ReviewComment"`
}

// TableName returns the name of the database table
// associated with the Review model.
func (r Review) TableName() string {
	return "BreweryReviews"
}

package models

// UserLookupRequest carries the query parameters of GET /user.
type UserLookupRequest struct {
	// UserEmail is the value of the `userEmail` query parameter.
	UserEmail string
}

// UserRegisterRequest carries the query parameters of POST /user.
// Neither field is required; missing values are stored as empty strings.
type UserRegisterRequest struct {
	UserEmail string
	UserName  string
}

// ReviewFilter selects reviews either by author email or by brewery.
// When both are set, Email takes precedence.
type ReviewFilter struct {
	Email     string
	BreweryID string
}

// ByEmail reports whether the filter selects reviews by author email.
func (f ReviewFilter) ByEmail() bool {
	return f.Email != ""
}

// ReviewCreateRequest carries the query parameters of POST /reviews.
//
// Stars is kept as the raw parameter text so that presence, integer parsing
// and value checks can be told apart by the validator.
type ReviewCreateRequest struct {
	Stars         string
	ReviewComment string
	Email         string
	BreweryID     string
	BreweryName   string
}

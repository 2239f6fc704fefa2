package models

import "time"

// User is a registered reviewer of the brewery review app.
//
// JSON keys keep the column names of the reviewAppUsers table, which is the
// shape existing clients read from GET /user.
type User struct {
	// UserName is the display name supplied at registration.
	UserName string `json:"UserName"`

	// UserEmail is the lookup key for a user. It is not unique at the
	// storage level: duplicates are accepted and lookups return the first row.
	UserEmail string `json:"UserEmail"`

	// RegistrationDate is assigned by the server at insertion time.
	RegistrationDate time.Time `json:"RegistrationDate"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "reviewAppUsers"
}

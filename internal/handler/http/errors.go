// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Public response bodies. Clients match on these strings, so they must not change.
const (
	msgInvalidURL           = "Invalid URL"
	msgInvalidRequestMethod = "Invalid request method"
	msgRequestTimeout       = "Request timed out"

	msgUserEmailRequired    = "userEmail is required"
	msgUserNotFound         = "User not found"
	msgUserInserted         = "User data inserted successfully"
	msgReviewFilterRequired = "Email or BreweryId is required"
	msgReviewFieldsRequired = "Stars, Review Comment, Email, BreweryId, and BreweryName are required"
	msgReviewAdded          = "Review added successfully"

	msgReadFailed   = "Error reading data from the database"
	msgInsertFailed = "Error inserting data into the database"
)

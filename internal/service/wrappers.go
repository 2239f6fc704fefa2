package service

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging or validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// ReviewServiceWrapper defines middleware composition for ReviewService.
type ReviewServiceWrapper interface {
	Wrap(ReviewService) ReviewService
}

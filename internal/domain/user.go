package domain

// User is the caller identity supplied by the external auth layer.
// This service never creates or mutates users; it only reads them
// for author/owner display and consumes Id+Admin for visibility.
type User struct {
	Id          UserId
	Email       string
	DisplayName string
	Admin       bool
}

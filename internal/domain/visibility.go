package domain

// Visibility is the query-scoping policy derived from the caller:
// admins see every live submission, everyone else only their own.
// It is passed as a value into each storage query so the owner/admin
// branch lives in exactly one place per query instead of being
// re-derived ad hoc in every method.
type Visibility struct {
	UserId UserId
	Admin  bool
}

func (v Visibility) Unrestricted() bool {
	return v.Admin
}

// CanAccess reports whether the caller may see a submission owned by studentId.
func (v Visibility) CanAccess(studentId UserId) bool {
	return v.Admin || v.UserId == studentId
}

func VisibilityFor(u *User) Visibility {
	return Visibility{UserId: u.Id, Admin: u.Admin}
}

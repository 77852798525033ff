package domain

// User is an account. Username and email are unique. Password only
// carries the plaintext between validation and hashing; it is never
// persisted. HashedPassword is storage-only and never validated.
type User struct {
	ID             int64
	Username       string
	Email          string
	Password       string
	HashedPassword string
	Roles          []Role
}

// HasRole reports whether the user carries the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// Public returns a copy safe to hand to the transport layer: the
// password fields are stripped.
func (u *User) Public() *User {
	c := *u
	c.Password = ""
	c.HashedPassword = ""
	return &c
}

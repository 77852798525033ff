package domain

// Role names. SUPER_ADMIN unlocks the restricted mutations, USER is
// assigned to every new account when present in storage.
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleUser       = "USER"
)

// Role is an authorization group. Name is unique.
type Role struct {
	ID   int64
	Name string
}

package model

// Identity is the authenticated caller, resolved once by the auth middleware
// and passed explicitly into every operation.
type Identity struct {
	UserID uint
	Role   Role
}

func (i Identity) IsArtist() bool   { return i.Role == RoleArtist }
func (i Identity) IsCustomer() bool { return i.Role == RoleCustomer }

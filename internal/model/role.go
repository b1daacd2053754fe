package model

// Role identifies which registration operations a session may perform.
type Role string

const (
	RoleFarmer      Role = "farmer"
	RoleDistributor Role = "distributor"
	RoleRetailer    Role = "retailer"
	RoleConsumer    Role = "consumer"
)

// AllRoles lists every role the login form offers.
var AllRoles = []Role{RoleFarmer, RoleDistributor, RoleRetailer, RoleConsumer}

// ParseRole maps a raw login value to a known role.
func ParseRole(s string) (Role, bool) {
	for _, r := range AllRoles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

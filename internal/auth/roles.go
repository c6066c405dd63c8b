package auth

import "anylist/internal/model"

// HasAnyRole reports whether the user holds at least one of the required
// roles. An empty required set admits any authenticated user.
func HasAnyRole(user *model.User, required ...model.Role) bool {
	if len(required) == 0 {
		return true
	}
	if user == nil {
		return false
	}
	for _, have := range user.Roles {
		for _, want := range required {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Elevated reports whether the user may read and mutate across owners.
func Elevated(user *model.User) bool {
	return HasAnyRole(user, model.RoleAdmin, model.RoleSuperUser)
}

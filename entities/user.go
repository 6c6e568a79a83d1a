package entities

// User is the session identity as reported by the backend. Roles gate UI
// affordances only; authorization is enforced server-side.
type User struct {
	ID           string   `json:"_id"`
	Username     string   `json:"username"`
	StudentEmail string   `json:"studentEmail"`
	Residence    string   `json:"residence"`
	Roles        []string `json:"roles"`
}

func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

package domain

// Component is an installed extension that menu items can route to.
type Component struct {
	ID      int64  `json:"id"`
	Element string `json:"element"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// User is an account that content records are attributed to.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

package domain

// Roles allowed to write itineraries. Reads are public.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

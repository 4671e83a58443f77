package service

// Actor identifies the authenticated principal performing a mutation.
type Actor struct {
	ID   uint
	Role string
}

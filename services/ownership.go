package services

// Owned is any resource that belongs to a single user.
type Owned interface {
	OwnerID() uint
}

// CanMutate is the one authorization rule beyond "is authenticated": a
// principal may mutate or delete a resource only if it owns it. Every owned
// resource type goes through this check rather than re-deriving it.
func CanMutate(principalID uint, resource Owned) bool {
	return resource.OwnerID() == principalID
}

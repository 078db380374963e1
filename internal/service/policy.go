package service

// owned is implemented by every entity with a single owner.
type owned interface {
	OwnerID() int64
}

// authorize returns [ErrForbidden] unless requesterID owns entity.
func authorize(entity owned, requesterID int64) error {
	if entity.OwnerID() != requesterID {
		return ErrForbidden
	}
	return nil
}

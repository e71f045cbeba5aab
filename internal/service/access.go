// Package service implements the application's domain logic on top of the
// repository layer. Identity is always an explicit user or artist ID threaded
// through inputs; 0 means anonymous.
package service

import "chorus/internal/models"

// requireOwnerArtist enforces the mutate rule: only the owning artist may
// change a resource. Unauthenticated requesters get 401, everyone else 403.
func requireOwnerArtist(requesterArtistID, ownerArtistID uint) error {
	if requesterArtistID == 0 {
		return models.NewUnauthorizedError("Authentication required")
	}
	if requesterArtistID != ownerArtistID {
		return models.NewForbiddenError("You do not own this resource")
	}
	return nil
}

// requireOwnerUser is the same rule keyed on user identity.
func requireOwnerUser(requesterUserID, ownerUserID uint) error {
	if requesterUserID == 0 {
		return models.NewUnauthorizedError("Authentication required")
	}
	if requesterUserID != ownerUserID {
		return models.NewForbiddenError("You do not own this resource")
	}
	return nil
}

// notFoundIfHidden converts a failed visibility check into a 404 so that
// hidden resources are indistinguishable from absent ones.
func notFoundIfHidden(visible bool, resource string) error {
	if visible {
		return nil
	}
	return models.NewNotFoundError(resource)
}

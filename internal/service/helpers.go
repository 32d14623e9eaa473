package service

import "github.com/unistack-app/unistack/internal/apperr"

// remapOwnership swaps the guard's generic messages for the
// entity-specific ones the API answers with.
func remapOwnership(err error, notFoundMsg, forbiddenMsg string) error {
	switch apperr.KindOf(err) {
	case apperr.NotFound:
		return apperr.New(apperr.NotFound, notFoundMsg)
	case apperr.Forbidden:
		return apperr.New(apperr.Forbidden, forbiddenMsg)
	default:
		return err
	}
}

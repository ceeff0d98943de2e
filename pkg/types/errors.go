package types

import "errors"

var (
	ErrVillagerNotFound   = errors.New("villager not found")
	ErrOfficialNotFound   = errors.New("official not found")
	ErrContractorNotFound = errors.New("contractor not found")
	ErrComplaintNotFound  = errors.New("complaint not found")
	ErrSchemeNotFound     = errors.New("scheme not found")
	ErrProposalNotFound   = errors.New("proposal not found or already processed")
	ErrDiscussionNotFound = errors.New("discussion not found")
	ErrUserNotFound       = errors.New("user not found")

	ErrInvalidID   = errors.New("invalid id format")
	ErrPhoneTaken  = errors.New("a villager with this phone number already exists")
	ErrBadPhone    = errors.New("phone number must be exactly 10 digits")
	ErrBadLogin    = errors.New("invalid credentials")
	ErrNotOfficial = errors.New("only government officials can perform this action")

	// Complaint lifecycle guards.
	ErrVillageMismatch     = errors.New("complaint belongs to another village")
	ErrPhoneMismatch       = errors.New("complaint belongs to another villager")
	ErrResolveWindowClosed = errors.New("complaint has exceeded 14 days and is migrated to higher officials")
	ErrNotReopenable       = errors.New("only resolved complaints can be reopened")
)

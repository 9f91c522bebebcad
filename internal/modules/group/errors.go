package group

import "errors"

var (
	ErrNameRequired  = errors.New("group name required")
	ErrEmailRequired = errors.New("member email required")
	ErrGroupNotFound = errors.New("group not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrMemberNotFound = errors.New("member not found in group")
	ErrAlreadyMember = errors.New("user already in group")
)

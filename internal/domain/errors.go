package domain

import "errors"

var (
	// ErrUnregisteredUser is returned when a user has no stored profile
	ErrUnregisteredUser = errors.New("user has not registered a program and semester")
	// ErrEmptyCatalogEntry is returned when a profile resolves to no classes
	ErrEmptyCatalogEntry = errors.New("no classes configured for program and semester")
	// ErrInvalidProfile is returned for a program or semester outside the catalog
	ErrInvalidProfile = errors.New("invalid program or semester")
)

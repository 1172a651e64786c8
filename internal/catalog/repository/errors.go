package repository

import "errors"

var (
	ErrUnauthorized      = errors.New("backend rejected credentials")
	ErrFailedToFetch     = errors.New("failed to fetch records")
	ErrFailedToDecode    = errors.New("failed to decode records")
	ErrFailedToObtainJWT = errors.New("failed to obtain backend token")
)

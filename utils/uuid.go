package utils

import "github.com/google/uuid"

// GenerateID mints the opaque identifier used for auction, bid and user rows
func GenerateID() string {
	return uuid.NewString()
}

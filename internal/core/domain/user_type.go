package domain

import (
	"errors"
	"strings"
)

// UserType names the role that owns a route.
type UserType string

const (
	UserStudent UserType = "student"
	UserFaculty UserType = "faculty"
)

var ErrUnknownUserType = errors.New("unknown user type")

// ParseUserType accepts a role name in any case.
func ParseUserType(s string) (UserType, error) {
	switch ut := UserType(strings.ToLower(strings.TrimSpace(s))); ut {
	case UserStudent, UserFaculty:
		return ut, nil
	}
	return "", ErrUnknownUserType
}

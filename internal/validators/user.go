package validators

import (
	"context"

	"github.com/MKhiriev/brew-review/models"
)

// FieldUserEmail targets the userEmail query parameter of GET /user.
const FieldUserEmail = "user_email"

// UserValidator validates user lookup requests.
//
// Registration requests are deliberately not validated: a missing name or
// email is stored as an empty string.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserLookupRequest:
		return v.validateLookup(ctx, value, fields...)
	case *models.UserLookupRequest:
		return v.validateLookup(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateLookup(_ context.Context, request models.UserLookupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldUserEmail:
			if request.UserEmail == "" {
				return ErrEmptyUserEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

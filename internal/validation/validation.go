// Package validation holds the request validators for the auth and
// review DTOs. Each validator is a pure function from a DTO to an
// ordered list of structured errors; all failures for a submission are
// collected rather than short-circuited, and Join turns them into the
// single combined message surfaced to clients.
package validation

import "strings"

// Kind tags one class of validation failure.
type Kind string

const (
	KindUsernameRequired      Kind = "USERNAME_REQUIRED"
	KindEmailRequired         Kind = "EMAIL_REQUIRED"
	KindInvalidEmail          Kind = "INVALID_EMAIL"
	KindPasswordRequired      Kind = "PASSWORD_REQUIRED"
	KindWeakPassword          Kind = "WEAK_PASSWORD"
	KindMechanicIDRequired    Kind = "MECHANIC_ID_REQUIRED"
	KindCommentRequired       Kind = "COMMENT_REQUIRED"
	KindInvalidRating         Kind = "INVALID_RATING"
	KindInvalidPriceRating    Kind = "INVALID_PRICE_RATING"
	KindInvalidQualityRating  Kind = "INVALID_QUALITY_RATING"
	KindInvalidServiceRating  Kind = "INVALID_SERVICE_RATING"
	KindInvalidPricePaid      Kind = "INVALID_PRICE_PAID"
)

// Error is a single validation failure: the kind it belongs to and a
// human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e Error) Error() string { return e.Message }

// Join flattens a list of validation errors into one combined message.
func Join(errs []Error) string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, ", ")
}

package validation

import (
	"strings"

	"github.com/openwrench/mechanic-review/internal/model"
)

func ratingInRange(r int) bool { return r >= 1 && r <= 5 }

// ValidateCreateReview collects all failures for a new review. The
// overall rating is required; the price/quality/service sub-ratings and
// pricePaid are checked only when present.
func ValidateCreateReview(dto model.Review) []Error {
	var errs []Error
	if strings.TrimSpace(dto.MechanicID) == "" {
		errs = append(errs, Error{Kind: KindMechanicIDRequired, Message: "Mechanic ID is required"})
	}
	if !ratingInRange(dto.Rating) {
		errs = append(errs, Error{Kind: KindInvalidRating, Message: "Rating must be between 1 and 5"})
	}
	if strings.TrimSpace(dto.Comment) == "" {
		errs = append(errs, Error{Kind: KindCommentRequired, Message: "Comment is required"})
	}
	errs = append(errs, subRatingErrors(dto.PriceRating, dto.QualityRating, dto.ServiceRating)...)
	if dto.PricePaid != nil && *dto.PricePaid <= 0 {
		errs = append(errs, Error{Kind: KindInvalidPricePaid, Message: "Price paid must be a positive number"})
	}
	return errs
}

// ValidateUpdateReview validates a partial review update. Every field
// is optional; present fields follow the same rules as on create.
func ValidateUpdateReview(dto model.UpdateReview) []Error {
	var errs []Error
	if dto.Rating != nil && !ratingInRange(*dto.Rating) {
		errs = append(errs, Error{Kind: KindInvalidRating, Message: "Rating must be between 1 and 5"})
	}
	if dto.Comment != nil && strings.TrimSpace(*dto.Comment) == "" {
		errs = append(errs, Error{Kind: KindCommentRequired, Message: "Comment is required"})
	}
	errs = append(errs, subRatingErrors(dto.PriceRating, dto.QualityRating, dto.ServiceRating)...)
	if dto.PricePaid != nil && *dto.PricePaid <= 0 {
		errs = append(errs, Error{Kind: KindInvalidPricePaid, Message: "Price paid must be a positive number"})
	}
	return errs
}

func subRatingErrors(price, quality, service *int) []Error {
	var errs []Error
	if price != nil && !ratingInRange(*price) {
		errs = append(errs, Error{Kind: KindInvalidPriceRating, Message: "Price rating must be between 1 and 5"})
	}
	if quality != nil && !ratingInRange(*quality) {
		errs = append(errs, Error{Kind: KindInvalidQualityRating, Message: "Quality rating must be between 1 and 5"})
	}
	if service != nil && !ratingInRange(*service) {
		errs = append(errs, Error{Kind: KindInvalidServiceRating, Message: "Service rating must be between 1 and 5"})
	}
	return errs
}

package dto

// CreateRatingRequest is the body for submitting a new venue rating.
type CreateRatingRequest struct {
	FutsalID int64   `json:"futsal_id" validate:"required,gt=0"`
	Rating   float64 `json:"rating"    validate:"required,gte=1,lte=5"`
	Comment  string  `json:"comment"   validate:"omitempty,max=500"`
}

// UpdateRatingRequest is the body for revising an existing rating.
type UpdateRatingRequest struct {
	Rating  float64 `json:"rating"  validate:"required,gte=1,lte=5"`
	Comment string  `json:"comment" validate:"omitempty,max=500"`
}

type RatingResponse struct {
	ID       int64   `json:"id"`
	FutsalID int64   `json:"futsal_id"`
	Rating   float64 `json:"rating"`
	Comment  string  `json:"comment,omitempty"`
	Message  string  `json:"message"`
}

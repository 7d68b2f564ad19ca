package dto

import (
	"github.com/ademsari/coursehub/internal/app/models"
)

// ReviewResponse represents review information
type ReviewResponse struct {
	ID        int64  `json:"id"`
	CourseID  int64  `json:"courseId"`
	StudentID int64  `json:"studentId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// CreateReviewRequest represents review creation data.
// Rating is bounded here and again by the database constraint.
type CreateReviewRequest struct {
	CourseID  int64  `json:"courseId" binding:"required"`
	StudentID int64  `json:"studentId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// ReviewListResponse represents a paginated list of reviews
type ReviewListResponse struct {
	Reviews    []ReviewResponse `json:"reviews"`
	Pagination PaginationInfo   `json:"pagination"`
}

// ReviewStatisticsResponse represents aggregates over all review ratings
type ReviewStatisticsResponse struct {
	AverageRating *float64 `json:"averageRating"`
	MinRating     *int     `json:"minRating"`
	MaxRating     *int     `json:"maxRating"`
	TotalRating   *int     `json:"totalRating"`
}

// FromReview converts a models.Review to a ReviewResponse
func FromReview(r *models.Review) ReviewResponse {
	if r == nil {
		return ReviewResponse{}
	}
	return ReviewResponse{
		ID:        r.ID,
		CourseID:  r.CourseID,
		StudentID: r.StudentID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

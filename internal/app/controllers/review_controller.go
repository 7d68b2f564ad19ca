package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ademsari/coursehub/internal/app/models/dto"
	"github.com/ademsari/coursehub/internal/app/services"
	"github.com/ademsari/coursehub/internal/middleware"
	"github.com/ademsari/coursehub/internal/pkg/helpers"
)

// ReviewController handles course review operations
type ReviewController struct {
	reviewService services.ReviewService
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviewService services.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// CreateReview handles review creation
// @Summary Create a review
// @Description Creates a review for a course the student is enrolled in and notifies the instructor
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateReviewRequest true "Review information"
// @Success 201 {object} dto.APIResponse{data=dto.ReviewResponse} "Review created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or student not enrolled"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Writes require an admin account"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Student has already reviewed this course"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews [post]
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	var req dto.CreateReviewRequest
	if !middleware.BindJSON(ctx, &req, "Invalid review data") {
		return
	}

	review, err := c.reviewService.CreateReview(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromReview(review),
		Timestamp: time.Now(),
	})
}

// GetReviewByID retrieves a review by ID
// @Summary Get review details
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ReviewResponse} "Review retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Router /reviews/{id} [get]
func (c *ReviewController) GetReviewByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	review, err := c.reviewService.GetReviewByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromReview(review),
		Timestamp: time.Now(),
	})
}

// GetAllReviews retrieves a page of reviews
// @Summary Get all reviews
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page number" default(1)
// @Param size query int false "Page size" default(5) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.ReviewListResponse} "Reviews retrieved successfully"
// @Router /reviews [get]
func (c *ReviewController) GetAllReviews(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	reviews, total, err := c.reviewService.GetAllReviews(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, dto.FromReview(review))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ReviewListResponse{
			Reviews:    items,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// GetRecentReviews retrieves reviews matching the recent filter
// @Summary Get recent reviews
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ReviewResponse} "Reviews retrieved successfully"
// @Router /reviews/recent [get]
func (c *ReviewController) GetRecentReviews(ctx *gin.Context) {
	reviews, err := c.reviewService.GetRecentReviews(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, dto.FromReview(review))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      items,
		Timestamp: time.Now(),
	})
}

// GetReviewStatistics retrieves aggregate rating statistics across all reviews
// @Summary Get global review statistics
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ReviewStatisticsResponse} "Statistics retrieved successfully"
// @Router /reviews/statistics [get]
func (c *ReviewController) GetReviewStatistics(ctx *gin.Context) {
	stats, err := c.reviewService.GetReviewStatistics(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ReviewStatisticsResponse{
			AverageRating: stats.Average,
			MinRating:     stats.Min,
			MaxRating:     stats.Max,
			TotalRating:   stats.Sum,
		},
		Timestamp: time.Now(),
	})
}

// DeleteReview deletes a review by ID
// @Summary Delete a review
// @Description Deletes the review and notifies the course's instructor
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse "Review deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Router /reviews/{id} [delete]
func (c *ReviewController) DeleteReview(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.reviewService.DeleteReview(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Review deleted successfully"})
}

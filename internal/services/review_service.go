package services

import (
	"database/sql"
	"errors"
	"strings"

	"bubblycrochet/internal/domain"
	"bubblycrochet/internal/repos"

	"github.com/google/uuid"
)

var ErrAlreadyReviewed = errors.New("you have already reviewed this product")

type ReviewService struct {
	Reviews *repos.ReviewRepo
}

func NewReviewService(reviews *repos.ReviewRepo) *ReviewService {
	return &ReviewService{Reviews: reviews}
}

func (s *ReviewService) ListByProduct(productID string) ([]domain.Review, error) {
	return s.Reviews.ListByProduct(productID)
}

// Create enforces one review per (product, user). The unique index is the
// backstop; the pre-check exists to return the friendly error instead of a
// raw constraint message.
func (s *ReviewService) Create(user *domain.User, productID string, rating int, comment string) (domain.Review, error) {
	exists, err := s.Reviews.Exists(productID, user.ID)
	if err != nil {
		return domain.Review{}, err
	}
	if exists {
		return domain.Review{}, ErrAlreadyReviewed
	}

	rev := domain.Review{
		ID:        uuid.NewString(),
		ProductID: productID,
		UserID:    user.ID,
		UserName:  user.Name,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.Reviews.Create(&rev); err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return domain.Review{}, ErrAlreadyReviewed
		}
		return domain.Review{}, err
	}
	return s.Reviews.Get(rev.ID)
}

// Update is author-only.
func (s *ReviewService) Update(user *domain.User, id string, rating int, comment string) (domain.Review, error) {
	rev, err := s.Reviews.Get(id)
	if err == sql.ErrNoRows {
		return domain.Review{}, ErrNotFound
	}
	if err != nil {
		return domain.Review{}, err
	}
	if rev.UserID != user.ID {
		return domain.Review{}, ErrNotOwner
	}
	if err := s.Reviews.Update(id, rating, comment); err != nil {
		return domain.Review{}, err
	}
	return s.Reviews.Get(id)
}

// Delete is allowed for the author or an admin.
func (s *ReviewService) Delete(user *domain.User, id string) error {
	rev, err := s.Reviews.Get(id)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if rev.UserID != user.ID && !user.IsAdmin() {
		return ErrNotOwner
	}
	return s.Reviews.Delete(id)
}

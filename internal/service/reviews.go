package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avc/repairhub/internal/domain"
	"go.uber.org/zap"
)

// ReviewService реализует domain.ReviewService.
// Отзыв оставляет клиент-владелец завершенной заявки, по одному на заявку.
type ReviewService struct {
	store    domain.Store
	notifier domain.Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewReviewService создает новый ReviewService
func NewReviewService(store domain.Store, notifier domain.Notifier, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateReview создает отзыв о технике, выполнившем заявку.
// Заявка блокируется, поэтому параллельные отзывы на нее выполняются по очереди.
func (s *ReviewService) CreateReview(ctx context.Context, actor domain.Actor, in domain.ReviewInput) (*domain.Review, error) {
	if err := actor.Require(domain.RoleCustomer); err != nil {
		return nil, err
	}
	if in.ServiceRequestID <= 0 {
		return nil, domain.InvalidInputf("service request is required")
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var review *domain.Review
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		sr, err := repos.ServiceRequests().GetServiceRequestForUpdate(ctx, in.ServiceRequestID)
		if err != nil {
			return err
		}
		if !actor.OwnsRequest(sr) {
			return domain.ErrForbidden
		}
		if sr.Status != domain.StatusCompleted || sr.TechnicianID == nil {
			return domain.InvalidStatef("only completed requests can be reviewed")
		}
		if in.TechnicianID != 0 && in.TechnicianID != *sr.TechnicianID {
			return domain.InvalidInputf("technician %d did not work on request %d", in.TechnicianID, sr.ID)
		}

		review = &domain.Review{
			ServiceRequestID: sr.ID,
			CustomerID:       actor.UserID,
			TechnicianID:     *sr.TechnicianID,
			Rating:           in.Rating,
			Comment:          strings.TrimSpace(in.Comment),
		}
		return repos.Reviews().CreateReview(ctx, review)
	})
	if err != nil {
		return nil, wrapErr(err, "review service: failed to create review for request %d", in.ServiceRequestID)
	}

	s.logger.Info("review posted",
		zap.Int64("review_id", review.ID),
		zap.Int64("request_id", review.ServiceRequestID),
		zap.Int64("technician_id", review.TechnicianID),
		zap.Int("rating", review.Rating),
	)
	notify(ctx, s.notifier, domain.NotificationReviewPosted, review.TechnicianID, review.ServiceRequestID,
		fmt.Sprintf("New %d-star review for service request #%d", review.Rating, review.ServiceRequestID))

	return review, nil
}

// GetReview возвращает отзыв. Отзывы видны всем аутентифицированным пользователям.
func (s *ReviewService) GetReview(ctx context.Context, actor domain.Actor, id int64) (*domain.Review, error) {
	rv, err := s.store.Reviews().GetReview(ctx, id)
	if err != nil {
		return nil, wrapErr(err, "review service: failed to get review %d", id)
	}
	return rv, nil
}

// UpdateReview меняет оценку и комментарий. Менять отзыв может только его автор.
func (s *ReviewService) UpdateReview(ctx context.Context, actor domain.Actor, id int64, in domain.ReviewInput) (*domain.Review, error) {
	if err := actor.Require(domain.RoleCustomer); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Review
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		rv, err := repos.Reviews().GetReviewForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if rv.CustomerID != actor.UserID {
			return domain.ErrForbidden
		}
		if in.ServiceRequestID != 0 && in.ServiceRequestID != rv.ServiceRequestID {
			return domain.InvalidInputf("review cannot be moved to another service request")
		}
		if in.TechnicianID != 0 && in.TechnicianID != rv.TechnicianID {
			return domain.InvalidInputf("review cannot be moved to another technician")
		}

		rv.Rating = in.Rating
		rv.Comment = strings.TrimSpace(in.Comment)
		updated = rv
		return repos.Reviews().UpdateReview(ctx, rv)
	})
	if err != nil {
		return nil, wrapErr(err, "review service: failed to update review %d", id)
	}

	s.logger.Info("review updated", zap.Int64("review_id", id), zap.Int("rating", updated.Rating))
	return updated, nil
}

// DeleteReview удаляет отзыв. Удалить может автор или администратор.
func (s *ReviewService) DeleteReview(ctx context.Context, actor domain.Actor, id int64) error {
	if err := actor.Require(domain.RoleCustomer, domain.RoleAdmin); err != nil {
		return err
	}

	err := s.store.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		rv, err := repos.Reviews().GetReviewForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !actor.IsAdmin() && rv.CustomerID != actor.UserID {
			return domain.ErrForbidden
		}
		return repos.Reviews().DeleteReview(ctx, id)
	})
	if err != nil {
		return wrapErr(err, "review service: failed to delete review %d", id)
	}

	s.logger.Info("review deleted", zap.Int64("review_id", id), zap.Int64("user_id", actor.UserID))
	return nil
}

// ListForTechnician возвращает отзывы о технике, новые первыми
func (s *ReviewService) ListForTechnician(ctx context.Context, actor domain.Actor, technicianID int64) ([]*domain.Review, error) {
	if technicianID <= 0 {
		return nil, domain.InvalidInputf("technician id must be positive")
	}

	list, err := s.store.Reviews().ListReviewsByTechnician(ctx, technicianID)
	if err != nil {
		return nil, wrapErr(err, "review service: failed to list reviews for technician %d", technicianID)
	}
	return list, nil
}

// ListMine возвращает отзывы, оставленные клиентом
func (s *ReviewService) ListMine(ctx context.Context, actor domain.Actor) ([]*domain.Review, error) {
	if err := actor.Require(domain.RoleCustomer); err != nil {
		return nil, err
	}

	list, err := s.store.Reviews().ListReviewsByCustomer(ctx, actor.UserID)
	if err != nil {
		return nil, wrapErr(err, "review service: failed to list reviews for customer %d", actor.UserID)
	}
	return list, nil
}

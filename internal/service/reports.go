package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avc/repairhub/internal/domain"
	"go.uber.org/zap"
)

// ReportService реализует domain.ReportService
type ReportService struct {
	store    domain.Store
	notifier domain.Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewReportService создает новый ReportService
func NewReportService(store domain.Store, notifier domain.Notifier, logger *zap.Logger) *ReportService {
	return &ReportService{
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateReport прикрепляет отчет к завершенной заявке. Повторный отчет не перезаписывает первый.
func (s *ReportService) CreateReport(ctx context.Context, actor domain.Actor, requestID int64, in domain.ReportInput) (*domain.Report, error) {
	if err := actor.Require(domain.RoleTechnician); err != nil {
		return nil, err
	}

	var (
		report     *domain.Report
		customerID int64
	)
	err := s.store.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		sr, err := repos.ServiceRequests().GetServiceRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if !actor.AssignedTo(sr) {
			return domain.ErrForbidden
		}
		if err := sr.Apply(domain.EventFileReport); err != nil {
			return err
		}
		if err := in.Validate(s.now(), sr.CreatedAt); err != nil {
			return err
		}

		report = &domain.Report{
			ServiceRequestID:  sr.ID,
			TechnicianID:      actor.UserID,
			RepairDetails:     strings.TrimSpace(in.RepairDetails),
			ResolutionSummary: strings.TrimSpace(in.ResolutionSummary),
			CompletionDate:    in.CompletionDate,
		}
		customerID = sr.CustomerID

		return repos.ServiceRequests().CreateReport(ctx, report)
	})
	if err != nil {
		return nil, wrapErr(err, "report service: failed to create report for request %d", requestID)
	}

	s.logger.Info("report filed", zap.Int64("request_id", requestID), zap.Int64("report_id", report.ID))
	notify(ctx, s.notifier, domain.NotificationReportFiled, customerID, requestID,
		fmt.Sprintf("Repair report filed for service request #%d", requestID))

	return report, nil
}

// GetReport возвращает отчет заявки
func (s *ReportService) GetReport(ctx context.Context, actor domain.Actor, requestID int64) (*domain.Report, error) {
	sr, err := s.store.ServiceRequests().GetServiceRequest(ctx, requestID)
	if err != nil {
		return nil, wrapErr(err, "report service: failed to get request %d", requestID)
	}
	if !actor.CanView(sr) {
		return nil, domain.ErrForbidden
	}
	if sr.Report == nil {
		return nil, domain.ErrReportNotFound
	}
	return sr.Report, nil
}

// ListReports возвращает отчеты, поданные техником
func (s *ReportService) ListReports(ctx context.Context, actor domain.Actor) ([]*domain.Report, error) {
	if err := actor.Require(domain.RoleTechnician); err != nil {
		return nil, err
	}

	list, err := s.store.ServiceRequests().ListReportsByTechnician(ctx, actor.UserID)
	if err != nil {
		return nil, wrapErr(err, "report service: failed to list reports for technician %d", actor.UserID)
	}
	return list, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/domain/entity"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/platform/logger"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/repository"
)

type ModerationService interface {
	ReportProduct(ctx context.Context, report *entity.Report) (*repository.InsertResult, error)
	Reports(ctx context.Context) ([]entity.Report, error)
	DeleteReport(ctx context.Context, id string) (*repository.DeleteResult, error)
}

type moderationService struct {
	reportRepo repository.ReportRepository
	log        logger.Logger
}

func NewModerationService(reportRepo repository.ReportRepository, log logger.Logger) ModerationService {
	return &moderationService{reportRepo: reportRepo, log: log}
}

func (s *moderationService) ReportProduct(ctx context.Context, report *entity.Report) (*repository.InsertResult, error) {
	s.log.Infof("Reporting product %s by %s", report.ProductID, report.ReporterEmail)
	res, err := s.reportRepo.Create(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return res, nil
}

func (s *moderationService) Reports(ctx context.Context) ([]entity.Report, error) {
	return s.reportRepo.List(ctx)
}

func (s *moderationService) DeleteReport(ctx context.Context, id string) (*repository.DeleteResult, error) {
	s.log.Infof("Deleting report %s", id)
	res, err := s.reportRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete report: %w", err)
	}
	return res, nil
}

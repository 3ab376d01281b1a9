package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/records"
	"github.com/v-lavrov/RS-SchedulerService/internal/service/store/models"
)

// Service сервис экспорта, импорта и синхронизации хранилища
type Service struct {
	gateway Gateway
	logger  Logger
}

// NewService создает новый экземпляр сервиса хранилища
func NewService(gateway Gateway, logger Logger) *Service {
	return &Service{
		gateway: gateway,
		logger:  logger,
	}
}

// Export возвращает полный снимок хранилища
func (s *Service) Export(ctx context.Context) (*models.ExportResponse, error) {
	s.logger.Info("Export: exporting storage snapshot")

	snap, err := s.gateway.Export(ctx)
	if err != nil {
		s.logger.Error("Export: gateway error: %v", err)
		return nil, fmt.Errorf("%w: Export - gateway error: %v", ErrInternal, err)
	}

	s.logger.Info("Export: exported snapshot id=%s with %d records", snap.ID, snap.TotalRecords())
	return &models.ExportResponse{
		Snapshot: snap,
		Total:    snap.TotalRecords(),
	}, nil
}

// Import проигрывает записи снимка в хранилище.
// Частичный успех допустим: нечитаемые записи попадают в отчет
func (s *Service) Import(ctx context.Context, req *models.ImportRequest) (*models.ImportResponse, error) {
	if req.Snapshot == nil {
		s.logger.Warn("Import: snapshot is missing")
		return nil, fmt.Errorf("%w: snapshot is required", ErrInvalidSnapshot)
	}

	s.logger.Info("Import: importing snapshot id=%s with %d records",
		req.Snapshot.ID, req.Snapshot.TotalRecords())

	report, err := s.gateway.Import(ctx, req.Snapshot)
	if err != nil {
		if errors.Is(err, records.ErrInvalidSnapshot) {
			s.logger.Warn("Import: invalid snapshot: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
		s.logger.Error("Import: gateway error: %v", err)
		return nil, fmt.Errorf("%w: Import - gateway error: %v", ErrInternal, err)
	}

	s.logger.Info("Import: imported snapshot id=%s, %d errors", req.Snapshot.ID, len(report.Errors))
	return models.FromImportReport(report), nil
}

// Sync выталкивает локальный снимок на удаленный сервис и проигрывает
// обновления, пришедшие в ответ. Доступно только в remote-режиме
func (s *Service) Sync(ctx context.Context) (*models.SyncResponse, error) {
	s.logger.Info("Sync: starting synchronization")

	report, err := s.gateway.Sync(ctx)
	if err != nil {
		if errors.Is(err, records.ErrRemoteDisabled) {
			s.logger.Warn("Sync: remote mode is disabled")
			return nil, ErrRemoteDisabled
		}
		s.logger.Error("Sync: gateway error: %v", err)
		return nil, fmt.Errorf("%w: Sync - gateway error: %v", ErrInternal, err)
	}

	s.logger.Info("Sync: snapshot id=%s, pushed=%d, accepted=%d", report.SnapshotID, report.Pushed, report.Accepted)
	return models.FromSyncReport(report, time.Now().UTC()), nil
}

package models

import (
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/records"
)

// ExportResponse ответ с полным снимком хранилища
type ExportResponse struct {
	Snapshot *records.Snapshot `json:"snapshot"`
	Total    int               `json:"total"`
}

// ImportRequest запрос на импорт снимка
type ImportRequest struct {
	Snapshot *records.Snapshot `json:"snapshot"`
}

// ImportErrorResponse одна запись снимка, которую не удалось импортировать
type ImportErrorResponse struct {
	Table  string `json:"table"`
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

// ImportResponse отчет об импорте снимка
type ImportResponse struct {
	Imported map[string]int        `json:"imported"`
	Errors   []ImportErrorResponse `json:"errors,omitempty"`
}

// SyncResponse отчет о синхронизации с удаленным сервисом
type SyncResponse struct {
	SnapshotID string          `json:"snapshotId"`
	Pushed     int             `json:"pushed"`
	Accepted   int             `json:"accepted"`
	Updated    *ImportResponse `json:"updated,omitempty"`
	SyncedAt   time.Time       `json:"syncedAt"`
}

// Методы конвертации

// FromImportReport конвертирует отчет хранилища в DTO
func FromImportReport(report *records.ImportReport) *ImportResponse {
	resp := &ImportResponse{
		Imported: report.Imported,
		Errors:   make([]ImportErrorResponse, 0, len(report.Errors)),
	}

	for _, e := range report.Errors {
		resp.Errors = append(resp.Errors, ImportErrorResponse{
			Table:  e.Table,
			Key:    e.Key,
			Reason: e.Message,
		})
	}

	return resp
}

// FromSyncReport конвертирует отчет синхронизации в DTO
func FromSyncReport(report *records.SyncReport, syncedAt time.Time) *SyncResponse {
	resp := &SyncResponse{
		SnapshotID: report.SnapshotID,
		Pushed:     report.Pushed,
		Accepted:   report.Accepted,
		SyncedAt:   syncedAt,
	}
	if report.Updated != nil {
		resp.Updated = FromImportReport(report.Updated)
	}
	return resp
}

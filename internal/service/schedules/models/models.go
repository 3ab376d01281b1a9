package models

import (
	"fmt"
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	"github.com/v-lavrov/RS-SchedulerService/pkg/types"
)

// Request модели

// DayRuleRequest правило рабочего дня в запросе
type DayRuleRequest struct {
	Working bool    `json:"working"`
	Start   string  `json:"start,omitempty"` // "09:00"
	End     string  `json:"end,omitempty"`   // "18:00"
	Break   *string `json:"break,omitempty"` // "12:00-13:00"
}

// SaveTemplateRequest запрос на сохранение недельного шаблона расписания
type SaveTemplateRequest struct {
	MondayToFriday DayRuleRequest `json:"mondayToFriday"`
	Saturday       DayRuleRequest `json:"saturday"`
	Sunday         DayRuleRequest `json:"sunday"`
}

// ToDomainQuickSchedule конвертирует запрос в domain модель
func (r *SaveTemplateRequest) ToDomainQuickSchedule() (*domain.QuickSchedule, error) {
	mtf, err := toDayRule(r.MondayToFriday)
	if err != nil {
		return nil, fmt.Errorf("mondayToFriday: %v", err)
	}
	sat, err := toDayRule(r.Saturday)
	if err != nil {
		return nil, fmt.Errorf("saturday: %v", err)
	}
	sun, err := toDayRule(r.Sunday)
	if err != nil {
		return nil, fmt.Errorf("sunday: %v", err)
	}

	return &domain.QuickSchedule{
		MondayToFriday: *mtf,
		Saturday:       *sat,
		Sunday:         *sun,
	}, nil
}

func toDayRule(r DayRuleRequest) (*domain.DayRule, error) {
	if !r.Working {
		return &domain.DayRule{Working: false}, nil
	}

	start, err := types.NewTimeStringFromString(r.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start: %v", err)
	}
	end, err := types.NewTimeStringFromString(r.End)
	if err != nil {
		return nil, fmt.Errorf("invalid end: %v", err)
	}

	rule := &domain.DayRule{Working: true, Start: start, End: end}

	if r.Break != nil && *r.Break != "" {
		br, err := domain.ParseBreakRange(*r.Break)
		if err != nil {
			return nil, err
		}
		rule.Break = br
	}

	return rule, nil
}

// Response модели

// DayRuleResponse правило рабочего дня в ответе
type DayRuleResponse struct {
	Working bool    `json:"working"`
	Start   string  `json:"start,omitempty"`
	End     string  `json:"end,omitempty"`
	Break   *string `json:"break,omitempty"`
}

// TemplateResponse ответ с шаблоном расписания
type TemplateResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employeeId"`
	Type           string          `json:"type"`
	MondayToFriday DayRuleResponse `json:"mondayToFriday"`
	Saturday       DayRuleResponse `json:"saturday"`
	Sunday         DayRuleResponse `json:"sunday"`
	IsActive       bool            `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DayScheduleResponse ответ с эффективным рабочим окном на дату
type DayScheduleResponse struct {
	EmployeeID string  `json:"employeeId"`
	Date       string  `json:"date"` // "2026-04-15"
	Working    bool    `json:"working"`
	Start      string  `json:"start,omitempty"`
	End        string  `json:"end,omitempty"`
	Break      *string `json:"break,omitempty"`
}

// Методы конвертации

// FromDomainTemplate конвертирует domain модель в DTO
func FromDomainTemplate(t *domain.ScheduleTemplate) *TemplateResponse {
	if t == nil {
		return nil
	}

	return &TemplateResponse{
		ID:             t.ID,
		EmployeeID:     t.EmployeeID,
		Type:           t.Type,
		MondayToFriday: fromDayRule(t.Data.QuickSchedule.MondayToFriday),
		Saturday:       fromDayRule(t.Data.QuickSchedule.Saturday),
		Sunday:         fromDayRule(t.Data.QuickSchedule.Sunday),
		IsActive:       t.IsActive,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func fromDayRule(r domain.DayRule) DayRuleResponse {
	resp := DayRuleResponse{Working: r.Working}
	if !r.Working {
		return resp
	}

	resp.Start = r.Start.String()
	resp.End = r.End.String()
	if r.Break != nil {
		br := r.Break.String()
		resp.Break = &br
	}
	return resp
}

// FromWorkWindow конвертирует рабочее окно в DTO
func FromWorkWindow(employeeID string, date time.Time, window *domain.WorkWindow, working bool) *DayScheduleResponse {
	resp := &DayScheduleResponse{
		EmployeeID: employeeID,
		Date:       date.Format(domain.DateFormat),
		Working:    working,
	}

	if working && window != nil {
		resp.Start = window.Start.String()
		resp.End = window.End.String()
		if window.Break != nil {
			br := window.Break.String()
			resp.Break = &br
		}
	}

	return resp
}

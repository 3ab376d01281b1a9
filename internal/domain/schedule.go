package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/v-lavrov/RS-SchedulerService/pkg/types"
)

// ScheduleTemplateType тип шаблона расписания
const ScheduleTemplateTypeWeekly = "weekly"

// BreakRange обеденный перерыв внутри рабочего окна.
// На проводе сериализуется строкой "HH:MM-HH:MM".
type BreakRange struct {
	Start types.TimeString
	End   types.TimeString
}

// ParseBreakRange парсит строку вида "12:00-13:00"
func ParseBreakRange(s string) (*BreakRange, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid break range format: %q (expected HH:MM-HH:MM)", s)
	}

	start, err := types.NewTimeStringFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid break start: %v", err)
	}
	end, err := types.NewTimeStringFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid break end: %v", err)
	}
	if !start.IsBefore(end) {
		return nil, fmt.Errorf("invalid break range %q: start must be before end", s)
	}

	return &BreakRange{Start: start, End: end}, nil
}

// Contains returns true if t falls inside [Start, End)
func (b *BreakRange) Contains(t types.TimeString) bool {
	return !t.IsBefore(b.Start) && t.IsBefore(b.End)
}

// String returns the wire representation "HH:MM-HH:MM"
func (b *BreakRange) String() string {
	return b.Start.String() + "-" + b.End.String()
}

// MarshalJSON сериализует перерыв строкой "HH:MM-HH:MM"
func (b BreakRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON парсит перерыв из строки "HH:MM-HH:MM"
func (b *BreakRange) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseBreakRange(s)
	if err != nil {
		return err
	}
	*b = *parsed
	return nil
}

// DayRule правило рабочего дня для группы дней недели
type DayRule struct {
	Working bool             `json:"working"`
	Start   types.TimeString `json:"start,omitempty"`
	End     types.TimeString `json:"end,omitempty"`
	Break   *BreakRange      `json:"break,omitempty"`
}

// Validate проверяет инварианты правила: start < end для рабочего дня,
// перерыв целиком внутри [start, end)
func (r *DayRule) Validate() error {
	if !r.Working {
		return nil
	}
	if err := r.Start.Validate(); err != nil {
		return fmt.Errorf("day rule start: %v", err)
	}
	if err := r.End.Validate(); err != nil {
		return fmt.Errorf("day rule end: %v", err)
	}
	if !r.Start.IsBefore(r.End) {
		return fmt.Errorf("day rule: start %s must be before end %s", r.Start, r.End)
	}
	if r.Break != nil {
		if r.Break.Start.IsBefore(r.Start) || r.Break.End.IsAfter(r.End) {
			return fmt.Errorf("day rule: break %s must lie within working hours %s-%s",
				r.Break, r.Start, r.End)
		}
	}
	return nil
}

// QuickSchedule три группы правил недельного шаблона
type QuickSchedule struct {
	MondayToFriday DayRule `json:"mondayToFriday"`
	Saturday       DayRule `json:"saturday"`
	Sunday         DayRule `json:"sunday"`
}

// TemplateData содержимое шаблона расписания
type TemplateData struct {
	QuickSchedule QuickSchedule `json:"quickSchedule"`
}

// ScheduleTemplate недельный шаблон рабочих часов сотрудника.
// Для каждого сотрудника хранится последний активный шаблон.
type ScheduleTemplate struct {
	ID         string       `json:"id"`
	EmployeeID string       `json:"employeeId"`
	Type       string       `json:"type"`
	Data       TemplateData `json:"data"`
	IsActive   bool         `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate проверяет шаблон целиком
func (t *ScheduleTemplate) Validate() error {
	if t.EmployeeID == "" {
		return fmt.Errorf("schedule template: employeeId is required")
	}
	if t.Type != ScheduleTemplateTypeWeekly {
		return fmt.Errorf("schedule template: unsupported type %q", t.Type)
	}
	if err := t.Data.QuickSchedule.MondayToFriday.Validate(); err != nil {
		return fmt.Errorf("mondayToFriday: %v", err)
	}
	if err := t.Data.QuickSchedule.Saturday.Validate(); err != nil {
		return fmt.Errorf("saturday: %v", err)
	}
	if err := t.Data.QuickSchedule.Sunday.Validate(); err != nil {
		return fmt.Errorf("sunday: %v", err)
	}
	return nil
}

// WorkWindow эффективное рабочее окно сотрудника на конкретную дату
type WorkWindow struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
	Break *BreakRange      `json:"break,omitempty"`
}

// ContainsTime returns true if t falls inside [Start, End)
func (w *WorkWindow) ContainsTime(t types.TimeString) bool {
	return !t.IsBefore(w.Start) && t.IsBefore(w.End)
}

// OnBreak returns true if t falls inside the break range
func (w *WorkWindow) OnBreak(t types.TimeString) bool {
	return w.Break != nil && w.Break.Contains(t)
}

package schedule

import (
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
)

// ResolveWorkWindow возвращает эффективное рабочее окно сотрудника на дату.
// Чистая функция от (шаблон, дата): день недели отображается в одну из трёх
// групп правил (Пн-Пт, Сб, Вс). Отсутствующий или неактивный шаблон, как и
// нерабочий день, дают (nil, false) - сотрудник не работает, слоты
// недоступны для бронирования.
func ResolveWorkWindow(tpl *domain.ScheduleTemplate, date time.Time) (*domain.WorkWindow, bool) {
	if tpl == nil || !tpl.IsActive {
		return nil, false
	}

	rule := dayRuleFor(tpl, date)
	if !rule.Working {
		return nil, false
	}

	return &domain.WorkWindow{
		Start: rule.Start,
		End:   rule.End,
		Break: rule.Break,
	}, true
}

// dayRuleFor возвращает правило группы дней для даты
func dayRuleFor(tpl *domain.ScheduleTemplate, date time.Time) domain.DayRule {
	switch date.Weekday() {
	case time.Saturday:
		return tpl.Data.QuickSchedule.Saturday
	case time.Sunday:
		return tpl.Data.QuickSchedule.Sunday
	default:
		return tpl.Data.QuickSchedule.MondayToFriday
	}
}

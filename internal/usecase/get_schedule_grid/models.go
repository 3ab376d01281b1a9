package get_schedule_grid

import (
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	"github.com/v-lavrov/RS-SchedulerService/pkg/types"
)

// Request модель запроса сетки расписания на день
type Request struct {
	Date        time.Time // Дата, на которую строится сетка
	EmployeeIDs []string  // Пустой список - все активные сотрудники
}

// Response сетка расписания: общие метки времени и строка на каждого сотрудника
type Response struct {
	Date   time.Time          // Дата сетки
	Labels []types.TimeString // Метки визуальной сетки (одинаковы для всех строк)
	Rows   []EmployeeRow      // Строки по сотрудникам
}

// EmployeeRow строка сетки одного сотрудника
type EmployeeRow struct {
	EmployeeID   string            // Идентификатор сотрудника
	EmployeeName string            // Отображаемое имя
	Working      bool              // Работает ли сотрудник в этот день
	Cells        []domain.GridCell // Ячейка на каждую метку сетки
}

package create_booking

import (
	"time"

	"github.com/v-lavrov/RS-SchedulerService/pkg/types"
)

// Request модель запроса на создание заявки
type Request struct {
	EmployeeID        string           // ID сотрудника
	ClientName        string           // Имя клиента
	ClientPhone       string           // Телефон клиента
	ServiceType       string           // Тип услуги
	DeviceType        string           // Тип устройства
	Description       *string          // Описание проблемы (опционально)
	AddressStreet     *string          // Улица (опционально)
	AddressHouse      *string          // Дом (опционально)
	AddressApartment  *string          // Квартира (опционально)
	Date              time.Time        // Дата визита (без времени)
	ScheduledTime     types.TimeString // Время начала визита (например, "10:00")
	EstimatedDuration int              // Оценка длительности в минутах
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID                string           // ID созданной заявки
	EmployeeID        string           // ID сотрудника
	ClientName        string           // Имя клиента
	ClientPhone       string           // Телефон клиента
	ServiceType       string           // Тип услуги
	DeviceType        string           // Тип устройства
	Description       *string          // Описание проблемы
	AddressStreet     *string          // Улица
	AddressHouse      *string          // Дом
	AddressApartment  *string          // Квартира
	ScheduledDate     time.Time        // Дата визита
	ScheduledTime     types.TimeString // Время начала
	EstimatedDuration int              // Длительность в минутах
	Status            string           // Статус заявки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

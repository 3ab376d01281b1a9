package scheduleservice

import "encoding/json"

// Полезные нагрузки передаются как сырой JSON: клиент транспортный,
// типизация и валидация записей выполняются на границе хранилища.

// SyncRequest запрос синхронизации: полный снимок локального кэша
type SyncRequest struct {
	Snapshot json.RawMessage `json:"snapshot"`
}

// SyncResponse ответ сервиса синхронизации
type SyncResponse struct {
	Accepted    int             `json:"accepted"`
	UpdatedData json.RawMessage `json:"updatedData,omitempty"`
}

// ErrorResponse модель ошибки удалённого сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

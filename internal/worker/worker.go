package worker

import (
	"context"
	"time"
)

// Worker - фоновый процесс сервиса каталога
type Worker interface {
	// Start блокируется до остановки. Ошибка - воркер больше не работает.
	Start(ctx context.Context) error

	// Stop останавливает воркер, повторный вызов безопасен
	Stop() error

	// Name возвращает имя воркера
	Name() string

	// Status - счетчики перезагрузок каталога для /health
	Status() Status
}

// State - этап жизненного цикла воркера
type State string

const (
	StateRegistered State = "registered"
	StateRunning    State = "running"
	StateStopped    State = "stopped"
	StateFailed     State = "failed"
)

// Status - состояние воркера перезагрузки каталога
type Status struct {
	Name          string     `json:"name"`
	ConsumerGroup string     `json:"consumer_group,omitempty"`
	State         State      `json:"state"`
	Reloads       int        `json:"reloads"`
	Failures      int        `json:"failures"`
	Skipped       int        `json:"skipped"`
	LastSource    string     `json:"last_source,omitempty"`
	LastReloadAt  *time.Time `json:"last_reload_at,omitempty"`
	LastError     string     `json:"last_error,omitempty"`
}

// Failure - воркер завершился с ошибкой, каталог больше не обновляется по событиям
type Failure struct {
	Worker string
	Err    error
}

// Package model содержит доменные сущности панели счетов.
package model

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceStatus описывает статус оплаты счёта.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Invoice представляет счёт, выставленный клиенту.
// Сумма всегда хранится в минимальных единицах валюты (центах), никогда как float.
type Invoice struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	AmountCents int64
	Status      InvoiceStatus
	Date        time.Time
}

// User представляет пользователя панели. Пароль хранится только в виде bcrypt-хэша.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash []byte
}

// InvoiceForm содержит необработанные строковые поля формы счёта.
type InvoiceForm struct {
	CustomerID string
	Amount     string
	Status     string
}

// InvoiceRecord — проверенные и приведённые поля формы счёта.
type InvoiceRecord struct {
	CustomerID string
	Amount     float64
	Status     InvoiceStatus
}

// State — результат создания счёта: nil при успехе, иначе ошибки по полям
// и общее сообщение для отображения формой.
type State struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message"`
}

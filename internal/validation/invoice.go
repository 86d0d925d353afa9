// Package validation содержит проверку формы счёта и нормализацию суммы.
package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/mmeshcher/invoice-dashboard/internal/model"
)

// ValidateInvoiceForm проверяет строковые поля формы счёта и приводит их
// к типизированной записи. Пустой статус считается "pending". При любой
// некорректности возвращается полный отчёт об ошибках по полям;
// частичного успеха нет.
func ValidateInvoiceForm(form model.InvoiceForm) (model.InvoiceRecord, map[string][]string) {
	errs := make(map[string][]string)

	customerID := strings.TrimSpace(form.CustomerID)
	if customerID == "" {
		errs["customerId"] = append(errs["customerId"], "Customer is required")
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(form.Amount), 64)
	switch {
	case err != nil || math.IsNaN(amount) || math.IsInf(amount, 0):
		errs["amount"] = append(errs["amount"], "Amount must be a number")
	case amount <= 0:
		errs["amount"] = append(errs["amount"], "Amount must be > 0")
	}

	status := model.InvoiceStatus(form.Status)
	if form.Status == "" {
		status = model.InvoiceStatusPending
	} else if status != model.InvoiceStatusPending && status != model.InvoiceStatusPaid {
		errs["status"] = append(errs["status"], "Status must be pending or paid")
	}

	if len(errs) > 0 {
		return model.InvoiceRecord{}, errs
	}

	return model.InvoiceRecord{
		CustomerID: customerID,
		Amount:     amount,
		Status:     status,
	}, nil
}

// AmountToCents переводит денежную сумму в минимальные единицы валюты.
// Поправка на машинный эпсилон компенсирует погрешность двоичного
// представления до округления: 10.10 даёт 1010, а не 1009.
func AmountToCents(amount float64) int64 {
	epsilon := math.Nextafter(1, 2) - 1
	return int64(math.Round((amount + epsilon) * 100))
}

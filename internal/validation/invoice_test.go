package validation

import (
	"testing"

	"github.com/mmeshcher/invoice-dashboard/internal/model"
)

func TestValidateInvoiceForm(t *testing.T) {
	tests := []struct {
		name       string
		form       model.InvoiceForm
		wantFields []string
	}{
		{
			name: "valid pending",
			form: model.InvoiceForm{CustomerID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Amount: "10.10", Status: "pending"},
		},
		{
			name: "valid paid",
			form: model.InvoiceForm{CustomerID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Amount: "250", Status: "paid"},
		},
		{
			name: "empty status defaults to pending",
			form: model.InvoiceForm{CustomerID: "cust", Amount: "5"},
		},
		{
			name:       "missing customer",
			form:       model.InvoiceForm{Amount: "10", Status: "pending"},
			wantFields: []string{"customerId"},
		},
		{
			name:       "non-numeric amount",
			form:       model.InvoiceForm{CustomerID: "cust", Amount: "abc", Status: "pending"},
			wantFields: []string{"amount"},
		},
		{
			name:       "empty amount",
			form:       model.InvoiceForm{CustomerID: "cust", Status: "pending"},
			wantFields: []string{"amount"},
		},
		{
			name:       "zero amount",
			form:       model.InvoiceForm{CustomerID: "cust", Amount: "0", Status: "pending"},
			wantFields: []string{"amount"},
		},
		{
			name:       "negative amount",
			form:       model.InvoiceForm{CustomerID: "cust", Amount: "-3.50", Status: "paid"},
			wantFields: []string{"amount"},
		},
		{
			name:       "unknown status",
			form:       model.InvoiceForm{CustomerID: "cust", Amount: "10", Status: "overdue"},
			wantFields: []string{"status"},
		},
		{
			name:       "everything invalid",
			form:       model.InvoiceForm{CustomerID: "", Amount: "x", Status: "x"},
			wantFields: []string{"customerId", "amount", "status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, errs := ValidateInvoiceForm(tt.form)

			if len(tt.wantFields) == 0 {
				if len(errs) != 0 {
					t.Fatalf("unexpected errors: %v", errs)
				}
				if rec.CustomerID == "" {
					t.Fatalf("record customer id is empty")
				}
				return
			}

			if len(errs) != len(tt.wantFields) {
				t.Fatalf("errors = %v, want keys %v", errs, tt.wantFields)
			}
			for _, field := range tt.wantFields {
				if len(errs[field]) == 0 {
					t.Fatalf("no error for field %q: %v", field, errs)
				}
			}
		})
	}
}

func TestValidateInvoiceForm_DefaultStatus(t *testing.T) {
	rec, errs := ValidateInvoiceForm(model.InvoiceForm{CustomerID: "cust", Amount: "1"})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if rec.Status != model.InvoiceStatusPending {
		t.Fatalf("status = %q, want %q", rec.Status, model.InvoiceStatusPending)
	}
}

func TestAmountToCents(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{amount: 10.10, want: 1010},
		{amount: 10.1, want: 1010},
		{amount: 4.35, want: 435},
		{amount: 0.07, want: 7},
		{amount: 1, want: 100},
		{amount: 19.99, want: 1999},
		{amount: 349.99, want: 34999},
		{amount: 666.66, want: 66666},
	}

	for _, tt := range tests {
		if got := AmountToCents(tt.amount); got != tt.want {
			t.Fatalf("AmountToCents(%v) = %d, want %d", tt.amount, got, tt.want)
		}
	}
}

func TestAmountToCents_Deterministic(t *testing.T) {
	a := AmountToCents(123.45)
	b := AmountToCents(123.45)
	if a != b {
		t.Fatalf("AmountToCents must be deterministic, got %d and %d", a, b)
	}
}

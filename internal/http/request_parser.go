package http

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"atelie/internal/core"
)

const requestDateLayout = "2006-01-02"

// transactionRequest is the JSON body of POST /api/transactions. Amount is a
// decimal string so clients never have to think in cents.
type transactionRequest struct {
	Description  string `json:"description"`
	Amount       string `json:"amount"`
	Date         string `json:"date"` // YYYY-MM-DD
	Type         string `json:"type"`
	Category     string `json:"category"`
	SubCategory  string `json:"sub_category"`
	Bank         string `json:"bank"`
	CustomBank   string `json:"custom_bank,omitempty"`
	Installments int    `json:"installments,omitempty"`
}

// revenueRequest is the JSON body of POST /api/revenues.
type revenueRequest struct {
	Description   string `json:"description"`
	Amount        string `json:"amount"`
	Date          string `json:"date"` // YYYY-MM-DD
	PaymentMethod string `json:"payment_method"`
	Type          string `json:"type"`
}

func decodeJSON(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func (req transactionRequest) toTransaction() (core.Transaction, error) {
	cents, err := core.ParseDecimalToCents(req.Amount)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("invalid amount %q: %w", req.Amount, err)
	}

	date, err := parseRequestDate(req.Date)
	if err != nil {
		return core.Transaction{}, err
	}

	installments := req.Installments
	if installments == 0 {
		installments = 1
	}

	return core.Transaction{
		Description:  sanitizeInput(req.Description),
		Amount:       core.Money{Cents: cents},
		Date:         date,
		Type:         core.ExpenseType(strings.ToUpper(strings.TrimSpace(req.Type))),
		Category:     core.Category(strings.ToUpper(strings.TrimSpace(req.Category))),
		SubCategory:  core.SubCategory(strings.ToUpper(strings.TrimSpace(req.SubCategory))),
		Bank:         core.Bank(strings.ToUpper(strings.TrimSpace(req.Bank))),
		CustomBank:   sanitizeInput(req.CustomBank),
		Installments: installments,
	}, nil
}

func (req revenueRequest) toRevenue() (core.Revenue, error) {
	cents, err := core.ParseDecimalToCents(req.Amount)
	if err != nil {
		return core.Revenue{}, fmt.Errorf("invalid amount %q: %w", req.Amount, err)
	}

	date, err := parseRequestDate(req.Date)
	if err != nil {
		return core.Revenue{}, err
	}

	return core.Revenue{
		Description:   sanitizeInput(req.Description),
		Amount:        core.Money{Cents: cents},
		Date:          date,
		PaymentMethod: core.PaymentMethod(strings.ToUpper(strings.TrimSpace(req.PaymentMethod))),
		Type:          core.ExpenseType(strings.ToUpper(strings.TrimSpace(req.Type))),
	}, nil
}

func parseRequestDate(s string) (core.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return core.Date{}, fmt.Errorf("missing date")
	}
	t, err := time.Parse(requestDateLayout, s)
	if err != nil {
		return core.Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return core.Date{Time: t}, nil
}

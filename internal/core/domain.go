package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Personal     ExpenseType = "PERSONAL"
	Professional ExpenseType = "PROFESSIONAL"
)

const (
	Fixed    Category = "FIXED"
	Variable Category = "VARIABLE"
)

// Personal sub-categories.
const (
	SubMoradia     SubCategory = "MORADIA"
	SubAlimentacao SubCategory = "ALIMENTACAO"
	SubTransporte  SubCategory = "TRANSPORTE"
	SubLazer       SubCategory = "LAZER"
	SubSaude       SubCategory = "SAUDE"
	SubOutros      SubCategory = "OUTROS"
)

// Professional sub-categories. SubOutros is shared with the personal family.
const (
	SubMaterial  SubCategory = "MATERIAL"
	SubCursos    SubCategory = "CURSOS"
	SubMarketing SubCategory = "MARKETING"
	SubAluguel   SubCategory = "ALUGUEL"
	SubImpostos  SubCategory = "IMPOSTOS"
)

const (
	BankNubank   Bank = "NUBANK"
	BankBradesco Bank = "BRADESCO"
	BankCash     Bank = "CASH"
	BankOther    Bank = "OTHER"
)

const (
	MethodCard PaymentMethod = "CARD"
	MethodCash PaymentMethod = "CASH"
	MethodPix  PaymentMethod = "PIX"
)

type (
	// ExpenseType separates personal spending from studio (professional) spending.
	ExpenseType string

	// Category marks an expense as a fixed or variable cost.
	Category string

	// SubCategory is a finer classification under an ExpenseType. Which codes
	// belong to which family is not cross-validated against the type; unknown
	// codes pass through and label lookups fall back to the raw code.
	SubCategory string

	// Bank identifies the payment channel of an expense.
	Bank string

	// PaymentMethod identifies how a revenue was received.
	PaymentMethod string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Transaction is an immutable expense record. A transaction with
	// Installments = N spawns N monthly occurrences starting at its date's
	// month; see the analytics package.
	Transaction struct {
		ID           string
		Description  string
		Amount       Money
		Date         Date
		Type         ExpenseType
		Category     Category
		SubCategory  SubCategory
		Bank         Bank
		CustomBank   string // bank name when Bank is OTHER
		Installments int
	}

	// Revenue is an immutable income record. Revenues are single-occurrence.
	Revenue struct {
		ID            string
		Description   string
		Amount        Money
		Date          Date
		PaymentMethod PaymentMethod
		Type          ExpenseType
	}

	// MonthlyExpense is one occurrence of a transaction inside a queried
	// month. It is derived on every query and never persisted.
	MonthlyExpense struct {
		ID                 string // OriginalID plus occurrence index
		OriginalID         string
		Description        string
		Amount             Money
		CurrentInstallment int // 1-based
		TotalInstallments  int
		Bank               Bank
		CustomBank         string
		Category           Category
		SubCategory        SubCategory
		Type               ExpenseType
		Date               Date
	}
)

var (
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrEmptyID             = errors.New("empty id")
	ErrEmptyDescription    = errors.New("empty description")
	ErrInvalidType         = errors.New("invalid expense type")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrEmptySubCategory    = errors.New("empty sub-category")
	ErrInvalidBank         = errors.New("invalid bank")
	ErrInvalidMethod       = errors.New("invalid payment method")
	ErrInvalidInstallments = errors.New("installments must be at least 1")
	ErrDescriptionTooLong  = errors.New("description too long (max 200 characters)")
)

// NewDate creates a Date from year, month (1-12), day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Month returns the calendar month, 1-12.
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the four-digit year.
func (d Date) Year() int {
	return d.Time.Year()
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.Time.Day()
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (t ExpenseType) IsValid() bool {
	return t == Personal || t == Professional
}

func (c Category) IsValid() bool {
	return c == Fixed || c == Variable
}

func (b Bank) IsValid() bool {
	switch b {
	case BankNubank, BankBradesco, BankCash, BankOther:
		return true
	default:
		return false
	}
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCard, MethodCash, MethodPix:
		return true
	default:
		return false
	}
}

// PaymentMethods lists every known method in presentation order. Aggregations
// key off this list so that no method is ever missing from a result.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{MethodPix, MethodCard, MethodCash}
}

// ExpenseTypes lists both expense types. Aggregations initialize accumulators
// for each so that sparse input cannot leave a key absent.
func ExpenseTypes() []ExpenseType {
	return []ExpenseType{Personal, Professional}
}

func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrEmptyID
	}
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return ErrDescriptionTooLong
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if !t.Type.IsValid() {
		return ErrInvalidType
	}
	if !t.Category.IsValid() {
		return ErrInvalidCategory
	}
	if strings.TrimSpace(string(t.SubCategory)) == "" {
		return ErrEmptySubCategory
	}
	if !t.Bank.IsValid() {
		return ErrInvalidBank
	}
	if t.Installments < 1 {
		return ErrInvalidInstallments
	}
	return nil
}

func (r Revenue) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return ErrEmptyID
	}
	if len(strings.TrimSpace(r.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(r.Description) > 200 {
		return ErrDescriptionTooLong
	}
	if err := r.Amount.Validate(); err != nil {
		return err
	}
	if err := r.Date.Validate(); err != nil {
		return err
	}
	if !r.PaymentMethod.IsValid() {
		return ErrInvalidMethod
	}
	if !r.Type.IsValid() {
		return ErrInvalidType
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

// Sub returns the difference of two amounts. The result may be negative,
// e.g. a month's net profit when expenses exceed revenue.
func (m Money) Sub(other Money) Money {
	return Money{Cents: m.Cents - other.Cents}
}

package core

import (
	"errors"
	"math"
)

// Types below back the withdrawal and smart-distribution screens. They are
// part of the shared domain surface but are not consumed by the analytics
// engine.

const (
	WithdrawalProLabore WithdrawalType = "PRO_LABORE"
	WithdrawalProfit    WithdrawalType = "PROFIT"
)

const (
	FrequencyDaily   ProLaboreFrequency = "DAILY"
	FrequencyWeekly  ProLaboreFrequency = "WEEKLY"
	Frequency15Days  ProLaboreFrequency = "15_DAYS"
	Frequency20Days  ProLaboreFrequency = "20_DAYS"
	FrequencyMonthly ProLaboreFrequency = "MONTHLY"
)

type (
	WithdrawalType string

	// ProLaboreFrequency is how often the owner draws a pro-labore.
	ProLaboreFrequency string

	// ProfitCycle is the profit distribution cycle length in months (1, 3, 6 or 12).
	ProfitCycle int

	// Withdrawal records money taken out of the studio.
	Withdrawal struct {
		ID          string
		Amount      Money
		Date        Date
		Type        WithdrawalType
		Description string
	}

	// SmartDistributionItem is one slice of a suggested revenue split.
	SmartDistributionItem struct {
		Percent float64
		Amount  Money
		Label   string
		Items   string
	}

	// DistributionConfig holds the split percentages, either the default
	// suggestion or a user-customized one.
	DistributionConfig struct {
		IsCustom   bool
		Fixed      float64
		Variable   float64
		Profit     float64
		Investment float64
		ProLabore  float64
	}
)

var (
	ErrNegativePercent = errors.New("distribution percentages must not be negative")
	ErrPercentSum      = errors.New("distribution percentages must sum to 100")
)

func (t WithdrawalType) IsValid() bool {
	return t == WithdrawalProLabore || t == WithdrawalProfit
}

func (w Withdrawal) Validate() error {
	if w.ID == "" {
		return ErrEmptyID
	}
	if err := w.Amount.Validate(); err != nil {
		return err
	}
	if err := w.Date.Validate(); err != nil {
		return err
	}
	if !w.Type.IsValid() {
		return ErrInvalidType
	}
	return nil
}

func (c DistributionConfig) percentages() []float64 {
	return []float64{c.Fixed, c.Variable, c.ProLabore, c.Investment, c.Profit}
}

func (c DistributionConfig) Validate() error {
	sum := 0.0
	for _, p := range c.percentages() {
		if p < 0 {
			return ErrNegativePercent
		}
		sum += p
	}
	if math.Abs(sum-100) > 0.01 {
		return ErrPercentSum
	}
	return nil
}

// Split allocates a month's revenue across the configured slices. Each slice
// rounds half-up on its own; the last slice absorbs the rounding remainder so
// the cents always add back up to the input.
func (c DistributionConfig) Split(revenue Money) []SmartDistributionItem {
	labels := []string{"Custos fixos", "Custos variáveis", "Pró-labore", "Investimento", "Lucro"}
	percents := c.percentages()

	items := make([]SmartDistributionItem, len(percents))
	var allocated int64
	for i, p := range percents {
		cents := int64(math.Round(float64(revenue.Cents) * p / 100))
		if i == len(percents)-1 {
			cents = revenue.Cents - allocated
		}
		allocated += cents
		items[i] = SmartDistributionItem{
			Percent: p,
			Amount:  Money{Cents: cents},
			Label:   labels[i],
		}
	}
	return items
}

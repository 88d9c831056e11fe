package core

// subCategoryLabels maps sub-category codes to their display names. Codes
// outside the map (including malformed input) fall back to the raw code, so
// lookups never fail.
var subCategoryLabels = map[SubCategory]string{
	SubMoradia:     "Moradia",
	SubAlimentacao: "Alimentação",
	SubTransporte:  "Transporte",
	SubLazer:       "Lazer",
	SubSaude:       "Saúde",
	SubOutros:      "Outros",
	SubMaterial:    "Material",
	SubCursos:      "Cursos",
	SubMarketing:   "Marketing",
	SubAluguel:     "Aluguel",
	SubImpostos:    "Impostos",
}

// Label returns the human-readable name for a sub-category, or the raw code
// when the code is unknown.
func (s SubCategory) Label() string {
	if label, ok := subCategoryLabels[s]; ok {
		return label
	}
	return string(s)
}

var bankLabels = map[Bank]string{
	BankNubank:   "Nubank",
	BankBradesco: "Bradesco",
	BankCash:     "Dinheiro",
	BankOther:    "Outro",
}

// Label returns the display name of a bank. For BankOther callers usually
// prefer the transaction's CustomBank when it is set.
func (b Bank) Label() string {
	if label, ok := bankLabels[b]; ok {
		return label
	}
	return string(b)
}

var methodLabels = map[PaymentMethod]string{
	MethodPix:  "Pix",
	MethodCard: "Cartão",
	MethodCash: "Dinheiro",
}

// Label returns the display name of a payment method.
func (m PaymentMethod) Label() string {
	if label, ok := methodLabels[m]; ok {
		return label
	}
	return string(m)
}

var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

var monthShortNames = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// MonthName returns the full Portuguese month name for a 1-12 month, or the
// empty string for out-of-range input.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// MonthShortName returns the three-letter month label used by trend series.
func MonthShortName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthShortNames[month-1]
}

package anomaly

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var suggestPrinter = message.NewPrinter(language.BrazilianPortuguese)

// Suggest renders the remediation hint for a flagged value. Pure formatting;
// the numeric work already happened in classification.
func Suggest(value float64, s Stats, t Type) string {
	switch t {
	case TypeVeryHigh:
		return suggestPrinter.Sprintf("Valor %.0f está muito acima da média (%.0f). Verifique se não há zeros extras.", value, s.Mean)
	case TypeHigh:
		return suggestPrinter.Sprintf("Valor %.0f está acima do esperado (%.0f). Confirme se está correto.", value, s.Median)
	case TypeVeryLow:
		return suggestPrinter.Sprintf("Valor %.0f está muito abaixo da média (%.0f). Verifique se não faltam dígitos.", value, s.Mean)
	case TypeLow:
		return suggestPrinter.Sprintf("Valor %.0f está abaixo do esperado (%.0f). Confirme se está correto.", value, s.Median)
	case TypeOutlier:
		return suggestPrinter.Sprintf("Valor %.0f é incomum. Valor típico é ¥%.0f.", value, s.Median)
	default:
		return "Verifique este valor."
	}
}

// suggestHistory names the offending value and the historical ceiling it broke.
func suggestHistory(value, historicalMax, factor float64) string {
	times := strconv.FormatFloat(factor, 'f', -1, 64)
	return suggestPrinter.Sprintf("Valor ¥%.0f é %sx maior que máximo histórico (¥%.0f)", value, times, historicalMax)
}

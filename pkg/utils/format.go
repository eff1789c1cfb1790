package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Impressora pt-BR compartilhada pelos formatadores do relatório
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency formata um valor monetário no padrão pt-BR (R$ 1.234,56).
// O valor é arredondado para centavos antes da formatação.
func FormatCurrency(value float64) string {
	return ptBR.Sprintf("R$ %.2f", math.Round(value*100)/100)
}

// FormatPoints formata uma pontuação inteira com separador de milhares pt-BR
func FormatPoints(points float64) string {
	return ptBR.Sprintf("%.0f", math.Round(points))
}

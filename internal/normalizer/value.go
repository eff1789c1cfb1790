// Package normalizer converte valores brutos de células de planilha
// (números nativos, textos em formato de moeda, datas seriais) para os tipos
// canônicos usados pelo restante do pipeline de importação.
package normalizer

import (
	"strconv"
	"strings"

	"github.com/vfg2006/certification-manager-api/internal/domain"
)

// sentinelas de valor ausente encontradas nos exports manuais
var emptySentinels = map[string]bool{
	"":     true,
	"-":    true,
	"null": true,
	"nulo": true,
	"nan":  true,
}

// Value normaliza uma célula para um valor monetário em reais.
//
// Células numéricas nativas são usadas como estão; quando asCents é
// verdadeiro (formatos de export que gravam centavos), o número é dividido
// por 100. Células de texto passam pela heurística de separadores descrita
// em parseCurrency. Células vazias ou não interpretáveis valem 0.
func Value(cell domain.CellValue, asCents bool) float64 {
	switch cell.Kind {
	case domain.CellNumber:
		if asCents {
			return cell.Number / 100
		}
		return cell.Number
	case domain.CellText:
		return parseCurrency(cell.Text)
	default:
		return 0
	}
}

// parseCurrency interpreta textos monetários em formatos mistos pt-BR/en.
//
// O separador decimal é o que aparece mais à direita entre ',' e '.'; o outro
// é separador de milhares e é descartado. Se a parte fracionária tiver mais
// de dois dígitos, o candidato a decimal é tratado como separador de milhares
// (heurística para formatos ambíguos como "1.234.567").
func parseCurrency(raw string) float64 {
	text := strings.ToLower(strings.TrimSpace(raw))
	if emptySentinels[text] {
		return 0
	}

	// O sinal vale quando aparece antes do primeiro dígito, inclusive
	// depois do símbolo de moeda ("R$ -1.234,56")
	negative := false
	for _, r := range text {
		if r >= '0' && r <= '9' {
			break
		}
		if r == '-' {
			negative = true
		}
	}

	// Mantém apenas dígitos e separadores
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == ',' || r == '.' {
			return r
		}
		return -1
	}, text)

	if cleaned == "" {
		return 0
	}

	decimalIdx := -1
	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")
	if lastComma > lastDot {
		decimalIdx = lastComma
	} else if lastDot > lastComma {
		decimalIdx = lastDot
	}

	// Fração com mais de dois dígitos indica separador de milhares
	if decimalIdx >= 0 && len(cleaned)-decimalIdx-1 > 2 {
		decimalIdx = -1
	}

	var builder strings.Builder
	for i, r := range cleaned {
		switch {
		case i == decimalIdx:
			builder.WriteRune('.')
		case r == ',' || r == '.':
			// separador de milhares
		default:
			builder.WriteRune(r)
		}
	}

	value, err := strconv.ParseFloat(builder.String(), 64)
	if err != nil {
		return 0
	}

	if negative {
		return -value
	}
	return value
}

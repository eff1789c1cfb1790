package normalizer

import (
	"strconv"
	"strings"

	"github.com/vfg2006/certification-manager-api/internal/domain"
)

const cnpjLength = 14

// TaxID normaliza um CNPJ para a forma canônica de 14 dígitos.
//
// Células numéricas são renderizadas sem casas decimais antes da limpeza,
// o que cobre CNPJs que o export converteu para notação científica. Toda
// pontuação é removida e o resultado é completado com zeros à esquerda.
// Células sem nenhum dígito produzem string vazia, nunca um CNPJ de zeros.
func TaxID(cell domain.CellValue) string {
	var text string

	switch cell.Kind {
	case domain.CellNumber:
		text = strconv.FormatFloat(cell.Number, 'f', 0, 64)
	case domain.CellText:
		text = cell.Text
	default:
		return ""
	}

	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	if digits.Len() == 0 {
		return ""
	}

	cnpj := digits.String()
	if len(cnpj) < cnpjLength {
		cnpj = strings.Repeat("0", cnpjLength-len(cnpj)) + cnpj
	}
	return cnpj
}

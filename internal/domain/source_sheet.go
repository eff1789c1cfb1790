package domain

import "fmt"

// SourceSheet identifica a torre de origem de uma planilha importada
type SourceSheet string

const (
	SourceSheetAvancados SourceSheet = "AVANCADOS"
	SourceSheetTIGUD     SourceSheet = "TI_GUD"
	SourceSheetTech      SourceSheet = "TECH"
)

// SourceSheets lista as três origens aceitas
var SourceSheets = []SourceSheet{SourceSheetAvancados, SourceSheetTIGUD, SourceSheetTech}

// ParseSourceSheet converte um texto em uma origem conhecida
func ParseSourceSheet(raw string) (SourceSheet, error) {
	for _, sheet := range SourceSheets {
		if raw == string(sheet) {
			return sheet, nil
		}
	}
	return "", fmt.Errorf("origem de planilha desconhecida: %q", raw)
}

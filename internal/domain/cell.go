package domain

import "time"

// CellKind identifica o tipo nativo de uma célula da planilha
type CellKind int

const (
	CellEmpty CellKind = iota
	CellNumber
	CellText
	CellDate
)

// CellValue representa o valor tipado de uma célula. As planilhas de origem
// misturam tipos nativos por coluna, então o valor bruto carrega o tipo junto
// e os normalizadores fazem o estreitamento.
type CellValue struct {
	Kind   CellKind
	Number float64
	Text   string
	Date   time.Time
}

// EmptyCell retorna uma célula vazia
func EmptyCell() CellValue {
	return CellValue{Kind: CellEmpty}
}

// NumberCell cria uma célula numérica
func NumberCell(value float64) CellValue {
	return CellValue{Kind: CellNumber, Number: value}
}

// TextCell cria uma célula de texto
func TextCell(value string) CellValue {
	return CellValue{Kind: CellText, Text: value}
}

// DateCell cria uma célula de data
func DateCell(value time.Time) CellValue {
	return CellValue{Kind: CellDate, Date: value}
}

// IsEmpty indica se a célula não carrega valor
func (c CellValue) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// String retorna a representação textual da célula, vazio quando não é texto
func (c CellValue) String() string {
	if c.Kind == CellText {
		return c.Text
	}
	return ""
}

// Row é uma linha da planilha já indexada pelo nome da coluna
type Row map[string]CellValue

// Cell retorna a célula de uma coluna, vazia quando ausente
func (r Row) Cell(column string) CellValue {
	if cell, ok := r[column]; ok {
		return cell
	}
	return EmptyCell()
}

// Has indica se a coluna existe na linha com algum valor
func (r Row) Has(column string) bool {
	cell, ok := r[column]
	return ok && !cell.IsEmpty()
}

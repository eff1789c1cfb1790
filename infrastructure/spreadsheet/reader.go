// Package spreadsheet é a fronteira de leitura e escrita de arquivos xlsx.
// A leitura produz um buffer de linhas tipadas em memória antes do pipeline
// rodar; nenhum I/O acontece dentro da lógica de importação ou apuração.
package spreadsheet

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/certification-manager-api/internal/domain"
)

// ExcelReader lê a primeira aba de um workbook xlsx. A primeira linha é o
// cabeçalho e cada linha seguinte vira uma domain.Row indexada por ele.
type ExcelReader struct{}

// NewReader cria o leitor de planilhas
func NewReader() *ExcelReader {
	return &ExcelReader{}
}

// Read abre o workbook e materializa as linhas de dados.
//
// Valores são lidos na forma bruta: células numéricas (incluindo datas
// seriais e valores monetários formatados) chegam como número, o resto como
// texto. Falha de abertura é FileReadError; workbook sem aba ou sem linhas
// de dados é ImportError.
func (r *ExcelReader) Read(path string) ([]domain.Row, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &domain.FileReadError{Path: path, Cause: err}
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, &domain.ImportError{Stage: "workbook sem abas"}
	}

	rows, err := file.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &domain.ImportError{Stage: "leitura da aba", Cause: errors.Wrap(err, sheets[0])}
	}

	if len(rows) < 2 {
		return nil, &domain.ImportError{Stage: "planilha sem linhas de dados"}
	}

	headers := rows[0]

	result := make([]domain.Row, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		row := make(domain.Row, len(headers))
		empty := true

		for i, header := range headers {
			header = strings.TrimSpace(header)
			if header == "" || i >= len(raw) {
				continue
			}
			cell := toCell(raw[i])
			if cell.IsEmpty() {
				continue
			}
			row[header] = cell
			empty = false
		}

		// Linhas totalmente vazias no fim do arquivo são comuns em exports
		// manuais e não contam como dados
		if !empty {
			result = append(result, row)
		}
	}

	if len(result) == 0 {
		return nil, &domain.ImportError{Stage: "planilha sem linhas de dados"}
	}

	return result, nil
}

// toCell converte o valor bruto de uma célula no tipo fechado do domínio.
// No xlsx, datas são números seriais, então células de data chegam como
// CellNumber e o estreitamento fica com os normalizadores.
func toCell(raw string) domain.CellValue {
	text := strings.TrimSpace(raw)
	if text == "" {
		return domain.EmptyCell()
	}

	if number, err := strconv.ParseFloat(text, 64); err == nil {
		return domain.NumberCell(number)
	}

	return domain.TextCell(text)
}

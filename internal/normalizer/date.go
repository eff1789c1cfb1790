package normalizer

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/certification-manager-api/internal/domain"
)

// ErrInvalidDate indica que a célula não pôde ser interpretada como data
var ErrInvalidDate = errors.New("data inválida")

// Época serial das planilhas (convenção 1900 do Excel)
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Formatos aceitos, testados em ordem
var dateLayouts = []string{
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

var (
	brDatePattern  = regexp.MustCompile(`(\d{2})/(\d{2})/(\d{4})`)
	isoDatePattern = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
)

// Date normaliza uma célula para a data de ativação do pedido.
//
// Datas nativas passam direto. Textos tentam DD/MM/YYYY e depois ISO, com e
// sem hora, e por fim uma extração tolerante de qualquer data embutida no
// texto. Números são dias seriais de planilha ancorados em 1899-12-30.
// Qualquer outra coisa falha com ErrInvalidDate e o chamador decide o padrão.
func Date(cell domain.CellValue) (time.Time, error) {
	switch cell.Kind {
	case domain.CellDate:
		if cell.Date.IsZero() {
			return time.Time{}, ErrInvalidDate
		}
		return cell.Date, nil
	case domain.CellText:
		return parseDateText(cell.Text)
	case domain.CellNumber:
		return serialToDate(cell.Number)
	default:
		return time.Time{}, ErrInvalidDate
	}
}

func parseDateText(raw string) (time.Time, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return time.Time{}, ErrInvalidDate
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, text); err == nil {
			return date, nil
		}
	}

	// Extração tolerante: alguma data embutida em texto livre
	if match := brDatePattern.FindStringSubmatch(text); match != nil {
		day, _ := strconv.Atoi(match[1])
		month, _ := strconv.Atoi(match[2])
		year, _ := strconv.Atoi(match[3])
		return buildDate(year, month, day)
	}
	if match := isoDatePattern.FindStringSubmatch(text); match != nil {
		year, _ := strconv.Atoi(match[1])
		month, _ := strconv.Atoi(match[2])
		day, _ := strconv.Atoi(match[3])
		return buildDate(year, month, day)
	}

	return time.Time{}, ErrInvalidDate
}

func buildDate(year, month, day int) (time.Time, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, ErrInvalidDate
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// serialToDate converte um dia serial de planilha em data.
// Seriais abaixo de 60 ganham um dia para compensar o 29/02/1900
// inexistente que a convenção do Excel insere.
func serialToDate(serial float64) (time.Time, error) {
	if serial <= 0 {
		return time.Time{}, ErrInvalidDate
	}
	if serial < 60 {
		serial++
	}
	return excelEpoch.Add(time.Duration(serial*86400000) * time.Millisecond), nil
}

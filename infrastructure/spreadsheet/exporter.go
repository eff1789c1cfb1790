package spreadsheet

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/certification-manager-api/internal/domain"
)

const exportSheetName = "Vendas"

// cabeçalhos do arquivo de revisão, na ordem das colunas
var exportHeaders = []string{
	"Data Ativação",
	"Cliente",
	"CNPJ",
	"Pedido",
	"Produto",
	"Categoria",
	"Valor Bruto SN",
	"Tipo",
	"Parceiro",
	"Área",
	"Origem",
	"Pedidos Agregados",
}

// Exporter grava um conjunto de registros revisados de volta em xlsx, para
// conferência manual fora do sistema
type Exporter struct{}

// NewExporter cria o exportador de planilhas
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export escreve um registro por linha, com os cabeçalhos pt-BR do arquivo
// de revisão
func (e *Exporter) Export(records []domain.SaleRecord, path string) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", exportSheetName); err != nil {
		return errors.Wrap(err, "erro ao preparar a aba de exportação")
	}

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return errors.Wrap(err, "erro ao montar o cabeçalho de exportação")
		}
		if err := file.SetCellValue(exportSheetName, cell, header); err != nil {
			return errors.Wrap(err, "erro ao escrever o cabeçalho de exportação")
		}
	}

	for i, record := range records {
		values := []interface{}{
			record.ActivationDate.Format("02/01/2006"),
			record.CustomerName,
			record.CNPJ,
			record.OrderNumber,
			record.Product,
			record.Category.Label(),
			record.GrossValue,
			string(record.SaleType),
			record.Partner.Label(),
			string(record.AreaAtuacao),
			string(record.SourceSheet),
			strings.Join(record.AbsorbedOrders, ", "),
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return errors.Wrap(err, "erro ao montar linha de exportação")
			}
			if err := file.SetCellValue(exportSheetName, cell, value); err != nil {
				return errors.Wrap(err, "erro ao escrever linha de exportação")
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return errors.Wrapf(err, "erro ao salvar o arquivo %s", path)
	}

	return nil
}

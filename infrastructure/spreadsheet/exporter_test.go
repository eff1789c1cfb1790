package spreadsheet

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/certification-manager-api/internal/domain"
)

func TestExport(t *testing.T) {
	records := []domain.SaleRecord{
		{
			ID:             "venda-AVANCADOS-lote01-0",
			OrderNumber:    "PED-A",
			ActivationDate: time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
			GrossValue:     1200,
			SaleType:       domain.SaleTypeVenda,
			Partner:        domain.PartnerJLCTech,
			Category:       domain.CategoryDadosAvancados,
			AreaAtuacao:    domain.AreaFora,
			Product:        "IP Dedicado 50MB",
			CNPJ:           "12345678000195",
			CustomerName:   "Cliente Teste",
			SourceSheet:    domain.SourceSheetAvancados,
			AbsorbedOrders: []string{"PED-B", "PED-C"},
		},
	}

	path := filepath.Join(t.TempDir(), "vendas.xlsx")
	require.NoError(t, NewExporter().Export(records, path))

	file, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{exportSheetName}, file.GetSheetList())

	rows, err := file.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, exportHeaders, rows[0])

	row := rows[1]
	assert.Equal(t, "15/08/2025", row[0])
	assert.Equal(t, "Cliente Teste", row[1])
	assert.Equal(t, "12345678000195", row[2])
	assert.Equal(t, "PED-A", row[3])
	assert.Equal(t, "Dados Avançados", row[5])
	assert.Equal(t, "JLC Tech", row[8])
	assert.Equal(t, "FORA", row[9])
	assert.Equal(t, "PED-B, PED-C", row[11])
}

func TestExport_ArquivoExportadoERelegivel(t *testing.T) {
	records := []domain.SaleRecord{
		{
			OrderNumber:    "PED-1",
			ActivationDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			GrossValue:     500,
			SaleType:       domain.SaleTypeVenda,
			Product:        "VPN Corporativa",
			CustomerName:   "Cliente Teste",
			AbsorbedOrders: []string{"PED-2"},
		},
	}

	path := filepath.Join(t.TempDir(), "vendas.xlsx")
	require.NoError(t, NewExporter().Export(records, path))

	// O arquivo de revisão volta pelo mesmo leitor usado na importação
	rows, err := NewReader().Read(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "VPN Corporativa", rows[0].Cell("Produto").Text)
}

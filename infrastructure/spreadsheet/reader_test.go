package spreadsheet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/certification-manager-api/internal/domain"
)

// writeWorkbook grava um workbook temporário com as linhas informadas e
// retorna o caminho do arquivo
func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, file.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "planilha.xlsx")
	require.NoError(t, file.SaveAs(path))
	return path
}

func TestRead(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"DS_PRODUTO", "NUM_PEDIDO", "VL_BRUTO_SN", "TIPO_GANHO_DETALHE"},
		{"IP Dedicado 50MB", "PED-1", 1234.56, "VENDA"},
		{"VPN Corporativa", 98765, 300, "MIGRAÇÃO"},
	})

	rows, err := NewReader().Read(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Texto chega como texto, número nativo chega como número
	first := rows[0]
	assert.Equal(t, domain.CellText, first.Cell("DS_PRODUTO").Kind)
	assert.Equal(t, "IP Dedicado 50MB", first.Cell("DS_PRODUTO").Text)
	assert.Equal(t, domain.CellNumber, first.Cell("VL_BRUTO_SN").Kind)
	assert.Equal(t, 1234.56, first.Cell("VL_BRUTO_SN").Number)

	second := rows[1]
	assert.Equal(t, domain.CellNumber, second.Cell("NUM_PEDIDO").Kind)
	assert.Equal(t, 98765.0, second.Cell("NUM_PEDIDO").Number)
	assert.Equal(t, "MIGRAÇÃO", second.Cell("TIPO_GANHO_DETALHE").Text)
}

func TestRead_LinhasVaziasNaoContamComoDados(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"DS_PRODUTO", "NUM_PEDIDO"},
		{"IP Dedicado 50MB", "PED-1"},
		{"", ""},
	})

	rows, err := NewReader().Read(path)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRead_SomenteCabecalho(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"DS_PRODUTO", "NUM_PEDIDO"},
	})

	_, err := NewReader().Read(path)

	var importErr *domain.ImportError
	require.ErrorAs(t, err, &importErr)
}

func TestRead_ArquivoInexistente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nao-existe.xlsx")

	_, err := NewReader().Read(path)

	var readErr *domain.FileReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, path, readErr.Path)
}

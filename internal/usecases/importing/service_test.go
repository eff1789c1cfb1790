package importing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/certification-manager-api/internal/config"
	"github.com/vfg2006/certification-manager-api/internal/domain"
	"github.com/vfg2006/certification-manager-api/internal/usecases/importing/mocks"
)

var testClock = func() time.Time {
	return time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T, cfg *config.Config, rows []domain.Row, readErr error) *Service {
	t.Helper()

	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)
	reader.EXPECT().Read(gomock.Any()).Return(rows, readErr)

	return NewService(cfg, reader).
		WithClock(testClock).
		WithBatchIDGenerator(func() (string, error) { return "lote01", nil })
}

func saleRow(order, product, cnpj, saleType, value string) domain.Row {
	return domain.Row{
		"DT_RFS":             domain.TextCell("15/08/2025"),
		"VL_BRUTO_SN":        domain.TextCell(value),
		"DS_PRODUTO":         domain.TextCell(product),
		"NUM_PEDIDO":         domain.TextCell(order),
		"TIPO_GANHO_DETALHE": domain.TextCell(saleType),
		"CNPJ":               domain.TextCell(cnpj),
		"CLIENTE":            domain.TextCell("Cliente Teste"),
		"PARCEIRO":           domain.TextCell("JLC Tech"),
	}
}

func TestImport_CenarioCompletoComBundle(t *testing.T) {
	// Linha A: primário IP dedicado do cliente X; linha B: satélite de
	// monitoramento do mesmo cliente; linha C: migração de outro cliente
	rows := []domain.Row{
		saleRow("PED-A", "IP Dedicado 50MB", "12.345.678/0001-95", "VENDA", "1000"),
		saleRow("PED-B", "Monitoramento de Dados", "12345678000195", "VENDA", "200"),
		saleRow("PED-C", "Microsoft 365", "99.999.999/0001-99", "MIGRAÇÃO", "500"),
	}

	service := newTestService(t, &config.Config{}, rows, nil)

	records, err := service.Import(context.Background(), "planilha.xlsx", domain.SourceSheetAvancados)
	require.NoError(t, err)

	require.Len(t, records, 1)
	record := records[0]
	assert.Equal(t, "PED-A", record.OrderNumber)
	assert.Equal(t, 1200.0, record.GrossValue)
	assert.Equal(t, domain.CategoryDadosAvancados, record.Category)
	assert.Equal(t, []string{"PED-B"}, record.AbsorbedOrders)
	assert.Equal(t, "12345678000195", record.CNPJ)
	assert.Equal(t, domain.SaleTypeVenda, record.SaleType)
	assert.Equal(t, domain.AreaDentro, record.AreaAtuacao)
	assert.Equal(t, domain.SourceSheetAvancados, record.SourceSheet)
	assert.Equal(t, "venda-AVANCADOS-lote01-0", record.ID)
}

func TestImport_MigracaoComMarcadorDeVendaEExcluida(t *testing.T) {
	// O marcador de migração sempre vence sobre o marcador de venda
	rows := []domain.Row{
		saleRow("PED-1", "VPN Corporativa", "12345678000195", "MIGRAÇÃOVENDA", "300"),
	}

	service := newTestService(t, &config.Config{}, rows, nil)

	records, err := service.Import(context.Background(), "planilha.xlsx", domain.SourceSheetTech)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestImport_MigracoesRetidasQuandoConfigurado(t *testing.T) {
	cfg := &config.Config{}
	cfg.Import.RetainMigrations = true

	rows := []domain.Row{
		saleRow("PED-1", "VPN Corporativa", "12345678000195", "MIGRAÇÃO", "300"),
	}

	service := newTestService(t, cfg, rows, nil)

	records, err := service.Import(context.Background(), "planilha.xlsx", domain.SourceSheetTIGUD)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, domain.SaleTypeMigracao, records[0].SaleType)
	assert.False(t, records[0].IsScoringEligible())
}

func TestImport_LinhasSemProdutoOuPedidoSaoDescartadas(t *testing.T) {
	semProduto := saleRow("PED-1", "", "12345678000195", "VENDA", "100")
	semPedido := saleRow("", "VPN Corporativa", "12345678000195", "VENDA", "100")

	service := newTestService(t, &config.Config{}, []domain.Row{semProduto, semPedido}, nil)

	records, err := service.Import(context.Background(), "planilha.xlsx", domain.SourceSheetAvancados)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestImport_AreaDeAtuacaoResolvida(t *testing.T) {
	// A coluna de área vem com cabeçalho variante e texto livre
	row := saleRow("PED-1", "VPN Corporativa", "12345678000195", "VENDA", "100")
	row["Área de Atuação"] = domain.TextCell("Fora da área")

	service := newTestService(t, &config.Config{}, []domain.Row{row}, nil)

	records, err := service.Import(context.Background(), "planilha.xlsx", domain.SourceSheetAvancados)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, domain.AreaFora, records[0].AreaAtuacao)
}

func TestImport_TipoSemMarcadorDeVendaNaoEmite(t *testing.T) {
	rows := []domain.Row{
		saleRow("PED-1", "VPN Corporativa", "12345678000195", "PERDA", "100"),
	}

	service := newTestService(t, &config.Config{}, rows, nil)

	records, err := service.Import(context.Background(), "planilha.xlsx", domain.SourceSheetAvancados)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestImport_CelulasDegradamParaPadroes(t *testing.T) {
	row := domain.Row{
		"DS_PRODUTO":         domain.TextCell("VPN Corporativa"),
		"NUM_PEDIDO":         domain.NumberCell(123456),
		"TIPO_GANHO_DETALHE": domain.TextCell("GANHO"),
		"DT_RFS":             domain.TextCell("data inválida"),
		"VL_BRUTO_SN":        domain.TextCell("a combinar"),
	}

	service := newTestService(t, &config.Config{}, []domain.Row{row}, nil)

	records, err := service.Import(context.Background(), "planilha.xlsx", domain.SourceSheetAvancados)
	require.NoError(t, err)

	require.Len(t, records, 1)
	record := records[0]
	assert.Equal(t, "123456", record.OrderNumber)
	assert.Equal(t, 0.0, record.GrossValue)
	assert.Equal(t, testClock(), record.ActivationDate)
	assert.Equal(t, "Cliente não especificado", record.CustomerName)
	assert.Equal(t, domain.PartnerJLCTech, record.Partner)
	assert.Empty(t, record.CNPJ)
}

func TestImport_ErroDeLeituraAbortaAImportacao(t *testing.T) {
	readErr := &domain.ImportError{Stage: "planilha sem linhas de dados"}

	service := newTestService(t, &config.Config{}, nil, readErr)

	records, err := service.Import(context.Background(), "planilha.xlsx", domain.SourceSheetAvancados)
	assert.Nil(t, records)

	var importErr *domain.ImportError
	require.ErrorAs(t, err, &importErr)
}

func TestImport_SateliteDeMigracaoNaoInflaOPrimario(t *testing.T) {
	rows := []domain.Row{
		saleRow("PED-A", "IP Dedicado 50MB", "12345678000195", "VENDA", "1000"),
		saleRow("PED-B", "Internet IP Turbo", "12345678000195", "MIGRAÇÃO", "400"),
	}

	service := newTestService(t, &config.Config{}, rows, nil)

	records, err := service.Import(context.Background(), "planilha.xlsx", domain.SourceSheetAvancados)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, 1000.0, records[0].GrossValue)
	assert.Empty(t, records[0].AbsorbedOrders)
}

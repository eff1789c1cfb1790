package importing

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/transform"

	"github.com/vfg2006/certification-manager-api/internal/config"
	"github.com/vfg2006/certification-manager-api/internal/domain"
	"github.com/vfg2006/certification-manager-api/internal/normalizer"
	"github.com/vfg2006/certification-manager-api/pkg/log"
	"github.com/vfg2006/certification-manager-api/pkg/utils"
)

// Marcadores de tipo de venda no texto de TIPO_GANHO_DETALHE. O marcador de
// migração sempre vence: um texto com os dois marcadores não é venda.
var (
	saleMarkers     = []string{"venda", "ganho"}
	migrationMarker = "migra"
)

// Reader abstrai a leitura do arquivo de planilha para um buffer de linhas
// tipadas em memória. A implementação fica em infrastructure/spreadsheet.
type Reader interface {
	Read(path string) ([]domain.Row, error)
}

// Importer é a interface do pipeline de importação
type Importer interface {
	Import(ctx context.Context, path string, sheet domain.SourceSheet) ([]domain.SaleRecord, error)
}

// Service implementa o pipeline de importação de planilhas
type Service struct {
	cfg        *config.Config
	reader     Reader
	now        func() time.Time
	newBatchID func() (string, error)
}

// NewService cria o serviço de importação com relógio e gerador de lote
// padrão
func NewService(cfg *config.Config, reader Reader) *Service {
	return &Service{
		cfg:        cfg,
		reader:     reader,
		now:        time.Now,
		newBatchID: utils.GenerateID,
	}
}

// WithClock injeta um relógio fixo, usado em testes e em reprocessamentos
// determinísticos
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithBatchIDGenerator injeta o gerador do identificador de lote
func (s *Service) WithBatchIDGenerator(generator func() (string, error)) *Service {
	s.newBatchID = generator
	return s
}

// rowData carrega os campos de uma linha já resolvidos e pré-normalizados,
// na forma que o agrupamento de pedidos relacionados precisa
type rowData struct {
	index       int
	row         domain.Row
	product     string
	orderNumber string
	cnpj        string
	isSale      bool
	isMigration bool
}

// Import executa a importação completa de um arquivo: linhas brutas,
// resolução de colunas, agregação de pedidos relacionados e emissão dos
// registros canônicos de venda.
//
// Defeitos de arquivo abortam com erro tipado; defeitos de célula degradam
// para valores padrão e a linha segue. Linhas sem produto ou sem número de
// pedido são descartadas por não serem atribuíveis.
func (s *Service) Import(ctx context.Context, path string, sheet domain.SourceSheet) ([]domain.SaleRecord, error) {
	logger := log.ForContext(ctx).WithField("source_sheet", string(sheet))

	started := s.now()

	rawRows, err := s.reader.Read(path)
	if err != nil {
		logger.WithError(err).Error("Falha ao ler a planilha")
		return nil, err
	}

	batchID, err := s.newBatchID()
	if err != nil {
		return nil, &domain.ImportError{Stage: "geração do identificador de lote", Cause: err}
	}
	logger = logger.WithField("batch_id", batchID)

	var (
		eligible  []rowData
		skipped   int
		discarded int
	)

	for i, raw := range rawRows {
		row := ResolveColumns(raw)

		product := strings.TrimSpace(row.Cell(ColumnProduct).String())
		orderNumber := cellToText(row.Cell(ColumnOrderNumber))

		if product == "" || orderNumber == "" {
			skipped++
			continue
		}

		saleType := foldSaleType(row.Cell(ColumnSaleType).String())
		isMigration := strings.Contains(saleType, migrationMarker)
		isSale := !isMigration && containsAny(saleType, saleMarkers)

		eligible = append(eligible, rowData{
			index:       i,
			row:         row,
			product:     product,
			orderNumber: orderNumber,
			cnpj:        normalizer.TaxID(row.Cell(ColumnCNPJ)),
			isSale:      isSale,
			isMigration: isMigration,
		})
	}

	plan := planSaleBundles(eligible)

	records := make([]domain.SaleRecord, 0, len(eligible))
	migrations := 0

	for idx, data := range eligible {
		if plan.absorbed[idx] {
			continue
		}

		if data.isMigration {
			if !s.cfg.Import.RetainMigrations {
				discarded++
				continue
			}
			record := s.buildRecord(logger, data, sheet, batchID, domain.SaleTypeMigracao)
			records = append(records, record)
			migrations++
			continue
		}

		if !data.isSale {
			discarded++
			continue
		}

		record := s.buildRecord(logger, data, sheet, batchID, domain.SaleTypeVenda)

		// Absorve os satélites do bundle: valores somados no primário e
		// números de pedido registrados
		for _, satelliteIdx := range plan.satellites[idx] {
			satellite := eligible[satelliteIdx]
			record.GrossValue += s.normalizeValue(satellite.row)
			record.AbsorbedOrders = append(record.AbsorbedOrders, satellite.orderNumber)
		}

		records = append(records, record)
	}

	logger.WithFields(log.Fields{
		"imported":    len(records),
		"skipped":     skipped,
		"discarded":   discarded,
		"migrations":  migrations,
		"bundles":     len(plan.satellites),
		"duration_ms": s.now().Sub(started).Milliseconds(),
	}).Info("Importação de planilha concluída")

	return records, nil
}

// planSaleBundles restringe o agrupamento às linhas de venda genuína:
// migrações e linhas sem marcador de venda seguem o fluxo normal e nunca
// inflam o valor de um primário
func planSaleBundles(rows []rowData) bundlePlan {
	candidates := make([]rowData, len(rows))
	copy(candidates, rows)
	for i := range candidates {
		if !candidates[i].isSale {
			candidates[i].cnpj = ""
		}
	}
	return planBundles(candidates)
}

// buildRecord monta um registro de venda a partir de uma linha resolvida
func (s *Service) buildRecord(
	logger log.Logger,
	data rowData,
	sheet domain.SourceSheet,
	batchID string,
	saleType domain.SaleType,
) domain.SaleRecord {
	activationDate, err := normalizer.Date(data.row.Cell(ColumnActivationDate))
	if err != nil {
		// Política documentada: data ilegível cai no relógio do lote e a
		// linha segue
		logger.WithField("row", data.index).Warn("Data de ativação ilegível, usando a data do lote")
		activationDate = s.now()
	}

	customerName := strings.TrimSpace(data.row.Cell(ColumnCustomerName).String())
	if customerName == "" {
		customerName = "Cliente não especificado"
	}

	return domain.SaleRecord{
		ID:             fmt.Sprintf("venda-%s-%s-%d", sheet, batchID, data.index),
		OrderNumber:    data.orderNumber,
		ActivationDate: activationDate,
		GrossValue:     s.normalizeValue(data.row),
		SaleType:       saleType,
		Partner:        domain.NormalizePartner(data.row.Cell(ColumnPartner).String()),
		Category:       ClassifyProduct(data.product),
		AreaAtuacao:    domain.NormalizeAreaAtuacao(data.row.Cell(ColumnArea).String()),
		Product:        data.product,
		CNPJ:           data.cnpj,
		CustomerName:   customerName,
		SourceSheet:    sheet,
	}
}

func (s *Service) normalizeValue(row domain.Row) float64 {
	return normalizer.Value(row.Cell(ColumnGrossValue), s.cfg.Import.NumericCellsAsCents)
}

// cellToText extrai o texto de uma célula que pode vir como número nativo
// (caso comum para números de pedido)
func cellToText(cell domain.CellValue) string {
	switch cell.Kind {
	case domain.CellNumber:
		return strconv.FormatFloat(cell.Number, 'f', -1, 64)
	case domain.CellText:
		return strings.TrimSpace(cell.Text)
	default:
		return ""
	}
}

// foldSaleType rebaixa e remove acentos do texto de tipo de venda para o
// teste de marcadores ("MIGRAÇÃOVENDA" contém o marcador de migração)
func foldSaleType(raw string) string {
	folded, _, err := transform.String(removeDiacritics, raw)
	if err != nil {
		folded = raw
	}
	return strings.ToLower(folded)
}

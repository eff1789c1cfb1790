// Package scoring implementa o motor de apuração do programa: pontos por
// faixa de receita, resultados mensais, resultado do ciclo e resolução da
// classificação.
package scoring

import (
	"math"
	"time"

	"github.com/vfg2006/certification-manager-api/internal/domain"
	"github.com/vfg2006/certification-manager-api/pkg/utils"
)

// Scorer é a interface do motor de apuração
type Scorer interface {
	MonthlyResult(month, year int, records []domain.SaleRecord) domain.MonthlyResult
	CycleResult(records []domain.SaleRecord, start, end time.Time) domain.CycleResult
	ResolveTier(score float64) domain.ClassificationTier
}

// Service implementa o motor de apuração sobre as tabelas estáticas de
// faixas e de classificação
type Service struct {
	bands domain.BandTables
	tiers []domain.ClassificationTier
}

// NewService cria o motor de apuração. Tabelas nulas caem nas tabelas do
// manual vigente.
func NewService(bands domain.BandTables, tiers []domain.ClassificationTier) *Service {
	if bands == nil {
		bands = domain.DefaultBandTables()
	}
	if tiers == nil {
		tiers = domain.DefaultTierTable()
	}
	return &Service{bands: bands, tiers: tiers}
}

// PointsForRevenue calcula os pontos de uma receita contra uma tabela de
// faixas ordenada que particiona [0, +Inf). Receita não positiva vale zero;
// receita acima de todas as faixas vale os pontos da última.
func PointsForRevenue(revenue float64, bands []domain.RevenueBand) float64 {
	if revenue <= 0 {
		return 0
	}

	for _, band := range bands {
		if band.Contains(revenue) {
			return band.Points
		}
	}

	return bands[len(bands)-1].Points
}

// MonthlyResult apura receitas e pontos de um mês a partir dos registros.
// Apenas registros do tipo VENDA entram na apuração; migrações ficam de fora
// independente do mês. Vendas fora da área de atuação aportam metade da
// receita bruta.
func (s *Service) MonthlyResult(month, year int, records []domain.SaleRecord) domain.MonthlyResult {
	result := domain.MonthlyResult{
		Month:   month,
		Year:    year,
		Revenue: make(map[domain.Category]float64, len(domain.Categories)),
		Points:  make(map[domain.Category]float64, len(domain.Categories)),
	}

	for _, record := range records {
		if !record.IsScoringEligible() {
			continue
		}
		date := record.ActivationDate
		if int(date.Month()) != month || date.Year() != year {
			continue
		}
		result.Revenue[record.Category] += record.ScoringRevenue()
	}

	for _, category := range domain.Categories {
		points := PointsForRevenue(result.Revenue[category], s.bands[category])
		result.Points[category] = points
		result.PointsTotal += points
	}

	return result
}

// CycleResult apura o ciclo completo entre start e end (inclusivos).
//
// Todo mês-calendário do período aparece no resultado, mesmo sem atividade,
// para manter a grade do ciclo completa. A pontuação média divide pela
// quantidade de meses com alguma receita; quando nenhum mês tem receita, o
// divisor é o total de meses, evitando divisão por zero sem diluir ciclos
// genuinamente vazios.
func (s *Service) CycleResult(records []domain.SaleRecord, start, end time.Time) domain.CycleResult {
	var monthlyResults []domain.MonthlyResult

	current := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !current.After(last) {
		monthly := s.MonthlyResult(int(current.Month()), current.Year(), records)
		monthlyResults = append(monthlyResults, monthly)
		current = current.AddDate(0, 1, 0)
	}

	var totalPoints float64
	monthsWithRevenue := 0
	for _, monthly := range monthlyResults {
		totalPoints += monthly.PointsTotal
		if monthly.HasRevenue() {
			monthsWithRevenue++
		}
	}

	divisor := monthsWithRevenue
	if divisor == 0 {
		divisor = len(monthlyResults)
	}

	averageScore := 0.0
	if divisor > 0 {
		averageScore = utils.RoundWithTwoDecimalPlace(totalPoints / float64(divisor))
	}

	tier := s.ResolveTier(averageScore)

	var sales []domain.SaleRecord
	for _, record := range records {
		if record.IsScoringEligible() {
			sales = append(sales, record)
		}
	}

	return domain.CycleResult{
		PeriodStart:    start,
		PeriodEnd:      end,
		MonthlyResults: monthlyResults,
		AverageScore:   averageScore,
		Classification: tier.Classification,
		BonusPercent:   tier.BonusPercent,
		Sales:          sales,
	}
}

// ResolveTier resolve o nível de certificação de uma pontuação média.
// A pontuação é truncada para baixo antes da busca, conforme a regra do
// manual, e o intervalo de cada nível é inclusivo nas duas pontas.
func (s *Service) ResolveTier(score float64) domain.ClassificationTier {
	floored := math.Floor(score)

	for _, tier := range s.tiers {
		if floored >= tier.MinScore && floored <= tier.MaxScore {
			return tier
		}
	}

	return domain.ClassificationTier{
		Classification: domain.ClassificationNaoCertificado,
		MinScore:       0,
		MaxScore:       0,
		BonusPercent:   0,
	}
}

// Package simulating implementa o simulador de metas de certificação:
// projeta o desempenho mensal necessário para alcançar um nível alvo.
package simulating

import (
	"github.com/vfg2006/certification-manager-api/internal/domain"
	"github.com/vfg2006/certification-manager-api/internal/usecases/scoring"
)

// Simulator é a interface do simulador de metas
type Simulator interface {
	Simulate(params domain.SimulationParams) domain.SimulationResult
}

// Service implementa o simulador sobre o motor de apuração
type Service struct {
	scorer scoring.Scorer
}

// NewService cria o simulador de metas
func NewService(scorer scoring.Scorer) *Service {
	return &Service{scorer: scorer}
}

// Simulate projeta o que falta para a meta. A probabilidade de sucesso é uma
// heurística simples sobre o ritmo atual versus o necessário, não um modelo
// estatístico.
func (s *Service) Simulate(params domain.SimulationParams) domain.SimulationResult {
	pointsNeeded := params.TargetScore - params.CurrentMonthlyScore
	if pointsNeeded < 0 {
		pointsNeeded = 0
	}

	pointsPerMonth := 0.0
	if params.MonthsRemaining > 0 {
		pointsPerMonth = pointsNeeded / float64(params.MonthsRemaining)
	}

	// Receita necessária estimada por proporção linear da relação atual
	// entre receita e pontuação
	revenueNeededPerMonth := 0.0
	if params.AvgMonthlyRevenue > 0 && params.CurrentMonthlyScore > 0 {
		revenueNeededPerMonth = (pointsPerMonth / params.CurrentMonthlyScore) * params.AvgMonthlyRevenue
	}

	var successProbability float64
	switch {
	case pointsNeeded <= 0:
		successProbability = 100
	case params.CurrentMonthlyScore >= pointsPerMonth:
		successProbability = 90
	default:
		ratio := params.CurrentMonthlyScore / pointsPerMonth
		successProbability = ratio * 100
		if successProbability > 90 {
			successProbability = 90
		}
		if successProbability < 10 {
			successProbability = 10
		}
	}

	projectedScore := params.CurrentMonthlyScore + pointsPerMonth*float64(params.MonthsRemaining)
	projectedTier := s.scorer.ResolveTier(projectedScore)

	return domain.SimulationResult{
		TargetScore:             params.TargetScore,
		CurrentScore:            params.CurrentMonthlyScore,
		PointsNeeded:            pointsNeeded,
		PointsPerMonth:          pointsPerMonth,
		RevenueNeededPerMonth:   revenueNeededPerMonth,
		SuccessProbability:      successProbability,
		ProjectedClassification: projectedTier.Classification,
	}
}

package domain

// SimulationParams são as entradas do simulador de metas
type SimulationParams struct {
	TargetScore         float64 `json:"target_score"`
	MonthsRemaining     int     `json:"months_remaining"`
	CurrentMonthlyScore float64 `json:"current_monthly_score"`
	AvgMonthlyRevenue   float64 `json:"avg_monthly_revenue"`
}

// SimulationResult projeta o desempenho necessário para atingir a meta.
// É uma heurística de apoio, não um modelo estatístico.
type SimulationResult struct {
	TargetScore             float64        `json:"target_score"`
	CurrentScore            float64        `json:"current_score"`
	PointsNeeded            float64        `json:"points_needed"`
	PointsPerMonth          float64        `json:"points_per_month"`
	RevenueNeededPerMonth   float64        `json:"revenue_needed_per_month"`
	SuccessProbability      float64        `json:"success_probability"` // 0-100
	ProjectedClassification Classification `json:"projected_classification"`
}

package domain

import "time"

// CycleResult consolida o resultado do ciclo completo de certificação
type CycleResult struct {
	PeriodStart    time.Time       `json:"period_start"`
	PeriodEnd      time.Time       `json:"period_end"`
	MonthlyResults []MonthlyResult `json:"monthly_results"`
	AverageScore   float64         `json:"average_score"`
	Classification Classification  `json:"classification"`
	BonusPercent   float64         `json:"bonus_percent"`
	Sales          []SaleRecord    `json:"sales"` // Registros elegíveis para pontuação
}

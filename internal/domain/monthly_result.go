package domain

// MonthlyResult consolida as receitas e pontos de um mês do ciclo.
// É um valor derivado do conjunto de registros do mês: recalculado quando o
// conjunto muda, nunca mutado depois de calculado.
type MonthlyResult struct {
	Month       int                  `json:"month"` // 1-12
	Year        int                  `json:"year"`
	Revenue     map[Category]float64 `json:"revenue"`
	Points      map[Category]float64 `json:"points"`
	PointsTotal float64              `json:"points_total"`
}

// HasRevenue indica se alguma categoria teve receita no mês
func (m MonthlyResult) HasRevenue() bool {
	for _, revenue := range m.Revenue {
		if revenue > 0 {
			return true
		}
	}
	return false
}

package domain

import "math"

// RevenueBand define uma faixa de receita de uma categoria e os pontos
// concedidos quando a receita mensal da categoria cai dentro dela.
// Os limites são [Min, Max), com Max = +Inf na última faixa.
type RevenueBand struct {
	Ordinal int     `json:"ordinal"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Points  float64 `json:"points"`
}

// Contains verifica se a receita cai dentro da faixa
func (b RevenueBand) Contains(revenue float64) bool {
	return revenue >= b.Min && revenue < b.Max
}

// BandTables mapeia cada categoria para sua tabela ordenada de faixas
type BandTables map[Category][]RevenueBand

// DefaultBandTables retorna as tabelas de faixas do Manual de Certificação
// Especialistas Vivo (ciclo Julho/2025 a Dezembro/2025). Cada tabela tem
// cinco faixas contíguas cobrindo [0, +Inf).
func DefaultBandTables() BandTables {
	return BandTables{
		CategoryDadosAvancados: {
			{Ordinal: 1, Min: 0, Max: 300, Points: 800},
			{Ordinal: 2, Min: 300, Max: 1000, Points: 1600},
			{Ordinal: 3, Min: 1000, Max: 2000, Points: 2400},
			{Ordinal: 4, Min: 2000, Max: 3500, Points: 3200},
			{Ordinal: 5, Min: 3500, Max: math.Inf(1), Points: 4000},
		},
		CategoryVozAvancada: {
			{Ordinal: 1, Min: 0, Max: 300, Points: 800},
			{Ordinal: 2, Min: 300, Max: 1000, Points: 1600},
			{Ordinal: 3, Min: 1000, Max: 2000, Points: 2400},
			{Ordinal: 4, Min: 2000, Max: 3500, Points: 3200},
			{Ordinal: 5, Min: 3500, Max: math.Inf(1), Points: 4000},
		},
		CategoryDigitalTI: {
			{Ordinal: 1, Min: 0, Max: 1200, Points: 400},
			{Ordinal: 2, Min: 1200, Max: 2100, Points: 800},
			{Ordinal: 3, Min: 2100, Max: 3000, Points: 1200},
			{Ordinal: 4, Min: 3000, Max: 4200, Points: 1600},
			{Ordinal: 5, Min: 4200, Max: math.Inf(1), Points: 2000},
		},
		CategoryNovosProdutos: {
			{Ordinal: 1, Min: 0, Max: 2000, Points: 100},
			{Ordinal: 2, Min: 2000, Max: 4000, Points: 200},
			{Ordinal: 3, Min: 4000, Max: 6000, Points: 300},
			{Ordinal: 4, Min: 6000, Max: 8000, Points: 400},
			{Ordinal: 5, Min: 8000, Max: math.Inf(1), Points: 500},
		},
		CategoryLocacaoEquipamentos: {
			{Ordinal: 1, Min: 0, Max: 400, Points: 200},
			{Ordinal: 2, Min: 400, Max: 800, Points: 400},
			{Ordinal: 3, Min: 800, Max: 1200, Points: 600},
			{Ordinal: 4, Min: 1200, Max: 1600, Points: 800},
			{Ordinal: 5, Min: 1600, Max: math.Inf(1), Points: 1000},
		},
		CategoryLicencas: {
			{Ordinal: 1, Min: 0, Max: 400, Points: 100},
			{Ordinal: 2, Min: 400, Max: 800, Points: 200},
			{Ordinal: 3, Min: 800, Max: 1200, Points: 300},
			{Ordinal: 4, Min: 1200, Max: 1600, Points: 400},
			{Ordinal: 5, Min: 1600, Max: math.Inf(1), Points: 500},
		},
	}
}

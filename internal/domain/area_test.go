package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAreaAtuacao(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected AreaAtuacao
	}{
		{name: "fora explícito", raw: "FORA", expected: AreaFora},
		{name: "fora em frase", raw: "Fora da área", expected: AreaFora},
		{name: "externa", raw: "Venda Externa", expected: AreaFora},
		{name: "dentro explícito", raw: "DENTRO", expected: AreaDentro},
		{name: "vazio cai em dentro", raw: "", expected: AreaDentro},
		{name: "texto desconhecido cai em dentro", raw: "regional", expected: AreaDentro},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeAreaAtuacao(tt.raw))
		})
	}
}

func TestScoringRevenue(t *testing.T) {
	dentro := SaleRecord{GrossValue: 1000, AreaAtuacao: AreaDentro}
	fora := SaleRecord{GrossValue: 1000, AreaAtuacao: AreaFora}

	assert.Equal(t, 1000.0, dentro.ScoringRevenue())
	assert.Equal(t, 500.0, fora.ScoringRevenue())
}

package domain

import "strings"

// AreaAtuacao indica se a venda aconteceu dentro ou fora da área de
// atuação do parceiro
type AreaAtuacao string

const (
	AreaDentro AreaAtuacao = "DENTRO"
	AreaFora   AreaAtuacao = "FORA"
)

// Redutor de receita para vendas fora da área de atuação
const foraRevenueFactor = 0.5

// Areas lista as áreas de atuação válidas
var Areas = []AreaAtuacao{AreaDentro, AreaFora}

// IsValid verifica se a área de atuação é conhecida
func (a AreaAtuacao) IsValid() bool {
	for _, area := range Areas {
		if a == area {
			return true
		}
	}
	return false
}

// NormalizeAreaAtuacao interpreta o texto livre da coluna de área.
// Qualquer menção a fora ou externa marca a venda como fora da área; o
// padrão, inclusive com a coluna ausente, é dentro.
func NormalizeAreaAtuacao(raw string) AreaAtuacao {
	areaLower := strings.ToLower(raw)

	if strings.Contains(areaLower, "fora") || strings.Contains(areaLower, "externa") {
		return AreaFora
	}

	return AreaDentro
}

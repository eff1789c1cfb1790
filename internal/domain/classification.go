package domain

import "math"

// Classification representa um nível de certificação do programa
type Classification string

const (
	ClassificationNaoCertificado Classification = "NAO_CERTIFICADO"
	ClassificationBronze         Classification = "BRONZE"
	ClassificationPrata          Classification = "PRATA"
	ClassificationOuro           Classification = "OURO"
	ClassificationDiamante       Classification = "DIAMANTE"
	ClassificationPlatinum       Classification = "PLATINUM"
)

// classificationLabels mapeia classificações para nomes de exibição
var classificationLabels = map[Classification]string{
	ClassificationNaoCertificado: "Não Certificado",
	ClassificationBronze:         "Bronze",
	ClassificationPrata:          "Prata",
	ClassificationOuro:           "Ouro",
	ClassificationDiamante:       "Diamante",
	ClassificationPlatinum:       "Platinum",
}

// Label retorna o nome formatado da classificação
func (c Classification) Label() string {
	if label, ok := classificationLabels[c]; ok {
		return label
	}
	return string(c)
}

// ClassificationTier define o intervalo de pontuação [MinScore, MaxScore]
// inclusivo e o bônus percentual de um nível de certificação
type ClassificationTier struct {
	Classification Classification `json:"classification"`
	MinScore       float64        `json:"min_score"`
	MaxScore       float64        `json:"max_score"`
	BonusPercent   float64        `json:"bonus_percent"`
}

// DefaultTierTable retorna a tabela de classificação do manual, ordenada de
// forma ascendente e contígua cobrindo [0, +Inf)
func DefaultTierTable() []ClassificationTier {
	return []ClassificationTier{
		{Classification: ClassificationNaoCertificado, MinScore: 0, MaxScore: 1499, BonusPercent: 0},
		{Classification: ClassificationBronze, MinScore: 1500, MaxScore: 3499, BonusPercent: 0},
		{Classification: ClassificationPrata, MinScore: 3500, MaxScore: 5499, BonusPercent: 2.5},
		{Classification: ClassificationOuro, MinScore: 5500, MaxScore: 7499, BonusPercent: 5.0},
		{Classification: ClassificationDiamante, MinScore: 7500, MaxScore: 9499, BonusPercent: 7.5},
		{Classification: ClassificationPlatinum, MinScore: 9500, MaxScore: math.Inf(1), BonusPercent: 10.0},
	}
}

package domain

import "strings"

// Partner representa um parceiro Vivo participante do programa
type Partner string

const (
	PartnerJLCTech Partner = "JLC_TECH"
	PartnerSafeTI  Partner = "SAFE_TI"
)

// Partners lista os parceiros conhecidos
var Partners = []Partner{PartnerJLCTech, PartnerSafeTI}

// PartnerLabels mapeia parceiros para rótulos de exibição
var PartnerLabels = map[Partner]string{
	PartnerJLCTech: "JLC Tech",
	PartnerSafeTI:  "Safe TI",
}

// IsValid verifica se o parceiro é um dos conhecidos
func (p Partner) IsValid() bool {
	_, ok := PartnerLabels[p]
	return ok
}

// Label retorna o nome formatado do parceiro
func (p Partner) Label() string {
	if label, ok := PartnerLabels[p]; ok {
		return label
	}
	return string(p)
}

// NormalizePartner identifica o parceiro a partir de um texto livre da planilha.
// Textos não reconhecidos caem no parceiro padrão JLC_TECH.
func NormalizePartner(raw string) Partner {
	text := strings.ToLower(strings.TrimSpace(raw))

	if strings.Contains(text, "safe") {
		return PartnerSafeTI
	}

	if strings.Contains(text, "jl") || strings.Contains(text, "tech") {
		return PartnerJLCTech
	}

	return PartnerJLCTech
}

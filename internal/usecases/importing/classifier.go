package importing

import (
	"strings"

	"github.com/vfg2006/certification-manager-api/internal/domain"
)

// keywordGroup associa uma categoria aos termos que a identificam
type keywordGroup struct {
	category domain.Category
	keywords []string
}

// A ordem dos grupos é contrato: termos se sobrepõem entre categorias
// (ex.: "digital" vs termos de licença) e o primeiro grupo que casar vence.
// Mudar a ordem muda a classificação de produtos ambíguos.
var keywordGroups = []keywordGroup{
	{category: domain.CategoryDadosAvancados, keywords: []string{
		"internet dedicada", "vpn", "satélite", "satelite", "vox", "frame relay",
	}},
	{category: domain.CategoryVozAvancada, keywords: []string{
		"vvn", "sip", "num", "ddr", "0800",
	}},
	{category: domain.CategoryDigitalTI, keywords: []string{
		"digital", "ti", "cloud", "nuvem", "one shot",
	}},
	{category: domain.CategoryLicencas, keywords: []string{
		"microsoft", "office", "google workspace", "licença", "licenca",
	}},
	{category: domain.CategoryLocacaoEquipamentos, keywords: []string{
		"locação", "locacao", "equipamento",
	}},
	{category: domain.CategoryNovosProdutos, keywords: []string{
		"energia", "novo",
	}},
}

// ClassifyProduct mapeia a descrição livre do produto para uma das seis
// categorias. Sem correspondência, cai na categoria mais comum do programa,
// Dados Avançados.
func ClassifyProduct(product string) domain.Category {
	productLower := strings.ToLower(product)

	for _, group := range keywordGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(productLower, keyword) {
				return group.category
			}
		}
	}

	return domain.CategoryDadosAvancados
}

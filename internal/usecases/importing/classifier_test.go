package importing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/certification-manager-api/internal/domain"
)

func TestClassifyProduct(t *testing.T) {
	tests := []struct {
		name     string
		product  string
		expected domain.Category
	}{
		{name: "Internet dedicada", product: "Internet Dedicada 100MB", expected: domain.CategoryDadosAvancados},
		{name: "VPN", product: "VPN IP Corporativa", expected: domain.CategoryDadosAvancados},
		{name: "Satélite com acento", product: "Vivo Internet Satélite", expected: domain.CategoryDadosAvancados},
		{name: "SIP", product: "Tronco SIP 30 canais", expected: domain.CategoryVozAvancada},
		{name: "0800", product: "Serviço 0800 Empresas", expected: domain.CategoryVozAvancada},
		{name: "Cloud", product: "Cloud Server Plus", expected: domain.CategoryDigitalTI},
		{name: "Microsoft", product: "Microsoft 365 Business", expected: domain.CategoryLicencas},
		{name: "Locação", product: "Locação de Notebooks", expected: domain.CategoryLocacaoEquipamentos},
		{name: "Energia", product: "Vivo Energia Solar", expected: domain.CategoryNovosProdutos},
		{name: "Sem correspondência cai em Dados Avançados", product: "Produto Misterioso", expected: domain.CategoryDadosAvancados},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyProduct(tt.product))
		})
	}
}

func TestClassifyProduct_Deterministico(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, domain.CategoryDadosAvancados, ClassifyProduct("VPN Digital"))
	}
}

func TestClassifyProduct_PrecedenciaDosGrupos(t *testing.T) {
	// "SIP Digital" tem termo de voz e termo de digital: o grupo de voz vem
	// antes na ordem dos grupos e vence, independente da posição no texto
	assert.Equal(t, domain.CategoryVozAvancada, ClassifyProduct("Digital SIP"))
	assert.Equal(t, domain.CategoryVozAvancada, ClassifyProduct("SIP Digital"))
}

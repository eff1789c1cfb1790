package domain

// Category representa uma das seis categorias de produto do programa de certificação
type Category string

const (
	CategoryDadosAvancados      Category = "DADOS_AVANCADOS"
	CategoryVozAvancada         Category = "VOZ_AVANCADA"
	CategoryDigitalTI           Category = "DIGITAL_TI"
	CategoryNovosProdutos       Category = "NOVOS_PRODUTOS"
	CategoryLocacaoEquipamentos Category = "LOCACAO_EQUIPAMENTOS"
	CategoryLicencas            Category = "LICENCAS"
)

// Categories lista as categorias na ordem fixa usada nos relatórios
var Categories = []Category{
	CategoryDadosAvancados,
	CategoryVozAvancada,
	CategoryDigitalTI,
	CategoryNovosProdutos,
	CategoryLocacaoEquipamentos,
	CategoryLicencas,
}

// IsValid verifica se a categoria é uma das seis definidas
func (c Category) IsValid() bool {
	for _, category := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// categoryLabels mapeia categorias para rótulos de exibição
var categoryLabels = map[Category]string{
	CategoryDadosAvancados:      "Dados Avançados",
	CategoryVozAvancada:         "Voz Avançada + VVN",
	CategoryDigitalTI:           "Digital/TI",
	CategoryNovosProdutos:       "Novos Produtos",
	CategoryLocacaoEquipamentos: "Locação de Equipamentos",
	CategoryLicencas:            "Licenças",
}

// Label retorna o nome formatado da categoria
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

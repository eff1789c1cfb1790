package importing

import "strings"

// Termos da regra de agrupamento de pedidos relacionados: um pedido primário
// da família IP Dedicado absorve, no mesmo lote, os pedidos satélites de
// monitoramento de dados e internet IP emitidos para o mesmo CNPJ.
var (
	primaryProductTerms = []string{"ip dedicado", "internet dedicada"}

	satelliteProductTerms = []string{"monitoramento de dados", "internet ip"}
)

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// isPrimaryProduct indica se o produto pertence à família primária do bundle
func isPrimaryProduct(product string) bool {
	return containsAny(strings.ToLower(product), primaryProductTerms)
}

// isSatelliteProduct indica se o produto é um satélite agregável.
// O teste de primário vem antes no chamador: um produto que casa com a
// família primária nunca é tratado como satélite.
func isSatelliteProduct(product string) bool {
	return containsAny(strings.ToLower(product), satelliteProductTerms)
}

// bundlePlan descreve o resultado do agrupamento de um lote: para cada linha
// primária, os índices das linhas satélites absorvidas por ela
type bundlePlan struct {
	satellites map[int][]int // índice do primário -> índices dos satélites
	absorbed   map[int]bool  // linhas que não devem ser emitidas isoladamente
}

// planBundles monta o plano de agrupamento de um lote de importação.
//
// O casamento usa o CNPJ normalizado (somente dígitos) para tolerar
// diferenças de formatação, e é local ao lote: um satélite cujo cliente não
// tem pedido primário neste lote segue como registro independente. Quando o
// mesmo CNPJ tem mais de um pedido primário, o primeiro na ordem da planilha
// recebe os satélites.
func planBundles(rows []rowData) bundlePlan {
	plan := bundlePlan{
		satellites: make(map[int][]int),
		absorbed:   make(map[int]bool),
	}

	primaryByCNPJ := make(map[string]int)
	for i, row := range rows {
		if row.cnpj == "" || !isPrimaryProduct(row.product) {
			continue
		}
		if _, exists := primaryByCNPJ[row.cnpj]; !exists {
			primaryByCNPJ[row.cnpj] = i
		}
	}

	for i, row := range rows {
		if row.cnpj == "" || isPrimaryProduct(row.product) || !isSatelliteProduct(row.product) {
			continue
		}

		primary, exists := primaryByCNPJ[row.cnpj]
		if !exists {
			continue
		}

		plan.satellites[primary] = append(plan.satellites[primary], i)
		plan.absorbed[i] = true
	}

	return plan
}

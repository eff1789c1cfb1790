// Package importing implementa o pipeline de importação de planilhas de
// vendas: resolução de colunas variantes, classificação de produto,
// agregação de pedidos relacionados e construção dos registros canônicos.
package importing

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vfg2006/certification-manager-api/internal/domain"
)

// Campos canônicos esperados nas planilhas das três torres
const (
	ColumnActivationDate = "DT_RFS"
	ColumnGrossValue     = "VL_BRUTO_SN"
	ColumnProduct        = "DS_PRODUTO"
	ColumnOrderNumber    = "NUM_PEDIDO"
	ColumnSaleType       = "TIPO_GANHO_DETALHE"
	ColumnCNPJ           = "CNPJ"
	ColumnCustomerName   = "CLIENTE"
	ColumnPartner        = "PARCEIRO"
	ColumnArea           = "AREA"
)

// columnVariant associa um campo canônico à sua lista ordenada de cabeçalhos
// aceitos. As planilhas são exports mantidos à mão e a grafia dos cabeçalhos
// varia entre times e meses; esta tabela é a única fonte de verdade do
// mapeamento.
type columnVariant struct {
	canonical string
	variants  []string
}

var columnVariants = []columnVariant{
	{canonical: ColumnActivationDate, variants: []string{
		"DT_RFS", "Data RFS", "DT RFS", "Data de Ativação", "Data Ativação", "Data Ativacao", "DT_ATIVACAO",
	}},
	{canonical: ColumnGrossValue, variants: []string{
		"VL_BRUTO_SN", "Valor Bruto SN", "VL Bruto SN", "Valor Bruto", "Valor", "VL_BRUTO",
	}},
	{canonical: ColumnProduct, variants: []string{
		"DS_PRODUTO", "Produto", "DS Produto", "Descrição do Produto", "Descricao Produto", "Nome do Produto",
	}},
	{canonical: ColumnOrderNumber, variants: []string{
		"NUM_PEDIDO", "Pedido", "Nº Pedido", "Número do Pedido", "Numero Pedido", "NR_PEDIDO", "Nº do Pedido",
	}},
	{canonical: ColumnSaleType, variants: []string{
		"TIPO_GANHO_DETALHE", "Tipo Ganho Detalhe", "Tipo de Ganho", "Tipo Ganho", "Tipo de Venda", "Tipo Venda",
	}},
	{canonical: ColumnCNPJ, variants: []string{
		"CNPJ", "CNPJ Cliente", "CNPJ do Cliente", "CPF/CNPJ", "NR_CNPJ",
	}},
	{canonical: ColumnCustomerName, variants: []string{
		"CLIENTE", "Nome Cliente", "Nome do Cliente", "Razão Social", "Razao Social", "Cliente Final",
	}},
	{canonical: ColumnPartner, variants: []string{
		"PARCEIRO", "Parceiro Vivo", "Canal", "Canal de Vendas",
	}},
	{canonical: ColumnArea, variants: []string{
		"AREA", "Área", "Área de Atuação", "Area de Atuacao", "AREA_ATUACAO", "Área Atuação",
	}},
}

// removeDiacritics decompõe e descarta marcas combinantes (acentos)
var removeDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldHeader normaliza um cabeçalho para comparação: remove acentos,
// descarta tudo que não é alfanumérico e rebaixa para minúsculas
func foldHeader(header string) string {
	folded, _, err := transform.String(removeDiacritics, header)
	if err != nil {
		folded = header
	}

	var builder strings.Builder
	for _, r := range strings.ToLower(folded) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// ResolveColumns remapeia uma linha bruta para os nomes canônicos de coluna.
//
// Um campo já presente sob o nome canônico exato nunca é sobrescrito. Para os
// demais, a primeira variante cujo cabeçalho da linha coincide (ignorando
// caixa, acentos e pontuação) vence. Campos sem correspondência ficam
// ausentes e os consumidores aplicam o padrão por campo.
func ResolveColumns(row domain.Row) domain.Row {
	resolved := make(domain.Row, len(row))
	for header, cell := range row {
		resolved[header] = cell
	}

	// Índice dos cabeçalhos brutos por forma normalizada, com ordem
	// estável para desempate
	headers := make([]string, 0, len(row))
	for header := range row {
		headers = append(headers, header)
	}
	sort.Strings(headers)

	foldedHeaders := make(map[string]string, len(headers))
	for _, header := range headers {
		folded := foldHeader(header)
		if _, exists := foldedHeaders[folded]; !exists {
			foldedHeaders[folded] = header
		}
	}

	for _, mapping := range columnVariants {
		if resolved.Has(mapping.canonical) {
			continue
		}

		for _, variant := range mapping.variants {
			source, ok := foldedHeaders[foldHeader(variant)]
			if !ok {
				continue
			}
			if cell := row.Cell(source); !cell.IsEmpty() {
				resolved[mapping.canonical] = cell
				break
			}
		}
	}

	return resolved
}

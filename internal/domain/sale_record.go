package domain

import "time"

// SaleType distingue vendas genuínas de migrações de base
type SaleType string

const (
	SaleTypeVenda    SaleType = "VENDA"
	SaleTypeMigracao SaleType = "MIGRACAO"
)

// SaleRecord representa uma unidade confirmada e atribuível de receita,
// produzida pela importação de uma linha de planilha (ou de um grupo de
// pedidos relacionados agregados em um só registro)
type SaleRecord struct {
	ID             string      `json:"id"`
	OrderNumber    string      `json:"order_number"`
	ActivationDate time.Time   `json:"activation_date"`
	GrossValue     float64     `json:"gross_value"`
	SaleType       SaleType    `json:"sale_type"`
	Partner        Partner     `json:"partner"`
	Category       Category    `json:"category"`
	AreaAtuacao    AreaAtuacao `json:"area_atuacao"`
	Product        string      `json:"product"`
	CNPJ           string      `json:"cnpj"` // CNPJ normalizado, 14 dígitos
	CustomerName   string      `json:"customer_name"`
	SourceSheet    SourceSheet `json:"source_sheet"`
	AbsorbedOrders []string    `json:"absorbed_orders,omitempty"` // Pedidos satélites agregados neste registro
}

// IsScoringEligible indica se o registro participa da apuração de pontos.
// Migrações são mantidas apenas para auditoria.
func (r *SaleRecord) IsScoringEligible() bool {
	return r.SaleType == SaleTypeVenda
}

// ScoringRevenue retorna a receita que o registro aporta na apuração:
// vendas fora da área de atuação contam pela metade
func (r *SaleRecord) ScoringRevenue() float64 {
	if r.AreaAtuacao == AreaFora {
		return r.GrossValue * foraRevenueFactor
	}
	return r.GrossValue
}

// RecordEdit descreve os campos editáveis de um registro na revisão manual
type RecordEdit struct {
	GrossValue     *float64     `json:"gross_value,omitempty"`
	ActivationDate *time.Time   `json:"activation_date,omitempty"`
	Category       *Category    `json:"category,omitempty"`
	Partner        *Partner     `json:"partner,omitempty"`
	AreaAtuacao    *AreaAtuacao `json:"area_atuacao,omitempty"`
	Product        *string      `json:"product,omitempty"`
	OrderNumber    *string      `json:"order_number,omitempty"`
	CustomerName   *string      `json:"customer_name,omitempty"`
}

// ApplyEdit aplica uma edição de revisão manual sobre uma cópia do registro.
// Campos inválidos (valor negativo, categoria ou parceiro desconhecidos) são
// ignorados para que o conjunto editado continue equivalente a um conjunto
// recém-importado.
func (r SaleRecord) ApplyEdit(edit RecordEdit) SaleRecord {
	if edit.GrossValue != nil && *edit.GrossValue >= 0 {
		r.GrossValue = *edit.GrossValue
	}
	if edit.ActivationDate != nil && !edit.ActivationDate.IsZero() {
		r.ActivationDate = *edit.ActivationDate
	}
	if edit.Category != nil && edit.Category.IsValid() {
		r.Category = *edit.Category
	}
	if edit.Partner != nil && edit.Partner.IsValid() {
		r.Partner = *edit.Partner
	}
	if edit.AreaAtuacao != nil && edit.AreaAtuacao.IsValid() {
		r.AreaAtuacao = *edit.AreaAtuacao
	}
	if edit.Product != nil && *edit.Product != "" {
		r.Product = *edit.Product
	}
	if edit.OrderNumber != nil && *edit.OrderNumber != "" {
		r.OrderNumber = *edit.OrderNumber
	}
	if edit.CustomerName != nil && *edit.CustomerName != "" {
		r.CustomerName = *edit.CustomerName
	}
	return r
}

package models

import (
	"net/url"
	"time"

	"github.com/diewo77/painel/validation"
)

const (
	StatusPendente = "Pendente"
	StatusPago     = "Pago"
)

// Annotation is a dated billing entry linking a client to a company (anotacoes).
// Cliente and Empresa are resolved by the backend for display only.
type Annotation struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
	ClienteID      uint      `gorm:"index;not null" json:"clienteId" validate:"required"`
	EmpresaID      uint      `gorm:"index;not null" json:"empresaId" validate:"required"`
	ProdutoServico string    `gorm:"size:255;not null" json:"produtoServico" validate:"required"`
	Quantidade     Decimal   `gorm:"not null" json:"quantidade" validate:"required,gt=0"`
	ValorTotal     Decimal   `gorm:"not null" json:"valorTotal" validate:"required,gt=0"`
	DataVencimento Date      `gorm:"index" json:"dataVencimento" validate:"required"`
	Status         string    `gorm:"size:16;not null;default:Pendente" json:"status" validate:"required,oneof=Pendente Pago"`
	Cliente        *Client   `gorm:"foreignKey:ClienteID" json:"cliente,omitempty" validate:"-"`
	Empresa        *Company  `gorm:"foreignKey:EmpresaID" json:"empresa,omitempty" validate:"-"`
}

func (Annotation) TableName() string { return "anotacoes" }

func (a *Annotation) GetID() uint { return a.ID }

func (a *Annotation) ClientName() string {
	if a.Cliente == nil {
		return ""
	}
	return a.Cliente.NomeCompleto
}

func (a *Annotation) CompanyName() string {
	if a.Empresa == nil {
		return ""
	}
	return a.Empresa.RazaoSocial
}

func (a *Annotation) Bind(form url.Values, _ bool) validation.Violations {
	r := newFormReader(form)
	a.ClienteID = r.id("clienteId")
	a.EmpresaID = r.id("empresaId")
	a.ProdutoServico = r.str("produtoServico")
	a.Quantidade = r.decimal("quantidade")
	a.ValorTotal = r.decimal("valorTotal")
	a.DataVencimento = r.date("dataVencimento")
	a.Status = r.str("status")
	validation.Struct(a, r.v)
	return r.v
}

func (a *Annotation) FormValues() map[string]string {
	values := map[string]string{
		"clienteId":      formatID(a.ClienteID),
		"empresaId":      formatID(a.EmpresaID),
		"produtoServico": a.ProdutoServico,
		"quantidade":     "",
		"valorTotal":     "",
		"dataVencimento": a.DataVencimento.String(),
		"status":         a.Status,
	}
	if a.Quantidade != 0 {
		values["quantidade"] = a.Quantidade.String()
	}
	if a.ValorTotal != 0 {
		values["valorTotal"] = a.ValorTotal.String()
	}
	return values
}

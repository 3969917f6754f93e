package models

import (
	"net/url"
	"time"

	"github.com/diewo77/painel/validation"
)

// Company is a business record (empresas).
type Company struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	CreatedAt          time.Time `json:"-"`
	UpdatedAt          time.Time `json:"-"`
	CNPJ               string    `gorm:"size:18;not null" json:"cnpj" validate:"required"`
	RazaoSocial        string    `gorm:"size:255;not null" json:"razaoSocial" validate:"required"`
	NomeFantasia       string    `gorm:"size:255" json:"nomeFantasia"`
	CEP                string    `gorm:"size:9" json:"cep" validate:"required"`
	Endereco           string    `gorm:"size:255" json:"endereco" validate:"required"`
	Bairro             string    `gorm:"size:128" json:"bairro" validate:"required"`
	Cidade             string    `gorm:"size:128" json:"cidade" validate:"required"`
	Estado             string    `gorm:"size:64" json:"estado" validate:"required"`
	Email              string    `gorm:"size:255" json:"email" validate:"required,email"`
	Telefone           string    `gorm:"size:32" json:"telefone" validate:"required"`
	InscricaoEstadual  string    `gorm:"size:32" json:"inscricaoEstadual"`
	InscricaoMunicipal string    `gorm:"size:32" json:"inscricaoMunicipal"`
	Responsavel        string    `gorm:"size:255" json:"responsavel" validate:"required"`
	Observacoes        string    `json:"observacoes"`
}

func (Company) TableName() string { return "empresas" }

func (c *Company) GetID() uint { return c.ID }

// DisplayName prefers the trade name and falls back to the legal name.
func (c *Company) DisplayName() string {
	if c.NomeFantasia != "" {
		return c.NomeFantasia
	}
	return c.RazaoSocial
}

func (c *Company) Bind(form url.Values, _ bool) validation.Violations {
	r := newFormReader(form)
	c.CNPJ = r.str("cnpj")
	c.RazaoSocial = r.str("razaoSocial")
	c.NomeFantasia = r.str("nomeFantasia")
	c.CEP = r.str("cep")
	c.Endereco = r.str("endereco")
	c.Bairro = r.str("bairro")
	c.Cidade = r.str("cidade")
	c.Estado = r.str("estado")
	c.Email = r.str("email")
	c.Telefone = r.str("telefone")
	c.InscricaoEstadual = r.str("inscricaoEstadual")
	c.InscricaoMunicipal = r.str("inscricaoMunicipal")
	c.Responsavel = r.str("responsavel")
	c.Observacoes = r.str("observacoes")
	validation.Struct(c, r.v)
	return r.v
}

func (c *Company) FormValues() map[string]string {
	return map[string]string{
		"cnpj":               c.CNPJ,
		"razaoSocial":        c.RazaoSocial,
		"nomeFantasia":       c.NomeFantasia,
		"cep":                c.CEP,
		"endereco":           c.Endereco,
		"bairro":             c.Bairro,
		"cidade":             c.Cidade,
		"estado":             c.Estado,
		"email":              c.Email,
		"telefone":           c.Telefone,
		"inscricaoEstadual":  c.InscricaoEstadual,
		"inscricaoMunicipal": c.InscricaoMunicipal,
		"responsavel":        c.Responsavel,
		"observacoes":        c.Observacoes,
	}
}

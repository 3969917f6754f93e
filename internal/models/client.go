package models

import (
	"net/url"
	"time"

	"github.com/diewo77/painel/validation"
)

// Client is a customer record (clientes).
type Client struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
	NomeCompleto   string    `gorm:"size:255;not null" json:"nomeCompleto" validate:"required"`
	CPF            string    `gorm:"size:14;not null" json:"cpf" validate:"required"`
	DataNascimento Date      `json:"dataNascimento" validate:"required"`
	NomeMae        string    `gorm:"size:255" json:"nomeMae" validate:"required"`
	Email          string    `gorm:"size:255" json:"email" validate:"required,email"`
	Telefone       string    `gorm:"size:32" json:"telefone" validate:"required"`
	CEP            string    `gorm:"size:9" json:"cep" validate:"required"`
	Observacoes    string    `json:"observacoes"`
}

func (Client) TableName() string { return "clientes" }

func (c *Client) GetID() uint { return c.ID }

// Bind fills c from submitted form values and returns the fields that failed validation.
func (c *Client) Bind(form url.Values, _ bool) validation.Violations {
	r := newFormReader(form)
	c.NomeCompleto = r.str("nomeCompleto")
	c.CPF = r.str("cpf")
	c.DataNascimento = r.date("dataNascimento")
	c.NomeMae = r.str("nomeMae")
	c.Email = r.str("email")
	c.Telefone = r.str("telefone")
	c.CEP = r.str("cep")
	c.Observacoes = r.str("observacoes")
	validation.Struct(c, r.v)
	return r.v
}

func (c *Client) FormValues() map[string]string {
	return map[string]string{
		"nomeCompleto":   c.NomeCompleto,
		"cpf":            c.CPF,
		"dataNascimento": c.DataNascimento.String(),
		"nomeMae":        c.NomeMae,
		"email":          c.Email,
		"telefone":       c.Telefone,
		"cep":            c.CEP,
		"observacoes":    c.Observacoes,
	}
}

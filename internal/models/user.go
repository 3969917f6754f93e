package models

import (
	"net/url"
	"time"

	"github.com/diewo77/painel/validation"
)

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// User is an account allowed to sign in. Senha travels only towards the
// backend; the stored hash is never serialized.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
	NomeUsuario  string    `gorm:"size:255;not null" json:"nomeUsuario" validate:"required"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email" validate:"required,email"`
	Senha        string    `gorm:"-" json:"senha,omitempty"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:16;not null;default:User" json:"role" validate:"required,oneof=User Admin"`
}

func (User) TableName() string { return "usuarios" }

func (u *User) GetID() uint { return u.ID }

// Bind reads the user form. The password is mandatory on creation only; a
// blank password on edit keeps the current one.
func (u *User) Bind(form url.Values, creating bool) validation.Violations {
	r := newFormReader(form)
	u.NomeUsuario = r.str("nomeUsuario")
	u.Email = r.str("email")
	u.Senha = form.Get("senha")
	u.Role = r.str("role")
	if creating {
		validation.Required("senha", u.Senha, r.v)
	}
	validation.Struct(u, r.v)
	return r.v
}

// FormValues never echoes the password back into a form.
func (u *User) FormValues() map[string]string {
	return map[string]string{
		"nomeUsuario": u.NomeUsuario,
		"email":       u.Email,
		"senha":       "",
		"role":        u.Role,
	}
}

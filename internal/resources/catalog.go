package resources

import (
	"github.com/diewo77/painel/internal/api"
	"github.com/diewo77/painel/internal/models"
)

var Clients = &Resource[models.Client, *models.Client]{
	Slug:     "clientes",
	Key:      "clients",
	NavKey:   "nav.clients",
	Endpoint: api.Clients,
	Columns: []Column[models.Client]{
		{Header: "field.id", Value: func(c *models.Client, _ Translator) string { return idString(c.ID) }},
		{Header: "field.nomeCompleto", Value: func(c *models.Client, _ Translator) string { return c.NomeCompleto }},
		{Header: "field.cpf", Value: func(c *models.Client, _ Translator) string { return c.CPF }},
		{Header: "field.email", Value: func(c *models.Client, _ Translator) string { return c.Email }},
		{Header: "field.telefone", Value: func(c *models.Client, _ Translator) string { return c.Telefone }},
	},
	Fields: []Field{
		{Name: "nomeCompleto", Label: "field.nomeCompleto", Type: "text", Required: true},
		{Name: "cpf", Label: "field.cpf", Type: "text", Required: true},
		{Name: "dataNascimento", Label: "field.dataNascimento", Type: "date", Required: true},
		{Name: "nomeMae", Label: "field.nomeMae", Type: "text", Required: true},
		{Name: "email", Label: "field.email", Type: "email", Required: true},
		{Name: "telefone", Label: "field.telefone", Type: "text", Required: true},
		{Name: "cep", Label: "field.cep", Type: "text", Required: true},
		{Name: "observacoes", Label: "field.observacoes", Type: "textarea"},
	},
}

// The company list shows the trade name in its name column.
var Companies = &Resource[models.Company, *models.Company]{
	Slug:     "empresas",
	Key:      "companies",
	NavKey:   "nav.companies",
	Endpoint: api.Companies,
	Columns: []Column[models.Company]{
		{Header: "field.cnpj", Value: func(c *models.Company, _ Translator) string { return c.CNPJ }},
		{Header: "field.telefone", Value: func(c *models.Company, _ Translator) string { return c.Telefone }},
		{Header: "field.nomeFantasia", Value: func(c *models.Company, _ Translator) string { return c.NomeFantasia }},
		{Header: "field.endereco", Value: func(c *models.Company, _ Translator) string { return c.Endereco }},
	},
	Fields: []Field{
		{Name: "cnpj", Label: "field.cnpj", Type: "text", Required: true},
		{Name: "razaoSocial", Label: "field.razaoSocial", Type: "text", Required: true},
		{Name: "nomeFantasia", Label: "field.nomeFantasia", Type: "text"},
		{Name: "cep", Label: "field.cep", Type: "text", Required: true},
		{Name: "endereco", Label: "field.endereco", Type: "text", Required: true},
		{Name: "bairro", Label: "field.bairro", Type: "text", Required: true},
		{Name: "cidade", Label: "field.cidade", Type: "text", Required: true},
		{Name: "estado", Label: "field.estado", Type: "text", Required: true},
		{Name: "email", Label: "field.email", Type: "email", Required: true},
		{Name: "telefone", Label: "field.telefone", Type: "text", Required: true},
		{Name: "inscricaoEstadual", Label: "field.inscricaoEstadual", Type: "text"},
		{Name: "inscricaoMunicipal", Label: "field.inscricaoMunicipal", Type: "text"},
		{Name: "responsavel", Label: "field.responsavel", Type: "text", Required: true},
		{Name: "observacoes", Label: "field.observacoes", Type: "textarea"},
	},
}

var roleOptions = []Option{
	{Value: models.RoleUser, Label: "role.User"},
	{Value: models.RoleAdmin, Label: "role.Admin"},
}

var Users = &Resource[models.User, *models.User]{
	Slug:     "usuarios",
	Key:      "users",
	NavKey:   "nav.users",
	Endpoint: api.Users,
	Columns: []Column[models.User]{
		{Header: "field.id", Value: func(u *models.User, _ Translator) string { return idString(u.ID) }},
		{Header: "field.nome", Value: func(u *models.User, _ Translator) string { return u.NomeUsuario }},
		{Header: "field.email", Value: func(u *models.User, _ Translator) string { return u.Email }},
		{Header: "field.role", Value: func(u *models.User, t Translator) string { return t("role." + u.Role) }},
	},
	Fields: []Field{
		{Name: "nomeUsuario", Label: "field.nomeUsuario", Type: "text", Required: true},
		{Name: "email", Label: "field.email", Type: "email", Required: true},
		{Name: "senha", Label: "field.senha", Type: "password", CreateOnly: true, EditLabel: "field.senha_edit"},
		{Name: "role", Label: "field.role", Type: "select", Required: true, Options: roleOptions},
	},
}

var statusOptions = []Option{
	{Value: models.StatusPendente, Label: "status.Pendente"},
	{Value: models.StatusPago, Label: "status.Pago"},
}

var Annotations = &Resource[models.Annotation, *models.Annotation]{
	Slug:     "anotacoes",
	Key:      "annotations",
	NavKey:   "nav.annotations",
	Endpoint: api.Annotations,
	Columns: []Column[models.Annotation]{
		{Header: "field.id", Value: func(a *models.Annotation, _ Translator) string { return idString(a.ID) }},
		{Header: "field.cliente", Value: func(a *models.Annotation, _ Translator) string { return a.ClientName() }},
		{Header: "field.empresa", Value: func(a *models.Annotation, _ Translator) string { return a.CompanyName() }},
		{Header: "field.produtoServico", Value: func(a *models.Annotation, _ Translator) string { return a.ProdutoServico }},
		{Header: "field.quantidade", Value: func(a *models.Annotation, _ Translator) string { return a.Quantidade.String() }},
		{Header: "field.valorTotal", Value: func(a *models.Annotation, _ Translator) string { return a.ValorTotal.Money() }},
		{Header: "field.dataVencimento", Value: func(a *models.Annotation, _ Translator) string { return a.DataVencimento.Display() }},
		{Header: "field.status", Value: func(a *models.Annotation, t Translator) string { return t("status." + a.Status) }},
	},
	Fields: []Field{
		{Name: "clienteId", Label: "field.clienteId", Type: "number", Required: true, Step: "1"},
		{Name: "empresaId", Label: "field.empresaId", Type: "number", Required: true, Step: "1"},
		{Name: "produtoServico", Label: "field.produtoServico", Type: "text", Required: true},
		{Name: "quantidade", Label: "field.quantidade", Type: "number", Required: true, Step: "any"},
		{Name: "valorTotal", Label: "field.valorTotal", Type: "number", Required: true, Step: "0.01"},
		{Name: "dataVencimento", Label: "field.dataVencimento", Type: "date", Required: true},
		{Name: "status", Label: "field.status", Type: "select", Required: true, Options: statusOptions},
	},
}

// ReportColumns are the report table headers. The name column resolves the
// client or the company depending on the report category.
var ReportColumns = []string{"field.id", "field.nome", "field.produtoServico", "field.quantidade", "field.valorTotal", "field.dataVencimento"}

// ReportRows renders report rows for tipo.
func ReportRows(items []models.Annotation, tipo string) []Row {
	rows := make([]Row, 0, len(items))
	for i := range items {
		a := &items[i]
		name := a.CompanyName()
		if tipo == api.ReportClients {
			name = a.ClientName()
		}
		rows = append(rows, Row{ID: a.ID, Cells: []string{
			idString(a.ID), name, a.ProdutoServico, a.Quantidade.String(), a.ValorTotal.Money(), a.DataVencimento.Display(),
		}})
	}
	return rows
}

package i18n

var messages = map[string]map[string]string{
	"pt": {
		"app.name": "Painel",

		// navigation
		"nav.dashboard":   "Dashboard",
		"nav.companies":   "Empresas",
		"nav.clients":     "Clientes",
		"nav.users":       "Usuários",
		"nav.annotations": "Anotações",
		"nav.reports":     "Relatórios",
		"nav.logout":      "Sair",

		// actions
		"action.new":            "Cadastrar",
		"action.edit":           "Editar",
		"action.delete":         "Deletar",
		"action.save":           "Salvar",
		"action.cancel":         "Cancelar",
		"action.confirm_delete": "Sim, deletar",
		"action.filter":         "Filtrar",
		"action.generate_pdf":   "Gerar PDF",
		"action.actions":        "Ações",
		"action.select":         "Selecione",

		// table and pagination
		"table.empty":         "Nenhum registro encontrado",
		"pagination.total":    "Total",
		"pagination.previous": "Anterior",
		"pagination.next":     "Próxima",
		"pagination.page":     "Página",

		// delete confirmation
		"delete.title":   "Confirmar exclusão",
		"delete.message": "Tem certeza que deseja deletar?",

		// fields
		"field.id":                 "ID",
		"field.nomeCompleto":       "Nome Completo",
		"field.cpf":                "CPF",
		"field.dataNascimento":     "Data de Nascimento",
		"field.nomeMae":            "Nome da Mãe",
		"field.email":              "E-mail",
		"field.telefone":           "Telefone",
		"field.cep":                "CEP",
		"field.observacoes":        "Observações",
		"field.cnpj":               "CNPJ",
		"field.razaoSocial":        "Razão Social",
		"field.nomeFantasia":       "Nome Fantasia",
		"field.endereco":           "Endereço",
		"field.bairro":             "Bairro",
		"field.cidade":             "Cidade",
		"field.estado":             "Estado",
		"field.inscricaoEstadual":  "Inscrição Estadual",
		"field.inscricaoMunicipal": "Inscrição Municipal",
		"field.responsavel":        "Responsável",
		"field.nomeUsuario":        "Nome do Usuário",
		"field.nome":               "Nome",
		"field.senha":              "Senha",
		"field.senha_edit":         "Senha (deixe em branco para manter)",
		"field.role":               "Função",
		"field.clienteId":          "Cliente ID",
		"field.empresaId":          "Empresa ID",
		"field.cliente":            "Cliente",
		"field.empresa":            "Empresa",
		"field.produtoServico":     "Produto/Serviço",
		"field.quantidade":         "Quantidade",
		"field.valorTotal":         "Valor Total",
		"field.dataVencimento":     "Data de Vencimento",
		"field.status":             "Status",

		"status.Pendente": "Pendente",
		"status.Pago":     "Pago",
		"role.User":       "Usuário",
		"role.Admin":      "Administrador",

		// clients
		"clients.title":          "Lista de Clientes",
		"clients.new_title":      "Cadastrar Cliente",
		"clients.edit_title":     "Editar Cliente",
		"clients.fetch_error":    "Erro ao buscar clientes",
		"clients.load_error":     "Erro ao carregar os dados do cliente",
		"clients.create_success": "Cliente cadastrado com sucesso!",
		"clients.create_error":   "Erro ao cadastrar cliente",
		"clients.update_success": "Cliente atualizado com sucesso!",
		"clients.update_error":   "Erro ao atualizar cliente",
		"clients.delete_success": "Cliente deletado com sucesso!",
		"clients.delete_error":   "Erro ao deletar cliente",

		// companies
		"companies.title":          "Lista de Empresas",
		"companies.new_title":      "Cadastrar Empresa",
		"companies.edit_title":     "Editar Empresa",
		"companies.fetch_error":    "Erro ao buscar empresas",
		"companies.load_error":     "Erro ao carregar dados da empresa",
		"companies.create_success": "Empresa cadastrada com sucesso!",
		"companies.create_error":   "Erro ao cadastrar empresa",
		"companies.update_success": "Empresa atualizada com sucesso!",
		"companies.update_error":   "Erro ao atualizar empresa",
		"companies.delete_success": "Empresa deletada com sucesso!",
		"companies.delete_error":   "Erro ao deletar empresa",

		// users
		"users.title":          "Lista de Usuários",
		"users.new_title":      "Cadastrar Usuário",
		"users.edit_title":     "Editar Usuário",
		"users.fetch_error":    "Erro ao buscar usuários",
		"users.load_error":     "Erro ao carregar dados do usuário",
		"users.create_success": "Usuário cadastrado com sucesso!",
		"users.create_error":   "Erro ao cadastrar usuário",
		"users.update_success": "Usuário atualizado com sucesso!",
		"users.update_error":   "Erro ao atualizar usuário",
		"users.delete_success": "Usuário deletado com sucesso!",
		"users.delete_error":   "Erro ao deletar usuário",

		// annotations
		"annotations.title":          "Lista de Anotações",
		"annotations.new_title":      "Cadastrar Anotação",
		"annotations.edit_title":     "Editar Anotação",
		"annotations.fetch_error":    "Erro ao buscar anotações",
		"annotations.load_error":     "Erro ao carregar dados da anotação",
		"annotations.create_success": "Anotação cadastrada com sucesso!",
		"annotations.create_error":   "Erro ao cadastrar anotação",
		"annotations.update_success": "Anotação atualizada com sucesso!",
		"annotations.update_error":   "Erro ao atualizar anotação",
		"annotations.delete_success": "Anotação deletada com sucesso!",
		"annotations.delete_error":   "Erro ao deletar anotação",

		// reports
		"reports.title":         "Relatórios",
		"reports.tipo":          "Tipo",
		"reports.tipo_clientes": "Clientes",
		"reports.tipo_empresas": "Empresas",
		"reports.data_inicio":   "Data Início",
		"reports.data_fim":      "Data Fim",
		"reports.choose_tipo":   "Selecione um tipo para visualizar o relatório.",
		"reports.select_tipo":   "Selecione um tipo para gerar o relatório.",
		"reports.fetch_error":   "Erro ao buscar relatórios",
		"reports.pdf_error":     "Erro ao gerar relatório",

		// auth
		"login.title":        "Login",
		"login.submit":       "Entrar",
		"login.error":        "Email ou senha inválidos. Tente novamente.",
		"login.success":      "Login realizado com sucesso!",
		"login.no_account":   "Não tem conta? Registre-se",
		"logout.success":     "Sessão encerrada.",
		"register.title":     "Registrar",
		"register.submit":    "Registrar",
		"register.success":   "Usuário registrado com sucesso!",
		"register.error":     "Erro ao registrar usuário. Tente novamente.",
		"register.have_acct": "Já tem conta? Entrar",

		// dashboard
		"dashboard.title":    "Dashboard",
		"dashboard.welcome":  "Bem-vindo ao painel",
		"dashboard.identity": "Usuário",
		"dashboard.role":     "Função",
		"dashboard.error":    "Erro ao carregar os totais",

		// validation
		"required":         "Campo obrigatório",
		"invalid_email":    "Insira um email válido",
		"invalid_number":   "Número inválido",
		"invalid_date":     "Data inválida",
		"invalid_option":   "Opção inválida",
		"must_be_positive": "Deve ser maior que zero",
		"invalid":          "Valor inválido",

		"error.generic":   "Algo deu errado. Tente novamente.",
		"error.not_found": "Página não encontrada",
	},
	"en": {
		"app.name": "Admin panel",

		"nav.dashboard":   "Dashboard",
		"nav.companies":   "Companies",
		"nav.clients":     "Clients",
		"nav.users":       "Users",
		"nav.annotations": "Annotations",
		"nav.reports":     "Reports",
		"nav.logout":      "Sign out",

		"action.new":            "New",
		"action.edit":           "Edit",
		"action.delete":         "Delete",
		"action.save":           "Save",
		"action.cancel":         "Cancel",
		"action.confirm_delete": "Yes, delete",
		"action.filter":         "Filter",
		"action.generate_pdf":   "Generate PDF",
		"action.actions":        "Actions",
		"action.select":         "Select",

		"table.empty":         "No records found",
		"pagination.total":    "Total",
		"pagination.previous": "Previous",
		"pagination.next":     "Next",
		"pagination.page":     "Page",

		"delete.title":   "Confirm deletion",
		"delete.message": "Are you sure you want to delete this record?",

		"field.id":                 "ID",
		"field.nomeCompleto":       "Full name",
		"field.cpf":                "CPF",
		"field.dataNascimento":     "Birth date",
		"field.nomeMae":            "Mother's name",
		"field.email":              "Email",
		"field.telefone":           "Phone",
		"field.cep":                "Postal code",
		"field.observacoes":        "Notes",
		"field.cnpj":               "CNPJ",
		"field.razaoSocial":        "Legal name",
		"field.nomeFantasia":       "Trade name",
		"field.endereco":           "Address",
		"field.bairro":             "District",
		"field.cidade":             "City",
		"field.estado":             "State",
		"field.inscricaoEstadual":  "State registration",
		"field.inscricaoMunicipal": "Municipal registration",
		"field.responsavel":        "Responsible",
		"field.nomeUsuario":        "User name",
		"field.nome":               "Name",
		"field.senha":              "Password",
		"field.senha_edit":         "Password (leave blank to keep)",
		"field.role":               "Role",
		"field.clienteId":          "Client ID",
		"field.empresaId":          "Company ID",
		"field.cliente":            "Client",
		"field.empresa":            "Company",
		"field.produtoServico":     "Product/Service",
		"field.quantidade":         "Quantity",
		"field.valorTotal":         "Total value",
		"field.dataVencimento":     "Due date",
		"field.status":             "Status",

		"status.Pendente": "Pending",
		"status.Pago":     "Paid",
		"role.User":       "User",
		"role.Admin":      "Administrator",

		"clients.title":          "Clients",
		"clients.new_title":      "New client",
		"clients.edit_title":     "Edit client",
		"clients.fetch_error":    "Error fetching clients",
		"clients.load_error":     "Error loading client data",
		"clients.create_success": "Client created successfully!",
		"clients.create_error":   "Error creating client",
		"clients.update_success": "Client updated successfully!",
		"clients.update_error":   "Error updating client",
		"clients.delete_success": "Client deleted successfully!",
		"clients.delete_error":   "Error deleting client",

		"companies.title":          "Companies",
		"companies.new_title":      "New company",
		"companies.edit_title":     "Edit company",
		"companies.fetch_error":    "Error fetching companies",
		"companies.load_error":     "Error loading company data",
		"companies.create_success": "Company created successfully!",
		"companies.create_error":   "Error creating company",
		"companies.update_success": "Company updated successfully!",
		"companies.update_error":   "Error updating company",
		"companies.delete_success": "Company deleted successfully!",
		"companies.delete_error":   "Error deleting company",

		"users.title":          "Users",
		"users.new_title":      "New user",
		"users.edit_title":     "Edit user",
		"users.fetch_error":    "Error fetching users",
		"users.load_error":     "Error loading user data",
		"users.create_success": "User created successfully!",
		"users.create_error":   "Error creating user",
		"users.update_success": "User updated successfully!",
		"users.update_error":   "Error updating user",
		"users.delete_success": "User deleted successfully!",
		"users.delete_error":   "Error deleting user",

		"annotations.title":          "Annotations",
		"annotations.new_title":      "New annotation",
		"annotations.edit_title":     "Edit annotation",
		"annotations.fetch_error":    "Error fetching annotations",
		"annotations.load_error":     "Error loading annotation data",
		"annotations.create_success": "Annotation created successfully!",
		"annotations.create_error":   "Error creating annotation",
		"annotations.update_success": "Annotation updated successfully!",
		"annotations.update_error":   "Error updating annotation",
		"annotations.delete_success": "Annotation deleted successfully!",
		"annotations.delete_error":   "Error deleting annotation",

		"reports.title":         "Reports",
		"reports.tipo":          "Type",
		"reports.tipo_clientes": "Clients",
		"reports.tipo_empresas": "Companies",
		"reports.data_inicio":   "From",
		"reports.data_fim":      "To",
		"reports.choose_tipo":   "Select a type to view the report.",
		"reports.select_tipo":   "Select a type to generate the report.",
		"reports.fetch_error":   "Error fetching reports",
		"reports.pdf_error":     "Error generating report",

		"login.title":        "Sign in",
		"login.submit":       "Sign in",
		"login.error":        "Invalid email or password. Try again.",
		"login.success":      "Signed in successfully!",
		"login.no_account":   "No account? Register",
		"logout.success":     "Signed out.",
		"register.title":     "Register",
		"register.submit":    "Register",
		"register.success":   "User registered successfully!",
		"register.error":     "Error registering user. Try again.",
		"register.have_acct": "Already registered? Sign in",

		"dashboard.title":    "Dashboard",
		"dashboard.welcome":  "Welcome to the admin panel",
		"dashboard.identity": "User",
		"dashboard.role":     "Role",
		"dashboard.error":    "Error loading totals",

		"required":         "Required",
		"invalid_email":    "Enter a valid email",
		"invalid_number":   "Invalid number",
		"invalid_date":     "Invalid date",
		"invalid_option":   "Invalid option",
		"must_be_positive": "Must be greater than zero",
		"invalid":          "Invalid value",

		"error.generic":   "Something went wrong. Try again.",
		"error.not_found": "Page not found",
	},
}

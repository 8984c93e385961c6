package cli

// User-facing notices, kept in Portuguese to match the app this client
// replaces.
const (
	msgUsersLoadFailed    = "Não foi possível carregar os usuários. Verifique sua conexão e tente novamente."
	msgFieldsRequired     = "Campos obrigatórios: informe usuário e senha."
	msgUserNotFound       = "Usuário não encontrado. Verifique o usuário digitado."
	msgBadCredentials     = "Credenciais inválidas. Usuário ou senha incorretos."
	msgLoginFailed        = "Falha no login. Não foi possível autenticar. Tente novamente."
	msgProductsLoadFailed = "Não foi possível carregar os produtos. Tente novamente."
	msgProductLoadFailed  = "Não foi possível carregar os detalhes do produto."
	msgProductNotFound    = "Produto não encontrado."
	msgNoProducts         = "Nenhum produto encontrado."
)

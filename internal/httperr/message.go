package httperr

import "errors"

const (
	MsgConnection = "Erro de conexão. Verifique se a API está rodando."
	MsgTimeout    = "Tempo de requisição excedido. Tente novamente."
	MsgUnknown    = "Erro desconhecido. Tente novamente."
)

// Message turns an error from the appointments API client into the text
// shown to the user. It never returns an empty string.
func Message(err error) string {
	var apiErr *APIError
	if err == nil || !errors.As(err, &apiErr) || apiErr == nil {
		return MsgUnknown
	}

	if apiErr.Body != nil && apiErr.Body.Message != "" {
		return apiErr.Body.Message
	}

	switch apiErr.Kind {
	case KindNetwork:
		return MsgConnection
	case KindTimeout:
		return MsgTimeout
	}

	if msg := apiErr.Error(); msg != "" {
		return msg
	}
	return MsgUnknown
}

package metadomain

import "encoding/json"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error *ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta.
// Raw guarda o objeto "error" exatamente como veio, para ser repassado ao cliente.
type ErrorDetails struct {
	Message      string          `json:"message"`
	Type         string          `json:"type"`
	Code         int             `json:"code"`
	ErrorSubcode int             `json:"error_subcode,omitempty"`
	FBTraceID    string          `json:"fbtrace_id,omitempty"`
	Raw          json.RawMessage `json:"-"`
}

// ParseErrorResponse extrai o objeto de erro do corpo, nil se não houver
func ParseErrorResponse(body []byte) *ErrorDetails {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := jsonCodec.Unmarshal(body, &envelope); err != nil || len(envelope.Error) == 0 || string(envelope.Error) == "null" {
		return nil
	}

	details := &ErrorDetails{Raw: envelope.Error}
	if err := jsonCodec.Unmarshal(envelope.Error, details); err != nil {
		// "error" pode ser uma string simples
		var message string
		if jsonCodec.Unmarshal(envelope.Error, &message) == nil {
			details.Message = message
		}
	}

	return details
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorDetails) IsTokenExpired() bool {
	if e == nil {
		return false
	}
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Code == 190 ||
		(e.Type == "OAuthException" && (e.ErrorSubcode == 460 || e.ErrorSubcode == 463 || e.ErrorSubcode == 467))
}

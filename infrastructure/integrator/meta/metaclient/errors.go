package metaclient

import (
	"errors"
	"fmt"
	"net/http"

	metadomain "github.com/vfg2006/meta-ads-dashboard-api/infrastructure/integrator/meta/domain"
)

// ErrRequestFailed indica que nenhuma tentativa obteve resposta HTTP
var ErrRequestFailed = errors.New("meta graph request failed")

// GraphError é uma resposta não 2xx da Graph API. Detail guarda o objeto
// "error" devolvido pelo Meta, quando existir.
type GraphError struct {
	StatusCode int
	Transient  bool
	Detail     *metadomain.ErrorDetails
}

func (e *GraphError) Error() string {
	if e.Detail != nil && e.Detail.Message != "" {
		return fmt.Sprintf("meta graph error (status %d): %s", e.StatusCode, e.Detail.Message)
	}
	return fmt.Sprintf("meta graph error (status %d): %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsTokenExpired indica se o Meta rejeitou o token de acesso
func (e *GraphError) IsTokenExpired() bool {
	return e.Detail.IsTokenExpired()
}

func newGraphError(resp *Response) *GraphError {
	return &GraphError{
		StatusCode: resp.StatusCode,
		Transient:  IsRetryableStatus(resp.StatusCode),
		Detail:     metadomain.ParseErrorResponse(resp.Body),
	}
}

// AsGraphError extrai um *GraphError da cadeia de erros
func AsGraphError(err error) (*GraphError, bool) {
	var graphErr *GraphError
	if errors.As(err, &graphErr) {
		return graphErr, true
	}
	return nil, false
}

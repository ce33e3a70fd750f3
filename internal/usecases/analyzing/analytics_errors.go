package analyzing

import (
	"errors"
	"fmt"
)

var (
	ErrShopNotFound       = errors.New("loja não encontrada")
	ErrInvalidPeriod      = errors.New("período inválido")
	ErrArticleNotFound    = errors.New("artigo sem vendas no período")
	ErrInvalidWhatIfInput = errors.New("formato inválido, informe preço e custo separados por vírgula ou espaço, por exemplo: 1500, 700")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrRenderReport      = errors.New("erro ao gerar relatório")
)

// AnalyticsError carrega o código de erro da API junto com o erro base
type AnalyticsError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	ShopID  int64  // Loja envolvida
	Details string // Detalhes adicionais
}

func (e *AnalyticsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

func NewAnalyticsError(err error, code string, shopID int64, details string) *AnalyticsError {
	return &AnalyticsError{
		Err:     err,
		Code:    code,
		ShopID:  shopID,
		Details: details,
	}
}

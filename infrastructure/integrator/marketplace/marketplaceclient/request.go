package marketplaceclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrUnauthorized = errors.New("token do marketplace recusado")
	ErrExhausted    = errors.New("tentativas esgotadas ao consultar o marketplace")
)

// getJSON executa um GET respeitando o limitador de taxa, com novas tentativas em falhas transitórias
func (c *MarketplaceClient) getJSON(ctx context.Context, token, endpointPath string, query url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, endpointPath)
	endpoint.RawQuery = query.Encode()

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return errors.Wrap(err, "erro aguardando o limitador de requisições")
		}

		retryAfter, err := c.do(ctx, token, endpoint.String(), out)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrUnauthorized) || ctx.Err() != nil {
			return err
		}

		lastErr = err
		wait := c.retryDelay
		if retryAfter > 0 {
			wait = retryAfter
		}

		logrus.WithFields(logrus.Fields{
			"endpoint": endpointPath,
			"attempt":  attempt,
			"wait":     wait.String(),
		}).WithError(err).Warn("marketplace: falha na requisição, tentando novamente")

		if attempt < c.maxRetries {
			if err := c.sleep(ctx, wait); err != nil {
				return errors.Wrap(err, "requisição cancelada durante a espera")
			}
		}
	}

	return errors.Wrapf(ErrExhausted, "%s: %v", endpointPath, lastErr)
}

// do executa uma única requisição. O retorno retryAfter é positivo quando o marketplace pede espera (429).
func (c *MarketplaceClient) do(ctx context.Context, token, endpoint string, out any) (time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNoContent:
		return 0, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return 0, ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests:
		return retryAfter(resp.Header.Get("X-Ratelimit-Retry")), errors.Errorf("limite de requisições excedido: %s", resp.Status)
	default:
		return 0, errors.Errorf("requisição falhou com status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao ler a resposta")
	}
	if len(body) == 0 || string(body) == "null" {
		return 0, nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return 0, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return 0, nil
}

func retryAfter(header string) time.Duration {
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds <= 0 {
		return defaultRetryAfter
	}
	return time.Duration(seconds) * time.Second
}

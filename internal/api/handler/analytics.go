package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/vfg2006/seller-pnl-api/internal/domain"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/analyzing"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/period"
	"github.com/vfg2006/seller-pnl-api/pkg/apiErrors"
	"github.com/vfg2006/seller-pnl-api/pkg/log"
	"github.com/vfg2006/seller-pnl-api/pkg/middleware"
	"github.com/vfg2006/seller-pnl-api/pkg/utils"
)

const defaultPeriod = domain.PeriodMonth

type WhatIfRequest struct {
	Article string `json:"article"`
	Input   string `json:"input"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

func shopIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(httprouter.ParamsFromContext(r.Context()).ByName(middleware.ShopParam), 10, 64)
}

// parsePeriodRequest lê period, size e date da query string. Sem period, usa o mês corrente.
func parsePeriodRequest(r *http.Request) (period.Request, error) {
	query := r.URL.Query()
	req := period.Request{Kind: defaultPeriod}

	if token := query.Get("period"); token != "" {
		kind, err := period.ParseKind(token)
		if err != nil {
			return req, err
		}
		req.Kind = kind
	}

	if req.Kind != domain.PeriodCustom {
		return req, nil
	}

	size, err := period.ParseCustomSize(query.Get("size"))
	if err != nil {
		return req, err
	}
	req.Size = size

	anchor, err := utils.ParseDate(query.Get("date"))
	if err != nil {
		return req, fmt.Errorf("data inválida, use AAAA-MM-DD: %w", err)
	}
	req.Anchor = anchor

	return req, nil
}

// writeAnalyticsError converte os erros do serviço de análise para a resposta padronizada
func writeAnalyticsError(w http.ResponseWriter, r *http.Request, shopID int64, err error) {
	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"shop_id": shopID,
		"error":   err.Error(),
	})

	var analyticsErr *analyzing.AnalyticsError
	if errors.As(err, &analyticsErr) {
		logger.Warn("analytics: requisição recusada")
		var details map[string]any
		if analyticsErr.Details != "" {
			details = map[string]any{"details": analyticsErr.Details}
		}
		apiErrors.WriteError(w, analyticsErr.Code, analyticsErr.Err.Error(), details)
		return
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		logger.Warn("analytics: requisição interrompida")
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Tempo de processamento esgotado, tente novamente", nil)
		return
	}

	logger.Error("analytics: erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar a análise financeira", nil)
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("analytics: falha ao serializar resposta")
	}
}

func writeFile(w http.ResponseWriter, r *http.Request, file *analyzing.ReportFile) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	if _, err := w.Write(file.Content); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("analytics: falha ao enviar arquivo")
	}
}

// periodHandler trata as rotas que recebem loja e período e respondem JSON
func periodHandler[T any](fn func(r *http.Request, shopID int64, req period.Request) (T, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shopID, err := shopIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da loja inválido", nil)
			return
		}

		req, err := parsePeriodRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		result, err := fn(r, shopID, req)
		if err != nil {
			writeAnalyticsError(w, r, shopID, err)
			return
		}

		writeJSON(w, r, result)
	})
}

// shopHandler trata as rotas que recebem apenas a loja e respondem JSON
func shopHandler[T any](fn func(r *http.Request, shopID int64) (T, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shopID, err := shopIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da loja inválido", nil)
			return
		}

		result, err := fn(r, shopID)
		if err != nil {
			writeAnalyticsError(w, r, shopID, err)
			return
		}

		writeJSON(w, r, result)
	})
}

func fileHandler(fn func(r *http.Request, shopID int64, req period.Request) (*analyzing.ReportFile, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shopID, err := shopIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da loja inválido", nil)
			return
		}

		req, err := parsePeriodRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		file, err := fn(r, shopID, req)
		if err != nil {
			writeAnalyticsError(w, r, shopID, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"shop_id": shopID,
			"file":    file.Name,
			"bytes":   len(file.Content),
		}).Info("analytics: arquivo gerado")

		writeFile(w, r, file)
	})
}

func GetShopMetrics(service analyzing.Analyzer) http.Handler {
	return periodHandler(func(r *http.Request, shopID int64, req period.Request) (*domain.ShopMetricsResult, error) {
		return service.ShopMetrics(r.Context(), shopID, req)
	})
}

func GetSummary(service analyzing.Analyzer) http.Handler {
	return periodHandler(func(r *http.Request, shopID int64, req period.Request) (SummaryResponse, error) {
		text, err := service.Summary(r.Context(), shopID, req)
		return SummaryResponse{Summary: text}, err
	})
}

func GetSummaryPDF(service analyzing.Analyzer) http.Handler {
	return fileHandler(func(r *http.Request, shopID int64, req period.Request) (*analyzing.ReportFile, error) {
		return service.SummaryPDF(r.Context(), shopID, req)
	})
}

func GetArticleReport(service analyzing.Analyzer) http.Handler {
	return fileHandler(func(r *http.Request, shopID int64, req period.Request) (*analyzing.ReportFile, error) {
		return service.ArticleReport(r.Context(), shopID, req)
	})
}

func GetArticleProfitability(service analyzing.Analyzer) http.Handler {
	return shopHandler(func(r *http.Request, shopID int64) ([]domain.ArticleProfitability, error) {
		return service.ArticleProfitability(r.Context(), shopID)
	})
}

func GetTopProducts(service analyzing.Analyzer) http.Handler {
	return shopHandler(func(r *http.Request, shopID int64) ([]domain.TopProduct, error) {
		return service.TopProducts(r.Context(), shopID)
	})
}

func GetComparison(service analyzing.Analyzer) http.Handler {
	return periodHandler(func(r *http.Request, shopID int64, req period.Request) (*domain.PeriodComparison, error) {
		return service.ComparePrevious(r.Context(), shopID, req)
	})
}

func GetAnnualYield(service analyzing.Analyzer) http.Handler {
	return shopHandler(func(r *http.Request, shopID int64) (*domain.AnnualYield, error) {
		return service.AnnualYield(r.Context(), shopID)
	})
}

func GetPayback(service analyzing.Analyzer) http.Handler {
	return periodHandler(func(r *http.Request, shopID int64, req period.Request) (*domain.PaybackReport, error) {
		return service.Payback(r.Context(), shopID, req)
	})
}

func PostWhatIf(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shopID, err := shopIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da loja inválido", nil)
			return
		}

		var req WhatIfRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Article == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Artigo não informado", nil)
			return
		}

		result, err := service.WhatIf(r.Context(), shopID, req.Article, req.Input)
		if err != nil {
			writeAnalyticsError(w, r, shopID, err)
			return
		}

		writeJSON(w, r, result)
	})
}

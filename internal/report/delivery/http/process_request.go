package http

import (
	"errors"
	"io"

	"reporting-srv/internal/model"
	"reporting-srv/internal/report"
	"reporting-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListReportsRequest(c *gin.Context) (listReportsReq, model.Scope) {
	req := listReportsReq{
		Flags: report.ParseFlags(c.Request.URL.Query()),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc
}

func (h *handler) processRunReportRequest(c *gin.Context) (runReportReq, model.Scope) {
	query := c.Request.URL.Query()
	req := runReportReq{
		ReportName: c.Param("report_name"),
		Query:      query,
		Flags:      report.ParseFlags(query),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc
}

func (h *handler) processEvictCachesRequest(c *gin.Context) (evictCachesReq, error) {
	var req evictCachesReq

	// an empty body evicts everything
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.l.Errorf(c.Request.Context(), "report.delivery.http.processEvictCachesRequest: ShouldBindJSON failed: %v", err)
		return req, err
	}
	if req.UserID < 0 {
		return req, errNegativeUserID
	}

	return req, nil
}

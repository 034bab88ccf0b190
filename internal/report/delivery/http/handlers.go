package http

import (
	"reporting-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List reports
// @Description List every report with its parameters. exportCSV or exportXLSX download the list instead.
// @Tags Report
// @Produce json
// @Produce application/x-msdownload
// @Param pretty query bool false "Indent the JSON body"
// @Param exportCSV query bool false "Download as ReportList.csv"
// @Param exportXLSX query bool false "Download as ReportList.xlsx"
// @Success 200 {object} model.GenericResultset
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Security Bearer
// @Router /api/v1/reports [get]
func (h *handler) ListReports(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc := h.processListReportsRequest(c)

	o, err := h.uc.ListReports(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListReports: usecase ListReports failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	h.writeReport(c, o)
}

// @Summary Run a report
// @Description Run a report with its R_ prefixed parameters. Pentaho reports are rendered per output-type.
// @Description parameterType=true runs a parameter query and skips the permission check.
// @Tags Report
// @Produce json
// @Produce application/x-msdownload
// @Param report_name path string true "Report name"
// @Param pretty query bool false "Indent the JSON body"
// @Param exportCSV query bool false "Download as CSV"
// @Param exportXLSX query bool false "Download as XLSX"
// @Param parameterType query bool false "Run a parameter query"
// @Param output-type query string false "Pentaho output: PDF, XLS, CSV or HTML"
// @Success 200 {object} model.GenericResultset
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Security Bearer
// @Router /api/v1/reports/{report_name} [get]
func (h *handler) RunReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc := h.processRunReportRequest(c)

	o, err := h.uc.RunReport(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.RunReport: usecase RunReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	h.writeReport(c, o)
}

// @Summary Evict report caches
// @Description Drop cached report types and user permissions after metadata changes
// @Tags Internal
// @Accept json
// @Produce json
// @Param X-Service-Key header string true "Encrypted service key"
// @Param body body evictCachesReq false "Scope of the eviction"
// @Success 200 {object} evictCachesResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /internal/v1/reports/cache/evict [post]
func (h *handler) EvictCaches(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEvictCachesRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.EvictCaches: processEvictCachesRequest failed: %v", err)
		response.Error(c, errInvalidEvictRequest, h.discord)
		return
	}

	o, err := h.uc.EvictCaches(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.EvictCaches: usecase EvictCaches failed: %v", err)
		response.Error(c, errEvictFailed, h.discord)
		return
	}

	response.OK(c, h.newEvictCachesResp(o))
}

package http

import (
	"net/http"
	"net/url"

	"reporting-srv/internal/report"
	"reporting-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const headerContentDisposition = "Content-Disposition"

type listReportsReq struct {
	Flags report.Flags
}

func (r listReportsReq) toInput() report.ListReportsInput {
	return report.ListReportsInput{Flags: r.Flags}
}

type runReportReq struct {
	ReportName string
	Query      url.Values
	Flags      report.Flags
}

func (r runReportReq) toInput() report.RunReportInput {
	return report.RunReportInput{
		ReportName: r.ReportName,
		Query:      r.Query,
		Flags:      r.Flags,
	}
}

type evictCachesReq struct {
	ReportName string `json:"report_name"`
	UserID     int64  `json:"user_id"`
}

func (r evictCachesReq) toInput() report.EvictCachesInput {
	return report.EvictCachesInput{
		ReportName: r.ReportName,
		UserID:     r.UserID,
	}
}

type evictCachesResp struct {
	ReportTypes int `json:"report_types"`
	Permissions int `json:"permissions"`
}

func (h *handler) newEvictCachesResp(o report.EvictCachesOutput) evictCachesResp {
	return evictCachesResp{
		ReportTypes: o.ReportTypes,
		Permissions: o.Permissions,
	}
}

// writeReport writes the resultset as bare JSON, or streams the export, or relays the Pentaho document.
func (h *handler) writeReport(c *gin.Context, o report.ReportOutput) {
	switch o.Format {
	case report.FormatCSV, report.FormatXLSX:
		h.writeStream(c, o)

	case report.FormatPentaho:
		if o.Document.Disposition != "" {
			c.Header(headerContentDisposition, o.Document.Disposition)
		}
		c.Data(http.StatusOK, o.Document.ContentType, o.Document.Body)

	default:
		if o.Pretty {
			c.IndentedJSON(http.StatusOK, o.Resultset)
			return
		}
		c.JSON(http.StatusOK, o.Resultset)
	}
}

func (h *handler) writeStream(c *gin.Context, o report.ReportOutput) {
	ctx := c.Request.Context()

	c.Header(headerContentDisposition, o.Document.Disposition)
	c.Header("Content-Type", o.Document.ContentType)
	c.Status(http.StatusOK)

	if err := o.Stream(c.Writer); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.writeStream: stream failed: %v", err)
		if !c.Writer.Written() {
			c.Writer.Header().Del(headerContentDisposition)
			c.Writer.Header().Del("Content-Type")
			response.Error(c, errStreamFailed, h.discord)
			return
		}
		c.Abort()
	}
}

package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"reporting-srv/internal/middleware"
	reportHTTP "reporting-srv/internal/report/delivery/http"
	reportUsecase "reporting-srv/internal/report/usecase"
)

func (srv *HTTPServer) setupReportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := reportUsecase.New(srv.reportingUC, srv.appUserUC, srv.publisher, srv.l)

	handler := reportHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Report domain registered")
	return nil
}

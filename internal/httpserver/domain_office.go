package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"reporting-srv/internal/middleware"
	officeTxHTTP "reporting-srv/internal/officetransaction/delivery/http"
	officeTxPostgre "reporting-srv/internal/officetransaction/repository/postgre"
	officeTxUsecase "reporting-srv/internal/officetransaction/usecase"
)

func (srv *HTTPServer) setupOfficeTransactionDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := officeTxPostgre.New(srv.postgresDB, srv.l)

	uc := officeTxUsecase.New(repo, srv.l)

	handler := officeTxHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Office transaction domain registered")
	return nil
}

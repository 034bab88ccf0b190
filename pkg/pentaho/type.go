package pentaho

import (
	"time"

	pkgHttp "reporting-srv/pkg/http"
)

type implPentaho struct {
	cfg    Config
	client pkgHttp.IClient
}

// Config holds the Pentaho server location and credentials.
type Config struct {
	URL          string
	Username     string
	Password     string
	SolutionPath string
	Timeout      time.Duration
}

// OutputType is a document format the Pentaho server can render.
type OutputType string

// ContentRequest asks the server to render one report.
type ContentRequest struct {
	ReportName string
	OutputType OutputType
	// Params are sent as query parameters, keys without the R_ prefix.
	Params map[string]string
}

// Content is a rendered document.
type Content struct {
	OutputType  OutputType
	ContentType string
	Body        []byte
}

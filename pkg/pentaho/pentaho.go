package pentaho

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	pkgHttp "reporting-srv/pkg/http"
)

const maxErrorBody = 512

func (p *implPentaho) GenerateContent(ctx context.Context, req ContentRequest) (*Content, error) {
	if strings.TrimSpace(req.ReportName) == "" {
		return nil, ErrReportNameRequired
	}
	outputType := req.OutputType
	if outputType == "" {
		outputType = DefaultOutputType
	}
	if outputType.Target() == "" {
		return nil, ErrUnsupportedOutputType
	}

	resp, err := p.client.Do(ctx, pkgHttp.Request{
		Method:    http.MethodGet,
		URL:       p.contentURL(req.ReportName, outputType, req.Params),
		BasicAuth: p.basicAuth(),
	})
	if err != nil {
		return nil, fmt.Errorf("pentaho: generate %q: %w", req.ReportName, err)
	}
	if !resp.IsSuccess() {
		body := string(resp.Body)
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: body}
	}

	// The response type follows the requested output type, not the server's header.
	return &Content{
		OutputType:  outputType,
		ContentType: outputType.ContentType(),
		Body:        resp.Body,
	}, nil
}

func (p *implPentaho) HealthCheck(ctx context.Context) error {
	resp, err := p.client.Do(ctx, pkgHttp.Request{
		Method:    http.MethodGet,
		URL:       strings.TrimRight(p.cfg.URL, "/") + healthPath,
		BasicAuth: p.basicAuth(),
	})
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return &RequestError{StatusCode: resp.StatusCode}
	}
	return nil
}

func (p *implPentaho) basicAuth() *pkgHttp.BasicAuth {
	if p.cfg.Username == "" {
		return nil
	}
	return &pkgHttp.BasicAuth{Username: p.cfg.Username, Password: p.cfg.Password}
}

// contentURL builds {url}/api/repos/:public:reports:{name}.prpt/generatedContent?output-target=..&params.
func (p *implPentaho) contentURL(reportName string, outputType OutputType, params map[string]string) string {
	solution := strings.ReplaceAll(strings.Trim(p.cfg.SolutionPath, "/"), "/", ":")
	if solution != "" {
		solution = ":" + solution
	}

	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	// set last so report parameters cannot change the rendering target
	q.Set(outputTargetParam, outputType.Target())

	path := fmt.Sprintf(contentPath, solution, url.PathEscape(reportName))
	return strings.TrimRight(p.cfg.URL, "/") + path + "?" + q.Encode()
}

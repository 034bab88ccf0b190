package report

import (
	"net/url"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestExtractReportParams(t *testing.T) {
	tests := []struct {
		name    string
		query   url.Values
		pentaho bool
		want    map[string]string
	}{
		{
			name:  "wraps report parameters",
			query: url.Values{"R_branch": {"1"}, "other": {"x"}},
			want:  map[string]string{"${branch}": "1"},
		},
		{
			name:    "pentaho strips prefix only",
			query:   url.Values{"R_branch": {"1"}},
			pentaho: true,
			want:    map[string]string{"branch": "1"},
		},
		{
			name:  "first value wins",
			query: url.Values{"R_officeId": {"2", "3"}},
			want:  map[string]string{"${officeId}": "2"},
		},
		{
			name:  "key without values is skipped",
			query: url.Values{"R_empty": {}, "R_ok": {""}},
			want:  map[string]string{"${ok}": ""},
		},
		{
			name:  "prefix is case sensitive",
			query: url.Values{"r_branch": {"1"}, "R": {"1"}, "output-type": {"PDF"}},
			want:  map[string]string{},
		},
		{
			name:  "nil query",
			query: nil,
			want:  map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractReportParams(tt.query, tt.pentaho)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractReportParams_OnlyPrefixedKeys(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("output holds exactly the R_ keys with their first value", prop.ForAll(
		func(reportKeys, otherKeys map[string][]string, pentaho bool) bool {
			query := url.Values{}
			for k, v := range reportKeys {
				query[ReportParamPrefix+k] = v
			}
			for k, v := range otherKeys {
				query["x"+k] = v
			}

			got := ExtractReportParams(query, pentaho)

			want := 0
			for k, v := range reportKeys {
				if len(v) == 0 {
					continue
				}
				want++
				name := k
				if !pentaho {
					name = "${" + k + "}"
				}
				if got[name] != v[0] {
					return false
				}
			}
			if len(got) != want {
				return false
			}

			for k := range got {
				if !pentaho && !(strings.HasPrefix(k, "${") && strings.HasSuffix(k, "}")) {
					return false
				}
			}
			return true
		},
		gen.MapOf(gen.AlphaString(), gen.SliceOf(gen.AlphaString())),
		gen.MapOf(gen.AlphaString(), gen.SliceOf(gen.AlphaString())),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
		want  Flags
	}{
		{name: "absent", query: url.Values{}, want: Flags{}},
		{name: "true", query: url.Values{"pretty": {"true"}, "exportCSV": {"true"}}, want: Flags{Pretty: true, ExportCSV: true}},
		{name: "case and space insensitive", query: url.Values{"parameterType": {" TRUE "}, "exportXLSX": {"True"}}, want: Flags{ParameterType: true, ExportXLSX: true}},
		{name: "other tokens are false", query: url.Values{"pretty": {"1"}, "exportCSV": {"yes"}, "parameterType": {"on"}}, want: Flags{}},
		{name: "empty value", query: url.Values{"pretty": {""}}, want: Flags{}},
		{name: "first value only", query: url.Values{"pretty": {"false", "true"}}, want: Flags{}},
		{name: "key is case sensitive", query: url.Values{"exportcsv": {"true"}}, want: Flags{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFlags(tt.query))
		})
	}
}

func TestFlags_Format(t *testing.T) {
	assert.Equal(t, FormatJSON, Flags{Pretty: true}.Format())
	assert.Equal(t, FormatCSV, Flags{ExportCSV: true, ExportXLSX: true}.Format())
	assert.Equal(t, FormatXLSX, Flags{ExportXLSX: true}.Format())
}

func TestAttachmentDisposition(t *testing.T) {
	assert.Equal(t, "attachment;filename=ClientListing.csv", AttachmentDisposition("Client Listing", "csv"))
	assert.Equal(t, "attachment;filename=ReportList.xlsx", AttachmentDisposition("ReportList", "xlsx"))
}

func TestNotAuthorizedError(t *testing.T) {
	err := &NotAuthorizedError{ReportName: "Client Listing"}
	assert.Equal(t, "Not authorised to run report: Client Listing", err.Error())
}

package pentaho

const (
	OutputPDF  OutputType = "PDF"
	OutputXLS  OutputType = "XLS"
	OutputCSV  OutputType = "CSV"
	OutputHTML OutputType = "HTML"

	DefaultOutputType   = OutputHTML
	DefaultSolutionPath = "/public/reports"

	contentPath = "/api/repos/%s:%s.prpt/generatedContent"
	healthPath  = "/api/system/authentication-provider"

	outputTargetParam = "output-target"
)

var outputTargets = map[OutputType]string{
	OutputPDF:  "pageable/pdf",
	OutputXLS:  "table/excel;page-mode=flow",
	OutputCSV:  "table/csv;page-mode=stream",
	OutputHTML: "table/html;page-mode=page",
}

var contentTypes = map[OutputType]string{
	OutputPDF:  "application/pdf",
	OutputXLS:  "application/vnd.ms-excel",
	OutputCSV:  "application/x-msdownload",
	OutputHTML: "text/html",
}

var extensions = map[OutputType]string{
	OutputPDF:  "pdf",
	OutputXLS:  "xls",
	OutputCSV:  "csv",
	OutputHTML: "html",
}

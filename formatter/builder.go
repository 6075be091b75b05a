package formatter

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/fatih/color"

	"github.com/gnolang/bython/internal"
)

var (
	errorStyle   = color.New(color.FgRed)
	successStyle = color.New(color.FgGreen)
	lineStyle    = color.New(color.FgYellow)
	codeStyle    = color.New(color.FgCyan)
	messageStyle = color.New(color.FgYellow)
)

const reportTemplate = `{{summary .Count}}
{{if .Issues}}Issues:
{{range .Issues}}{{location .Line}} {{code .Code}}
{{message .Message}}
{{end}}{{end}}`

var tmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"summary":  summary,
	"location": location,
	"code":     code,
	"message":  message,
}).Parse(reportTemplate))

/***** Text Report Builder *****/

type IssueData struct {
	Rule    string
	Line    int
	Code    string
	Message string
}

type ReportData struct {
	Count  int
	Issues []IssueData
}

// GenerateFormattedReport renders a result as colorized text: a summary
// line, then each issue with the source line it points at.
//
// It fails when an issue refers to a line the source does not have.
func GenerateFormattedReport(result *internal.Result) (string, error) {
	data := ReportData{Count: len(result.Issues)}
	for _, issue := range result.Issues {
		line, err := result.Source.LineAt(issue.Line)
		if err != nil {
			return "", fmt.Errorf("error resolving issue %q: %w", issue.Rule, err)
		}
		data.Issues = append(data.Issues, IssueData{
			Rule:    issue.Rule,
			Line:    issue.Line,
			Code:    line,
			Message: issue.Message,
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("error formatting report: %w", err)
	}
	return buf.String(), nil
}

// utils functions used in the text template

func summary(count int) string {
	prefix := "Python evaluation finished: "
	switch count {
	case 0:
		return prefix + successStyle.Sprint("No issues detected")
	case 1:
		return prefix + errorStyle.Sprint("1 issue detected")
	default:
		return prefix + errorStyle.Sprintf("%d issues detected", count)
	}
}

func location(line int) string {
	return lineStyle.Sprintf("On line %d:", line)
}

func code(line string) string {
	return codeStyle.Sprint(line)
}

func message(msg string) string {
	return messageStyle.Sprint("    Error: " + msg)
}

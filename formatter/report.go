package formatter

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gnolang/bython/internal"
)

// Report is the machine-readable form of a result.
type Report struct {
	File   string        `json:"file,omitempty" yaml:"file,omitempty"`
	Issues []ReportIssue `json:"issues" yaml:"issues"`
}

type ReportIssue struct {
	Rule    string `json:"rule" yaml:"rule"`
	Message string `json:"message" yaml:"message"`
	Line    int    `json:"line" yaml:"line"`
	Code    string `json:"code" yaml:"code"`
}

// NewReport resolves the source line of every issue.
func NewReport(result *internal.Result) (Report, error) {
	report := Report{
		File:   result.Filename,
		Issues: make([]ReportIssue, 0, len(result.Issues)),
	}
	for _, issue := range result.Issues {
		line, err := result.Source.LineAt(issue.Line)
		if err != nil {
			return Report{}, fmt.Errorf("error resolving issue %q: %w", issue.Rule, err)
		}
		report.Issues = append(report.Issues, ReportIssue{
			Rule:    issue.Rule,
			Message: issue.Message,
			Line:    issue.Line,
			Code:    line,
		})
	}
	return report, nil
}

// Format renders result in the named format: "text", "json" or "yaml".
func Format(result *internal.Result, format string) (string, error) {
	if format == "" || format == "text" {
		return GenerateFormattedReport(result)
	}

	report, err := NewReport(result)
	if err != nil {
		return "", err
	}

	var d []byte
	switch format {
	case "json":
		d, err = json.Marshal(report)
		if err == nil {
			d = append(d, '\n')
		}
	case "yaml":
		d, err = yaml.Marshal(report)
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return "", fmt.Errorf("error marshalling report to %s: %w", format, err)
	}
	return string(d), nil
}

package output

import (
	"encoding/json"
	"errors"
)

// JSONFormatter renders the result as indented JSON, the CLI default.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(report *Report) ([]byte, error) {
	switch {
	case report == nil:
		return nil, errors.New("nil report")
	case report.Monthly != nil:
		return json.MarshalIndent(report.Monthly, "", "  ")
	case report.Annual != nil:
		return json.MarshalIndent(report.Annual, "", "  ")
	default:
		return nil, errors.New("report carries no result")
	}
}

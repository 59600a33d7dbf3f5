// Package output serializes run reports.
package output

import (
	"encoding/json"
	"os"

	"github.com/ukaji3/timingplot-go/pkg/timingplot/models"
)

// ToJSON serializes a run report.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

// WriteFile writes the report as JSON to path.
func WriteFile(path string, report *models.Report, pretty bool) error {
	data, err := ToJSON(report, pretty)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

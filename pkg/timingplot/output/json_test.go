package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/timingplot-go/pkg/timingplot/models"
)

func sampleReport() *models.Report {
	return &models.Report{
		BookName: "H4RGb.xlsx",
		RunID:    "00000000-0000-0000-0000-000000000001",
		Mode:     "full",
		Data:     models.DataRange{LabelRow: 8, First: 9, End: 11},
		Labels: []models.BitLabel{
			{Bit: 47, Column: 5, Label: "RESET", PlotRow: 5},
		},
		HexRows: []models.HexRow{
			{Row: 9, Value: 0x800000000000, Hex: "0x800000000000"},
			{Row: 10, Value: 0, Hex: "0x000000000000", Changed: true},
		},
	}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleReport(), false)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "\n"))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "H4RGb.xlsx", decoded["book_name"])
	assert.Equal(t, "full", decoded["mode"])

	rows := decoded["hex_rows"].([]interface{})
	require.Len(t, rows, 2)
	first := rows[0].(map[string]interface{})
	assert.Equal(t, "0x800000000000", first["hex"])
	_, hasChanged := first["changed"]
	assert.False(t, hasChanged, "unchanged rows omit the flag")
	assert.Equal(t, true, rows[1].(map[string]interface{})["changed"])
}

func TestToJSONPretty(t *testing.T) {
	data, err := ToJSON(sampleReport(), true)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"book_name\": \"H4RGb.xlsx\"")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteFile(path, sampleReport(), false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got models.Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, []int{10}, got.ChangedRows())
	assert.Equal(t, 2, got.Data.Len())
}

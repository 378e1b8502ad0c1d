package etccsv

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"tollbook/internal/model"
)

const sampleCSV = `利用年月日（自）,時分（自）,利用ＩＣ（自）,利用ＩＣ（至）,通行料金,備考
25/05/01,07:12,日田IC,大分米良IC,"1,340",
25/05/01,18:05,大分米良IC,日田IC,"1,340",深夜割引
`

func TestParseFileUTF8(t *testing.T) {
	p := NewParser()
	records, err := p.ParseFile(context.Background(), strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, model.RawTripRecord{
		DepartureDate: "25/05/01",
		DepartureTime: "07:12",
		Origin:        "日田IC",
		Destination:   "大分米良IC",
		Fare:          "1,340",
		Remark:        "",
	}, records[0])
	assert.Equal(t, "深夜割引", records[1].Remark)
}

func TestParseFileUTF8BOM(t *testing.T) {
	p := NewParser()
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(sampleCSV)...)
	records, err := p.ParseFile(context.Background(), bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "25/05/01", records[0].DepartureDate)
}

func TestParseFileShiftJIS(t *testing.T) {
	encoded, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(sampleCSV))
	require.NoError(t, err)

	p := NewParser()
	records, err := p.ParseFile(context.Background(), bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "日田IC", records[0].Origin)
	assert.Equal(t, "大分米良IC", records[0].Destination)
}

func TestParseFileDeferredFareFallback(t *testing.T) {
	csvData := `利用年月日（自）,時分（自）,利用ＩＣ（自）,利用ＩＣ（至）,後納料金
25/05/01,07:12,日田IC,大分米良IC,1340
`
	p := NewParser()
	records, err := p.ParseFile(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1340", records[0].Fare)
}

func TestParseFilePrefersTollFare(t *testing.T) {
	csvData := `利用年月日（自）,通行料金,後納料金
25/05/01,980,1340
`
	p := NewParser()
	records, err := p.ParseFile(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "980", records[0].Fare)
}

func TestParseFileAbsentColumns(t *testing.T) {
	// A header that does not match exactly leaves the column absent.
	csvData := `利用年月日,時分,IC自,IC至,料金
25/05/01,07:12,日田IC,大分米良IC,1340
`
	p := NewParser()
	records, err := p.ParseFile(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, model.RawTripRecord{}, records[0])
}

func TestParseFileShortRows(t *testing.T) {
	csvData := `利用年月日（自）,時分（自）,利用ＩＣ（自）,利用ＩＣ（至）,通行料金,備考
25/05/01,07:12
`
	p := NewParser()
	records, err := p.ParseFile(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "25/05/01", records[0].DepartureDate)
	assert.Equal(t, "", records[0].Origin)
	assert.Equal(t, "", records[0].Fare)
}

func TestParseFileEmpty(t *testing.T) {
	p := NewParser()
	_, err := p.ParseFile(context.Background(), strings.NewReader(""))
	assert.Error(t, err)
}

package elogistia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeListEnvelopeShapesAreEquivalent(t *testing.T) {
	inner := `[{"WilayaID":"16","WilayaLabel":"Alger","Home":"500","Stopdesk":"300"}]`
	payloads := []string{
		inner,
		`{"body":` + inner + `}`,
		`{"wilayas":` + inner + `}`,
		`{"data":` + inner + `}`,
		`{"result":` + inner + `}`,
	}

	for _, payload := range payloads {
		var wilayas []Wilaya
		require.NoError(t, decodeList([]byte(payload), &wilayas), "payload=%s", payload)
		require.Len(t, wilayas, 1, "payload=%s", payload)
		assert.Equal(t, "Alger", wilayas[0].WilayaLabel)
		assert.Equal(t, "500", wilayas[0].Home)
	}
}

func TestDecodeListOrderEnvelopes(t *testing.T) {
	inner := `[{"Tracking":"TRK1"},{"Tracking":"TRK2"}]`
	for _, payload := range []string{`{"orders":` + inner + `}`, `{"commandes":` + inner + `}`} {
		var records []map[string]any
		require.NoError(t, decodeList([]byte(payload), &records), "payload=%s", payload)
		assert.Len(t, records, 2)
	}
}

func TestDecodeListEmptyObjectMeansNoRecords(t *testing.T) {
	var records []map[string]any
	require.NoError(t, decodeList([]byte(`{}`), &records))
	assert.Empty(t, records)
}

func TestDecodeListKeyedObjectFallback(t *testing.T) {
	payload := `{"1":{"Tracking":"TRK1"},"2":{"Tracking":"TRK2"}}`

	var records []map[string]any
	require.NoError(t, decodeList([]byte(payload), &records))
	assert.Len(t, records, 2)
}

func TestDecodeListRejectsGarbage(t *testing.T) {
	var records []map[string]any
	assert.Error(t, decodeList([]byte(``), &records))
	assert.Error(t, decodeList([]byte(`not json`), &records))
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		full      string
		firstname string
		name      string
	}{
		{"Amine Benali", "Amine", "Benali"},
		{"Fatima Zohra Cherif", "Fatima", "Zohra Cherif"},
		{"Karim", "Karim", "Karim"},
		{"  ", "", ""},
	}
	for _, tt := range tests {
		firstname, name := SplitName(tt.full)
		assert.Equal(t, tt.firstname, firstname, "full=%q", tt.full)
		assert.Equal(t, tt.name, name, "full=%q", tt.full)
	}
}

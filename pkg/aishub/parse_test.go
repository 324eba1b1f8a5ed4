package aishub_test

import (
	"testing"

	"github.com/lagersmit/aishub-api-public/pkg/aishub"
	"github.com/lagersmit/aishub-api-public/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Records(t *testing.T) {
	vessels := []map[string]any{
		{"MMSI": float64(244010093), "NAME": "Nieuwland", "SOG": 10.2},
		{"MMSI": float64(244010094), "NAME": "Parc", "SOG": 0.0},
	}
	payload := testutil.JSONPayload(t, map[string]any{
		"ERROR":    false,
		"USERNAME": "lagersmit",
		"FORMAT":   "HUMAN",
		"RECORDS":  2,
	}, vessels)

	response, err := aishub.Parse(aishub.OutputJSON, payload)

	require.NoError(t, err)
	assert.False(t, response.Header.HasError)
	assert.Equal(t, "lagersmit", response.Header.Username)
	assert.Equal(t, "HUMAN", response.Header.Format)
	assert.Equal(t, 2, response.Header.RecordCount)
	assert.Empty(t, response.Header.ErrorMessage)
	require.Len(t, response.Records, 2)
	for i, vessel := range vessels {
		assert.Equal(t, aishub.Record(vessel), response.Records[i])
	}
}

func TestParseJSON_ProviderError(t *testing.T) {
	payload := testutil.JSONPayload(t, map[string]any{
		"ERROR":         true,
		"USERNAME":      "lagersmit",
		"FORMAT":        "AIS",
		"ERROR_MESSAGE": "Invalid username",
	}, nil)

	response, err := aishub.Parse(aishub.OutputJSON, payload)

	require.NoError(t, err)
	assert.True(t, response.Header.HasError)
	assert.Equal(t, "Invalid username", response.Header.ErrorMessage)
	assert.Equal(t, 0, response.Header.RecordCount)
	assert.Empty(t, response.Records)
}

func TestParseJSON_RecordsKeyDefaultsToZero(t *testing.T) {
	payload := testutil.JSONPayload(t, map[string]any{
		"ERROR":    false,
		"USERNAME": "lagersmit",
		"FORMAT":   "AIS",
	}, nil)

	response, err := aishub.Parse(aishub.OutputJSON, payload)

	require.NoError(t, err)
	assert.Equal(t, 0, response.Header.RecordCount)
	assert.Empty(t, response.Records)
}

func TestParseJSON_MissingHeaderKey(t *testing.T) {
	payload := []byte(`[{"USERNAME":"lagersmit","FORMAT":"AIS"}]`)

	_, err := aishub.Parse(aishub.OutputJSON, payload)

	require.Error(t, err)

	var parseErr *aishub.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, aishub.OutputJSON, parseErr.Output)
	assert.Contains(t, parseErr.Message, "ERROR")
}

func TestParseJSON_NotAnArray(t *testing.T) {
	_, err := aishub.Parse(aishub.OutputJSON, []byte(`{"ERROR":false}`))

	require.Error(t, err)

	var parseErr *aishub.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseJSON_TooManyElements(t *testing.T) {
	payload := []byte(`[{"ERROR":false,"USERNAME":"u","FORMAT":"AIS"},[],[]]`)

	_, err := aishub.Parse(aishub.OutputJSON, payload)

	require.Error(t, err)

	var parseErr *aishub.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseXML_Records(t *testing.T) {
	payload := []byte(`<AISHUB ERROR="false" USERNAME="lagersmit" FORMAT="AIS" RECORDS="2">` +
		`<vessels>` +
		`<vessel mmsi="1" name="Nieuwland"/>` +
		`<vessel mmsi="2" name="Parc"/>` +
		`</vessels>` +
		`</AISHUB>`)

	response, err := aishub.Parse(aishub.OutputXML, payload)

	require.NoError(t, err)
	assert.False(t, response.Header.HasError)
	assert.Equal(t, "lagersmit", response.Header.Username)
	assert.Equal(t, "AIS", response.Header.Format)
	assert.Equal(t, 2, response.Header.RecordCount)
	require.Len(t, response.Records, 2)
	assert.Equal(t, aishub.Record{"mmsi": "1", "name": "Nieuwland"}, response.Records[0])
	assert.Equal(t, aishub.Record{"mmsi": "2", "name": "Parc"}, response.Records[1])
}

func TestParseXML_ProviderError(t *testing.T) {
	payload := []byte(`<AISHUB ERROR="true" USERNAME="lagersmit" FORMAT="AIS"><ERR>bad user</ERR></AISHUB>`)

	response, err := aishub.Parse(aishub.OutputXML, payload)

	require.NoError(t, err)
	assert.True(t, response.Header.HasError)
	assert.Equal(t, "bad user", response.Header.ErrorMessage)
	assert.Empty(t, response.Records)
}

func TestParseXML_ErrorIgnoresVesselElements(t *testing.T) {
	payload := []byte(`<AISHUB ERROR="true" USERNAME="u" FORMAT="AIS">` +
		`<ERR>rate limit</ERR><vessel mmsi="1"/></AISHUB>`)

	response, err := aishub.Parse(aishub.OutputXML, payload)

	require.NoError(t, err)
	assert.True(t, response.Header.HasError)
	assert.Equal(t, "rate limit", response.Header.ErrorMessage)
	assert.Empty(t, response.Records)
}

func TestParseXML_RecordsAttributeDefaultsToZero(t *testing.T) {
	payload := []byte(`<AISHUB ERROR="false" USERNAME="u" FORMAT="AIS"></AISHUB>`)

	response, err := aishub.Parse(aishub.OutputXML, payload)

	require.NoError(t, err)
	assert.Equal(t, 0, response.Header.RecordCount)
}

func TestParseXML_MissingErrorAttribute(t *testing.T) {
	payload := []byte(`<AISHUB USERNAME="u" FORMAT="AIS"></AISHUB>`)

	_, err := aishub.Parse(aishub.OutputXML, payload)

	require.Error(t, err)

	var parseErr *aishub.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, aishub.OutputXML, parseErr.Output)
}

func TestParseXML_UnparseableMarkup(t *testing.T) {
	_, err := aishub.Parse(aishub.OutputXML, []byte(`<AISHUB ERROR="false"`))

	require.Error(t, err)

	var parseErr *aishub.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseCSV_Records(t *testing.T) {
	payload := []byte("MMSI,NAME,SOG\n244010093,Nieuwland,10.2\n244010094,Parc,0\n244010095,Alblasserdam,3.5\n")

	response, err := aishub.Parse(aishub.OutputCSV, payload)

	require.NoError(t, err)
	assert.False(t, response.Header.HasError)
	assert.Empty(t, response.Header.Username)
	assert.Empty(t, response.Header.Format)
	assert.Equal(t, 3, response.Header.RecordCount)
	require.Len(t, response.Records, 3)
	assert.Equal(t, aishub.Record{"MMSI": "244010093", "NAME": "Nieuwland", "SOG": "10.2"}, response.Records[0])
}

func TestParseCSV_SingleRowIsProviderError(t *testing.T) {
	payload := []byte("MMSI,NAME\nInvalid username,\n")

	response, err := aishub.Parse(aishub.OutputCSV, payload)

	require.NoError(t, err)
	assert.True(t, response.Header.HasError)
	assert.Equal(t, "Invalid username,", response.Header.ErrorMessage)
	assert.Equal(t, 0, response.Header.RecordCount)
	assert.Empty(t, response.Records)
	assert.Empty(t, response.Header.Username)
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	response, err := aishub.Parse(aishub.OutputCSV, []byte("MMSI,NAME\n"))

	require.NoError(t, err)
	assert.False(t, response.Header.HasError)
	assert.Equal(t, 0, response.Header.RecordCount)
	assert.Empty(t, response.Records)
}

func TestParseCSV_RaggedRows(t *testing.T) {
	_, err := aishub.Parse(aishub.OutputCSV, []byte("MMSI,NAME\n1,Nieuwland\n2,Parc,extra\n"))

	require.Error(t, err)

	var parseErr *aishub.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, aishub.OutputCSV, parseErr.Output)
}

func TestParse_UnsupportedOutput(t *testing.T) {
	_, err := aishub.Parse(aishub.Output("yaml"), []byte("whatever"))

	require.Error(t, err)

	var parseErr *aishub.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParse_Idempotent(t *testing.T) {
	payload := testutil.JSONPayload(t, map[string]any{
		"ERROR":    false,
		"USERNAME": "lagersmit",
		"FORMAT":   "AIS",
		"RECORDS":  1,
	}, []map[string]any{{"MMSI": float64(1)}})

	first, err := aishub.Parse(aishub.OutputJSON, payload)
	require.NoError(t, err)
	second, err := aishub.Parse(aishub.OutputJSON, payload)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

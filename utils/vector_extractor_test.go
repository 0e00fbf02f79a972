package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVectorsFromReportItem(t *testing.T) {
	raw := `{
		"title": "Remote code execution in ExampleServer",
		"attributes": [
			{"attribute_group_item": "CVSS", "value": "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H"},
			{"attribute_group_item": "Description", "value": "see also CVSS:3.1/AV:L/AC:L/PR:L/UI:N/S:U/C:H/I:N/A:N."},
			{"attribute_group_item": "CVSS", "value": "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H"}
		],
		"legacy": "CVSS:3.0/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
		"score": 9.8
	}`
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	got := ExtractVectors(doc)
	assert.Equal(t, []string{
		"CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
		"CVSS:3.1/AV:L/AC:L/PR:L/UI:N/S:U/C:H/I:N/A:N",
		"CVSS:3.0/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
	}, got)
}

func TestExtractVectorsNothingFound(t *testing.T) {
	assert.Empty(t, ExtractVectors(map[string]interface{}{"title": "no scores here", "n": 3.0}))
	assert.Empty(t, ExtractVectors(nil))
}

func TestExtractVectorsPlainValues(t *testing.T) {
	assert.Equal(t, []string{"CVSS:3.1/AV:N"}, ExtractVectors("prefix CVSS:3.1/AV:N suffix"))
	assert.Equal(t, []string{"CVSS:3.1/AV:N", "CVSS:3.1/AV:L"}, ExtractVectors([]string{"CVSS:3.1/AV:N", "CVSS:3.1/AV:L"}))
}

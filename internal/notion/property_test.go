package notion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractFieldValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "select", raw: `{"id":"a","type":"select","select":{"id":"x","name":"Менеджмент","color":"blue"}}`, want: "Менеджмент"},
		{name: "select empty", raw: `{"id":"a","type":"select","select":null}`, want: ""},
		{name: "multi select joined in order", raw: `{"type":"multi_select","multi_select":[{"name":"Интернет"},{"name":"Друзья"}]}`, want: "Интернет, Друзья"},
		{name: "multi select empty", raw: `{"type":"multi_select","multi_select":[]}`, want: ""},
		{name: "rich text concatenated", raw: `{"type":"rich_text","rich_text":[{"plain_text":"17 июля "},{"plain_text":"(11.00)"}]}`, want: "17 июля (11.00)"},
		{name: "title", raw: `{"type":"title","title":[{"plain_text":"Иванов"},{"plain_text":" Иван"}]}`, want: "Иванов Иван"},
		{name: "date start", raw: `{"type":"date","date":{"start":"2026-07-17","end":"2026-07-18"}}`, want: "2026-07-17"},
		{name: "date null", raw: `{"type":"date","date":null}`, want: ""},
		{name: "created time", raw: `{"type":"created_time","created_time":"2026-07-17T08:15:00.000Z"}`, want: "2026-07-17T08:15:00.000Z"},
		{name: "integer number", raw: `{"type":"number","number":2024}`, want: "2024"},
		{name: "fractional number", raw: `{"type":"number","number":4.5}`, want: "4.5"},
		{name: "zero number", raw: `{"type":"number","number":0}`, want: "0"},
		{name: "null number", raw: `{"type":"number","number":null}`, want: ""},
		{name: "phone", raw: `{"type":"phone_number","phone_number":"+375291234567"}`, want: "+375291234567"},
		{name: "email", raw: `{"type":"email","email":"applicant@example.com"}`, want: "applicant@example.com"},
		{name: "email null", raw: `{"type":"email","email":null}`, want: ""},
		{name: "checkbox true", raw: `{"type":"checkbox","checkbox":true}`, want: "да"},
		{name: "checkbox false", raw: `{"type":"checkbox","checkbox":false}`, want: "нет"},
		{name: "unsupported type", raw: `{"type":"formula","formula":{"type":"string","string":"x"}}`, want: ""},
		{name: "malformed payload", raw: `{"type":"select","select":"not-an-object"}`, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var p Property
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &p))
			require.Equal(t, tc.want, ExtractFieldValue(&p))
		})
	}
}

func TestExtractFieldValue_Nil(t *testing.T) {
	require.Equal(t, "", ExtractFieldValue(nil))
	require.Equal(t, "", ExtractFieldValue(&Property{}))
}

func TestProperty_DecodesVariant(t *testing.T) {
	var p Property
	require.NoError(t, json.Unmarshal([]byte(`{"id":"%3Aab","type":"checkbox","checkbox":true}`), &p))
	require.Equal(t, "%3Aab", p.ID)
	require.Equal(t, KindCheckbox, p.Type)
	require.Equal(t, Checkbox{Checked: true}, p.Value)

	require.NoError(t, json.Unmarshal([]byte(`{"type":"rollup","rollup":{}}`), &p))
	require.Equal(t, Unsupported{Type: "rollup"}, p.Value)
}

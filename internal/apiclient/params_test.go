package apiclient

import (
	"testing"

	"backoffice/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenParams(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "drops null and empty", in: Params{"a": 1, "b": nil, "c": ""}, want: "?a=1"},
		{name: "nil input", in: nil, want: ""},
		{name: "all dropped", in: map[string]any{"b": nil, "c": ""}, want: ""},
		{name: "keeps false and zero", in: Params{"active": false, "page": 0}, want: "?active=false&page=0"},
		{name: "escapes values", in: Params{"q": "a b&c"}, want: "?q=a+b%26c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenParams(tt.in))
		})
	}
}

func TestGenParamsFromFilterStruct(t *testing.T) {
	adType := models.AdMediaVertical
	active := true
	filter := models.AdFilter{Type: &adType, Active: &active}

	assert.Equal(t, "?active=true&type=MEDIA_VERTICAL", GenParams(filter))
	assert.Equal(t, "", GenParams(models.AdFilter{}))
}

func TestGenParamsDropsNilPointers(t *testing.T) {
	var missing *string
	doc := "1234567"
	assert.Equal(t, "?clientDocument=1234567", GenParams(Params{"clientDocument": &doc, "paymentMethod": missing}))
}

func TestToParamsStruct(t *testing.T) {
	params, err := ToParams(models.AdvertiserEarningsQuery{From: "2025-10-01", To: "2025-10-31"})
	require.NoError(t, err)
	assert.Equal(t, "from=2025-10-01&to=2025-10-31", params.Encode())
}

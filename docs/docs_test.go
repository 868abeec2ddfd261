package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocumentIsRegistered(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Swagger string                     `json:"swagger"`
		Info    map[string]any             `json:"info"`
		Paths   map[string]map[string]any  `json:"paths"`
		Defs    map[string]json.RawMessage `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	assert.Equal(t, "2.0", parsed.Swagger)
	assert.Equal(t, "Text API", parsed.Info["title"])

	for path, method := range map[string]string{
		"/health":    "get",
		"/process":   "post",
		"/stats":     "post",
		"/uppercase": "post",
	} {
		require.Contains(t, parsed.Paths, path)
		assert.Contains(t, parsed.Paths[path], method, "path %s", path)
	}

	for _, def := range []string{"text.TextRequest", "text.StatsResponse", "respond.ErrorResponse"} {
		assert.Contains(t, parsed.Defs, def)
	}
}

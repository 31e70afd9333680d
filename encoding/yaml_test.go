package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeYAML_ValidSwagger2Envelope(t *testing.T) {
	data := []byte(`
swagger: "2.0"
info:
  title: Pets
  version: 1.0.0
paths: {}
`)
	v, err := DecodeYAML(data)
	require.NoError(t, err)
	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2.0", m["swagger"])
}

func TestDecodeYAML_ValidJSONInput(t *testing.T) {
	// JSON is a YAML subset; the same decoder handles both.
	data := []byte(`{"openapi":"3.1.0","info":{"title":"Pets","version":"1.0.0"}}`)
	v, err := DecodeYAML(data)
	require.NoError(t, err)
	m := v.(map[string]any)
	assert.Equal(t, "3.1.0", m["openapi"])
}

func TestDecodeYAML_RejectsNonEnvelope(t *testing.T) {
	data := []byte(`{"foo":"bar"}`)
	_, err := DecodeYAML(data)
	assert.Error(t, err)
}

func TestDecodeYAML_RejectsMissingVersionField(t *testing.T) {
	data := []byte(`{"info":{"title":"Pets","version":"1.0.0"}}`)
	_, err := DecodeYAML(data)
	assert.Error(t, err)
}

func TestEncodeYAML_Roundtrip(t *testing.T) {
	in := map[string]any{"openapi": "3.1.0", "info": map[string]any{"title": "x", "version": "1"}}
	data, err := EncodeYAML(in)
	require.NoError(t, err)

	out, err := DecodeYAML(data)
	require.NoError(t, err)
	m := out.(map[string]any)
	assert.Equal(t, "3.1.0", m["openapi"])
}

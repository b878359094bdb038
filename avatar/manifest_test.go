package avatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestJSON = `{
  "figures": {
    "hd-180-1": {
      "parts": [
        {"frames": [
          {"id": "body-0", "offsetX": -12, "offsetY": -40},
          {"id": "body-1", "offsetX": -12, "offsetY": -38}
        ], "colored": true, "color": "#4477cc"},
        {"frames": [{"id": "head-0", "offsetX": -9, "offsetY": -56}]}
      ]
    }
  }
}`

func TestLoadManifest(t *testing.T) {
	m, err := LoadManifest([]byte(manifestJSON))
	require.NoError(t, err)
	require.Contains(t, m.figures, "hd-180-1")

	parts := m.figures["hd-180-1"]
	require.Len(t, parts, 2)
	assert.True(t, parts[0].colored)
	assert.InDelta(t, 0x44/255.0, parts[0].color.R, 1e-9)
	assert.Len(t, parts[0].frames, 2)
	assert.False(t, parts[1].colored)
}

func TestLoadManifestErrors(t *testing.T) {
	_, err := LoadManifest([]byte("not json"))
	assert.Error(t, err)

	_, err = LoadManifest([]byte(`{}`))
	assert.Error(t, err, "missing figures key must fail")

	_, err = LoadManifest([]byte(`{"figures": {"f": {"parts": [
		{"frames": [], "colored": true, "color": "red"}
	]}}}`))
	assert.Error(t, err, "bad color must fail")
}

func TestManifestLoaderResolvesDirections(t *testing.T) {
	m, err := LoadManifest([]byte(manifestJSON))
	require.NoError(t, err)
	loader := &ManifestLoader{Manifest: m, Textures: ImageMap{}}

	var res LookResult
	loader.ResolveLook(LookDescription{Look: "hd-180-1", Direction: 2}, func(r LookResult, err error) {
		require.NoError(t, err)
		res = r
	})

	require.Len(t, res.Definition.Parts, 2)
	body := res.Definition.Parts[0]
	assert.Equal(t, RenderColored, body.Mode)
	assert.Equal(t, "body-0-2", body.Assets[0].ID)
	assert.Equal(t, "body-1-2", body.Assets[1].ID)
	assert.False(t, body.Assets[0].Mirror)
}

func TestManifestLoaderMirrorsFarDirections(t *testing.T) {
	m, err := LoadManifest([]byte(manifestJSON))
	require.NoError(t, err)
	loader := &ManifestLoader{Manifest: m, Textures: ImageMap{}}

	var res LookResult
	loader.ResolveLook(LookDescription{Look: "hd-180-1", Direction: 6}, func(r LookResult, err error) {
		require.NoError(t, err)
		res = r
	})

	// direction 6 reuses the direction-2 art, mirrored
	assert.Equal(t, "body-0-2", res.Definition.Parts[0].Assets[0].ID)
	assert.True(t, res.Definition.Parts[0].Assets[0].Mirror)
}

func TestManifestLoaderUnknownFigure(t *testing.T) {
	m, err := LoadManifest([]byte(manifestJSON))
	require.NoError(t, err)
	loader := &ManifestLoader{Manifest: m, Textures: ImageMap{}}

	called := false
	loader.ResolveLook(LookDescription{Look: "nope"}, func(_ LookResult, err error) {
		called = true
		assert.Error(t, err)
	})
	assert.True(t, called, "deliver must fire exactly once even on failure")
}

package export_test

import (
	"encoding/json"
	"testing"

	"careerpilot_backend/internal/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := export.DefaultOptions("jane-doe-resume.pdf")

	assert.Equal(t, [4]float64{10, 10, 10, 10}, opts.Margin)
	assert.Equal(t, "jane-doe-resume.pdf", opts.Filename)
	assert.Equal(t, "jpeg", opts.Image.Type)
	assert.Equal(t, 0.98, opts.Image.Quality)
	assert.Equal(t, float64(2), opts.Canvas.Scale)
	assert.Equal(t, export.UnitMillimeter, opts.Page.Unit)
	assert.Equal(t, "a4", opts.Page.Format)
	assert.Equal(t, export.OrientationPortrait, opts.Page.Orientation)

	assert.NoError(t, opts.Validate())
}

func TestOptionsValidate(t *testing.T) {
	base := export.DefaultOptions("resume.pdf")

	noName := base
	noName.Filename = ""
	assert.Error(t, noName.Validate())

	badQuality := base
	badQuality.Image.Quality = 1.5
	assert.Error(t, badQuality.Validate())

	badScale := base
	badScale.Canvas.Scale = 0
	assert.Error(t, badScale.Validate())

	badOrientation := base
	badOrientation.Page.Orientation = "diagonal"
	assert.Error(t, badOrientation.Validate())

	badUnit := base
	badUnit.Page.Unit = "furlong"
	assert.Error(t, badUnit.Validate())
}

func TestJobChain(t *testing.T) {
	req, err := export.New(export.DefaultOptions("resume.pdf")).From("resume-pdf").Save()
	require.NoError(t, err)

	assert.Equal(t, "resume-pdf", req.Target)
	assert.Equal(t, "resume.pdf", req.Options.Filename)
}

func TestJobRequiresTarget(t *testing.T) {
	_, err := export.New(export.DefaultOptions("resume.pdf")).Save()
	assert.Error(t, err)
}

// The options object is consumed by a JavaScript renderer, so the JSON
// keys must match its configuration shape.
func TestOptionsJSONKeys(t *testing.T) {
	data, err := json.Marshal(export.DefaultOptions("resume.pdf"))
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{"margin", "filename", "image", "html2canvas", "jsPDF"} {
		assert.Contains(t, raw, key)
	}
}

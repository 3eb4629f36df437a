// Package export declares the configuration handed to the client-side PDF
// renderer. Rendering itself happens in the browser; the backend only
// assembles and validates the options object.
package export

import "fmt"

type Orientation string
type Unit string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"

	UnitMillimeter Unit = "mm"
	UnitInch       Unit = "in"
	UnitPoint      Unit = "pt"
)

// ImageOptions controls rasterization of the rendering target.
type ImageOptions struct {
	Type    string  `json:"type"`
	Quality float64 `json:"quality"`
}

// CanvasOptions controls the intermediate canvas.
type CanvasOptions struct {
	Scale float64 `json:"scale"`
}

// PageOptions selects paper format and orientation.
type PageOptions struct {
	Unit        Unit        `json:"unit"`
	Format      string      `json:"format"`
	Orientation Orientation `json:"orientation"`
}

// Options is the full configuration object for one export run.
type Options struct {
	Margin   [4]float64    `json:"margin"` // top, right, bottom, left
	Filename string        `json:"filename"`
	Image    ImageOptions  `json:"image"`
	Canvas   CanvasOptions `json:"html2canvas"`
	Page     PageOptions   `json:"jsPDF"`
}

// DefaultOptions returns the options the application ships for resume
// exports.
func DefaultOptions(filename string) Options {
	return Options{
		Margin:   [4]float64{10, 10, 10, 10},
		Filename: filename,
		Image:    ImageOptions{Type: "jpeg", Quality: 0.98},
		Canvas:   CanvasOptions{Scale: 2},
		Page: PageOptions{
			Unit:        UnitMillimeter,
			Format:      "a4",
			Orientation: OrientationPortrait,
		},
	}
}

func (o Options) Validate() error {
	if o.Filename == "" {
		return fmt.Errorf("export: filename is required")
	}
	if o.Image.Quality <= 0 || o.Image.Quality > 1 {
		return fmt.Errorf("export: image quality must be in (0, 1]")
	}
	if o.Canvas.Scale <= 0 {
		return fmt.Errorf("export: canvas scale must be positive")
	}
	switch o.Page.Orientation {
	case OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("export: unknown orientation %q", o.Page.Orientation)
	}
	switch o.Page.Unit {
	case UnitMillimeter, UnitInch, UnitPoint:
	default:
		return fmt.Errorf("export: unknown unit %q", o.Page.Unit)
	}
	return nil
}

// Job mirrors the renderer's chained API: configure, pick a target,
// produce the request. The backend never executes the job; it hands the
// resulting Request to the client.
type Job struct {
	options Options
	target  string
}

func New(options Options) *Job {
	return &Job{options: options}
}

// From selects the rendering target (an element id or HTML fragment) and
// returns the job for chaining.
func (j *Job) From(target string) *Job {
	j.target = target
	return j
}

// Request is the payload the client-side renderer consumes.
type Request struct {
	Target  string  `json:"target"`
	Options Options `json:"options"`
}

// Save finalizes the chain and yields the renderer request.
func (j *Job) Save() (Request, error) {
	if j.target == "" {
		return Request{}, fmt.Errorf("export: rendering target is required")
	}
	if err := j.options.Validate(); err != nil {
		return Request{}, err
	}
	return Request{Target: j.target, Options: j.options}, nil
}

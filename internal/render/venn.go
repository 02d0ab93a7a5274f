// Package render draws a two-circle Venn diagram of a comparison result
// as an SVG document.
package render

import (
	"html/template"
	"io"
	"math"

	"github.com/go-faster/errors"

	"github.com/baditaflorin/go_list_compare/internal/core/domain"
)

const (
	canvasWidth  = 520
	canvasHeight = 340
	centerY      = 160
	minRadius    = 18
	maxRadius    = 110
)

// Labels come from user input; html/template escapes them so they cannot
// break out of the markup.
var vennTemplate = template.Must(template.New("venn").Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
  <rect width="{{.Width}}" height="{{.Height}}" fill="white"/>
  <circle cx="{{.CxA}}" cy="{{.Cy}}" r="{{.RadiusA}}" fill="#1f77b4" fill-opacity="0.45" stroke="#1f77b4"/>
  <circle cx="{{.CxB}}" cy="{{.Cy}}" r="{{.RadiusB}}" fill="#ff7f0e" fill-opacity="0.45" stroke="#ff7f0e"/>
  <text x="{{.LabelAX}}" y="30" text-anchor="middle" font-family="sans-serif" font-size="16">{{.LabelA}}</text>
  <text x="{{.LabelBX}}" y="30" text-anchor="middle" font-family="sans-serif" font-size="16">{{.LabelB}}</text>
  <text x="{{.CountAX}}" y="{{.Cy}}" text-anchor="middle" font-family="sans-serif" font-size="14">{{.CountAOnly}}</text>
  <text x="{{.CountIX}}" y="{{.Cy}}" text-anchor="middle" font-family="sans-serif" font-size="14">{{.CountInter}}</text>
  <text x="{{.CountBX}}" y="{{.Cy}}" text-anchor="middle" font-family="sans-serif" font-size="14">{{.CountBOnly}}</text>
  <text x="{{.MetricsX}}" y="{{.MetricsY}}" text-anchor="middle" font-family="sans-serif" font-size="13">Jaccard {{printf "%.3f" .Jaccard}} | Overlap {{printf "%.3f" .Overlap}}</text>
</svg>
`))

type vennData struct {
	Width, Height      int
	Cy                 float64
	CxA, CxB           float64
	RadiusA, RadiusB   float64
	LabelA, LabelB     string
	LabelAX, LabelBX   float64
	CountAOnly         int
	CountInter         int
	CountBOnly         int
	CountAX            float64
	CountIX            float64
	CountBX            float64
	MetricsX, MetricsY float64
	Jaccard, Overlap   float64
}

// VennSVG renders the result as a two-circle Venn diagram. Circle areas
// scale with set sizes; the circle distance shrinks with the overlap
// coefficient, so a full subset nests the smaller circle inside the larger.
func VennSVG(w io.Writer, result domain.Result) error {
	lenA := len(result.SetA)
	lenB := len(result.SetB)
	lenInter := len(result.Intersection)

	rA := radius(lenA, lenA+lenB)
	rB := radius(lenB, lenA+lenB)

	// Approximate placement: tangent circles at zero overlap, nested at
	// full overlap of the smaller set.
	distance := rA + rB - result.Overlap*2*math.Min(rA, rB)
	if distance < math.Abs(rA-rB) {
		distance = math.Abs(rA - rB)
	}

	mid := float64(canvasWidth) / 2
	cxA := mid - distance/2
	cxB := mid + distance/2

	data := vennData{
		Width:      canvasWidth,
		Height:     canvasHeight,
		Cy:         centerY,
		CxA:        cxA,
		CxB:        cxB,
		RadiusA:    rA,
		RadiusB:    rB,
		LabelA:     result.LabelA,
		LabelB:     result.LabelB,
		LabelAX:    cxA,
		LabelBX:    cxB,
		CountAOnly: len(result.AOnly),
		CountInter: lenInter,
		CountBOnly: len(result.BOnly),
		CountAX:    cxA - rA/2,
		CountIX:    (cxA + cxB) / 2,
		CountBX:    cxB + rB/2,
		MetricsX:   mid,
		MetricsY:   canvasHeight - 20,
		Jaccard:    result.Jaccard,
		Overlap:    result.Overlap,
	}

	if err := vennTemplate.Execute(w, data); err != nil {
		return errors.Wrap(err, "render venn svg")
	}
	return nil
}

// radius scales circle area with set size, clamped to the canvas.
func radius(size, total int) float64 {
	if size == 0 {
		return minRadius
	}
	if total == 0 {
		total = 1
	}
	r := maxRadius * math.Sqrt(float64(size)/float64(total))
	if r < minRadius {
		return minRadius
	}
	return r
}

package engine2d

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

/// Finds the point minimizing the largest distance to any vertex of p,
/// using a Nelder-Mead simplex seeded with three points around the center
/// of mass. The returned radius encloses every vertex plus the worst chord
/// error of the curved edges, so it encloses the whole boundary.
func computeCentroid(p *Polygon) (Vec2, float64, error) {
	vertexes := p.GetVertexes()
	points := make([]Vec2, len(vertexes))
	for i, v := range vertexes {
		points[i] = v.locBody
	}

	maxDistance := func(x []float64) float64 {
		c := MakeVec2(x[0], x[1])
		dist := make([]float64, len(points))
		for i, pt := range points {
			dist[i] = Vec2Distance(c, pt)
		}
		return floats.Max(dist)
	}

	size := p.bounds.Size()
	step := 0.1 * math.Max(size.X, size.Y)
	if step < CentroidTolerance {
		step = 1
	}
	seeds := [][]float64{
		{p.cmBody.X, p.cmBody.Y},
		{p.cmBody.X + step, p.cmBody.Y},
		{p.cmBody.X, p.cmBody.Y + step},
	}
	values := make([]float64, len(seeds))
	for i, s := range seeds {
		values[i] = maxDistance(s)
	}

	problem := optimize.Problem{
		Func: maxDistance,
	}
	settings := &optimize.Settings{
		Converger: &optimize.FunctionConverge{
			Absolute:   CentroidTolerance,
			Iterations: 20,
		},
		MajorIterations: 2000,
	}
	method := &optimize.NelderMead{
		InitialVertices: seeds,
		InitialValues:   values,
	}

	result, err := optimize.Minimize(problem, append([]float64(nil), seeds[0]...), settings, method)
	if err != nil {
		return Vec2{}, 0, fmt.Errorf("%v: %w", err, ErrCentroidNotConverged)
	}
	switch result.Status {
	case optimize.IterationLimit, optimize.FunctionEvaluationLimit, optimize.RuntimeLimit:
		return Vec2{}, 0, fmt.Errorf("status %v: %w", result.Status, ErrCentroidNotConverged)
	}

	chordError := 0.0
	for _, e := range p.edges {
		chordError = math.Max(chordError, e.ChordError())
	}
	centroid := MakeVec2(result.X[0], result.X[1])
	return centroid, result.F + chordError, nil
}

package core

import "sort"

// ShapeAnalysisResult reports the outcome for a single batch item. Exactly
// one of Metrics or Err is meaningful: Err is nil on success, and Metrics
// is the zero value on failure.
type ShapeAnalysisResult struct {
	ShapeID string
	Metrics ShapeMetrics
	Err     error
}

// BatchResult aggregates a batch analysis. TotalArea accumulates only over
// successful items; ShapeCount is the total input count regardless of
// per-item outcome.
type BatchResult struct {
	Results    []ShapeAnalysisResult
	TotalArea  float64
	ShapeCount int
}

// BatchAnalyze computes metrics for every shape in the collection with
// per-item isolation: a failure for one item is captured in its result
// entry and never aborts the batch or affects other items. Output order
// matches input order, one result per item.
func BatchAnalyze(shapes []DrawableShape, unit Unit) BatchResult {
	out := BatchResult{
		Results:    make([]ShapeAnalysisResult, 0, len(shapes)),
		ShapeCount: len(shapes),
	}

	for _, ds := range shapes {
		metrics, err := ComputeMetrics(ds.Geometry, unit)
		if err != nil {
			out.Results = append(out.Results, ShapeAnalysisResult{ShapeID: ds.ID, Err: err})
			continue
		}
		out.TotalArea += metrics.Area
		out.Results = append(out.Results, ShapeAnalysisResult{ShapeID: ds.ID, Metrics: metrics})
	}

	return out
}

// RankCriterion selects the metric used to order shapes.
type RankCriterion string

const (
	RankByArea      RankCriterion = "area"
	RankByPerimeter RankCriterion = "perimeter"
)

// RankedShape is one entry of a ranking: a shape identity and the value it
// was ranked by.
type RankedShape struct {
	ShapeID string  `json:"shapeId"`
	Value   float64 `json:"value"`
}

// LargestShapeResult carries the winning shape, its metrics, and the full
// ranking of the collection sorted by value descending.
type LargestShapeResult struct {
	Largest DrawableShape
	Metrics ShapeMetrics
	Ranking []RankedShape
}

// FindLargestShape selects the shape with the strictly greatest value of
// the chosen criterion. Iteration follows input order and the best entry
// is replaced only on a strict improvement, so the first-seen shape wins
// ties. A metrics failure for any shape aborts the whole call; batch-style
// isolation does not apply here.
func FindLargestShape(shapes []DrawableShape, criterion RankCriterion, unit Unit) (LargestShapeResult, error) {
	if len(shapes) == 0 {
		return LargestShapeResult{}, ErrEmptyCollection
	}

	var (
		found   bool
		best    DrawableShape
		bestVal float64
		metrics ShapeMetrics
		ranking = make([]RankedShape, 0, len(shapes))
	)

	for _, ds := range shapes {
		m, err := ComputeMetrics(ds.Geometry, unit)
		if err != nil {
			return LargestShapeResult{}, err
		}

		value := m.Area
		if criterion == RankByPerimeter {
			value = m.Perimeter
		}
		ranking = append(ranking, RankedShape{ShapeID: ds.ID, Value: value})

		if !found || value > bestVal {
			found = true
			best = ds
			bestVal = value
			metrics = m
		}
	}

	// Unreachable given the empty check and a total metrics function; kept
	// as a guard.
	if !found {
		return LargestShapeResult{}, ErrNoValidShapes
	}

	sort.Slice(ranking, func(i, j int) bool { return ranking[i].Value > ranking[j].Value })

	return LargestShapeResult{
		Largest: best,
		Metrics: metrics,
		Ranking: ranking,
	}, nil
}

package bench

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Summary holds the box-plot statistics of one guess-count series.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	Q1     float64
	Q3     float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes the summary statistics of a guess-count series.
func Summarize(counts []int) (Summary, error) {
	data := make([]float64, len(counts))
	for i, n := range counts {
		data[i] = float64(n)
	}

	s := Summary{Count: len(counts)}
	var err error
	if s.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return Summary{}, err
	}
	if s.Q1, err = stats.Percentile(data, 25); err != nil {
		return Summary{}, err
	}
	if s.Q3, err = stats.Percentile(data, 75); err != nil {
		return Summary{}, err
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return Summary{}, err
	}
	if s.Min, err = stats.Min(data); err != nil {
		return Summary{}, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return Summary{}, err
	}
	return s, nil
}

// Comparison reports which of two strategies needs fewer guesses on the same
// range, and whether the gap survives a two-sided z-test at the 0.05 level.
type Comparison struct {
	Leader      string
	MeanDelta   float64
	Z           float64
	P           float64
	Significant bool
}

// Compare runs a Welch z approximation over two guess-count series.
func Compare(nameA string, a []int, nameB string, b []int) (Comparison, error) {
	sa, err := Summarize(a)
	if err != nil {
		return Comparison{}, err
	}
	sb, err := Summarize(b)
	if err != nil {
		return Comparison{}, err
	}

	cmp := Comparison{MeanDelta: sa.Mean - sb.Mean}
	if cmp.MeanDelta <= 0 {
		cmp.Leader = nameA
	} else {
		cmp.Leader = nameB
	}

	se := math.Sqrt(sa.StdDev*sa.StdDev/float64(sa.Count) + sb.StdDev*sb.StdDev/float64(sb.Count))
	if se == 0 {
		// Both series are constant: any nonzero gap is exact.
		if cmp.MeanDelta != 0 {
			cmp.Z = math.Inf(int(math.Copysign(1, cmp.MeanDelta)))
			cmp.P = 0
			cmp.Significant = true
		} else {
			cmp.P = 1
		}
		return cmp, nil
	}

	cmp.Z = cmp.MeanDelta / se
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	cmp.P = 2 * (1 - norm.CDF(math.Abs(cmp.Z)))
	cmp.Significant = cmp.P < 0.05
	return cmp, nil
}

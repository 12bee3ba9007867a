package ml

type Report struct {
	TruePositives  int
	FalsePositives int
	TrueNegatives  int
	FalseNegatives int
	Accuracy       float64
	Precision      float64
	Recall         float64
	F1             float64
}

// Evaluate scores p on a labelled set. Ratios with a zero denominator are 0.
func Evaluate(p Predictor, X [][]float64, y []int) Report {
	var r Report

	for i, x := range X {
		switch predicted := Predict(p, x); {
		case predicted == 1 && y[i] == 1:
			r.TruePositives++
		case predicted == 1:
			r.FalsePositives++
		case y[i] == 1:
			r.FalseNegatives++
		default:
			r.TrueNegatives++
		}
	}

	r.Accuracy = ratio(r.TruePositives+r.TrueNegatives, len(X))
	r.Precision = ratio(r.TruePositives, r.TruePositives+r.FalsePositives)
	r.Recall = ratio(r.TruePositives, r.TruePositives+r.FalseNegatives)

	if r.Precision+r.Recall > 0 {
		r.F1 = 2 * r.Precision * r.Recall / (r.Precision + r.Recall) //nolint:mnd
	}

	return r
}

func ratio(a, b int) float64 {
	if b == 0 {
		return 0
	}

	return float64(a) / float64(b)
}

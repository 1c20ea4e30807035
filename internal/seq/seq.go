// Package seq provides summary statistics over numeric sequences.
package seq

// Summary describes a numeric sequence. Average, Min, and Max are nil
// when the sequence is empty.
type Summary struct {
	Average *float64
	Min     *float64
	Max     *float64
	Length  int
}

// Analyze computes the average, minimum, maximum, and length of values.
func Analyze(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	minVal, maxVal := values[0], values[0]
	var sum float64
	for _, v := range values {
		sum += v
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	avg := sum / float64(len(values))
	return Summary{Average: &avg, Min: &minVal, Max: &maxVal, Length: len(values)}
}

package curve

// Summary condenses a sampled curve into the numbers a status line needs.
//
// MinFreqHz and MaxFreqHz are the frequencies of the deepest cut and the
// tallest boost. When several points tie, the first wins.
type Summary struct {
	Points    int
	MinDB     float64
	MaxDB     float64
	MeanDB    float64
	MinFreqHz float64
	MaxFreqHz float64
}

// Summarize computes curve statistics in a single pass.
// An empty curve yields the zero Summary.
func Summarize(points []Point) Summary {
	if len(points) == 0 {
		return Summary{}
	}

	s := Summary{
		Points:    len(points),
		MinDB:     points[0].DB,
		MaxDB:     points[0].DB,
		MinFreqHz: points[0].FreqHz,
		MaxFreqHz: points[0].FreqHz,
	}

	var sum float64
	for _, p := range points {
		sum += p.DB

		if p.DB > s.MaxDB {
			s.MaxDB = p.DB
			s.MaxFreqHz = p.FreqHz
		}

		if p.DB < s.MinDB {
			s.MinDB = p.DB
			s.MinFreqHz = p.FreqHz
		}
	}
	s.MeanDB = sum / float64(len(points))

	return s
}

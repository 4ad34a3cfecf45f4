package preprocess

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"math"
)

// standardScaler 按列标准化为均值0方差1。标准差为0或无法计算的列只做中心化
type standardScaler struct {
	mean []float64
	std  []float64
}

func fitScaler(x mat.Matrix) *standardScaler {
	r, c := x.Dims()
	s := &standardScaler{
		mean: make([]float64, c),
		std:  make([]float64, c),
	}
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, x)
		m, sd := stat.MeanStdDev(col, nil)
		if sd == 0 || math.IsNaN(sd) {
			sd = 1
		}
		s.mean[j] = m
		s.std[j] = sd
	}
	return s
}

func (s *standardScaler) transform(x mat.Matrix) *mat.Dense {
	r, c := x.Dims()
	z := mat.NewDense(r, c, nil)
	z.Apply(func(i, j int, v float64) float64 {
		return (v - s.mean[j]) / s.std[j]
	}, x)
	return z
}

package preprocess

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ridgeModel 在标准化后的特征上做带截距的岭回归
type ridgeModel struct {
	scaler    *standardScaler
	coef      []float64
	intercept float64
}

// fitRidge 求解 (ZᵀZ + αI)β = Zᵀ(y - ȳ)。alpha必须大于0
func fitRidge(x *mat.Dense, y []float64, alpha float64) (*ridgeModel, error) {
	n, p := x.Dims()
	if n != len(y) {
		return nil, errors.Errorf("特征有%d行，目标有%d个", n, len(y))
	}

	scaler := fitScaler(x)
	z := scaler.transform(x)

	yMean := stat.Mean(y, nil)
	centered := make([]float64, n)
	for i, v := range y {
		centered[i] = v - yMean
	}

	gram := mat.NewSymDense(p, nil)
	gram.SymOuterK(1, z.T())
	for k := 0; k < p; k++ {
		gram.SetSym(k, k, gram.At(k, k)+alpha)
	}

	var rhs mat.VecDense
	rhs.MulVec(z.T(), mat.NewVecDense(n, centered))

	var chol mat.Cholesky
	if ok := chol.Factorize(gram); !ok {
		return nil, errors.New("正规方程矩阵不是正定矩阵")
	}
	var beta mat.VecDense
	if err := chol.SolveVecTo(&beta, &rhs); err != nil {
		return nil, errors.Wrap(err, "求解回归系数出错")
	}

	coef := make([]float64, p)
	for k := range coef {
		coef[k] = beta.AtVec(k)
	}
	return &ridgeModel{
		scaler:    scaler,
		coef:      coef,
		intercept: yMean,
	}, nil
}

func (m *ridgeModel) predict(row []float64) float64 {
	sum := m.intercept
	for k, v := range row {
		sum += m.coef[k] * (v - m.scaler.mean[k]) / m.scaler.std[k]
	}
	return sum
}

package preprocess

import (
	"fmt"
	"github.com/packagewjx/aura-fitness/internal"
	"github.com/packagewjx/aura-fitness/internal/table"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"log"
	"math"
	"math/rand"
	"os"
	"sort"
)

type ImputationOrder string

const (
	OrderAscending = ImputationOrder("ascending")
	OrderRandom    = ImputationOrder("random")
)

const (
	DefaultMaxIter         = 10
	DefaultTol             = 1e-3
	DefaultSeed            = 42
	DefaultAlpha           = 1e-3
	DefaultInitialStrategy = StrategyMean
	DefaultOrder           = OrderAscending
)

type IterativeConfig struct {
	MaxIter         int             // 最大迭代轮次
	Tol             float64         // 收敛阈值，相对于观测值的最大绝对值
	Seed            int64           // 随机顺序时使用的种子
	Alpha           float64         // 岭回归的正则化系数，必须大于0
	InitialStrategy InitialStrategy // 初始填充方式
	Order           ImputationOrder // 各列的插补顺序
}

// Complete 检查配置并为零值字段设置默认值
func (config *IterativeConfig) Complete() error {
	if config.MaxIter < 0 {
		return fmt.Errorf("迭代轮次不能为负数，现在为%d", config.MaxIter)
	} else if config.MaxIter == 0 {
		config.MaxIter = DefaultMaxIter
	}

	if config.Tol < 0 {
		return fmt.Errorf("收敛阈值不能为负数，现在为%f", config.Tol)
	} else if config.Tol == 0 {
		config.Tol = DefaultTol
	}

	if config.Alpha < 0 {
		return fmt.Errorf("正则化系数不能为负数，现在为%f", config.Alpha)
	} else if config.Alpha == 0 {
		config.Alpha = DefaultAlpha
	}

	switch config.InitialStrategy {
	case "":
		config.InitialStrategy = DefaultInitialStrategy
	case StrategyMean, StrategyMedian:
	default:
		return fmt.Errorf("不支持的初始填充方式%s", config.InitialStrategy)
	}

	switch config.Order {
	case "":
		config.Order = DefaultOrder
	case OrderAscending, OrderRandom:
	default:
		return fmt.Errorf("不支持的插补顺序%s", config.Order)
	}

	return nil
}

// IterativeImputer 多变量迭代插补。每一轮依次把有缺失值的列作为目标，
// 用其他所有数值列的当前估计值做岭回归，再用预测值替换该列原本缺失的位置
type IterativeImputer struct {
	config *IterativeConfig
	logger *log.Logger
}

var _ Imputer = &IterativeImputer{}

// NewIterativeImputer config为nil时使用默认配置。config需要已经Complete
func NewIterativeImputer(config *IterativeConfig) *IterativeImputer {
	if config == nil {
		config = &IterativeConfig{}
		_ = config.Complete()
	}
	return &IterativeImputer{
		config: config,
		logger: log.New(os.Stdout, "iterative imputer: ", log.LstdFlags|log.Lshortfile|log.Lmsgprefix),
	}
}

func (imp *IterativeImputer) Impute(t *table.Table, columns []*table.Column) error {
	if len(columns) == 0 || t.Rows() == 0 {
		return nil
	}

	n := t.Rows()
	p := len(columns)
	x := mat.NewDense(n, p, nil)
	missing := make([][]bool, p)
	observedMax := 0.0
	for j, c := range columns {
		fill, err := fillValue(c, imp.config.InitialStrategy)
		if err != nil {
			return err
		}
		missing[j] = make([]bool, n)
		for i, f := range c.Numbers {
			if math.IsNaN(f) {
				missing[j][i] = true
				x.Set(i, j, fill)
				continue
			}
			x.Set(i, j, f)
			observedMax = math.Max(observedMax, math.Abs(f))
		}
	}

	order := imp.imputationOrder(columns)
	if len(order) == 0 {
		return nil
	}

	if p < 2 {
		imp.logger.Printf("只有%d个数值列，无法回归，使用%s填充\n", p, imp.config.InitialStrategy)
		return imp.writeBack(x, columns, missing)
	}

	tol := imp.config.Tol * observedMax
	raw := x.RawMatrix().Data
	prev := make([]float64, len(raw))
	converged := false
	for iter := 1; iter <= imp.config.MaxIter; iter++ {
		copy(prev, raw)
		for _, j := range order {
			if err := imputeColumn(x, j, missing[j], imp.config.Alpha); err != nil {
				return &internal.ImputationError{Column: columns[j].Name, Reason: "回归求解失败", Err: err}
			}
		}

		change := floats.Distance(raw, prev, math.Inf(1))
		imp.logger.Printf("第%d轮插补完成，最大变化%.6f，收敛阈值%.6f\n", iter, change, tol)
		if change < tol || change == 0 {
			converged = true
			break
		}
	}
	if !converged {
		imp.logger.Printf("迭代%d轮后仍未收敛，使用最后一轮的估计值\n", imp.config.MaxIter)
	}

	return imp.writeBack(x, columns, missing)
}

// imputationOrder 返回有缺失值的列的下标
func (imp *IterativeImputer) imputationOrder(columns []*table.Column) []int {
	order := make([]int, 0, len(columns))
	counts := make([]int, len(columns))
	for j, c := range columns {
		counts[j] = c.MissingCount()
		if counts[j] > 0 {
			order = append(order, j)
		}
	}

	switch imp.config.Order {
	case OrderRandom:
		r := rand.New(rand.NewSource(imp.config.Seed))
		r.Shuffle(len(order), func(a, b int) {
			order[a], order[b] = order[b], order[a]
		})
	default:
		sort.SliceStable(order, func(a, b int) bool {
			return counts[order[a]] < counts[order[b]]
		})
	}
	return order
}

// writeBack 将估计值写回原本缺失的位置。估计值不是有限数时返回错误，且不修改任何列
func (imp *IterativeImputer) writeBack(x *mat.Dense, columns []*table.Column, missing [][]bool) error {
	for j, c := range columns {
		for i := range c.Numbers {
			v := x.At(i, j)
			if missing[j][i] && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return &internal.ImputationError{Column: c.Name, Reason: fmt.Sprintf("第%d行的估计值不是有限数", i)}
			}
		}
	}

	for j, c := range columns {
		filled := 0
		for i := range c.Numbers {
			if missing[j][i] {
				c.Numbers[i] = x.At(i, j)
				filled++
			}
		}
		if filled > 0 {
			imp.logger.Printf("列%s填充了%d个缺失值\n", c.Name, filled)
		}
	}
	return nil
}

// imputeColumn 用target列有观测值的行拟合，预测缺失行
func imputeColumn(x *mat.Dense, target int, missing []bool, alpha float64) error {
	n, p := x.Dims()
	train := make([]int, 0, n)
	predict := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if missing[i] {
			predict = append(predict, i)
		} else {
			train = append(train, i)
		}
	}
	if len(predict) == 0 {
		return nil
	}

	features := make([]int, 0, p-1)
	for j := 0; j < p; j++ {
		if j != target {
			features = append(features, j)
		}
	}

	xTrain := mat.NewDense(len(train), len(features), nil)
	yTrain := make([]float64, len(train))
	for r, i := range train {
		for k, j := range features {
			xTrain.Set(r, k, x.At(i, j))
		}
		yTrain[r] = x.At(i, target)
	}

	model, err := fitRidge(xTrain, yTrain, alpha)
	if err != nil {
		return err
	}

	row := make([]float64, len(features))
	for _, i := range predict {
		for k, j := range features {
			row[k] = x.At(i, j)
		}
		x.Set(i, target, model.predict(row))
	}
	return nil
}

package preprocess

import (
	"github.com/packagewjx/aura-fitness/internal"
	"github.com/packagewjx/aura-fitness/internal/table"
	"github.com/packagewjx/aura-fitness/internal/utils"
	"gonum.org/v1/gonum/stat"
	"math"
)

// Impute 选出所有数值列交给imputer处理，分类列不变
func Impute(imputer Imputer) Preprocessor {
	return &imputePreProcessor{imputer: imputer}
}

type imputePreProcessor struct {
	imputer Imputer
}

func (i *imputePreProcessor) Preprocess(t *table.Table) error {
	columns := t.NumericColumns()
	if len(columns) == 0 {
		logger.Println("没有数值列，跳过插补")
		return nil
	}
	return i.imputer.Impute(t, columns)
}

type InitialStrategy string

const (
	StrategyMean   = InitialStrategy("mean")
	StrategyMedian = InitialStrategy("median")
)

// MeanImputer 使用每列观测值的均值或中位数填充
type MeanImputer struct {
	Strategy InitialStrategy
}

var _ Imputer = &MeanImputer{}

func (m *MeanImputer) Impute(t *table.Table, columns []*table.Column) error {
	values := make([]float64, len(columns))
	for i, c := range columns {
		v, err := fillValue(c, m.Strategy)
		if err != nil {
			return err
		}
		values[i] = v
	}

	for i, c := range columns {
		for r, f := range c.Numbers {
			if math.IsNaN(f) {
				c.Numbers[r] = values[i]
			}
		}
	}
	return nil
}

// fillValue 计算列的填充值。整列缺失时返回*internal.ImputationError
func fillValue(c *table.Column, strategy InitialStrategy) (float64, error) {
	observed := make([]float64, 0, len(c.Numbers))
	for _, f := range c.Numbers {
		if !math.IsNaN(f) {
			observed = append(observed, f)
		}
	}
	if len(observed) == 0 {
		if len(c.Numbers) == 0 {
			return 0, nil
		}
		return 0, &internal.ImputationError{Column: c.Name, Reason: "整列都是缺失值"}
	}

	switch strategy {
	case StrategyMedian:
		return utils.Median(observed), nil
	default:
		return stat.Mean(observed, nil), nil
	}
}

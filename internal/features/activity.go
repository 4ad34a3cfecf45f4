package features

import (
	"github.com/packagewjx/aura-fitness/internal"
	"github.com/packagewjx/aura-fitness/internal/table"
	"log"
	"math"
	"os"
)

var logger = log.New(os.Stdout, "features: ", log.LstdFlags|log.Lshortfile|log.Lmsgprefix)

// ActivityLevel 按每日步数划分的活动水平，数值越大越活跃
type ActivityLevel int

const (
	Unlabeled ActivityLevel = iota
	Sedentary
	Moderate
	Active
	VeryActive
)

// StepBoundaries 各档位的边界。前几档为左闭右开，最后一档两端都闭合
var StepBoundaries = []float64{0, 5000, 10000, 15000, 30000}

var activityLevelNames = map[ActivityLevel]string{
	Sedentary:  "Sedentary",
	Moderate:   "Moderate",
	Active:     "Active",
	VeryActive: "Very Active",
}

func (l ActivityLevel) String() string {
	return activityLevelNames[l]
}

// ClassifySteps 步数为NaN或不在[0, 30000]内时返回Unlabeled
func ClassifySteps(steps float64) ActivityLevel {
	last := len(StepBoundaries) - 1
	if math.IsNaN(steps) || steps < StepBoundaries[0] || steps > StepBoundaries[last] {
		return Unlabeled
	}
	for i := 1; i < last; i++ {
		if steps < StepBoundaries[i] {
			return ActivityLevel(i)
		}
	}
	return ActivityLevel(last)
}

// DeriveActivityLevel 根据Daily_Steps计算Activity_Level并追加到表的最后一列。
// 已经存在Activity_Level列时原地重新计算。缺少Daily_Steps或其不是数值列时返回*internal.SchemaError
func DeriveActivityLevel(t *table.Table) error {
	steps, ok := t.Column(internal.ColumnDailySteps)
	if !ok {
		return &internal.SchemaError{Column: internal.ColumnDailySteps, Reason: "列不存在"}
	} else if !steps.Kind.Numeric() {
		return &internal.SchemaError{Column: internal.ColumnDailySteps, Reason: "不是数值列"}
	}

	labels := make([]string, len(steps.Numbers))
	unlabeled := 0
	for i, f := range steps.Numbers {
		level := ClassifySteps(f)
		if level == Unlabeled {
			unlabeled++
		}
		labels[i] = level.String()
	}
	if unlabeled > 0 {
		logger.Printf("%d行的%s缺失或不在[%.0f, %.0f]内，%s留空\n", unlabeled, internal.ColumnDailySteps,
			StepBoundaries[0], StepBoundaries[len(StepBoundaries)-1], internal.ColumnActivityLevel)
	}

	if existing, ok := t.Column(internal.ColumnActivityLevel); ok {
		existing.Kind = table.Categorical
		existing.Numbers = nil
		existing.Text = labels
		return nil
	}
	return t.AddColumn(&table.Column{
		Name: internal.ColumnActivityLevel,
		Kind: table.Categorical,
		Text: labels,
	})
}

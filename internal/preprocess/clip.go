package preprocess

import (
	"github.com/packagewjx/aura-fitness/internal/table"
)

// Clip 将指定列中小于0的值置为0。表中不存在的列直接跳过
func Clip(columns ...string) Preprocessor {
	return &clipPreprocessor{columns: columns}
}

type clipPreprocessor struct {
	columns []string
}

func (c *clipPreprocessor) Preprocess(t *table.Table) error {
	for _, name := range c.columns {
		col, ok := t.Column(name)
		if !ok {
			continue
		}
		if !col.Kind.Numeric() {
			logger.Printf("列%s不是数值列，不做截断\n", name)
			continue
		}

		clipped := 0
		for i, f := range col.Numbers {
			if f < 0 {
				col.Numbers[i] = 0
				clipped++
			}
		}
		if clipped > 0 {
			logger.Printf("列%s有%d个负数被置为0\n", name, clipped)
		}
	}
	return nil
}

package preprocess

import (
	"github.com/packagewjx/aura-fitness/internal"
	"github.com/packagewjx/aura-fitness/internal/table"
	"log"
	"os"
)

var logger = log.New(os.Stdout, "preprocess: ", log.LstdFlags|log.Lshortfile|log.Lmsgprefix)

type Preprocessor interface {
	Preprocess(t *table.Table) error
}

// Imputer 填充columns中的缺失值(NaN)。columns均为t中的数值列
type Imputer interface {
	Impute(t *table.Table, columns []*table.Column) error
}

type defaultPreprocess struct {
	chain []Preprocessor
}

func (d *defaultPreprocess) Preprocess(t *table.Table) error {
	for _, processor := range d.chain {
		if err := processor.Preprocess(t); err != nil {
			return err
		}
	}
	return nil
}

// Default 迭代插补后将固定的几列截断为非负数
func Default(config *IterativeConfig) Preprocessor {
	return &defaultPreprocess{chain: []Preprocessor{
		Impute(NewIterativeImputer(config)),
		Clip(internal.ClipColumns...),
	}}
}

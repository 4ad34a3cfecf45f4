package pipeline

import (
	"encoding/json"
	"fmt"
	"github.com/packagewjx/aura-fitness/internal"
	"github.com/packagewjx/aura-fitness/internal/preprocess"
	"github.com/pkg/errors"
	"path/filepath"
)

type Config struct {
	InputFile  string                     // 输入csv文件
	OutputFile string                     // 输出csv文件，不能与输入相同
	Imputer    preprocess.IterativeConfig // 迭代插补参数
}

func (c Config) String() string {
	marshal, _ := json.Marshal(c)
	return string(marshal)
}

// Complete 为空字段设置默认值并检查配置
func (c *Config) Complete() error {
	if c.InputFile == "" {
		c.InputFile = internal.DefaultInputFile
	}
	if c.OutputFile == "" {
		c.OutputFile = internal.DefaultOutputFile
	}
	if filepath.Clean(c.InputFile) == filepath.Clean(c.OutputFile) {
		return fmt.Errorf("输入输出不能一致：%s", c.InputFile)
	}

	if err := c.Imputer.Complete(); err != nil {
		return errors.Wrap(err, "插补配置有误")
	}
	return nil
}

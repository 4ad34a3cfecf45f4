package pipeline

import (
	"fmt"
	"github.com/packagewjx/aura-fitness/internal/features"
	"github.com/packagewjx/aura-fitness/internal/preprocess"
	"github.com/packagewjx/aura-fitness/internal/table"
)

type step struct {
	stage   Stage
	message string
	run     func(t *table.Table) error
}

// Run 读取、清洗、生成特征并写出。任何阶段出错都会交给reporter.Failure，并原样返回该错误；
// 出错时不会产生或改动输出文件
func Run(config *Config, reporter Reporter) error {
	cleaner := preprocess.Default(&config.Imputer)
	return execute(config, reporter, []step{
		{StageCleaned, "Data Cleaning (Iterative Imputation) Done.", cleaner.Preprocess},
		{StageFeatures, "Feature Engineering Completed.", features.DeriveActivityLevel},
	})
}

// RunImpute 只做读取、清洗与写出
func RunImpute(config *Config, reporter Reporter) error {
	cleaner := preprocess.Default(&config.Imputer)
	return execute(config, reporter, []step{
		{StageCleaned, "Data Cleaning (Iterative Imputation) Done.", cleaner.Preprocess},
	})
}

func execute(config *Config, reporter Reporter, steps []step) error {
	err := doExecute(config, reporter, steps)
	if err != nil {
		reporter.Failure(err)
	}
	return err
}

func doExecute(config *Config, reporter Reporter, steps []step) error {
	seq := 0
	progress := func(stage Stage, message string) {
		seq++
		reporter.Progress(stage, fmt.Sprintf("%d. %s", seq, message))
	}

	t, err := table.Load(config.InputFile)
	if err != nil {
		return err
	}
	progress(StageLoaded, "Data Loaded Successfully.")

	for _, s := range steps {
		if err := s.run(t); err != nil {
			return err
		}
		progress(s.stage, s.message)
	}

	if err := table.Save(t, config.OutputFile); err != nil {
		return err
	}
	progress(StageSaved, fmt.Sprintf("Process Completed! Cleaned data saved to: %s", config.OutputFile))
	return nil
}

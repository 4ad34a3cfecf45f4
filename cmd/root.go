/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"github.com/mitchellh/go-homedir"
	"github.com/packagewjx/aura-fitness/internal"
	"github.com/packagewjx/aura-fitness/internal/pipeline"
	"github.com/packagewjx/aura-fitness/internal/preprocess"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"io"
	"log"
	"os"
)

// 配置文件中的键
const (
	KeyInput                  = "input"
	KeyOutput                 = "output"
	KeyImputerMaxIter         = "imputer.maxIter"
	KeyImputerTol             = "imputer.tol"
	KeyImputerSeed            = "imputer.seed"
	KeyImputerAlpha           = "imputer.alpha"
	KeyImputerInitialStrategy = "imputer.initialStrategy"
	KeyImputerOrder           = "imputer.order"
)

const configName = ".aura-fitness"

var logger = log.New(os.Stdout, "", log.LstdFlags)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aura-fitness",
	Short: "清洗健身数据并生成活动水平特征",
	Long: fmt.Sprintf("读取%s，对数值列做多变量迭代插补，将%v截断为非负数，\n"+
		"再根据%s生成%s列，结果写入%s。\n"+
		"可以在$HOME或当前目录下的%s.yaml中修改路径与插补参数。",
		internal.DefaultInputFile, internal.ClipColumns, internal.ColumnDailySteps,
		internal.ColumnActivityLevel, internal.DefaultOutputFile, configName),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig()
		if err != nil {
			return err
		}

		return runPipeline(config, os.Stdout, pipeline.Run)
	},
}

// runPipeline 在out上输出启动信息、配置与各阶段进度
func runPipeline(config *pipeline.Config, out io.Writer,
	run func(*pipeline.Config, pipeline.Reporter) error) error {
	l := log.New(out, "", log.LstdFlags)
	l.Println("Aura Fitness Data Pipeline Started...")
	l.Printf("使用配置：%s\n", config)
	if err := run(config, pipeline.NewLogReporter(out)); err != nil {
		return reportedError{err}
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			logger.Println(err)
		}
		os.Exit(1)
	}
}

// reportedError 已经由Reporter输出过的错误，不再重复打印
type reportedError struct {
	error
}

func (r reportedError) Cause() error  { return r.error }
func (r reportedError) Unwrap() error { return r.error }

func init() {
	cobra.OnInitialize(initConfig)

	viper.SetDefault(KeyInput, internal.DefaultInputFile)
	viper.SetDefault(KeyOutput, internal.DefaultOutputFile)
	viper.SetDefault(KeyImputerMaxIter, preprocess.DefaultMaxIter)
	viper.SetDefault(KeyImputerTol, preprocess.DefaultTol)
	viper.SetDefault(KeyImputerSeed, preprocess.DefaultSeed)
	viper.SetDefault(KeyImputerAlpha, preprocess.DefaultAlpha)
	viper.SetDefault(KeyImputerInitialStrategy, string(preprocess.DefaultInitialStrategy))
	viper.SetDefault(KeyImputerOrder, string(preprocess.DefaultOrder))
}

// initConfig reads in config file if present.
func initConfig() {
	home, err := homedir.Dir()
	if err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")
	viper.SetConfigName(configName)

	if err := viper.ReadInConfig(); err == nil {
		logger.Println("使用配置文件:", viper.ConfigFileUsed())
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		logger.Println("读取配置文件出错，使用默认配置:", err)
	}
}

func loadConfig() (*pipeline.Config, error) {
	config := &pipeline.Config{
		InputFile:  viper.GetString(KeyInput),
		OutputFile: viper.GetString(KeyOutput),
		Imputer: preprocess.IterativeConfig{
			MaxIter:         viper.GetInt(KeyImputerMaxIter),
			Tol:             viper.GetFloat64(KeyImputerTol),
			Seed:            viper.GetInt64(KeyImputerSeed),
			Alpha:           viper.GetFloat64(KeyImputerAlpha),
			InitialStrategy: preprocess.InitialStrategy(viper.GetString(KeyImputerInitialStrategy)),
			Order:           preprocess.ImputationOrder(viper.GetString(KeyImputerOrder)),
		},
	}
	if err := config.Complete(); err != nil {
		return nil, errors.Wrap(err, "配置错误")
	}
	return config, nil
}

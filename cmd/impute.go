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
	"github.com/packagewjx/aura-fitness/internal/pipeline"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
)

// imputeCmd represents the impute command
var imputeCmd = &cobra.Command{
	Use:   "impute inputFile outputFile",
	Short: "只填充缺失值并截断负数，不生成特征",
	Long: "对所有数值列做多变量迭代插补：每一轮把有缺失值的列作为目标，用其他数值列做岭回归预测缺失值，" +
		"直到估计值收敛或达到最大轮次。数值列少于2列时使用均值填充。",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if 2 != len(args) {
			return errors.New("参数错误")
		} else if args[0] == args[1] {
			return errors.New("输入输出不能一致")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		viper.Set(KeyInput, args[0])
		viper.Set(KeyOutput, args[1])
		config, err := loadConfig()
		if err != nil {
			return err
		}

		return runPipeline(config, os.Stdout, pipeline.RunImpute)
	},
}

func init() {
	rootCmd.AddCommand(imputeCmd)
}

package cmd

import (
	"github.com/packagewjx/aura-fitness/internal"
	"github.com/packagewjx/aura-fitness/internal/pipeline"
	"github.com/packagewjx/aura-fitness/internal/preprocess"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, internal.DefaultInputFile, config.InputFile)
	assert.Equal(t, internal.DefaultOutputFile, config.OutputFile)
	assert.Equal(t, preprocess.DefaultMaxIter, config.Imputer.MaxIter)
	assert.Equal(t, int64(preprocess.DefaultSeed), config.Imputer.Seed)
	assert.Equal(t, preprocess.OrderAscending, config.Imputer.Order)
}

func TestLoadConfigInvalid(t *testing.T) {
	viper.Set(KeyImputerOrder, "sideways")
	defer viper.Set(KeyImputerOrder, string(preprocess.DefaultOrder))

	_, err := loadConfig()
	assert.Error(t, err)
}

func TestImputeCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	require.NoError(t, ioutil.WriteFile(in, []byte(
		"Daily_Steps,Workout_Min,Calories_Burned\n3000,30,150\n6000,,300\n9000,50,\n12000,70,600\n"), 0644))
	defer func() {
		viper.Set(KeyInput, internal.DefaultInputFile)
		viper.Set(KeyOutput, internal.DefaultOutputFile)
	}()

	/*
		参数错误
	*/
	assert.Error(t, imputeCmd.PreRunE(imputeCmd, []string{in}))
	assert.Error(t, imputeCmd.PreRunE(imputeCmd, []string{in, in}))

	require.NoError(t, imputeCmd.PreRunE(imputeCmd, []string{in, out}))
	require.NoError(t, imputeCmd.RunE(imputeCmd, []string{in, out}))
	content, err := ioutil.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Equal(t, 5, len(lines))
	assert.Equal(t, "Daily_Steps,Workout_Min,Calories_Burned", lines[0])
	assert.NotContains(t, lines[2], ",,")

	/*
		输入不存在时返回已输出过的错误
	*/
	err = imputeCmd.RunE(imputeCmd, []string{filepath.Join(dir, "missing.csv"), out})
	var reported reportedError
	require.True(t, errors.As(err, &reported))
	var nf *internal.NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestRunPipeline(t *testing.T) {
	dir := t.TempDir()
	config := &pipeline.Config{
		InputFile:  filepath.Join(dir, "in.csv"),
		OutputFile: filepath.Join(dir, "out.csv"),
	}
	require.NoError(t, config.Complete())
	require.NoError(t, ioutil.WriteFile(config.InputFile, []byte(
		"Daily_Steps,Workout_Min,Calories_Burned\n3000,30,150\n6000,,300\n9000,50,\n12000,70,600\n"), 0644))

	builder := &strings.Builder{}
	require.NoError(t, runPipeline(config, builder, pipeline.Run))
	lines := strings.Split(strings.TrimSpace(builder.String()), "\n")
	require.Equal(t, 6, len(lines))
	assert.True(t, strings.HasSuffix(lines[0], "Aura Fitness Data Pipeline Started..."))
	assert.Contains(t, lines[1], config.InputFile)
	assert.True(t, strings.HasSuffix(lines[2], "1. Data Loaded Successfully."))
	assert.True(t, strings.HasSuffix(lines[5], "4. Process Completed! Cleaned data saved to: "+config.OutputFile))

	/*
		失败信息输出到同一个out
	*/
	builder.Reset()
	config.InputFile = filepath.Join(dir, "missing.csv")
	err := runPipeline(config, builder, pipeline.Run)
	var reported reportedError
	require.True(t, errors.As(err, &reported))
	assert.Contains(t, builder.String(), "Error occurred: ")
}

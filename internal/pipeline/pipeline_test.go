package pipeline

import (
	"encoding/csv"
	"github.com/packagewjx/aura-fitness/internal"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

type recordReporter struct {
	stages   []Stage
	messages []string
	failures []error
}

func (r *recordReporter) Progress(stage Stage, message string) {
	r.stages = append(r.stages, stage)
	r.messages = append(r.messages, message)
}

func (r *recordReporter) Failure(err error) {
	r.failures = append(r.failures, err)
}

const inputCsv = "User_ID,Gender,Daily_Steps,Workout_Min,Calories_Burned\n" +
	"u0,F,3000,30,150\n" +
	"u1,M,12000,60,600\n" +
	"u2,F,8000,45,\n" +
	"u3,M,5000,-5,260\n" +
	"u4,F,16000,90,820\n" +
	"u5,M,7000,20,300\n" +
	"u6,F,10000,50,510\n" +
	"u7,M,2000,10,90\n"

func setup(t *testing.T, content string) *Config {
	dir := t.TempDir()
	config := &Config{
		InputFile:  filepath.Join(dir, "aura_fitness_final.csv"),
		OutputFile: filepath.Join(dir, "aura_fitness_cleaned.csv"),
	}
	require.NoError(t, config.Complete())
	if content != "" {
		require.NoError(t, ioutil.WriteFile(config.InputFile, []byte(content), 0644))
	}
	return config
}

func readOutput(t *testing.T, path string) (header []string, rows []map[string]string) {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)

	header = records[0]
	for _, record := range records[1:] {
		row := make(map[string]string)
		for i, cell := range record {
			row[header[i]] = cell
		}
		rows = append(rows, row)
	}
	return header, rows
}

func parse(t *testing.T, s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err)
	return f
}

func TestRun(t *testing.T) {
	config := setup(t, inputCsv)
	reporter := &recordReporter{}

	require.NoError(t, Run(config, reporter))
	assert.Empty(t, reporter.failures)
	assert.Equal(t, []Stage{StageLoaded, StageCleaned, StageFeatures, StageSaved}, reporter.stages)
	assert.Equal(t, "1. Data Loaded Successfully.", reporter.messages[0])
	assert.Equal(t, "2. Data Cleaning (Iterative Imputation) Done.", reporter.messages[1])
	assert.Equal(t, "3. Feature Engineering Completed.", reporter.messages[2])
	assert.Equal(t, "4. Process Completed! Cleaned data saved to: "+config.OutputFile, reporter.messages[3])

	header, rows := readOutput(t, config.OutputFile)
	assert.Equal(t, []string{"User_ID", "Gender", "Daily_Steps", "Workout_Min", "Calories_Burned",
		internal.ColumnActivityLevel}, header)
	require.Equal(t, 8, len(rows))

	// 场景1：完整的行数值不变
	assert.Equal(t, "3000", rows[0]["Daily_Steps"])
	assert.Equal(t, "30", rows[0]["Workout_Min"])
	assert.Equal(t, "150", rows[0]["Calories_Burned"])
	assert.Equal(t, "Sedentary", rows[0][internal.ColumnActivityLevel])

	// 场景2
	assert.Equal(t, "Active", rows[1][internal.ColumnActivityLevel])

	// 场景3：缺失值被估计为非负数
	assert.NotEqual(t, "", rows[2]["Calories_Burned"])
	assert.GreaterOrEqual(t, parse(t, rows[2]["Calories_Burned"]), float64(0))

	// 场景4：负数被截断为0
	assert.Equal(t, "0", rows[3]["Workout_Min"])
	assert.Equal(t, "Moderate", rows[3][internal.ColumnActivityLevel])

	assert.Equal(t, "Very Active", rows[4][internal.ColumnActivityLevel])

	for _, row := range rows {
		for _, name := range internal.ClipColumns {
			assert.GreaterOrEqual(t, parse(t, row[name]), float64(0))
		}
	}
}

func TestRunImpute(t *testing.T) {
	config := setup(t, inputCsv)
	reporter := &recordReporter{}

	require.NoError(t, RunImpute(config, reporter))
	assert.Equal(t, []Stage{StageLoaded, StageCleaned, StageSaved}, reporter.stages)
	assert.True(t, strings.HasPrefix(reporter.messages[2], "3. Process Completed!"))

	header, rows := readOutput(t, config.OutputFile)
	assert.NotContains(t, header, internal.ColumnActivityLevel)
	assert.NotEqual(t, "", rows[2]["Calories_Burned"])
}

func TestRunNotFound(t *testing.T) {
	config := setup(t, "")
	reporter := &recordReporter{}

	err := Run(config, reporter)
	var nf *internal.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, config.InputFile, nf.Path)
	require.Equal(t, 1, len(reporter.failures))
	assert.Equal(t, err, reporter.failures[0])
	assert.Empty(t, reporter.stages)

	_, statErr := os.Stat(config.OutputFile)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunFailureKeepsExistingOutput(t *testing.T) {
	config := setup(t, "User_ID,Workout_Min,Calories_Burned\nu0,30,150\nu1,,200\nu2,40,210\n")
	require.NoError(t, ioutil.WriteFile(config.OutputFile, []byte("old"), 0644))
	reporter := &recordReporter{}

	err := Run(config, reporter)
	var se *internal.SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, []Stage{StageLoaded, StageCleaned}, reporter.stages)
	assert.Equal(t, 1, len(reporter.failures))

	content, err := ioutil.ReadFile(config.OutputFile)
	require.NoError(t, err)
	assert.Equal(t, "old", string(content))
}

func TestRunImputationError(t *testing.T) {
	config := setup(t, "Daily_Steps,Workout_Min,Calories_Burned\n3000,,150\n4000,,200\n")
	reporter := &recordReporter{}

	err := Run(config, reporter)
	var ie *internal.ImputationError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "Workout_Min", ie.Column)
	assert.Equal(t, []Stage{StageLoaded}, reporter.stages)
}

func TestRunParseError(t *testing.T) {
	config := setup(t, "Daily_Steps,Workout_Min\n3000,30\n4000\n")
	err := Run(config, &recordReporter{})
	var pe *internal.ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestRunWriteError(t *testing.T) {
	config := setup(t, inputCsv)
	config.OutputFile = filepath.Join(filepath.Dir(config.InputFile), "missing", "out.csv")
	reporter := &recordReporter{}

	err := Run(config, reporter)
	var we *internal.WriteError
	require.True(t, errors.As(err, &we))
	assert.Equal(t, []Stage{StageLoaded, StageCleaned, StageFeatures}, reporter.stages)
}

func TestConfigComplete(t *testing.T) {
	config := &Config{}
	require.NoError(t, config.Complete())
	assert.Equal(t, internal.DefaultInputFile, config.InputFile)
	assert.Equal(t, internal.DefaultOutputFile, config.OutputFile)
	assert.Equal(t, 10, config.Imputer.MaxIter)
	assert.Contains(t, config.String(), internal.DefaultOutputFile)

	config = &Config{InputFile: "./data/a.csv", OutputFile: "data/a.csv"}
	assert.Error(t, config.Complete())
}

func TestLogReporter(t *testing.T) {
	builder := &strings.Builder{}
	reporter := NewLogReporter(builder)
	reporter.Progress(StageLoaded, "1. Data Loaded Successfully.")
	reporter.Failure(errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(builder.String()), "\n")
	require.Equal(t, 2, len(lines))
	assert.True(t, strings.HasSuffix(lines[0], "1. Data Loaded Successfully."))
	assert.True(t, strings.HasSuffix(lines[1], "Error occurred: boom"))
}

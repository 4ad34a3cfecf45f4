package internal

// 固定的列名
const (
	ColumnDailySteps     = "Daily_Steps"
	ColumnWorkoutMin     = "Workout_Min"
	ColumnCaloriesBurned = "Calories_Burned"
	ColumnActivityLevel  = "Activity_Level"
)

// ClipColumns 清洗后不能为负数的列
var ClipColumns = []string{ColumnDailySteps, ColumnWorkoutMin, ColumnCaloriesBurned}

const (
	DefaultInputFile  = "./data/aura_fitness_final.csv"
	DefaultOutputFile = "./data/aura_fitness_cleaned.csv"
)

// MissingTokens 读取时视为缺失值的单元格内容
var MissingTokens = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"NaN":  {},
	"nan":  {},
	"null": {},
	"NULL": {},
	"None": {},
}

func IsMissing(cell string) bool {
	_, ok := MissingTokens[cell]
	return ok
}

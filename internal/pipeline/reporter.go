package pipeline

import (
	"io"
	"log"
)

type Stage int

const (
	StageLoaded Stage = iota + 1
	StageCleaned
	StageFeatures
	StageSaved
)

// Reporter 接收流水线的进度与失败信息
type Reporter interface {
	// Progress 每完成一个阶段调用一次，message已包含序号
	Progress(stage Stage, message string)
	// Failure 流水线失败时调用一次
	Failure(err error)
}

// NewLogReporter 将进度逐行写到out
func NewLogReporter(out io.Writer) Reporter {
	return &logReporter{logger: log.New(out, "", log.LstdFlags)}
}

type logReporter struct {
	logger *log.Logger
}

func (l *logReporter) Progress(_ Stage, message string) {
	l.logger.Println(message)
}

func (l *logReporter) Failure(err error) {
	l.logger.Printf("Error occurred: %v\n", err)
}

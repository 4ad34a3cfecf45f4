package internal

import "fmt"

// NotFoundError 输入文件不存在
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("数据文件不存在: %s", e.Path)
}

// ParseError 输入文件格式有误。Line从1开始，为0时表示无法定位到具体行
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("解析%s第%d行出错: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("解析%s出错: %v", e.Path, e.Err)
}

func (e *ParseError) Cause() error  { return e.Err }
func (e *ParseError) Unwrap() error { return e.Err }

// ImputationError 数值插补无法进行
type ImputationError struct {
	Column string
	Reason string
	Err    error
}

func (e *ImputationError) Error() string {
	msg := "插补失败"
	if e.Column != "" {
		msg += fmt.Sprintf("，列%s", e.Column)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *ImputationError) Cause() error  { return e.Err }
func (e *ImputationError) Unwrap() error { return e.Err }

// SchemaError 缺少必须的列
type SchemaError struct {
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("列%s不符合要求: %s", e.Column, e.Reason)
}

// WriteError 输出文件无法写入
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("写入%s失败: %v", e.Path, e.Err)
}

func (e *WriteError) Cause() error  { return e.Err }
func (e *WriteError) Unwrap() error { return e.Err }

package table

import (
	"encoding/csv"
	"fmt"
	"github.com/packagewjx/aura-fitness/internal"
	"github.com/packagewjx/aura-fitness/internal/utils"
	"github.com/pkg/errors"
	"io"
	"log"
	"os"
	"strings"
)

var logger = log.New(os.Stdout, "table: ", log.LstdFlags|log.Lshortfile|log.Lmsgprefix)

// Load 读取带表头的csv文件。文件不存在时返回*internal.NotFoundError，格式错误时返回*internal.ParseError
func Load(path string) (*Table, error) {
	fin, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, &internal.NotFoundError{Path: path}
	} else if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("打开文件%s出错", path))
	}
	defer func() {
		_ = fin.Close()
	}()

	counter := &utils.ReadCounter{Reader: fin}
	t, err := Read(counter, path)
	if err != nil {
		return nil, err
	}
	logger.Printf("读取%s完成，共%d字节，%d行%d列\n", path, counter.Count, t.Rows(), len(t.Columns))
	return t, nil
}

// Read 从in读取csv数据，name用于错误信息
func Read(in io.Reader, name string) (*Table, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &internal.ParseError{Path: name, Err: errors.New("缺少表头")}
	} else if err != nil {
		return nil, toParseError(name, err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	seen := make(map[string]struct{}, len(header))
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
		if _, ok := seen[header[i]]; ok {
			return nil, &internal.ParseError{Path: name, Line: 1, Err: fmt.Errorf("列名%s重复", header[i])}
		}
		seen[header[i]] = struct{}{}
	}

	cells := make([][]string, len(header))
	for i := range cells {
		cells[i] = make([]string, 0, 64)
	}

	rows := 0
	var record []string
	for record, err = reader.Read(); err == nil; record, err = reader.Read() {
		if len(record) > len(header) {
			line, _ := reader.FieldPos(0)
			return nil, &internal.ParseError{Path: name, Line: line,
				Err: fmt.Errorf("有%d个字段，表头只有%d列", len(record), len(header))}
		}
		rows++
		// 字段不足的行用缺失值补齐
		for i := range cells {
			cell := ""
			if i < len(record) {
				cell = record[i]
			}
			cells[i] = append(cells[i], cell)
		}
	}
	if err != io.EOF {
		return nil, toParseError(name, err)
	}

	t := New(name, rows)
	for _, c := range Inspect(header, cells) {
		if err := t.AddColumn(c); err != nil {
			return nil, &internal.ParseError{Path: name, Err: err}
		}
	}
	return t, nil
}

func toParseError(name string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &internal.ParseError{Path: name, Line: pe.Line, Err: pe.Err}
	}
	return &internal.ParseError{Path: name, Err: err}
}

package table

import (
	"encoding/csv"
	"fmt"
	"github.com/packagewjx/aura-fitness/internal"
	"github.com/packagewjx/aura-fitness/internal/utils"
	"github.com/pkg/errors"
	"io"
	"os"
	"path/filepath"
)

// Write 输出表头与所有行，不输出行号
func Write(t *Table, out io.Writer) error {
	writer := csv.NewWriter(out)

	if err := writer.Write(t.Header()); err != nil {
		return errors.Wrap(err, "写入表头出错")
	}

	record := make([]string, len(t.Columns))
	for r := 0; r < t.Rows(); r++ {
		for i, c := range t.Columns {
			if c.Kind.Numeric() {
				record[i] = utils.FormatFloat(c.Numbers[r])
			} else {
				record[i] = c.Text[r]
			}
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, fmt.Sprintf("写入第%d条数据出错", r))
		}
	}

	writer.Flush()
	return writer.Error()
}

// DefaultFileMode 新建输出文件时的权限
const DefaultFileMode os.FileMode = 0644

// Save 先写入同目录下的临时文件，成功后再重命名为path。失败时不会留下或改动path，错误为*internal.WriteError
func Save(t *Table, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &internal.WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	counter := &utils.WriterCounter{Writer: tmp}
	if err = Write(t, counter); err != nil {
		return &internal.WriteError{Path: path, Err: err}
	}
	if err = tmp.Chmod(outputMode(path)); err != nil {
		return &internal.WriteError{Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &internal.WriteError{Path: path, Err: err}
	}
	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return &internal.WriteError{Path: path, Err: err}
	}
	committed = true

	logger.Printf("写入%s完成，共%d字节\n", path, counter.Count)
	return nil
}

// outputMode 覆盖已有文件时沿用其权限，否则使用DefaultFileMode
func outputMode(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	return DefaultFileMode
}

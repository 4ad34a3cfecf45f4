package utils

import "io"

// ReadCounter 统计经过的字节数，用于输出读取进度
type ReadCounter struct {
	Count  uint64
	Reader io.Reader
}

func (r *ReadCounter) Read(p []byte) (n int, err error) {
	n, err = r.Reader.Read(p)
	r.Count += uint64(n)
	return
}

type WriterCounter struct {
	Count  uint64
	Writer io.Writer
}

func (w *WriterCounter) Write(p []byte) (n int, err error) {
	n, err = w.Writer.Write(p)
	w.Count += uint64(n)
	return
}

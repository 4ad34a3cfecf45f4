package table

import (
	"github.com/pkg/errors"
	"math"
)

type Kind int

const (
	Categorical Kind = iota
	Integer
	Float
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Float:
		return "float"
	default:
		return "categorical"
	}
}

func (k Kind) Numeric() bool {
	return k == Integer || k == Float
}

// Column 列描述与数据。数值列的数据保存在Numbers中，缺失值为NaN；分类列保存在Text中，缺失值为空字符串
type Column struct {
	Name    string
	Kind    Kind
	Numbers []float64
	Text    []string
}

func (c *Column) Len() int {
	if c.Kind.Numeric() {
		return len(c.Numbers)
	}
	return len(c.Text)
}

// MissingCount 缺失值的数量
func (c *Column) MissingCount() int {
	cnt := 0
	if c.Kind.Numeric() {
		for _, f := range c.Numbers {
			if math.IsNaN(f) {
				cnt++
			}
		}
		return cnt
	}
	for _, s := range c.Text {
		if s == "" {
			cnt++
		}
	}
	return cnt
}

// Table 按列保存的内存表，列顺序即文件中的顺序
type Table struct {
	Name    string
	Columns []*Column
	rows    int
	index   map[string]int
}

func New(name string, rows int) *Table {
	return &Table{
		Name:  name,
		rows:  rows,
		index: make(map[string]int),
	}
}

func (t *Table) Rows() int {
	return t.rows
}

func (t *Table) Column(name string) (*Column, bool) {
	idx, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.Columns[idx], true
}

// AddColumn 在末尾追加一列。列名重复或长度与表不一致时返回错误
func (t *Table) AddColumn(c *Column) error {
	if _, ok := t.index[c.Name]; ok {
		return errors.Errorf("列%s已存在", c.Name)
	}
	if c.Len() != t.rows {
		return errors.Errorf("列%s长度为%d，表的行数为%d", c.Name, c.Len(), t.rows)
	}
	t.index[c.Name] = len(t.Columns)
	t.Columns = append(t.Columns, c)
	return nil
}

// NumericColumns 返回所有数值列，顺序与表中一致
func (t *Table) NumericColumns() []*Column {
	result := make([]*Column, 0, len(t.Columns))
	for _, c := range t.Columns {
		if c.Kind.Numeric() {
			result = append(result, c)
		}
	}
	return result
}

// Header 列名
func (t *Table) Header() []string {
	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c.Name
	}
	return header
}

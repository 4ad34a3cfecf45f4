package table

import (
	"github.com/packagewjx/aura-fitness/internal"
	"math"
	"strconv"
	"strings"
)

// Inspect 根据单元格内容推断每一列的类型。columns[i]为第i列的所有单元格
//
// 所有非缺失值都能解析为数字的列为数值列，其中全部为整数的为Integer，否则为Float。
// 全部缺失的列视为Float。
func Inspect(header []string, columns [][]string) []*Column {
	result := make([]*Column, len(header))
	for i, name := range header {
		result[i] = inspectColumn(name, columns[i])
	}
	return result
}

func inspectColumn(name string, cells []string) *Column {
	numbers := make([]float64, len(cells))
	kind := Integer
	for i, cell := range cells {
		cell = strings.TrimSpace(cell)
		if internal.IsMissing(cell) {
			numbers[i] = math.NaN()
			continue
		}
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil || math.IsInf(f, 0) {
			kind = Categorical
			break
		}
		if kind == Integer && f != math.Trunc(f) {
			kind = Float
		}
		numbers[i] = f
	}

	if kind == Categorical {
		text := make([]string, len(cells))
		for i, cell := range cells {
			if !internal.IsMissing(strings.TrimSpace(cell)) {
				text[i] = cell
			}
		}
		return &Column{Name: name, Kind: Categorical, Text: text}
	}

	observed := 0
	for _, f := range numbers {
		if !math.IsNaN(f) {
			observed++
		}
	}
	if observed == 0 || (kind == Integer && observed != len(numbers)) {
		// 含缺失值的整数列按浮点处理
		kind = Float
	}
	return &Column{Name: name, Kind: kind, Numbers: numbers}
}

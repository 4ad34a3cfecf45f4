package utils

import (
	"math"
	"strconv"
)

// GetSortedPositionValue 返回arr排序后第pos个位置的值，会打乱arr的顺序
func GetSortedPositionValue(arr []float64, pos int) float64 {
	if pos < 0 || pos >= len(arr) {
		return math.NaN()
	}

	l := 0
	r := len(arr) - 1
	for idx := Partition(arr, l, r); idx != pos && l+1 < r; idx = Partition(arr, l, r) {
		if idx < pos {
			l = idx + 1
		} else if idx > pos {
			r = idx - 1
		}
	}

	return arr[pos]
}

func Partition(arr []float64, l, r int) int {
	slice := arr[l : r+1]

	if len(slice) == 0 {
		return 0
	}
	m := len(slice) / 2
	slice[0], slice[m] = slice[m], slice[0]
	pivot := slice[0]

	i := 0
	j := len(slice) - 1

	for i < j {
		for i < j && slice[j] > pivot {
			j--
		}
		slice[i] = slice[j]

		for i < j && slice[i] <= pivot {
			i++
		}
		slice[j] = slice[i]
	}
	slice[i] = pivot

	return l + i
}

// Median 中位数。偶数个时取中间两个的平均值。不修改arr
func Median(arr []float64) float64 {
	n := len(arr)
	if n == 0 {
		return math.NaN()
	}
	buf := make([]float64, n)
	copy(buf, arr)
	upper := GetSortedPositionValue(buf, n/2)
	if n%2 == 1 {
		return upper
	}
	lower := GetSortedPositionValue(buf, n/2-1)
	return (lower + upper) / 2
}

// FormatFloat 使用能还原原值的最短表示，NaN输出为空
func FormatFloat(f float64) string {
	if math.IsNaN(f) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Package utils
package utils

import "strings"

func MapTo[T any, R any](src []*T, mapper func(element *T) R) (result []R) {
	result = make([]R, 0, len(src))
	for _, v := range src {
		result = append(result, mapper(v))
	}
	return
}

func ReverseForEach[T any](src []T, callback func(idx int, element T)) {
	for i := len(src) - 1; i >= 0; i-- {
		callback(i, src[i])
	}
}

// SplitList 分割逗号分隔的列表并去除空白项
func SplitList(raw string) (result []string) {
	result = make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return
}

// Package global
package global

import "context"

// Callable 关闭回调, 由Cleaner在进程退出时逆序调用
type Callable interface {
	Invoke(ctx context.Context) error
}

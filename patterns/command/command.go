// Package command 提供带撤销能力的命令调用器
//
// Invoker 独占持有一个目标对象（Target），按 FIFO 顺序执行待执行队列中的命令，
// 已执行的命令进入历史栈（LIFO），撤销时从栈顶弹出并重新排到待执行队列的最前面。
//
// 待执行队列与历史栈共用一个有序切片和一个游标：
//
//	entries[:cursor]  历史栈，栈顶为 entries[cursor-1]
//	entries[cursor:]  待执行队列，队首为 entries[cursor]
//
// 执行即游标前进，撤销即游标后退。
package command

import (
	"fmt"
)

// ICommand 命令接口
//
// Execute 作用于目标；Undo 必须是 Execute 的语义逆操作：
// 对任意可达的目标状态，Execute 后紧跟 Undo 应使目标按值回到原状态。
type ICommand[T any] interface {
	Execute(target *T)
	Undo(target *T)
}

// commandName 返回用于日志的命令名
func commandName(c any) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", c)
}

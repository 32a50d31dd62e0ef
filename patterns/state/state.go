// Package state 用状态模式建模一个只有一个按钮的电子骰子。
//
// 每按一次按钮沿 Off -> On -> Stop -> Off 前进一步，并输出一条消息；
// 从 Stop 回到 Off 时掷出 1..6 之间的点数。
package state

import "fmt"

// State 骰子状态（封闭枚举）
type State int

const (
	Off State = iota
	On
	Stop
)

func (s State) String() string {
	switch s {
	case Off:
		return "Off"
	case On:
		return "On"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Next 返回后继状态
func (s State) Next() State {
	switch s {
	case Off:
		return On
	case On:
		return Stop
	case Stop:
		return Off
	default:
		panic(fmt.Sprintf("state: unknown state %d", int(s)))
	}
}

const (
	MessagePowerOn = "Power on."
	MessageShaking = "shaking dice."
)

// PowerOffMessage 返回 Stop -> Off 时带点数的消息
func PowerOffMessage(value int) string {
	return fmt.Sprintf("Power off and output value is %d.", value)
}

// 点数区间 [FaceMin, FaceMax)
const (
	FaceMin = 1
	FaceMax = 7
)

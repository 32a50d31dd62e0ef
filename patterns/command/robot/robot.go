// Package robot 是命令调用器的参考目标领域：在二维网格上移动的机器人。
package robot

import "fmt"

// Robot 位置 (X, Y) 与单位朝向向量 (DX, DY)
type Robot struct {
	X  int
	Y  int
	DX int
	DY int
}

// New 创建位于原点、朝向 (0, 1) 的机器人
func New() Robot {
	return Robot{X: 0, Y: 0, DX: 0, DY: 1}
}

// MoveForward 沿当前朝向前进一格
func (r *Robot) MoveForward() {
	r.X += r.DX
	r.Y += r.DY
}

// Direction 返回当前朝向
func (r *Robot) Direction() (dx, dy int) {
	return r.DX, r.DY
}

// SetDirection 设置朝向
func (r *Robot) SetDirection(dx, dy int) {
	r.DX = dx
	r.DY = dy
}

func (r Robot) String() string {
	return fmt.Sprintf("Robot{x=%d y=%d dx=%d dy=%d}", r.X, r.Y, r.DX, r.DY)
}

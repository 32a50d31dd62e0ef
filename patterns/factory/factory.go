// Package factory 实现抽象工厂：按工厂标识产出成对的 X/Y 产品族。
//
// 工厂 A 产出 (X1, Y1)，工厂 B 产出 (X2, Y2)。
package factory

import (
	"fmt"
	"strings"

	"gopatterns/errors"
	"gopatterns/validation"
)

// FactoryID 工厂标识（封闭枚举）
type FactoryID int

const (
	FactoryA FactoryID = iota
	FactoryB
)

// String 返回 "A" / "B"
func (id FactoryID) String() string {
	switch id {
	case FactoryA:
		return "A"
	case FactoryB:
		return "B"
	default:
		return fmt.Sprintf("FactoryID(%d)", int(id))
	}
}

// FactoryIDNames 所有合法工厂标识的文本形式
var FactoryIDNames = []string{FactoryA.String(), FactoryB.String()}

// ParseFactoryID 解析 "A" / "B"（不区分大小写），非法输入返回 ErrCodeValidation
func ParseFactoryID(s string) (FactoryID, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if err := validation.ValidateAll(
		func() error { return validation.ValidateRequired(name, "factory id") },
		func() error { return validation.ValidateEnum(name, "factory id", FactoryIDNames) },
	); err != nil {
		return 0, err
	}

	if name == FactoryA.String() {
		return FactoryA, nil
	}
	return FactoryB, nil
}

// 两个具体工厂都以 "FactoryB" 作为标签前缀，这是对外可见的输出，保持不变。
const contextLabel = "FactoryB"

// IFactory 抽象工厂
type IFactory interface {
	ID() FactoryID
	CreateProductX() ProductX
	CreateProductY() ProductY
}

// ConcreteFactoryA 产出 (X1, Y1)
type ConcreteFactoryA struct{}

// ID 返回 FactoryA
func (ConcreteFactoryA) ID() FactoryID { return FactoryA }

// CreateProductX 产出 X1
func (ConcreteFactoryA) CreateProductX() ProductX { return newProductX(ProductX1, contextLabel) }

// CreateProductY 产出 Y1
func (ConcreteFactoryA) CreateProductY() ProductY { return newProductY(ProductY1, contextLabel) }

// ConcreteFactoryB 产出 (X2, Y2)
type ConcreteFactoryB struct{}

// ID 返回 FactoryB
func (ConcreteFactoryB) ID() FactoryID { return FactoryB }

// CreateProductX 产出 X2
func (ConcreteFactoryB) CreateProductX() ProductX { return newProductX(ProductX2, contextLabel) }

// CreateProductY 产出 Y2
func (ConcreteFactoryB) CreateProductY() ProductY { return newProductY(ProductY2, contextLabel) }

// CreateFactory 按标识创建工厂
//
// 未知标识说明枚举被扩展而未补充分支，返回 ErrCodeInvalidInput。
func CreateFactory(id FactoryID) (IFactory, error) {
	switch id {
	case FactoryA:
		return ConcreteFactoryA{}, nil
	case FactoryB:
		return ConcreteFactoryB{}, nil
	default:
		return nil, errors.NewError(errors.ErrCodeInvalidInput,
			fmt.Sprintf("no factory registered for %s", id))
	}
}

// MustCreateFactory 同 CreateFactory，未知标识时 panic
func MustCreateFactory(id FactoryID) IFactory {
	f, err := CreateFactory(id)
	if err != nil {
		panic(err)
	}
	return f
}

package factory

import "fmt"

const (
	suffixX = " ProductX"
	suffixY = " ProductY"
)

// ProductXKind X 产品族的具体变体
type ProductXKind int

const (
	ProductX1 ProductXKind = iota + 1
	ProductX2
)

// String 返回 "X1" / "X2"
func (k ProductXKind) String() string {
	switch k {
	case ProductX1:
		return "X1"
	case ProductX2:
		return "X2"
	default:
		return fmt.Sprintf("ProductXKind(%d)", int(k))
	}
}

// ProductYKind Y 产品族的具体变体
type ProductYKind int

const (
	ProductY1 ProductYKind = iota + 1
	ProductY2
)

// String 返回 "Y1" / "Y2"
func (k ProductYKind) String() string {
	switch k {
	case ProductY1:
		return "Y1"
	case ProductY2:
		return "Y2"
	default:
		return fmt.Sprintf("ProductYKind(%d)", int(k))
	}
}

// ProductX X 族产品，构造后不可变
type ProductX struct {
	kind  ProductXKind
	value string
}

func newProductX(kind ProductXKind, label string) ProductX {
	return ProductX{kind: kind, value: label + suffixX}
}

// Kind 具体变体
func (p ProductX) Kind() ProductXKind { return p.kind }

// Value 产品标签，形如 "<label> ProductX"
func (p ProductX) Value() string { return p.value }

// String 同 Value
func (p ProductX) String() string { return p.value }

// ProductY Y 族产品，构造后不可变
type ProductY struct {
	kind  ProductYKind
	value string
}

func newProductY(kind ProductYKind, label string) ProductY {
	return ProductY{kind: kind, value: label + suffixY}
}

// Kind 具体变体
func (p ProductY) Kind() ProductYKind { return p.kind }

// Value 产品标签，形如 "<label> ProductY"
func (p ProductY) Value() string { return p.value }

// String 同 Value
func (p ProductY) String() string { return p.value }

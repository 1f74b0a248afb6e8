package conveyor

import "fmt"

// Kind tells which variant an Item holds.
type Kind int

// The closed set of item kinds. Every switch over Kind should cover all three.
const (
	KindEmpty Kind = iota
	KindComponent
	KindProduct
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindComponent:
		return "Component"
	case KindProduct:
		return "Product"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// An Item is what a slot or a worker can hold. Items are plain values and
// copying one yields an independent item. The zero value is Empty.
type Item struct {
	kind          Kind
	componentType string
}

// Empty is the absence of an item.
var Empty = Item{}

// NewComponent creates a component of the given type.
func NewComponent(componentType string) Item {
	return Item{kind: KindComponent, componentType: componentType}
}

// NewProduct creates a finished product.
func NewProduct() Item {
	return Item{kind: KindProduct}
}

// Kind returns the variant of the item.
func (i Item) Kind() Kind {
	return i.kind
}

// IsEmpty returns true if the item represents nothing.
func (i Item) IsEmpty() bool {
	return i.kind == KindEmpty
}

// IsComponent returns true if the item is a component.
func (i Item) IsComponent() bool {
	return i.kind == KindComponent
}

// IsProduct returns true if the item is a finished product.
func (i Item) IsProduct() bool {
	return i.kind == KindProduct
}

// ComponentType returns the type tag of a component. It is empty for any other
// kind of item.
func (i Item) ComponentType() string {
	return i.componentType
}

func (i Item) String() string {
	switch i.kind {
	case KindEmpty:
		return "-"
	case KindComponent:
		return i.componentType
	case KindProduct:
		return "P"
	default:
		panic("unknown item kind " + i.kind.String())
	}
}

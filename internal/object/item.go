package object

import "github.com/tomz197/shooter/internal/physics"

// ItemKind selects the item variant.
type ItemKind int

const (
	PowerUp ItemKind = iota
	PowerUp10
)

// Item is a pickup dropped by destroyed enemies.
type Item struct {
	Entity
	Kind ItemKind
}

// NewItem creates an item of kind k.
func NewItem(k ItemKind, pos, velo physics.Vec2) Item {
	return Item{Entity: NewEntity(pos, velo), Kind: k}
}

// Value is the power the item grants.
func (it *Item) Value() int {
	if it.Kind == PowerUp10 {
		return 10
	}
	return 1
}

// Size is the item's half extent for drawing.
func (it *Item) Size() float64 {
	if it.Kind == PowerUp10 {
		return Item2Size
	}
	return ItemSize
}

// Animate hands the item to the player on contact.
func (it *Item) Animate(ctx *UpdateContext) DeathReason {
	if it.HitsPlayer(&ctx.Player.Entity) != Alive {
		ctx.Player.Power += it.Value()
		return Killed
	}
	return it.Entity.Animate(ctx.Field)
}

package types

import (
	"fmt"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/wire"
)

// Game rule value discriminants.
const (
	GameRuleTypeBool  uint32 = 1
	GameRuleTypeInt   uint32 = 2
	GameRuleTypeFloat uint32 = 3
)

// GameRule is one named rule in the level settings. Value holds a bool, an
// int32 (unsigned varint on the wire) or a float32, selected by an unsigned
// varint discriminant.
type GameRule struct {
	Name     string
	Editable bool
	Value    any
}

func (g *GameRule) Marshal(io wire.IO) {
	io.String(&g.Name)
	io.Bool(&g.Editable)

	if io.Reading() {
		g.unmarshalValue(io)
		return
	}
	g.marshalValue(io)
}

func (g *GameRule) marshalValue(io wire.IO) {
	switch v := g.Value.(type) {
	case bool:
		t := GameRuleTypeBool
		io.Varuint32(&t)
		io.Bool(&v)
	case int32:
		t := GameRuleTypeInt
		io.Varuint32(&t)
		u := uint32(v)
		io.Varuint32(&u)
	case float32:
		t := GameRuleTypeFloat
		io.Varuint32(&t)
		io.Float32(&v)
	default:
		io.Fail(fmt.Errorf("%w: game rule %q value of type %T", errs.ErrOutOfRange, g.Name, g.Value))
	}
}

func (g *GameRule) unmarshalValue(io wire.IO) {
	var t uint32
	io.Varuint32(&t)

	switch t {
	case GameRuleTypeBool:
		var v bool
		io.Bool(&v)
		g.Value = v
	case GameRuleTypeInt:
		var v uint32
		io.Varuint32(&v)
		g.Value = int32(v)
	case GameRuleTypeFloat:
		var v float32
		io.Float32(&v)
		g.Value = v
	default:
		io.Fail(fmt.Errorf("%w: GameRule tag %d", errs.ErrUnknownVariant, t))
	}
}

// GameRules codecs an unsigned-varint-counted list of game rules.
type GameRules []GameRule

func (g *GameRules) Marshal(io wire.IO) {
	wire.MarshalerSlice[GameRule](io, (*[]GameRule)(g))
}

package types

import (
	"fmt"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/wire"
)

// Item stack request action discriminants.
const (
	StackRequestActionTake    uint8 = 0
	StackRequestActionPlace   uint8 = 1
	StackRequestActionSwap    uint8 = 2
	StackRequestActionDrop    uint8 = 3
	StackRequestActionDestroy uint8 = 4
	StackRequestActionConsume uint8 = 5
)

// StackRequestSlotInfo addresses one slot in one container for a stack
// request action.
type StackRequestSlotInfo struct {
	ContainerID    uint8
	Slot           uint8
	StackNetworkID int32
}

func (s *StackRequestSlotInfo) Marshal(io wire.IO) {
	io.Uint8(&s.ContainerID)
	io.Uint8(&s.Slot)
	io.Varint32(&s.StackNetworkID)
}

// StackRequestAction is one server-authoritative inventory mutation: a
// count moved between a source and a destination slot. Swap carries no
// count; Drop and Destroy carry no destination.
type StackRequestAction struct {
	Type        uint8
	Count       uint8
	Source      StackRequestSlotInfo
	Destination StackRequestSlotInfo
	Randomly    bool
}

func (a *StackRequestAction) Marshal(io wire.IO) {
	io.Uint8(&a.Type)

	switch a.Type {
	case StackRequestActionTake, StackRequestActionPlace:
		io.Uint8(&a.Count)
		a.Source.Marshal(io)
		a.Destination.Marshal(io)
	case StackRequestActionSwap:
		a.Source.Marshal(io)
		a.Destination.Marshal(io)
	case StackRequestActionDrop:
		io.Uint8(&a.Count)
		a.Source.Marshal(io)
		io.Bool(&a.Randomly)
	case StackRequestActionDestroy, StackRequestActionConsume:
		io.Uint8(&a.Count)
		a.Source.Marshal(io)
	default:
		io.Fail(fmt.Errorf("%w: StackRequestAction tag %d", errs.ErrUnknownVariant, a.Type))
	}
}

// ItemStackRequest is one batched inventory request from the client,
// bundled into the authoritative input packet when
// InputFlagPerformItemStackRequest is set.
type ItemStackRequest struct {
	RequestID     int32
	Actions       []StackRequestAction
	FilterStrings []string
	FilterCause   int32
}

func (r *ItemStackRequest) Marshal(io wire.IO) {
	io.Varint32(&r.RequestID)
	wire.MarshalerSlice[StackRequestAction](io, &r.Actions)
	wire.Slice(io, &r.FilterStrings, func(io wire.IO, s *string) {
		io.String(s)
	})
	io.Int32(&r.FilterCause)
}

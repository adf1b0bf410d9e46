package types

import (
	"fmt"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/wire"
)

// Inventory transaction discriminants.
const (
	TransactionTypeNormal         uint32 = 0
	TransactionTypeMismatch       uint32 = 1
	TransactionTypeUseItem        uint32 = 2
	TransactionTypeUseItemOnActor uint32 = 3
	TransactionTypeReleaseItem    uint32 = 4
)

// Inventory action source types.
const (
	InventorySourceContainer uint32 = 0
	InventorySourceWorld     uint32 = 2
	InventorySourceCreative  uint32 = 3
)

// InventoryAction records one slot mutation within a transaction: the slot
// moved from FromItem to ToItem.
type InventoryAction struct {
	SourceType    uint32
	WindowID      int32
	SourceFlags   uint32
	InventorySlot uint32
	FromItem      ItemStack
	ToItem        ItemStack
}

func (a *InventoryAction) Marshal(io wire.IO) {
	io.Varuint32(&a.SourceType)

	switch a.SourceType {
	case InventorySourceContainer:
		io.Varint32(&a.WindowID)
	case InventorySourceWorld:
		io.Varuint32(&a.SourceFlags)
	case InventorySourceCreative:
		// No source payload.
	default:
		io.Fail(fmt.Errorf("%w: InventorySource tag %d", errs.ErrUnknownVariant, a.SourceType))
		return
	}

	io.Varuint32(&a.InventorySlot)
	a.FromItem.Marshal(io)
	a.ToItem.Marshal(io)
}

// TransactionData is the variant payload of an inventory transaction,
// selected by the unsigned varint discriminant preceding it.
type TransactionData interface {
	wire.Marshaler

	// TransactionType returns the wire discriminant of this variant.
	TransactionType() uint32
}

// NormalTransactionData marks a plain inventory reshuffle with no
// additional payload beyond the action list.
type NormalTransactionData struct{}

func (*NormalTransactionData) Marshal(wire.IO) {}
func (*NormalTransactionData) TransactionType() uint32 { return TransactionTypeNormal }

// MismatchTransactionData flags a client/server inventory desync forcing a
// full resync; it carries no payload.
type MismatchTransactionData struct{}

func (*MismatchTransactionData) Marshal(wire.IO) {}
func (*MismatchTransactionData) TransactionType() uint32 { return TransactionTypeMismatch }

// Use-item action types within UseItemTransactionData.
const (
	UseItemActionClickBlock uint32 = 0
	UseItemActionClickAir   uint32 = 1
	UseItemActionBreakBlock uint32 = 2
)

// UseItemTransactionData describes an item used on a block or into the air.
type UseItemTransactionData struct {
	ActionType      uint32
	BlockPosition   BlockPos
	BlockFace       int32
	HotbarSlot      int32
	HeldItem        ItemStack
	Position        Vec3
	ClickedPosition Vec3
	BlockRuntimeID  uint32
}

func (d *UseItemTransactionData) Marshal(io wire.IO) {
	io.Varuint32(&d.ActionType)
	if io.Reading() && d.ActionType > UseItemActionBreakBlock {
		io.Fail(fmt.Errorf("%w: UseItemAction tag %d", errs.ErrUnknownVariant, d.ActionType))
		return
	}

	d.BlockPosition.Marshal(io)
	io.Varint32(&d.BlockFace)
	io.Varint32(&d.HotbarSlot)
	d.HeldItem.Marshal(io)
	d.Position.Marshal(io)
	d.ClickedPosition.Marshal(io)
	io.Varuint32(&d.BlockRuntimeID)
}

func (*UseItemTransactionData) TransactionType() uint32 { return TransactionTypeUseItem }

// Use-item-on-actor action types.
const (
	UseItemOnActorActionInteract uint32 = 0
	UseItemOnActorActionAttack   uint32 = 1
)

// UseItemOnActorTransactionData describes an item used on another actor.
type UseItemOnActorTransactionData struct {
	TargetActorRuntimeID ActorRuntimeID
	ActionType           uint32
	HotbarSlot           int32
	HeldItem             ItemStack
	Position             Vec3
	ClickedPosition      Vec3
}

func (d *UseItemOnActorTransactionData) Marshal(io wire.IO) {
	d.TargetActorRuntimeID.Marshal(io)
	io.Varuint32(&d.ActionType)
	if io.Reading() && d.ActionType > UseItemOnActorActionAttack {
		io.Fail(fmt.Errorf("%w: UseItemOnActorAction tag %d", errs.ErrUnknownVariant, d.ActionType))
		return
	}

	io.Varint32(&d.HotbarSlot)
	d.HeldItem.Marshal(io)
	d.Position.Marshal(io)
	d.ClickedPosition.Marshal(io)
}

func (*UseItemOnActorTransactionData) TransactionType() uint32 { return TransactionTypeUseItemOnActor }

// Release-item action types.
const (
	ReleaseItemActionRelease uint32 = 0
	ReleaseItemActionConsume uint32 = 1
)

// ReleaseItemTransactionData describes a charged item being released or a
// consumable finishing.
type ReleaseItemTransactionData struct {
	ActionType   uint32
	HotbarSlot   int32
	HeldItem     ItemStack
	HeadPosition Vec3
}

func (d *ReleaseItemTransactionData) Marshal(io wire.IO) {
	io.Varuint32(&d.ActionType)
	if io.Reading() && d.ActionType > ReleaseItemActionConsume {
		io.Fail(fmt.Errorf("%w: ReleaseItemAction tag %d", errs.ErrUnknownVariant, d.ActionType))
		return
	}

	io.Varint32(&d.HotbarSlot)
	d.HeldItem.Marshal(io)
	d.HeadPosition.Marshal(io)
}

func (*ReleaseItemTransactionData) TransactionType() uint32 { return TransactionTypeReleaseItem }

// InventoryTransaction is the tagged union of transaction payloads plus the
// slot mutation list common to all variants.
type InventoryTransaction struct {
	LegacyRequestID int32
	Actions         []InventoryAction
	Data            TransactionData
}

func (t *InventoryTransaction) Marshal(io wire.IO) {
	io.Varint32(&t.LegacyRequestID)

	if io.Reading() {
		t.unmarshal(io)
		return
	}

	if t.Data == nil {
		t.Data = &NormalTransactionData{}
	}
	typ := t.Data.TransactionType()
	io.Varuint32(&typ)
	wire.MarshalerSlice[InventoryAction](io, &t.Actions)
	t.Data.Marshal(io)
}

func (t *InventoryTransaction) unmarshal(io wire.IO) {
	var typ uint32
	io.Varuint32(&typ)

	switch typ {
	case TransactionTypeNormal:
		t.Data = &NormalTransactionData{}
	case TransactionTypeMismatch:
		t.Data = &MismatchTransactionData{}
	case TransactionTypeUseItem:
		t.Data = &UseItemTransactionData{}
	case TransactionTypeUseItemOnActor:
		t.Data = &UseItemOnActorTransactionData{}
	case TransactionTypeReleaseItem:
		t.Data = &ReleaseItemTransactionData{}
	default:
		io.Fail(fmt.Errorf("%w: InventoryTransaction tag %d", errs.ErrUnknownVariant, typ))
		return
	}

	wire.MarshalerSlice[InventoryAction](io, &t.Actions)
	t.Data.Marshal(io)
}

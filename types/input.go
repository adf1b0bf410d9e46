package types

import (
	"fmt"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/wire"
)

// Bits of the authoritative input data bitfield. Only the bits the codec
// acts on are named; the field is carried verbatim either way.
const (
	InputFlagAscend uint64 = 1 << iota
	InputFlagDescend
	InputFlagNorthJump
	InputFlagJumpDown
	InputFlagSprintDown
	InputFlagChangeHeight
	InputFlagJumping
	InputFlagAutoJumpingInWater
	InputFlagSneaking
	InputFlagSneakDown
	InputFlagUp
	InputFlagDown
	InputFlagLeft
	InputFlagRight
	InputFlagUpLeft
	InputFlagUpRight
	InputFlagWantUp
	InputFlagWantDown
	InputFlagWantDownSlow
	InputFlagWantUpSlow
	InputFlagSprinting
	InputFlagAscendBlock
	InputFlagDescendBlock
	InputFlagSneakToggleDown
	InputFlagPersistSneak
	InputFlagStartSprinting
	InputFlagStopSprinting
	InputFlagStartSneaking
	InputFlagStopSneaking
	InputFlagStartSwimming
	InputFlagStopSwimming
	InputFlagStartJumping
	InputFlagStartGliding
	InputFlagStopGliding
	InputFlagPerformItemInteraction
	InputFlagPerformBlockActions
	InputFlagPerformItemStackRequest
	InputFlagHandledTeleport
	InputFlagEmoting
	InputFlagMissedSwing
	InputFlagStartCrawling
	InputFlagStopCrawling
	InputFlagStartFlying
	InputFlagStopFlying
	InputFlagClientAckServerData
	InputFlagIsInClientPredictedVehicle
)

// Client input devices.
const (
	InputModeMouse      uint32 = 1
	InputModeTouch      uint32 = 2
	InputModeGamePad    uint32 = 3
	InputModeMotionCtrl uint32 = 4
)

// Client play modes.
const (
	PlayModeNormal      uint32 = 0
	PlayModeTeaser      uint32 = 1
	PlayModeScreen      uint32 = 2
	PlayModeViewer      uint32 = 3
	PlayModeReality     uint32 = 4
	PlayModePlacement   uint32 = 5
	PlayModeLivingRoom  uint32 = 6
	PlayModeExitLevel   uint32 = 7
	PlayModeExitLevelLR uint32 = 8
)

// Client interaction models.
const (
	InteractionModelTouch     uint32 = 0
	InteractionModelCrosshair uint32 = 1
	InteractionModelClassic   uint32 = 2
)

// PlayerBlockAction is one block interaction bundled into the
// authoritative input packet when InputFlagPerformBlockActions is set. Only
// the break-progress actions carry a position and face.
type PlayerBlockAction struct {
	Action   PlayerActionType
	Position BlockPos
	Face     int32
}

func (a *PlayerBlockAction) Marshal(io wire.IO) {
	a.Action.Marshal(io)

	switch int32(a.Action) {
	case PlayerActionStartBreak, PlayerActionAbortBreak, PlayerActionCrackBreak,
		PlayerActionPredictDestroyBlock, PlayerActionContinueDestroyBlock:
		a.Position.Marshal(io)
		io.Varint32(&a.Face)
	}
}

// PlayerBlockActions is the block action list with its zig-zag count
// prefix, as emitted by the authoritative input packet.
type PlayerBlockActions []PlayerBlockAction

func (a *PlayerBlockActions) Marshal(io wire.IO) {
	count := int32(len(*a))
	io.Varint32(&count)

	if io.Reading() {
		if r, ok := io.(*wire.Reader); ok {
			if count < 0 || int64(count) > int64(r.Remaining()) {
				io.Fail(fmt.Errorf("%w: block action count %d", errs.ErrOutOfRange, count))
				return
			}
		}
		*a = make([]PlayerBlockAction, count)
	}

	for i := range *a {
		(*a)[i].Marshal(io)
	}
}

// PredictedVehicleData is the client's vehicle prediction bundled into the
// authoritative input packet when InputFlagIsInClientPredictedVehicle is
// set.
type PredictedVehicleData struct {
	Rotation  Vec2
	VehicleID ActorUniqueID
}

func (d *PredictedVehicleData) Marshal(io wire.IO) {
	d.Rotation.Marshal(io)
	d.VehicleID.Marshal(io)
}

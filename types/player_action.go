package types

import (
	"fmt"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/wire"
)

// Player action types carried by the PlayerAction packet and the block
// action entries of the authoritative input packet.
const (
	PlayerActionStartBreak                 int32 = 0
	PlayerActionAbortBreak                 int32 = 1
	PlayerActionStopBreak                  int32 = 2
	PlayerActionGetUpdatedBlock            int32 = 3
	PlayerActionDropItem                   int32 = 4
	PlayerActionStartSleeping              int32 = 5
	PlayerActionStopSleeping               int32 = 6
	PlayerActionRespawn                    int32 = 7
	PlayerActionJump                       int32 = 8
	PlayerActionStartSprint                int32 = 9
	PlayerActionStopSprint                 int32 = 10
	PlayerActionStartSneak                 int32 = 11
	PlayerActionStopSneak                  int32 = 12
	PlayerActionCreativePlayerDestroyBlock int32 = 13
	PlayerActionDimensionChangeDone        int32 = 14
	PlayerActionStartGlide                 int32 = 15
	PlayerActionStopGlide                  int32 = 16
	PlayerActionBuildDenied                int32 = 17
	PlayerActionCrackBreak                 int32 = 18
	PlayerActionChangeSkin                 int32 = 19
	PlayerActionSetEnchantmentSeed         int32 = 20
	PlayerActionStartSwimming              int32 = 21
	PlayerActionStopSwimming               int32 = 22
	PlayerActionStartSpinAttack            int32 = 23
	PlayerActionStopSpinAttack             int32 = 24
	PlayerActionStartBuildingBlock         int32 = 25
	PlayerActionPredictDestroyBlock        int32 = 26
	PlayerActionContinueDestroyBlock       int32 = 27
	PlayerActionStartItemUseOn             int32 = 28
	PlayerActionStopItemUseOn              int32 = 29
	PlayerActionHandledTeleport            int32 = 30
	PlayerActionMissedSwing                int32 = 31
	PlayerActionStartCrawling              int32 = 32
	PlayerActionStopCrawling               int32 = 33
	PlayerActionStartFlying                int32 = 34
	PlayerActionStopFlying                 int32 = 35
	PlayerActionReceivedServerData         int32 = 36
)

// PlayerActionType is the zig-zag varint action discriminant. Decode
// rejects tags outside the defined set.
type PlayerActionType int32

func (a *PlayerActionType) Marshal(io wire.IO) {
	v := int32(*a)
	io.Varint32(&v)

	if io.Reading() {
		if v < PlayerActionStartBreak || v > PlayerActionReceivedServerData {
			io.Fail(fmt.Errorf("%w: PlayerActionType tag %d", errs.ErrUnknownVariant, v))
			return
		}
		*a = PlayerActionType(v)
	}
}

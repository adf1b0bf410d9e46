package types

import (
	"fmt"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/wire"
)

// Player permission levels, mirroring the permission compound persisted in
// the world's level data.
const (
	PermissionLevelVisitor  int32 = 0
	PermissionLevelMember   int32 = 1
	PermissionLevelOperator int32 = 2
	PermissionLevelCustom   int32 = 3
)

// PermissionLevel is the default permission tier granted to joining
// players. Decode rejects values outside the defined set.
type PermissionLevel int32

func (p *PermissionLevel) Marshal(io wire.IO) {
	v := int32(*p)
	io.Varint32(&v)

	if io.Reading() {
		if v < PermissionLevelVisitor || v > PermissionLevelCustom {
			io.Fail(fmt.Errorf("%w: permission level %d", errs.ErrOutOfRange, v))
			return
		}
		*p = PermissionLevel(v)
	}
}

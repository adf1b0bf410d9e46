package packet

import (
	"fmt"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/wire"
)

// Violation types and severities.
const (
	ViolationTypeMalformed int32 = 0

	ViolationSeverityWarning      int32 = 0
	ViolationSeverityFinalWarning int32 = 1
	ViolationSeverityTerminating  int32 = 2
)

// PacketViolationWarning is the client's report that a packet the server
// sent broke the protocol contract.
type PacketViolationWarning struct {
	ViolationType     int32
	ViolationSeverity int32
	PacketID          int32
	ViolationContext  string
}

func (*PacketViolationWarning) ID() uint32 { return IDPacketViolationWarning }

func (pk *PacketViolationWarning) Marshal(io wire.IO) {
	io.Varint32(&pk.ViolationType)
	io.Varint32(&pk.ViolationSeverity)
	if io.Reading() && (pk.ViolationSeverity < ViolationSeverityWarning || pk.ViolationSeverity > ViolationSeverityTerminating) {
		io.Fail(fmt.Errorf("%w: violation severity %d", errs.ErrOutOfRange, pk.ViolationSeverity))
		return
	}

	io.Varint32(&pk.PacketID)
	io.String(&pk.ViolationContext)
}

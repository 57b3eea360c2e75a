package dns

import "fmt"

// Flags is the decomposed 16-bit flags field of a DNS message header
// (RFC 1035 Section 4.1.1).
//
// The four booleans are independent single-bit switches:
//   - Authoritative (AA): the answer is authoritative for the queried name.
//     Only meaningful in responses.
//   - Truncated (TC): the message was cut short by the transport's length
//     limit.
//   - RecursionDesired (RD): set in a query and copied into the response;
//     directs the server to pursue the query recursively.
//   - RecursionAvailable (RA): set or cleared in a response; denotes whether
//     the server supports recursive queries.
//
// Encode guarantees correct bit placement only. It does not judge whether a
// combination makes semantic sense (e.g. a query with AA set).
type Flags struct {
	MessageType        MessageType
	Opcode             Opcode
	Authoritative      bool
	Truncated          bool
	RecursionDesired   bool
	RecursionAvailable bool
	RCode              RCode
}

// Encode packs the flags into their 16-bit wire representation.
//
// Each categorical field is shifted to its fixed position and OR'd into the
// accumulator; each boolean contributes a single bit at its shift when true.
// The reserved Z bits (6-4) are then cleared with ZMask. The mask is applied
// unconditionally: the shifts above can never set bits 6-4, but flags
// assembled from another source might, and the protocol mandates zero on the
// wire. The RCODE is OR'd in last; its bits (3-0) lie outside the masked
// range, so the ordering relative to the mask does not change the result.
//
// MessageType, Opcode, and RCode are named integer types, so out-of-range
// values are representable; Encode rejects them with ErrInvalidFieldValue
// rather than silently bleeding into neighboring fields.
func (f Flags) Encode() (uint16, error) {
	if err := f.validate(); err != nil {
		return 0, err
	}

	bits := uint16(f.MessageType) << MessageTypeShift
	bits |= uint16(f.Opcode) << OpcodeShift
	if f.Authoritative {
		bits |= 1 << AuthoritativeShift
	}
	if f.Truncated {
		bits |= 1 << TruncatedShift
	}
	if f.RecursionDesired {
		bits |= 1 << RecursionDesiredShift
	}
	if f.RecursionAvailable {
		bits |= 1 << RecursionAvailableShift
	}
	bits &= ZMask
	bits |= uint16(f.RCode)
	return bits, nil
}

// validate rejects categorical values that do not fit their wire fields.
func (f Flags) validate() error {
	if f.MessageType > MessageTypeResponse {
		return fmt.Errorf("%w: message type %d exceeds 1-bit QR field", ErrInvalidFieldValue, f.MessageType)
	}
	if f.Opcode > 15 {
		return fmt.Errorf("%w: opcode %d exceeds 4-bit field", ErrInvalidFieldValue, f.Opcode)
	}
	if f.RCode > 15 {
		return fmt.Errorf("%w: response code %d exceeds 4-bit field", ErrInvalidFieldValue, f.RCode)
	}
	return nil
}

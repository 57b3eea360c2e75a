// Package dns implements the DNS message wire format for the query path
// (RFC 1035 Section 4.1): header flags, header, question, and name encoding.
package dns

// DNS header flags layout (RFC 1035 Section 4.1.1)
//
// The header contains a 16-bit flags field with the following layout:
//
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|QR|   Opcode  |AA|TC|RD|RA|   Z    |   RCODE   |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	 15 14 13 12 11 10  9  8  7  6  5  4  3  2  1  0
//
// Each field sits at a fixed shift from bit 0 (LSB). The shift constants
// below are the wire contract: a misplaced shift produces a malformed packet
// that some resolvers accept and others reject.
const (
	MessageTypeShift        = 15 // QR: 0 = query, 1 = response
	OpcodeShift             = 11 // Bits 14-11: operation type
	AuthoritativeShift      = 10 // AA: Authoritative Answer
	TruncatedShift          = 9  // TC: message was truncated
	RecursionDesiredShift   = 8  // RD: Recursion Desired
	RecursionAvailableShift = 7  // RA: Recursion Available
)

// ZMask clears the reserved Z bits (positions 6-4), which must be zero on
// the wire, while preserving every other bit position.
const ZMask uint16 = 0b1111_1111_1000_1111

// RCodeMask selects the response code, the low 4 bits of the flags field.
const RCodeMask uint16 = 0x000F

// MessageType is the QR bit: whether the message is a query or a response.
type MessageType uint16

const (
	MessageTypeQuery    MessageType = 0
	MessageTypeResponse MessageType = 1
)

// Opcode is the 4-bit operation type of a message (RFC 1035).
// Values 3-15 are reserved.
type Opcode uint16

const (
	OpcodeQuery  Opcode = 0 // Standard query
	OpcodeIQuery Opcode = 1 // Inverse query
	OpcodeStatus Opcode = 2 // Server status request
)

// RCode represents DNS response codes (RFC 1035).
type RCode uint16

const (
	RCodeNoError  RCode = 0 // No error
	RCodeFormErr  RCode = 1 // Format error: query malformed
	RCodeServFail RCode = 2 // Server failure: internal error
	RCodeNXDomain RCode = 3 // Non-existent domain
	RCodeNotImp   RCode = 4 // Not implemented: unsupported query type
	RCodeRefused  RCode = 5 // Query refused by policy
)

// RecordType represents DNS resource record types (RFC 1035, RFC 3596).
type RecordType uint16

const (
	TypeA     RecordType = 1  // IPv4 address
	TypeNS    RecordType = 2  // Authoritative name server
	TypeCNAME RecordType = 5  // Canonical name (alias)
	TypeSOA   RecordType = 6  // Start of Authority
	TypePTR   RecordType = 12 // Domain name pointer (reverse DNS)
	TypeMX    RecordType = 15 // Mail exchange
	TypeTXT   RecordType = 16 // Text strings
	TypeAAAA  RecordType = 28 // IPv6 address (RFC 3596)
)

// RecordClass represents DNS resource record classes (RFC 1035).
type RecordClass uint16

const (
	ClassIN RecordClass = 1 // Internet class
)

// RCodeFromBits extracts the response code from a raw 16-bit flags field,
// e.g. one read straight off a received header. The RCODE occupies the low
// 4 bits.
func RCodeFromBits(bits uint16) RCode {
	return RCode(bits & RCodeMask)
}

package dns

import "encoding/binary"

// Header represents a DNS message header (RFC 1035 Section 4.1.1).
//
// The header is always 12 bytes and contains:
//   - ID: 16-bit identifier for matching requests to responses
//   - Flags: structured QR, Opcode, AA, TC, RD, RA, RCODE fields
//   - QDCount: Number of questions
//   - ANCount: Number of answer resource records
//   - NSCount: Number of authority resource records
//   - ARCount: Number of additional records
//
// A Header is constructed immediately before serialization and is treated
// as an immutable value from that point; Marshal only reads it.
type Header struct {
	ID      uint16 // Transaction ID, echoed back by the server
	Flags   Flags  // See flags.go for the bit layout
	QDCount uint16 // Question count
	ANCount uint16 // Answer count
	NSCount uint16 // Authority (nameserver) count
	ARCount uint16 // Additional records count
}

// HeaderSize is the fixed size of a DNS header in bytes.
const HeaderSize = 12

// Marshal serializes the header to wire format (big-endian, 12 bytes).
// The encoded flags occupy bytes 2-3, with bit 15 transmitted as the high
// bit of byte 2.
func (h Header) Marshal() ([]byte, error) {
	flags, err := h.Flags.Encode()
	if err != nil {
		return nil, err
	}
	b := make([]byte, HeaderSize)
	binary.BigEndian.PutUint16(b[0:2], h.ID)
	binary.BigEndian.PutUint16(b[2:4], flags)
	binary.BigEndian.PutUint16(b[4:6], h.QDCount)
	binary.BigEndian.PutUint16(b[6:8], h.ANCount)
	binary.BigEndian.PutUint16(b[8:10], h.NSCount)
	binary.BigEndian.PutUint16(b[10:12], h.ARCount)
	return b, nil
}

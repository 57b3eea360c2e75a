package dns

import "github.com/jroosing/dnswire/internal/helpers"

// Message is a DNS query message: a header followed by its question section
// (RFC 1035 Section 4.1). Answer, authority, and additional sections are the
// concern of the components that produce responses, not of this query-path
// codec.
type Message struct {
	Header    Header
	Questions []Question
}

// Marshal serializes the message to DNS wire format (big-endian).
// QDCount is derived from the question slice; the header's own count fields
// for the remaining sections pass through unchanged.
func (m Message) Marshal() ([]byte, error) {
	h := m.Header
	h.QDCount = helpers.ClampIntToUint16(len(m.Questions))

	hb, err := h.Marshal()
	if err != nil {
		return nil, err
	}
	// Estimate capacity: header(12) + question(~50 each)
	out := make([]byte, 0, HeaderSize+len(m.Questions)*50)
	out = append(out, hb...)

	for _, q := range m.Questions {
		qb, err := q.Marshal()
		if err != nil {
			return nil, err
		}
		out = append(out, qb...)
	}
	return out, nil
}

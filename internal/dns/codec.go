package dns

import "fmt"

// EncodeName encodes a domain name to DNS wire format (RFC 1035 Section 3.1).
//
// DNS names are encoded as a sequence of labels, where each label is:
//   - 1 byte: length (0-63)
//   - N bytes: label characters
//
// The name is terminated by a zero-length label (single 0x00 byte).
//
// Example: "www.example.com" encodes as:
//
//	[3]www[7]example[3]com[0]
//	0x03 'w' 'w' 'w' 0x07 'e' 'x' 'a' 'm' 'p' 'l' 'e' 0x03 'c' 'o' 'm' 0x00
//
// Constraints:
//   - Each label max 63 bytes
//   - Total encoded name max 255 bytes
//   - ASCII only (no IDN/punycode handled here)
func EncodeName(domain string) ([]byte, error) {
	if domain == "" {
		return nil, fmt.Errorf("%w: domain name must be non-empty", ErrDNSError)
	}
	domain = trimDot(domain)
	if domain == "" {
		return []byte{0}, nil // Root domain
	}

	out := make([]byte, 0, len(domain)+2)
	labelStart := 0
	for i := 0; i <= len(domain); i++ {
		if i == len(domain) || domain[i] == '.' {
			if i == labelStart {
				return nil, fmt.Errorf("%w: invalid domain name (empty label): %q", ErrDNSError, domain)
			}
			label := domain[labelStart:i]

			// Validate ASCII
			for j := 0; j < len(label); j++ {
				if label[j] > 0x7F {
					return nil, fmt.Errorf("%w: domain name must be ASCII", ErrDNSError)
				}
			}

			// Check label length (max 63 per RFC 1035)
			if len(label) > 63 {
				return nil, fmt.Errorf("%w: DNS label too long (%d > 63): %q", ErrDNSError, len(label), label)
			}

			out = append(out, byte(len(label)))
			out = append(out, label...)
			labelStart = i + 1
		}
	}
	out = append(out, 0) // Terminating zero-length label

	if len(out) > 255 {
		return nil, fmt.Errorf("%w: encoded domain name too long (%d > 255)", ErrDNSError, len(out))
	}
	return out, nil
}

// trimDot removes all trailing dots from a string.
func trimDot(s string) string {
	for len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

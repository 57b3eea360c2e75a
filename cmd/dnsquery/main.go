package main

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strings"
	"time"

	"github.com/jroosing/dnswire/internal/dns"
	"github.com/jroosing/dnswire/internal/helpers"
	"github.com/jroosing/dnswire/internal/logging"
)

func main() {
	var (
		server   = flag.String("server", "8.8.8.8:53", "DNS server HOST:PORT")
		name     = flag.String("name", "example.com", "Query name")
		qtype    = flag.Int("qtype", 1, "Query type (numeric, A=1)")
		timeout  = flag.Duration("timeout", 2*time.Second, "Timeout")
		recvSize = flag.Int("recv-size", 2048, "UDP receive buffer size")
		logLevel = flag.String("log-level", "INFO", "Log level (DEBUG traces the outgoing packet)")
		quiet    = flag.Bool("quiet", false, "Suppress output (exit status indicates success)")
	)
	flag.Parse()

	logging.Configure(logging.Config{Level: *logLevel})

	size := helpers.ClampInt(*recvSize, dns.HeaderSize, 65535)
	resp, err := queryUDP(*server, *name, helpers.ClampIntToUint16(*qtype), *timeout, size)
	if err != nil {
		if !*quiet {
			fmt.Fprintf(os.Stderr, "dnsquery error: %v\n", err)
		}
		os.Exit(1)
	}
	if *quiet {
		return
	}

	if len(resp) < dns.HeaderSize {
		fmt.Printf("received %d bytes (short header)\n", len(resp))
		return
	}
	// Read the raw header fields straight off the wire. Decoding the flags
	// back into a structured value is not this tool's business; the RCODE is
	// a masked extraction from the raw field.
	flagBits := binary.BigEndian.Uint16(resp[2:4])
	fmt.Printf("id=%d rcode=%d questions=%d answers=%d authorities=%d additionals=%d\n",
		binary.BigEndian.Uint16(resp[0:2]),
		dns.RCodeFromBits(flagBits),
		binary.BigEndian.Uint16(resp[4:6]),
		binary.BigEndian.Uint16(resp[6:8]),
		binary.BigEndian.Uint16(resp[8:10]),
		binary.BigEndian.Uint16(resp[10:12]),
	)
}

func queryUDP(server, name string, qtype uint16, timeout time.Duration, recvSize int) ([]byte, error) {
	addr, err := net.ResolveUDPAddr("udp", server)
	if err != nil {
		return nil, err
	}
	c, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	reqBytes, err := buildQuery(name, qtype)
	if err != nil {
		return nil, err
	}
	slog.Debug("sending query", "server", server, "bytes", len(reqBytes), "packet", hex.EncodeToString(reqBytes))

	_ = c.SetDeadline(time.Now().Add(timeout))
	if _, err := c.Write(reqBytes); err != nil {
		return nil, err
	}
	buf := make([]byte, recvSize)
	n, err := c.Read(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

func buildQuery(name string, qtype uint16) ([]byte, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("name required")
	}
	m := dns.Message{
		Header: dns.Header{
			ID: transactionID(),
			Flags: dns.Flags{
				MessageType:      dns.MessageTypeQuery,
				Opcode:           dns.OpcodeQuery,
				RecursionDesired: true,
			},
		},
		Questions: []dns.Question{{
			Name:  strings.TrimSuffix(name, "."),
			Type:  dns.RecordType(qtype),
			Class: dns.ClassIN,
		}},
	}
	return m.Marshal()
}

// transactionID derives a non-zero 16-bit ID for matching the response.
func transactionID() uint16 {
	id := uint16(time.Now().UnixNano())
	if id == 0 {
		id = 0x1234
	}
	return id
}

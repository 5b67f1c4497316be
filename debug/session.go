package debug

import (
	"encoding/hex"
	"io"
	"strconv"
	"strings"
)

// Session answers GDB remote-serial-protocol commands against a Target
// until the client detaches or the connection closes. It implements just
// the subset of the protocol a register/memory/breakpoint/step/continue
// debug session needs: '?', 'g', 'G', 'm', 'M', 'Z0'/'z0', 'c', 's', 'D'.
type Session struct {
	target *Target
	conn   *Conn
}

// NewSession binds a target to a connection for request/response handling.
func NewSession(target *Target, conn *Conn) *Session {
	return &Session{target: target, conn: conn}
}

// Serve answers packets until the client sends 'D' (detach), or the
// connection errors (including a clean close from the client).
func (s *Session) Serve() error {
	for {
		pkt, err := s.conn.ReadPacket()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		reply, detach, err := s.dispatch(pkt)
		if err != nil {
			return err
		}
		if err := s.conn.WritePacket([]byte(reply)); err != nil {
			return err
		}
		if detach {
			return nil
		}
	}
}

func (s *Session) dispatch(pkt []byte) (reply string, detach bool, err error) {
	if len(pkt) == 0 {
		return "", false, nil
	}

	switch pkt[0] {
	case '?':
		return "S05", false, nil // SIGTRAP: report "stopped" on attach

	case 'g':
		regs := s.target.ReadRegisters()
		buf := make([]byte, 72)
		regs.Serialize(buf)
		return hex.EncodeToString(buf), false, nil

	case 'G':
		raw, decErr := hex.DecodeString(string(pkt[1:]))
		if decErr != nil || len(raw) != 72 {
			return "E01", false, nil
		}
		var regs CoreRegs
		regs.Deserialize(raw)
		s.target.WriteRegisters(regs)
		return "OK", false, nil

	case 'm':
		addr, length, ok := parseAddrLen(string(pkt[1:]))
		if !ok {
			return "E01", false, nil
		}
		data := make([]byte, length)
		if readErr := s.target.ReadAddrs(addr, data); readErr != nil {
			return "E01", false, nil
		}
		return hex.EncodeToString(data), false, nil

	case 'M':
		addr, data, ok := parseAddrData(string(pkt[1:]))
		if !ok {
			return "E01", false, nil
		}
		if writeErr := s.target.WriteAddrs(addr, data); writeErr != nil {
			return "E01", false, nil
		}
		return "OK", false, nil

	case 'Z':
		addr, ok := parseBreakpointAddr(string(pkt[1:]))
		if !ok {
			return "E01", false, nil
		}
		s.target.AddBreakpoint(addr)
		return "OK", false, nil

	case 'z':
		addr, ok := parseBreakpointAddr(string(pkt[1:]))
		if !ok {
			return "E01", false, nil
		}
		s.target.RemoveBreakpoint(addr)
		return "OK", false, nil

	case 's':
		if _, stepErr := s.target.Step(); stepErr != nil {
			return "S05", false, nil
		}
		return "S05", false, nil

	case 'c':
		reason := RunLoop(s.target, s.conn)
		switch reason.Kind {
		case StopBreakpoint:
			return "S05", false, nil
		case StopInterrupted:
			return "S02", false, nil
		default:
			return "W00", false, nil // terminated
		}

	case 'D':
		return "OK", true, nil

	default:
		return "", false, nil // unsupported: empty reply per the protocol
	}
}

// parseAddrLen parses an "addr,length" pair, both hex, as sent in 'm'
// packets.
func parseAddrLen(s string) (addr uint32, length int, ok bool) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	a, err := strconv.ParseUint(parts[0], 16, 32)
	if err != nil {
		return 0, 0, false
	}
	l, err := strconv.ParseUint(parts[1], 16, 32)
	if err != nil {
		return 0, 0, false
	}
	return uint32(a), int(l), true
}

// parseAddrData parses an "addr,length:hexdata" triple, as sent in 'M'
// packets.
func parseAddrData(s string) (addr uint32, data []byte, ok bool) {
	head, hexData, found := strings.Cut(s, ":")
	if !found {
		return 0, nil, false
	}
	a, _, parsedOK := parseAddrLen(head)
	if !parsedOK {
		return 0, nil, false
	}
	raw, err := hex.DecodeString(hexData)
	if err != nil {
		return 0, nil, false
	}
	return a, raw, true
}

// parseBreakpointAddr parses a "type,addr,kind" triple as sent in 'Z'/'z'
// packets, returning addr. Only software breakpoints (type 0) are
// supported; any other type is reported as unsupported by the caller
// treating a false ok as an error reply.
func parseBreakpointAddr(s string) (addr uint32, ok bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, false
	}
	if parts[0] != "0" {
		return 0, false
	}
	a, err := strconv.ParseUint(parts[1], 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(a), true
}

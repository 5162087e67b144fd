// pkg/okidata/commands.go
package okidata

import (
	"sort"
	"strconv"
	"strings"
)

// Kind identifies how a command is encoded.
type Kind int

const (
	// KindUnknown is returned for names not present in the table.
	// Encoding an unknown command yields no bytes.
	KindUnknown Kind = iota
	// KindFixed commands encode to a constant byte sequence.
	KindFixed
	// KindParametric commands take one small integer parameter.
	KindParametric
)

// Command is a single entry of the Okidata MICROLINE control-code table.
type Command struct {
	Name string
	Kind Kind

	data   []byte
	encode func(n int) []byte
}

// Encode returns the byte sequence for a fixed command. Parametric and
// unknown commands encode to nil.
func (c Command) Encode() []byte {
	if c.Kind != KindFixed {
		return nil
	}
	out := make([]byte, len(c.data))
	copy(out, c.data)
	return out
}

// EncodeParam returns the byte sequence for a parametric command. The
// parameter is expected to be in 0-9; the encoder does not range-check it.
// Fixed commands ignore the parameter and encode as usual, so callers can
// dispatch without inspecting Kind. Unknown commands encode to nil.
func (c Command) EncodeParam(n int) []byte {
	switch c.Kind {
	case KindParametric:
		return c.encode(n)
	case KindFixed:
		return c.Encode()
	default:
		return nil
	}
}

func fixed(data ...byte) Command {
	return Command{Kind: KindFixed, data: data}
}

func parametric(encode func(n int) []byte) Command {
	return Command{Kind: KindParametric, encode: encode}
}

// commands is the MICROLINE command table. Byte sequences are device
// control codes and must not be altered.
var commands = map[string]Command{
	"Backspace":                    fixed(0x08),             // BS
	"Carriage Return":              fixed(0x0D),             // CR
	"Select 10 cpi":                fixed(0x1E),             // RS
	"Select 12 cpi":                fixed(0x1C),             // FS
	"Select 15 cpi":                fixed(0x1B, 0x67),       // ESC g
	"Select 17.1 cpi":              fixed(0x1D),             // GS
	"Select 20 cpi":                fixed(0x1B, 0x23, 0x33), // ESC # 3
	"Standard Character Set":       fixed(0x1B, 0x21, 0x30), // ESC ! 0
	"Block Graphic Set":            fixed(0x1B, 0x21, 0x31), // ESC ! 1
	"Publisher Set":                fixed(0x1B, 0x21, 0x5A), // ESC ! Z
	"Line Graphics Set":            fixed(0x1B, 0x21, 0x32), // ESC ! 2
	"Select Utility":               fixed(0x1B, 0x30),       // ESC 0
	"Slashed Zero":                 fixed(0x1B, 0x21, 0x40), // ESC ! @
	"Unslashed Zero":               fixed(0x1B, 0x21, 0x41), // ESC ! A
	"Double Height On":             fixed(0x1B, 0x1F, 0x31), // ESC US 1
	"Double Height Off":            fixed(0x1B, 0x1F, 0x30), // ESC US 0
	"Double Width On":              fixed(0x1F),             // US
	"Double Width Off":             fixed(0x1B, 0x21, 0x30), // ESC ! 0
	"Emphasized Printing On":       fixed(0x1B, 0x54),       // ESC T
	"Emphasized Printing Off":      fixed(0x1B, 0x49),       // ESC I
	"Enhanced Printing On":         fixed(0x1B, 0x48),       // ESC H
	"Enhanced Printing Off":        fixed(0x1B, 0x49),       // ESC I (shared with emphasized off)
	"Italic Printing On":           fixed(0x1B, 0x21, 0x2F), // ESC ! /
	"Italic Printing Off":          fixed(0x1B, 0x21, 0x2A), // ESC ! *
	"Underline Printing On":        fixed(0x1B, 0x2D, 0x01), // ESC - 1
	"Underline Printing Off":       fixed(0x1B, 0x2D, 0x00), // ESC - 0
	"Unidirectional Printing On":   fixed(0x1B, 0x2D, 0x02), // ESC - 2
	"Unidirectional Printing Off":  fixed(0x1B, 0x2D, 0x00), // ESC - 0
	"Form Feed":                    fixed(0x0C),             // FF
	"Horizontal Tab":               fixed(0x09),             // HT
	"Vertical Tab":                 fixed(0x0B),             // VT
	"Line Feed":                    fixed(0x0A),             // LF
	"Line Feed w/o CR":             fixed(0x1B, 0x12),       // ESC DC2
	"Reverse Line Feed":            fixed(0x1B, 0x0A),       // ESC LF
	"Set Spacing to 1/6\"":         fixed(0x1B, 0x36),       // ESC 6
	"Set Spacing to 1/8\"":         fixed(0x1B, 0x38),       // ESC 8
	"Print Quality Select HSD/SSD": fixed(0x1B, 0x23, 0x30), // ESC # 0
	"Select NLQ Courier":           fixed(0x1B, 0x31),       // ESC 1
	"Select NLQ Gothic":            fixed(0x1B, 0x33),       // ESC 3
	"Print Speed Set to Full":      fixed(0x1B, 0x3E),       // ESC >
	"Print Speed Set to Half":      fixed(0x1B, 0x3C),       // ESC <
	"Proportional Printing On":     fixed(0x1B, 0x59),       // ESC Y
	"Proportional Printing Off":    fixed(0x1B, 0x5A),       // ESC Z
	"Reset (Clear Print Buffer)":   fixed(0x18),             // CAN
	"Shift In":                     fixed(0x0F),             // SI
	"Shift Out":                    fixed(0x0E),             // SO

	// ESC % 9 n sets the line spacing to n/144 inch.
	"Set Spacing to n/144": parametric(func(n int) []byte {
		return []byte{0x1B, 0x25, 0x39, byte(n)}
	}),

	// Skip over perforation: 0 disables with ESC % S 0, any other value
	// enables with ESC G n n (parameter byte repeated).
	"Skip Over Perforation": parametric(func(n int) []byte {
		if n == 0 {
			return []byte{0x1B, 0x25, 0x53, 0x30}
		}
		return []byte{0x1B, 0x47, byte(n), byte(n)}
	}),
}

// Lookup resolves a symbolic command name. Unknown names return a
// KindUnknown command whose encoders yield no bytes, so a missing entry
// is a silent no-op rather than an error.
func Lookup(name string) Command {
	cmd, ok := commands[name]
	if !ok {
		return Command{Name: name, Kind: KindUnknown}
	}
	cmd.Name = name
	return cmd
}

// Names returns every command name in the table, sorted.
func Names() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DecimalString renders a byte sequence as space-separated decimal
// values, matching the debug log format the printer tooling uses.
func DecimalString(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(b)))
	}
	return sb.String()
}

package listfile

import (
	"bufio"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// Format constants for the list file.
const (
	// IDHexLength is the exact length of the hex-encoded identifier field
	IDHexLength = 8

	// FieldSeparator separates the identifier from its label
	FieldSeparator = ","

	// DefaultListCapacity is the initial capacity for the entries slice
	DefaultListCapacity = 64
)

// Parse parses a list file from the given path.
//
// Example:
//
//	list, err := listfile.Parse("data.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d identifiers\n", list.Len())
func Parse(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseReader parses a list file from any io.Reader.
//
// Each non-empty line is one entry:
//
//	[ID(8 hex chars)][,][LABEL(free text)]
//
// The identifier is a big-endian 32-bit value; zero is reserved by the
// device and rejected. Lines may end with LF or CRLF.
func ParseReader(r io.Reader) (*List, error) {
	scanner := bufio.NewScanner(r)

	list := &List{Entries: make([]*Entry, 0, DefaultListCapacity)}

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")

		if line == "" {
			continue
		}

		entry, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		list.Entries = append(list.Entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return list, nil
}

// parseLine parses a single "XXXXXXXX,label" line.
func parseLine(line string) (*Entry, error) {
	idHex, label, ok := strings.Cut(line, FieldSeparator)
	if !ok {
		return nil, fmt.Errorf("missing %q separator", FieldSeparator)
	}

	idHex = strings.TrimSpace(idHex)
	label = strings.TrimSpace(label)

	if len(idHex) != IDHexLength {
		return nil, fmt.Errorf("identifier must be exactly %d hex characters, got %d", IDHexLength, len(idHex))
	}

	raw, err := hex.DecodeString(idHex)
	if err != nil {
		return nil, fmt.Errorf("invalid hex identifier %q: %w", idHex, err)
	}

	id := binary.BigEndian.Uint32(raw)
	if id == 0 {
		return nil, fmt.Errorf("identifier 00000000 is reserved")
	}

	if label == "" {
		return nil, fmt.Errorf("empty label")
	}

	return &Entry{ID: id, Label: label}, nil
}

// Write writes the list to the given path, replacing any existing file.
func Write(path string, list *List) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := WriteTo(f, list); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// WriteTo writes the list in file format to any io.Writer: zero-padded
// uppercase hex identifier, comma, label, CRLF line ending (the format
// the device tooling has always used).
func WriteTo(w io.Writer, list *List) error {
	bw := bufio.NewWriter(w)

	for _, e := range list.Entries {
		if _, err := fmt.Fprintf(bw, "%08X%s%s\r\n", e.ID, FieldSeparator, e.Label); err != nil {
			return fmt.Errorf("failed to write entry: %w", err)
		}
	}

	return bw.Flush()
}

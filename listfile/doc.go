// Package listfile reads and writes the stored RFID identifier list.
//
// # File Format
//
// One entry per line, hex identifier then free-text label:
//
//	04A2B3C1,front door badge
//	0000F00D,workshop master
//
// The identifier is exactly 8 hex characters (a big-endian 32-bit value);
// everything after the first comma is the label. Lines are CRLF-terminated
// on write and either ending is accepted on read. Identifier 00000000 is
// reserved by the device and rejected.
//
// # Usage
//
//	list, err := listfile.Parse("data.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = uploader.New(port).Upload(ctx, list.IDs())
//
// Parse returns line-numbered errors for malformed entries rather than
// skipping them: an upload silently missing a badge is worse than a
// refused file.
package listfile

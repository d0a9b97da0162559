package source

import (
	"bytes"
	"io"

	"github.com/richardlehane/mscfb"
)

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1}
)

// Sniff classifies content by its signature. Zip packages are xlsx. OLE2
// compound documents are legacy workbooks when they carry a "Workbook" or
// "Book" stream and encrypted OOXML when they carry "EncryptedPackage".
func Sniff(r io.ReaderAt) Format {
	head := make([]byte, len(oleMagic))
	n, _ := r.ReadAt(head, 0)
	head = head[:n]

	switch {
	case bytes.HasPrefix(head, zipMagic):
		return FormatXLSX
	case !bytes.Equal(head, oleMagic):
		return FormatUnknown
	}

	doc, err := mscfb.New(r)
	if err != nil {
		return FormatUnknown
	}
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		switch entry.Name {
		case "Workbook", "Book":
			return FormatXLS
		case "EncryptedPackage":
			return FormatEncrypted
		}
	}
	return FormatUnknown
}

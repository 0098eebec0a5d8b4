package generate

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// srcEncoding is encoding detected from the byte order mark of a source file.
type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
	encUTF32BigEndian
	encUTF32LittleEndian
)

// sniffLen bytes from the beginning of a file are enough for all detectors here.
const sniffLen = 512

var catalogType = filetype.NewType("yaml", "application/yaml")

func init() {
	filetype.AddMatcher(catalogType, isCatalogData)
}

// catalogKeys are document level keys a selector catalog starts with. YAML has
// no magic bytes, so seeing one of these at the left margin is the best
// signature we have.
var catalogKeys = [][]byte{
	[]byte("version:"),
	[]byte("selectors:"),
	[]byte("combined:"),
	[]byte("rules:"),
}

// isCatalogData matches the head of a selector catalog: a YAML document with
// at least one known document level key. Multibyte encodings never reach this
// matcher, they are decoded by selectReader before the real parse.
func isCatalogData(buf []byte) bool {
	buf = bytes.TrimPrefix(buf, []byte{0xEF, 0xBB, 0xBF})
	for _, line := range bytes.Split(buf, []byte{'\n'}) {
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(line) == 0 || line[0] == ' ' || line[0] == '\t' || line[0] == '#' {
			continue
		}
		for _, key := range catalogKeys {
			if bytes.HasPrefix(line, key) {
				return true
			}
		}
	}
	return false
}

func readHead(r io.Reader) ([]byte, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return head[:n], nil
}

// isArchiveFile reports whether path looks like a catalog bundle, a zip
// archive with matching extension and content.
func isArchiveFile(path string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head, err := readHead(f)
	if err != nil {
		return false, err
	}
	return filetype.Is(head, "zip"), nil
}

func isCatalogExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// isCatalogFile reports whether path looks like a selector catalog and which
// encoding its byte order mark declares.
func isCatalogFile(path string) (bool, srcEncoding, error) {
	if !isCatalogExt(path) {
		return false, encUnknown, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, encUnknown, err
	}
	defer f.Close()

	head, err := readHead(f)
	if err != nil {
		return false, encUnknown, err
	}
	return sniffCatalog(head)
}

// isCatalogInArchive is isCatalogFile for a file stored in a zip archive.
func isCatalogInArchive(f *zip.File) (bool, srcEncoding, error) {
	if !isCatalogExt(f.FileHeader.Name) {
		return false, encUnknown, nil
	}

	r, err := f.Open()
	if err != nil {
		return false, encUnknown, err
	}
	defer r.Close()

	head, err := readHead(r)
	if err != nil {
		return false, encUnknown, err
	}
	return sniffCatalog(head)
}

func sniffCatalog(head []byte) (bool, srcEncoding, error) {
	enc := detectUTF(head)
	switch enc {
	case encUnknown, encUTF8:
		return filetype.IsType(head, catalogType), enc, nil
	default:
		// content check would have to decode first, the mark plus the
		// extension is signature enough - the real parse happens right after
		return true, enc, nil
	}
}

func isUTF8BOM3(b []byte) bool {
	return len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF
}

func isUTF16BigEndianBOM2(b []byte) bool {
	return len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF
}

func isUTF16LittleEndianBOM2(b []byte) bool {
	return len(b) >= 2 && b[0] == 0xFF && b[1] == 0xFE
}

func isUTF32BigEndianBOM4(b []byte) bool {
	return len(b) >= 4 && b[0] == 0x00 && b[1] == 0x00 && b[2] == 0xFE && b[3] == 0xFF
}

func isUTF32LittleEndianBOM4(b []byte) bool {
	return len(b) >= 4 && b[0] == 0xFF && b[1] == 0xFE && b[2] == 0x00 && b[3] == 0x00
}

// detectUTF sniffs the byte order mark. UTF-32 marks are checked before
// UTF-16 since UTF-32LE starts with the UTF-16LE mark.
func detectUTF(buf []byte) srcEncoding {
	switch {
	case isUTF8BOM3(buf):
		return encUTF8
	case isUTF32BigEndianBOM4(buf):
		return encUTF32BigEndian
	case isUTF32LittleEndianBOM4(buf):
		return encUTF32LittleEndian
	case isUTF16BigEndianBOM2(buf):
		return encUTF16BigEndian
	case isUTF16LittleEndianBOM2(buf):
		return encUTF16LittleEndian
	default:
		return encUnknown
	}
}

// selectReader wraps r with a decoder matching the detected encoding, so the
// rest of the pipeline always sees UTF-8 without a byte order mark.
func selectReader(r io.Reader, enc srcEncoding) io.Reader {
	switch enc {
	case encUnknown:
		return r
	case encUTF8:
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
	case encUTF16BigEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder())
	case encUTF16LittleEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder())
	case encUTF32BigEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.BigEndian, utf32.UseBOM).NewDecoder())
	case encUTF32LittleEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.LittleEndian, utf32.UseBOM).NewDecoder())
	default:
		// this should never happen
		panic("unsupported encoding requested")
	}
}

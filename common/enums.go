// Enums shared between commands and the generation pipeline live here
// so neither side has to import the other.
package common

import (
	"fmt"
	"strings"
)

// Specification of requested output type.
type OutputFmt int

const (
	OutputFmtCSS OutputFmt = iota
	OutputFmtXML
	OutputFmtText
)

// String returns the name used on the command line.
func (o OutputFmt) String() string {
	switch o {
	case OutputFmtCSS:
		return "css"
	case OutputFmtXML:
		return "xml"
	case OutputFmtText:
		return "text"
	default:
		return fmt.Sprintf("outputfmt(%d)", int(o))
	}
}

// Ext returns the file extension for the format.
func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtCSS:
		return ".css"
	case OutputFmtXML:
		return ".xml"
	case OutputFmtText:
		return ".txt"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// ParseOutputFmt converts a format name to its enum value.
func ParseOutputFmt(name string) (OutputFmt, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "css":
		return OutputFmtCSS, nil
	case "xml":
		return OutputFmtXML, nil
	case "text":
		return OutputFmtText, nil
	default:
		return 0, fmt.Errorf("unknown output format %q", name)
	}
}

// OutputFmtNames lists the accepted format names.
func OutputFmtNames() []string {
	return []string{
		OutputFmtCSS.String(),
		OutputFmtXML.String(),
		OutputFmtText.String(),
	}
}

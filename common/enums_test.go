package common

import "testing"

func TestParseOutputFmt(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFmt
		wantErr bool
	}{
		{"css", OutputFmtCSS, false},
		{"XML", OutputFmtXML, false},
		{" text ", OutputFmtText, false},
		{"scss", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFmt(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFmt(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseOutputFmt(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOutputFmtExt(t *testing.T) {
	tests := []struct {
		fmt  OutputFmt
		want string
	}{
		{OutputFmtCSS, ".css"},
		{OutputFmtXML, ".xml"},
		{OutputFmtText, ".txt"},
	}

	for _, tt := range tests {
		if got := tt.fmt.Ext(); got != tt.want {
			t.Errorf("%v.Ext() = %q, want %q", tt.fmt, got, tt.want)
		}
	}
}

func TestOutputFmtNames(t *testing.T) {
	names := OutputFmtNames()
	if len(names) != 3 {
		t.Fatalf("OutputFmtNames() = %v, want three names", names)
	}
	for _, name := range names {
		if _, err := ParseOutputFmt(name); err != nil {
			t.Errorf("ParseOutputFmt(%q) failed for listed name: %v", name, err)
		}
	}
}

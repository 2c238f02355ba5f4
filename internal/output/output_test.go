package output

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ZR/ZT", "ZR-ZT"},
		{"ZR/ZT 110-145", "ZR-ZT 110-145"},
		{`a<b>c:d"e\f|g?h*i`, "abcdefghi"},
		{"  padded  ", "padded"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		groups []string
		kind   string
		want   string
	}{
		{
			name:   "dimensions with groups",
			prefix: "ZR/ZT",
			groups: []string{"ZR/ZT 110-145", "ZR/ZT 160-275"},
			kind:   KindDimensions,
			want:   `ZR-ZT_"ZR-ZT 110-145"_"ZR-ZT 160-275"_dimensions.json`,
		},
		{
			name:   "no groups",
			prefix: "sheet",
			kind:   KindOptions,
			want:   "sheet_options.json",
		},
		{
			name:   "empty prefix",
			prefix: "",
			kind:   KindDimensions,
			want:   "UNKNOWN_dimensions.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileName(tt.prefix, tt.groups, tt.kind); got != tt.want {
				t.Errorf("FileName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/data/ZR-ZT-110-275.pdf", "ZR-ZT-110-275"},
		{"sheet.PDF", "sheet"},
		{"noext", "noext"},
		{"dir/a:b.pdf", "ab"},
	}

	for _, tt := range tests {
		if got := Stem(tt.in); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	v := map[string]any{"range": "<110-145>", "n": 1}

	if err := Encode(&buf, v, 2); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := "{\n  \"n\": 1,\n  \"range\": \"<110-145>\"\n}\n"
	if buf.String() != want {
		t.Errorf("Encode() = %q, want %q", buf.String(), want)
	}
}

func TestEncodeError(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, make(chan int), 2); err == nil {
		t.Error("Encode() error = nil, want error for unsupported type")
	}
}

func TestWriterWrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, "outputs", 2)

	path, err := w.Write("sheet_options.json", map[string]any{"options": map[string]any{}})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	wantPath := filepath.Join("outputs", "sheet_options.json")
	if path != wantPath {
		t.Errorf("Write() path = %q, want %q", path, wantPath)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "{\n  \"options\": {}\n}\n" {
		t.Errorf("file content = %q", data)
	}

	if ok, _ := afero.DirExists(fs, "outputs"); !ok {
		t.Error("output directory was not created")
	}
}

func TestWriterReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	w := NewWriter(fs, "outputs", 2)

	if _, err := w.Write("x.json", 1); err == nil {
		t.Error("Write() error = nil, want error on read-only file system")
	}
}

package specsheet

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/specsheet/internal/pdftest"
	"github.com/tsawler/specsheet/model"
	"github.com/tsawler/specsheet/options"
)

const (
	dimensionRow = "ZR 110-145 2540 100.0 1650 65.0 2000 78.7 3440 135.4 1650 65.0 2000"
	techRow      = "ZR 110-7.5 332 19.9 703 110 150 69 3000 6614 3500 7716"
	vsdHeader    = "ZR 160 VSD - 8.6 bar(e)"
	vsdMinRow    = "Minimum 4 90-100 5.4-6.0 191-212 68 3300 7275 3900 8598"
)

// sampleDoc builds a three page spec sheet: model groups and dimensions,
// technical specifications, then VSD data with an options matrix.
func sampleDoc() *model.Document {
	doc := model.NewDocument()
	doc.AddPage(model.NewPage("ZR/ZT (Oil-Free)\nZR 110 & ZT 110\nDimensions\n" + dimensionRow))
	doc.AddPage(model.NewPage("TECHNICAL SPECIFICATIONS\nZR 110-145 (FF)\n50 Hz\n" + techRow))

	page := model.NewPage(vsdHeader + "\n" + vsdMinRow)
	page.AddTable(model.NewTable([][]string{
		{"Option", "ZR 110", "ZR 145", "ZT 110", "ZT 145"},
		{"Integrated refrigerant dryer", "●", "●", "-", "-"},
		{"Electronic no-loss drain valve", "●", "-", "●", "●"},
		{"Modulating air inlet control", "", "●", "●", "–"},
		{"Anti-condensation heaters", "●", "●", "●", "●"},
	}))
	doc.AddPage(page)
	return doc
}

func TestOpen(t *testing.T) {
	// Test with non-existent file
	_, _, err := Open("nonexistent.pdf").Dimensions()
	if err == nil {
		t.Error("expected error for non-existent file")
	}

	_, _, err = Open("").Document()
	if err == nil {
		t.Error("expected error for empty filename")
	}
}

// ============================================================================
// Reading PDFs
// ============================================================================

// samplePDF writes a one page spec sheet whose rows are placed with Td moves.
func samplePDF(t *testing.T) string {
	t.Helper()
	return pdftest.WriteTemp(t, "ZR-ZT-110-145.pdf", pdftest.Build("ZR ZT 110-145",
		pdftest.TextStream(
			"Oil-free rotary screw compressors",
			"ZR/ZT (Oil-Free)",
			"ZR 110 & ZT 110",
			dimensionRow,
			"TECHNICAL SPECIFICATIONS",
			"ZR 110-145 (FF)",
			"50 Hz",
			techRow,
		),
	))
}

func TestOpenPDFDimensions(t *testing.T) {
	dims, warnings, err := Open(samplePDF(t)).Dimensions()
	if err != nil {
		t.Fatalf("Dimensions() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %s", FormatWarnings(warnings))
	}

	if dims.ProductFamily != "Oil-free rotary screw compressors" {
		t.Errorf("ProductFamily = %q, want %q", dims.ProductFamily, "Oil-free rotary screw compressors")
	}
	if diff := cmp.Diff([]string{"ZR 110", "ZT 110"}, dims.GroupLabels()); diff != "" {
		t.Fatalf("GroupLabels() mismatch (-want +got):\n%s", diff)
	}
	for _, label := range dims.GroupLabels() {
		entry, ok := dims.ModelGroups[label]["ZR"]["110-145"]
		if !ok {
			t.Errorf("group %q is missing ZR 110-145", label)
			continue
		}
		if entry.Standard.Length != 2540 || entry.FullFeature == nil || entry.FullFeature.Length != 3440 {
			t.Errorf("group %q entry = %+v", label, entry)
		}
	}
}

func TestOpenPDFTechSpecs(t *testing.T) {
	specs, _, err := Open(samplePDF(t)).TechSpecs()
	if err != nil {
		t.Fatalf("TechSpecs() error = %v", err)
	}
	if len(specs) != 1 {
		t.Fatalf("len(specs) = %d, want 1: %v", len(specs), specs)
	}

	rows := specs["TECHNICAL SPECIFICATIONS ZR 110-145 (FF)"][model.Freq50Hz]
	if len(rows) != 1 {
		t.Fatalf("len(50Hz rows) = %d, want 1", len(rows))
	}
	if rows[0].ModelType != "ZR" || rows[0].ModelPressure != "110-7.5" || rows[0].NoiseLevelDBA != 69 {
		t.Errorf("row = %+v", rows[0])
	}
}

// ============================================================================
// Terminal operations
// ============================================================================

func TestDimensions(t *testing.T) {
	dims, warnings, err := FromDocument(sampleDoc()).Dimensions()
	if err != nil {
		t.Fatalf("Dimensions() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %s", FormatWarnings(warnings))
	}

	if dims.ProductFamily != "ZR/ZT (Oil-Free)" {
		t.Errorf("ProductFamily = %q", dims.ProductFamily)
	}
	if len(dims.ModelGroups) != 2 {
		t.Fatalf("len(ModelGroups) = %d, want 2", len(dims.ModelGroups))
	}
	for _, label := range []string{"ZR 110", "ZT 110"} {
		entry, ok := dims.ModelGroups[label]["ZR"]["110-145"]
		if !ok {
			t.Errorf("group %q is missing ZR 110-145", label)
			continue
		}
		if entry.Standard.Length != 2540 || entry.FullFeature.Length != 3440 {
			t.Errorf("group %q entry = %+v", label, entry)
		}
	}
}

func TestTechSpecs(t *testing.T) {
	specs, _, err := FromDocument(sampleDoc()).TechSpecs()
	if err != nil {
		t.Fatalf("TechSpecs() error = %v", err)
	}
	rows := specs["TECHNICAL SPECIFICATIONS ZR 110-145 (FF)"][model.Freq50Hz]
	if len(rows) != 1 || rows[0].ModelPressure != "110-7.5" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestTechSpecsCustomHeader(t *testing.T) {
	doc := model.NewDocument()
	doc.AddPage(model.NewPage("Caractéristiques\nZR 110-145 (FF)\n50 Hz\n" + techRow))

	specs, _, err := FromDocument(doc).HeaderLabel("CARACTÉRISTIQUES").TechSpecs()
	if err != nil {
		t.Fatalf("TechSpecs() error = %v", err)
	}
	if len(specs) != 1 {
		t.Errorf("len(specs) = %d, want 1", len(specs))
	}
}

func TestFixedSpeedTable(t *testing.T) {
	table, _, err := FromDocument(sampleDoc()).FixedSpeedTable()
	if err != nil {
		t.Fatalf("FixedSpeedTable() error = %v", err)
	}
	if len(table[model.Freq50Hz]) != 1 {
		t.Errorf("len(50Hz) = %d, want 1", len(table[model.Freq50Hz]))
	}
}

func TestVSDTechSpecs(t *testing.T) {
	result, _, err := FromDocument(sampleDoc()).VSDTechSpecs()
	if err != nil {
		t.Fatalf("VSDTechSpecs() error = %v", err)
	}
	if !result.TablePresent || len(result.Types) != 1 {
		t.Fatalf("result = %+v", result)
	}
	if result.Types[0].Type != vsdHeader {
		t.Errorf("Type = %q, want %q", result.Types[0].Type, vsdHeader)
	}
}

func TestOptions(t *testing.T) {
	result, _, err := FromDocument(sampleDoc()).Options()
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	if len(result.Options) != 4 {
		t.Fatalf("len(Options) = %d, want 4", len(result.Options))
	}
	if !result.Options["Integrated refrigerant dryer"]["ZR 145"] {
		t.Error("dryer should be available on ZR 145")
	}
	if result.Options["Integrated refrigerant dryer"]["ZT 110"] {
		t.Error("dryer should not be available on ZT 110")
	}

	// a stricter row minimum disqualifies the only table
	cfg := options.DefaultScoreConfig()
	cfg.MinRows = 10
	result, warnings, err := FromDocument(sampleDoc()).Scoring(cfg).Options()
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	if len(result.Options) != 0 {
		t.Errorf("len(Options) = %d, want 0", len(result.Options))
	}
	if len(warnings) != 1 || warnings[0].Source != "options" {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestAll(t *testing.T) {
	report, _, err := FromDocument(sampleDoc()).All(context.Background())
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if report.Dimensions == nil || report.VSD == nil || report.Options == nil {
		t.Fatalf("report has nil results: %+v", report)
	}
	if len(report.Dimensions.ModelGroups) != 2 {
		t.Errorf("len(ModelGroups) = %d, want 2", len(report.Dimensions.ModelGroups))
	}
	if len(report.TechSpecs) != 1 {
		t.Errorf("len(TechSpecs) = %d, want 1", len(report.TechSpecs))
	}
	if len(report.FixedSpeed[model.Freq50Hz]) != 1 {
		t.Errorf("len(FixedSpeed[50Hz]) = %d, want 1", len(report.FixedSpeed[model.Freq50Hz]))
	}
	if len(report.VSD.Types) != 1 {
		t.Errorf("len(VSD.Types) = %d, want 1", len(report.VSD.Types))
	}
	if len(report.Options.Options) != 4 {
		t.Errorf("len(Options) = %d, want 4", len(report.Options.Options))
	}
}

func TestAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := FromDocument(sampleDoc()).All(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("All() error = %v, want context.Canceled", err)
	}
}

// ============================================================================
// Configuration
// ============================================================================

func TestPageSelection(t *testing.T) {
	doc := sampleDoc()

	dims, _, err := FromDocument(doc).Pages(2).Dimensions()
	if err != nil {
		t.Fatalf("Dimensions() error = %v", err)
	}
	if dims.ProductFamily != "TECHNICAL SPECIFICATIONS" {
		t.Errorf("ProductFamily = %q, want the first line of page 2", dims.ProductFamily)
	}
	if len(dims.ModelGroups) != 0 {
		t.Errorf("len(ModelGroups) = %d, want 0", len(dims.ModelGroups))
	}

	sub, _, err := FromDocument(doc).Pages(3, 2, 3).Document()
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	if sub.PageCount() != 2 || sub.Pages[0].Number != 2 {
		t.Errorf("selected pages = %d starting at %d, want 2 starting at 2", sub.PageCount(), sub.Pages[0].Number)
	}

	got, _, err := FromDocument(doc).PageRange(2, 3).Document()
	if err != nil {
		t.Fatalf("PageRange() error = %v", err)
	}
	if got.PageCount() != 2 {
		t.Errorf("PageRange(2, 3) selected %d pages, want 2", got.PageCount())
	}
}

func TestInvalidPage(t *testing.T) {
	doc := sampleDoc()

	if _, _, err := FromDocument(doc).Pages(1000).Dimensions(); err == nil {
		t.Error("expected error for invalid page number")
	}
	if _, _, err := FromDocument(doc).Pages(0).Dimensions(); err == nil {
		t.Error("expected error for page 0 (1-indexed)")
	}
}

func TestConfigurationErrors(t *testing.T) {
	doc := sampleDoc()
	badScoring := options.DefaultScoreConfig()
	badScoring.MarkerRatio = 2

	tests := []struct {
		name string
		ext  *Extractor
	}{
		{"reversed page range", FromDocument(doc).PageRange(3, 1)},
		{"empty header label", FromDocument(doc).HeaderLabel("")},
		{"empty family token", FromDocument(doc).FamilyToken("")},
		{"invalid scoring", FromDocument(doc).Scoring(badScoring)},
		{"append for dimensions", FromDocument(doc).Policies(model.Policies{Dimensions: model.PolicyAppend})},
		{"unknown policy", FromDocument(doc).Policies(model.Policies{VSDStages: "merge"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the error is carried through later configuration calls
			ext := tt.ext.Pages(1)
			if _, _, err := ext.Dimensions(); err == nil {
				t.Error("expected configuration error")
			}
			if _, _, err := ext.All(context.Background()); err == nil {
				t.Error("expected configuration error from All()")
			}
		})
	}
}

func TestPolicies(t *testing.T) {
	doc := model.NewDocument()
	doc.AddPage(model.NewPage("TECHNICAL SPECIFICATIONS\nZR 110-145 (FF)\n50 Hz\n" + techRow + "\n50 Hz\n" + techRow))

	specs, warnings, err := FromDocument(doc).
		Policies(model.Policies{FrequencyBlocks: model.PolicyAppend}).
		TechSpecs()
	if err != nil {
		t.Fatalf("TechSpecs() error = %v", err)
	}
	rows := specs["TECHNICAL SPECIFICATIONS ZR 110-145 (FF)"][model.Freq50Hz]
	if len(rows) != 2 {
		t.Errorf("len(rows) = %d, want 2 with append", len(rows))
	}
	if len(warnings) != 1 || warnings[0].Source != "techspec" || warnings[0].Line != 5 {
		t.Errorf("warnings = %v", warnings)
	}

	specs, _, _ = FromDocument(doc).TechSpecs()
	if n := len(specs["TECHNICAL SPECIFICATIONS ZR 110-145 (FF)"][model.Freq50Hz]); n != 1 {
		t.Errorf("len(rows) = %d, want 1 with overwrite", n)
	}
}

func TestImmutability(t *testing.T) {
	base := FromDocument(sampleDoc())
	withPages := base.Pages(1)
	_ = withPages.Pages(2)

	if base.options.pages != nil {
		t.Errorf("base pages = %v, want nil", base.options.pages)
	}
	if len(withPages.options.pages) != 1 {
		t.Errorf("withPages pages = %v, want [1]", withPages.options.pages)
	}

	failed := base.HeaderLabel("")
	if base.err != nil {
		t.Error("a failed configuration call must not affect the receiver")
	}
	if failed.err == nil {
		t.Error("expected the new Extractor to carry the error")
	}
}

// ============================================================================
// Warnings and helpers
// ============================================================================

func TestFormatWarnings(t *testing.T) {
	warnings := []Warning{
		{Source: "reader", Page: 2, Message: "page object is missing"},
		{Source: "techspec", Line: 7, Text: "continued", Message: "header not followed by a section line"},
	}

	got := FormatWarnings(warnings)
	want := `reader: page 2: page object is missing; techspec: line 7: header not followed by a section line ("continued")`
	if got != want {
		t.Errorf("FormatWarnings() = %q, want %q", got, want)
	}
	if FormatWarnings(nil) != "" {
		t.Error("FormatWarnings(nil) should be empty")
	}
}

func TestMustResult(t *testing.T) {
	dims := MustResult(FromDocument(sampleDoc()).Dimensions())
	if dims == nil {
		t.Fatal("MustResult() returned nil")
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Error("MustResult() should panic on error")
		}
		if err, ok := r.(error); !ok || !strings.Contains(err.Error(), "out of range") {
			t.Errorf("panic value = %v", r)
		}
	}()
	MustResult(FromDocument(sampleDoc()).Pages(9).Dimensions())
}

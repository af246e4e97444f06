package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/josebleal/sales-cleaner/pkg/cleaner"
	"github.com/josebleal/sales-cleaner/pkg/csvio"
	"github.com/josebleal/sales-cleaner/pkg/model"
)

func newTestPipeline(t *testing.T, inputPath, outputPath string) *Pipeline {
	t.Helper()
	logger := zap.NewNop()
	numeric := []string{"price", "qty"}

	c, err := cleaner.NewCleaner(
		logger,
		numeric,
		[]string{"prodname", "price", "qty"},
		[]string{"category", "prodname"},
	)
	if err != nil {
		t.Fatalf("NewCleaner: %v", err)
	}

	p, err := NewPipeline(
		csvio.NewFileSource(inputPath, logger),
		csvio.NewFileSink(outputPath, logger),
		c,
		numeric,
		logger,
	)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	return p
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "raw.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunEndToEnd(t *testing.T) {
	input := writeInput(t, strings.Join([]string{
		` Price ,QTY,Prodname,Category`,
		`10,2, "Laptop   Pro" ,electronics`, // kept
		`abc,3,Mouse,electronics`,           // price unparseable
		`5,,Monitor,electronics`,            // qty empty
		`-5,2,Cable,electronics`,            // negative price
		`0,4,Adapter,office`,                // zero price
		`3.25,4,desk mat,office`,            // kept
		`10,2,laptop pro,gadgets`,           // duplicate of first row
	}, "\n") + "\n")
	output := filepath.Join(t.TempDir(), "clean.csv")

	p := newTestPipeline(t, input, output)
	result, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !result.Success {
		t.Fatal("result not marked successful")
	}
	if result.RowsLoaded != 7 {
		t.Errorf("RowsLoaded = %d, want 7", result.RowsLoaded)
	}
	if result.RowsWritten != 2 {
		t.Errorf("RowsWritten = %d, want 2", result.RowsWritten)
	}
	if got := result.DroppedBy("missing_filter"); got != 2 {
		t.Errorf("missing_filter dropped = %d, want 2", got)
	}
	if got := result.DroppedBy("validity_filter"); got != 2 {
		t.Errorf("validity_filter dropped = %d, want 2", got)
	}
	if got := result.DroppedBy("duplicate_filter"); got != 1 {
		t.Errorf("duplicate_filter dropped = %d, want 1", got)
	}
	if result.CoercionMisses["price"] != 1 || result.CoercionMisses["qty"] != 1 {
		t.Errorf("CoercionMisses = %v", result.CoercionMisses)
	}
	if result.RowsWritten+result.RowsDropped() != result.RowsLoaded {
		t.Errorf("row accounting off: %d written + %d dropped != %d loaded",
			result.RowsWritten, result.RowsDropped(), result.RowsLoaded)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "price,qty,prodname,category,revenue\n" +
		"10,2,Laptop Pro,Electronics,20\n" +
		"3.25,4,Desk Mat,Office,13\n"
	if string(data) != want {
		t.Errorf("output file:\n%s\nwant:\n%s", data, want)
	}

	report := p.Metrics().Report()
	for _, fragment := range []string{"Cleaning Run Report", "missing_filter", "price"} {
		if !strings.Contains(report, fragment) {
			t.Errorf("report missing %q:\n%s", fragment, report)
		}
	}
}

func TestRunEmptyInput(t *testing.T) {
	input := writeInput(t, "Price,QTY,Prodname,Category\n")
	output := filepath.Join(t.TempDir(), "clean.csv")

	p := newTestPipeline(t, input, output)
	result, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.RowsLoaded != 0 || result.RowsWritten != 0 {
		t.Errorf("rows = %d loaded, %d written", result.RowsLoaded, result.RowsWritten)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "price,qty,prodname,category,revenue\n" {
		t.Errorf("output = %q", data)
	}
}

func TestRunMissingInput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "clean.csv")
	p := newTestPipeline(t, filepath.Join(t.TempDir(), "absent.csv"), output)

	result, err := p.Run(context.Background())
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	if result.FailedStage != "load" {
		t.Errorf("FailedStage = %q, want %q", result.FailedStage, "load")
	}
	var srcErr *model.DataSourceError
	if !errors.As(err, &srcErr) {
		t.Errorf("expected DataSourceError, got %v", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("output written despite failed run")
	}
}

func TestRunCollidingHeaders(t *testing.T) {
	input := writeInput(t, "Price, price ,QTY,Prodname\n10,11,2,Laptop\n")
	p := newTestPipeline(t, input, filepath.Join(t.TempDir(), "clean.csv"))

	result, err := p.Run(context.Background())
	if err == nil {
		t.Fatal("expected error for colliding headers")
	}
	if result.FailedStage != "normalize_columns" {
		t.Errorf("FailedStage = %q, want %q", result.FailedStage, "normalize_columns")
	}
	var schemaErr *model.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Errorf("expected SchemaError, got %v", err)
	}
}

func TestRunMissingRequiredColumn(t *testing.T) {
	input := writeInput(t, "Price,Prodname\n10,Laptop\n")
	p := newTestPipeline(t, input, filepath.Join(t.TempDir(), "clean.csv"))

	result, err := p.Run(context.Background())
	if err == nil {
		t.Fatal("expected error for absent qty column")
	}
	if result.FailedStage != "require_columns" {
		t.Errorf("FailedStage = %q, want %q", result.FailedStage, "require_columns")
	}
}

func TestRunUnwritableOutput(t *testing.T) {
	input := writeInput(t, "Price,QTY,Prodname,Category\n10,2,Laptop,electronics\n")
	output := filepath.Join(t.TempDir(), "no-such-dir", "clean.csv")
	p := newTestPipeline(t, input, output)

	result, err := p.Run(context.Background())
	if err == nil {
		t.Fatal("expected error for unwritable output")
	}
	if result.FailedStage != "write" {
		t.Errorf("FailedStage = %q, want %q", result.FailedStage, "write")
	}
}

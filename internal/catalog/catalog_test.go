package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"atelier/internal/catalog"
	"atelier/internal/pipeline"
)

const validCatalog = `id,name,years,genre,nationality,bio,wikipedia,paintings
0,Amedeo Modigliani,1884 - 1920,Expressionism,Italian,Italian painter and sculptor.,http://en.wikipedia.org/wiki/Amedeo_Modigliani,193
1,Vincent Van Gogh,1853 – 1890,Post-Impressionism,Dutch,"Dutch painter, among the most famous.",http://en.wikipedia.org/wiki/Vincent_van_Gogh,877
`

func writeCatalog(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestReadValidCatalog(t *testing.T) {
	records, err := catalog.Read(writeCatalog(t, validCatalog))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	got := records[1]
	if got.ExternalID != 1 || got.Name != "Vincent Van Gogh" || got.Years != "1853 – 1890" {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.Bio != "Dutch painter, among the most famous." {
		t.Fatalf("quoted field not parsed: %q", got.Bio)
	}
	if got.Paintings != 877 {
		t.Fatalf("paintings count = %d, want 877", got.Paintings)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := catalog.Read(filepath.Join(t.TempDir(), "absent.csv"))
	if !errors.Is(err, pipeline.ErrInput) {
		t.Fatalf("expected input error, got %v", err)
	}
}

func TestReadDirectoryPath(t *testing.T) {
	_, err := catalog.Read(t.TempDir())
	if !errors.Is(err, pipeline.ErrInput) {
		t.Fatalf("expected input error for directory path, got %v", err)
	}
}

func TestReadRejectsBadHeader(t *testing.T) {
	contents := "id,name,years,genre,nationality,bio,homepage,paintings\n0,A,1900 - 1950,g,n,b,w,1\n"
	if _, err := catalog.Read(writeCatalog(t, contents)); err == nil {
		t.Fatal("expected header mismatch to fail")
	}
}

func TestReadRejectsShortRow(t *testing.T) {
	contents := validCatalog + "2,Edgar Degas,1834 - 1917,Impressionism\n"
	if _, err := catalog.Read(writeCatalog(t, contents)); err == nil {
		t.Fatal("expected short row to fail")
	}
}

func TestReadRejectsNonNumericCount(t *testing.T) {
	contents := "id,name,years,genre,nationality,bio,wikipedia,paintings\n0,A,1900 - 1950,g,n,b,w,many\n"
	if _, err := catalog.Read(writeCatalog(t, contents)); err == nil {
		t.Fatal("expected non-numeric paintings column to fail")
	}
}

func TestReadRejectsEmptyName(t *testing.T) {
	contents := "id,name,years,genre,nationality,bio,wikipedia,paintings\n0,,1900 - 1950,g,n,b,w,1\n"
	if _, err := catalog.Read(writeCatalog(t, contents)); err == nil {
		t.Fatal("expected empty name to fail")
	}
}

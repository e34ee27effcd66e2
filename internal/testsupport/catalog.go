package testsupport

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"atelier/internal/catalog"
)

// WriteCatalog writes a catalog CSV with the given records to path.
func WriteCatalog(t testing.TB, path string, records []catalog.Record) {
	t.Helper()

	var b strings.Builder
	b.WriteString("id,name,years,genre,nationality,bio,wikipedia,paintings\n")
	for _, rec := range records {
		fmt.Fprintf(&b, "%d,%s,%s,%s,%s,%s,%s,%d\n",
			rec.ExternalID, csvField(rec.Name), csvField(rec.Years), csvField(rec.Genre),
			csvField(rec.Nationality), csvField(rec.Bio), csvField(rec.Wikipedia), rec.Paintings)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
}

func csvField(value string) string {
	if strings.ContainsAny(value, ",\"\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

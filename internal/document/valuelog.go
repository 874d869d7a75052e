package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// WriteValueLog records every non-empty field written to the forms in a
// plaintext file under logsDir, so staff can verify a run without opening
// the PDFs. Returns the path of the written log.
func WriteValueLog(logsDir string, now time.Time, maps map[Form]FieldMap) (string, error) {
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return "", fmt.Errorf("creating logs directory: %w", err)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Filled form values - %s\n", now.Format("January 2, 2006 15:04:05"))

	for _, form := range Forms {
		fields, ok := maps[form]
		if !ok {
			continue
		}

		fmt.Fprintf(&b, "\n%s\n", form.Title())

		for _, e := range fields {
			if e.Value == "" {
				continue
			}

			fmt.Fprintf(&b, "  %s: %s\n", e.Key, e.Value)
		}
	}

	path := filepath.Join(logsDir, "values-"+now.Format("20060102-150405")+".log")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing value log: %w", err)
	}

	return path, nil
}

package cli

import (
	"strings"

	"github.com/thenoetrevino/kanbanpro/internal/models"
)

// FormatAvailableColumns lists the column keys for error suggestions
func FormatAvailableColumns() string {
	keys := models.ColumnKeys()
	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = string(key)
	}
	return strings.Join(names, ", ")
}

// ParseColumnArg resolves a user supplied column key or display name,
// reporting failures with the validation exit code
func ParseColumnArg(f *OutputFormatter, arg string) (models.ColumnKey, error) {
	key, err := models.ParseColumnKey(arg)
	if err != nil {
		return "", f.Fail(ExitValidation, "COLUMN_NOT_FOUND", err,
			"Available columns: "+FormatAvailableColumns())
	}
	return key, nil
}

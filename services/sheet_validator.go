package services

import (
	"fmt"
	"net/url"
	"strings"

	"saas-docvault-platform/models"
)

// ReferenceListSeparator splits cross-sheet reference lists such as
// "B1;B2;B3" in the Bronv and Bijlage(-n) columns.
const ReferenceListSeparator = ";"

// SheetValidator checks one sheet against its required header list and
// per-row rules. All findings are collected into the returned result,
// never returned as errors: the caller sees every problem at once.
type SheetValidator struct{}

func NewSheetValidator() *SheetValidator {
	return &SheetValidator{}
}

// ValidateSheet validates structure first (headers, presence of data),
// then each data row. Rows blank in every required column are tolerated
// as blank lines and skipped. Sheet-level errors carry row number 0.
func (v *SheetValidator) ValidateSheet(acc *SheetAccessor, required []string, label string) *models.ImportResult {
	result := models.NewImportResult()

	if dups := acc.DuplicateHeaders(); len(dups) > 0 {
		result.AddError("Headers",
			fmt.Sprintf("Sheet '%s' has duplicate headers: %s", label, strings.Join(dups, ", ")),
			models.ErrorTypeValidation, 0)
	}

	var missing []string
	for _, header := range required {
		if !acc.HasHeader(header) {
			missing = append(missing, header)
		}
	}
	if len(missing) > 0 {
		result.AddError("Headers",
			fmt.Sprintf("Sheet '%s' is missing required headers: %s", label, strings.Join(missing, ", ")),
			models.ErrorTypeValidation, 0)
	}

	if acc.DataRowCount() == 0 {
		result.AddError("Data",
			fmt.Sprintf("Sheet '%s' contains no data rows", label),
			models.ErrorTypeData, 0)
		return result
	}

	for row := 2; row <= acc.RowCount(); row++ {
		if v.rowBlank(acc, row, required) {
			continue
		}
		v.validateRow(acc, row, required, result)
	}

	return result
}

// rowBlank reports whether the row is empty in every required column.
// Content in unmapped columns does not make a row importable, so such
// rows are skipped the same way fully blank lines are.
func (v *SheetValidator) rowBlank(acc *SheetAccessor, row int, required []string) bool {
	for _, header := range required {
		if acc.HasHeader(header) && acc.HeaderText(row, header) != "" {
			return false
		}
	}
	return true
}

// validateRow checks required cells that are present and the
// sheet-specific semantic rules. Headers reported missing above are not
// re-checked per row.
func (v *SheetValidator) validateRow(acc *SheetAccessor, row int, required []string, result *models.ImportResult) {
	for _, header := range required {
		if !acc.HasHeader(header) {
			continue
		}
		if acc.HeaderText(row, header) == "" {
			result.AddError(header,
				fmt.Sprintf("Row %d: required value '%s' is empty", row, header),
				models.ErrorTypeValidation, row)
		}
	}

	switch acc.Name {
	case SheetSpecifications:
		v.validateReferenceList(acc, row, HeaderLinkRefs, result)
		v.validateReferenceList(acc, row, HeaderFileRefs, result)
	case SheetLinks:
		v.validateURL(acc, row, result)
	}
}

// validateReferenceList rejects delimited reference lists containing
// empty tokens, e.g. "B1;;B3" or a trailing separator.
func (v *SheetValidator) validateReferenceList(acc *SheetAccessor, row int, header string, result *models.ImportResult) {
	value := acc.HeaderText(row, header)
	if value == "" {
		return
	}
	for _, token := range strings.Split(value, ReferenceListSeparator) {
		if strings.TrimSpace(token) == "" {
			result.AddError(header,
				fmt.Sprintf("Row %d: reference list '%s' contains an empty entry", row, header),
				models.ErrorTypeValidation, row)
			return
		}
	}
}

func (v *SheetValidator) validateURL(acc *SheetAccessor, row int, result *models.ImportResult) {
	value := acc.HeaderText(row, HeaderURL)
	if value == "" {
		return
	}
	parsed, err := url.Parse(value)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		result.AddError(HeaderURL,
			fmt.Sprintf("Row %d: '%s' is not a well-formed absolute URL", row, value),
			models.ErrorTypeValidation, row)
	}
}

// SplitReferenceList returns the trimmed, non-empty tokens of a
// delimited reference list.
func SplitReferenceList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var tokens []string
	for _, token := range strings.Split(value, ReferenceListSeparator) {
		token = strings.TrimSpace(token)
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

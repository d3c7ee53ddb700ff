package services

// MapRow projects one data row into a normalized field map using the
// declarative (key, header) mappings. Only non-blank source values are
// included, so a trailing blank row maps to an empty result and the
// orchestrator treats it as a blank line rather than an error. Pure and
// stateless: no entity resolution happens here.
func MapRow(acc *SheetAccessor, row int, mappings []ColumnMapping) map[string]string {
	fields := make(map[string]string, len(mappings))
	for _, m := range mappings {
		if value := acc.HeaderText(row, m.Header); value != "" {
			fields[m.Key] = value
		}
	}
	return fields
}

package resolve

// scalarTypes maps the schema's semantic SQL types to Go types. Nullable
// columns become pointers to the mapped type in generated code.
var scalarTypes = map[string]string{
	"serial":      "int",
	"bigserial":   "int64",
	"int":         "int",
	"integer":     "int",
	"bigint":      "int64",
	"smallint":    "int16",
	"text":        "string",
	"varchar":     "string",
	"boolean":     "bool",
	"real":        "float32",
	"double":      "float64",
	"numeric":     "string",
	"timestamp":   "time.Time",
	"timestamptz": "time.Time",
	"date":        "time.Time",
	"uuid":        "string",
	"bytea":       "[]byte",
	"json":        "json.RawMessage",
}

// autoTypes are column types the database assigns values to on insert.
// The mysql dialect uses this to refetch by LastInsertId after a create.
var autoTypes = map[string]bool{
	"serial":    true,
	"bigserial": true,
}

// GoTypeFor returns the Go type for a semantic SQL type.
func GoTypeFor(sqlType string) (string, bool) {
	t, ok := scalarTypes[sqlType]
	return t, ok
}

// IsAuto reports whether the column type is database-assigned on insert.
func (f *Field) IsAuto() bool {
	return autoTypes[f.SQLType]
}

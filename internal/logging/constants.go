package logging

// Standardized field names for structured logging.
const (
	FieldOperation = "operation"
	FieldKind      = "kind"
	FieldName      = "name"
	FieldOldName   = "old_name"
	FieldNewName   = "new_name"
	FieldEntityID  = "entity_id"
	FieldApplied   = "applied"
	FieldVersion   = "version"
	FieldCount     = "count"
	FieldStatus    = "status"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
	FieldFile      = "file_path"
	FieldBackend   = "backend"
)

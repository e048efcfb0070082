package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"

	FieldInputPath  = "input_path"
	FieldDuration   = "duration"
	FieldErrorStack = "error_stack"

	FieldWorkerId = "worker_id"

	FieldRecordsExtracted = "records_extracted"
	FieldRecordsReported  = "records_reported"
)

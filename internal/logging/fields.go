package logging

// Structured field names.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldOutput     = "output"
	FieldBackup     = "backup"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	FieldDryRun          = "dry_run"
	FieldJobs            = "jobs"
	FieldFormat          = "format"
	FieldCloseContainers = "close_containers"

	FieldFilesDiscovered = "files_discovered"
	FieldFilesConverted  = "files_converted"
	FieldFilesWritten    = "files_written"
	FieldFilesErrored    = "files_errored"
	FieldLines           = "lines"
	FieldOpenContainer   = "open_container"

	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)

package diag

// Diagnostic is a single schema problem report.
//
// Path identifies the offending schema element as a dotted chain,
// e.g. "SENSOR_READING.reading.value" or "TrackType" for an enum.
// An empty path means the problem concerns the schema as a whole.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Path     string
}

func New(sev Severity, code Code, path, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Path:     path,
		Message:  msg,
	}
}

func NewError(code Code, path, msg string) Diagnostic {
	return New(SevError, code, path, msg)
}

func NewWarning(code Code, path, msg string) Diagnostic {
	return New(SevWarning, code, path, msg)
}

// String renders the diagnostic the way the CLI prints it:
// "PRO1002: message SENSOR_READING: ... (at SENSOR_READING.value)".
func (d Diagnostic) String() string {
	out := d.Code.ID() + ": " + d.Message
	if d.Path != "" {
		out += " (at " + d.Path + ")"
	}
	return out
}

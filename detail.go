package httperror

// Detail describes one field-level sub-error, such as a failed validation on a
// single input field. Message may be any value, including nested structures.
type Detail struct {
	Param   string `json:"param"`
	Message any    `json:"message"`
}

// Package httperror provides structured HTTP error values.
//
// An HTTPError carries an HTTP status code, a machine-readable type/code pair,
// a severity, a human message, optional field-level details and an optional
// wrapped cause. It converts to a stable JSON shape for API responses, with a
// separate debug view that adds the severity, the status, the cause and the
// call stack captured at construction.
//
// The package does not write responses, route requests, validate input or
// log. It only shapes error values.
//
// # Quick Start
//
// Creating errors from the preset catalog:
//
//	err := httperror.FromPreset(httperror.PresetNotFound)
//
//	err := httperror.FromPreset(httperror.PresetBadRequest,
//	    httperror.WithMessage("invalid signup form"),
//	    httperror.WithDetail("email", "required"),
//	)
//
// Creating errors from raw fields (the message defaults to the status
// catalog, the severity to ERROR):
//
//	err := httperror.New("BILLING", "CARD_DECLINED", httperror.StatusPaymentRequired)
//
// Enriching an error while it propagates:
//
//	err.AddDetail("age", "must be positive").
//	    SetMessage("signup rejected").
//	    AttachCause(dbErr)
//
// Wrapping errors:
//
//	if err := repo.Save(ctx, user); err != nil {
//	    return httperror.Wrap(err, httperror.PresetConflict)
//	}
//
// JSON serialization:
//
//	func writeError(w http.ResponseWriter, err error) {
//	    w.Header().Set("Content-Type", "application/json")
//	    w.WriteHeader(httperror.GetStatus(err))
//	    json.NewEncoder(w).Encode(httperror.ToJSON(err, false))
//	}
//
// # JSON Shape
//
// The client-facing view always contains type, code, message and details:
//
//	{"type":"RESOURCE","code":"NOT_FOUND","message":"...","details":[]}
//
// ToJSON(true) adds level, status, stack and, when a cause is attached, trace
// (the raw cause) and traceJSON (the cause rendered as indented JSON, or as
// flat text when it has no JSON form, e.g. because it references itself).
//
// # Catalogs
//
// The preset catalog maps keys such as "NOT_FOUND" to a Preset, and the status
// catalog maps status codes to canonical messages. Both are read-only and safe
// for concurrent use. An individual HTTPError is owned by the code that
// created it and must not be mutated concurrently.
//
// # Standard Library Compatibility
//
// When the attached cause is an error, HTTPError unwraps to it:
//
//	err := httperror.Wrap(sql.ErrNoRows, httperror.PresetNotFound)
//	errors.Is(err, sql.ErrNoRows) // true
//
// Printing an HTTPError with %+v includes the captured call stack.
package httperror

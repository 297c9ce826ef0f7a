package httperror

// HTTP status codes known to the status catalog.
const (
	StatusContinue           = 100
	StatusSwitchingProtocols = 101
	StatusProcessing         = 102

	StatusOK                          = 200
	StatusCreated                     = 201
	StatusAccepted                    = 202
	StatusNonAuthoritativeInformation = 203
	StatusNoContent                   = 204
	StatusResetContent                = 205
	StatusPartialContent              = 206
	StatusMultiStatus                 = 207
	StatusAlreadyReported             = 208
	StatusIMUsed                      = 226

	StatusMultipleChoices   = 300
	StatusMovedPermanently  = 301
	StatusFound             = 302
	StatusSeeOther          = 303
	StatusNotModified       = 304
	StatusUseProxy          = 305
	StatusTemporaryRedirect = 307
	StatusPermanentRedirect = 308

	StatusBadRequest                  = 400
	StatusUnauthorized                = 401
	StatusPaymentRequired             = 402
	StatusForbidden                   = 403
	StatusNotFound                    = 404
	StatusMethodNotAllowed            = 405
	StatusNotAcceptable               = 406
	StatusProxyAuthenticationRequired = 407
	StatusRequestTimeout              = 408
	StatusConflict                    = 409
	StatusGone                        = 410
	StatusLengthRequired              = 411
	StatusPreconditionFailed          = 412
	StatusPayloadTooLarge             = 413
	StatusURITooLong                  = 414
	StatusUnsupportedMediaType        = 415
	StatusRangeNotSatisfiable         = 416
	StatusExpectationFailed           = 417
	StatusTeapot                      = 418
	StatusMisdirectedRequest          = 421
	StatusUnprocessableEntity         = 422
	StatusLocked                      = 423
	StatusFailedDependency            = 424
	StatusUpgradeRequired             = 426
	StatusPreconditionRequired        = 428
	StatusTooManyRequests             = 429
	StatusRequestHeaderFieldsTooLarge = 431
	StatusUnavailableForLegalReasons  = 451

	StatusInternalServerError           = 500
	StatusNotImplemented                = 501
	StatusBadGateway                    = 502
	StatusServiceUnavailable            = 503
	StatusGatewayTimeout                = 504
	StatusHTTPVersionNotSupported       = 505
	StatusVariantAlsoNegotiates         = 506
	StatusInsufficientStorage           = 507
	StatusLoopDetected                  = 508
	StatusNotExtended                   = 510
	StatusNetworkAuthenticationRequired = 511
)

// statusMessages maps a status code to its canonical human-readable message.
// It is initialized once and never mutated.
var statusMessages = map[int]string{
	StatusContinue:           "Client should continue with the request.",
	StatusSwitchingProtocols: "Server is switching protocols as requested by the client.",
	StatusProcessing:         "Server has received and is processing the request.",

	StatusOK:                          "Request has succeeded.",
	StatusCreated:                     "Resource has been created successfully.",
	StatusAccepted:                    "Request has been accepted but not yet processed.",
	StatusNonAuthoritativeInformation: "Response from another source; may not be authoritative.",
	StatusNoContent:                   "Request succeeded, but no content to return.",
	StatusResetContent:                "Request succeeded, client should reset the document view.",
	StatusPartialContent:              "Partial resource returned (used for range requests).",
	StatusMultiStatus:                 "Response contains multiple status codes (WebDAV).",
	StatusAlreadyReported:             "Resource already reported in previous response.",
	StatusIMUsed:                      "The resource has been modified and used in a response.",

	StatusMultipleChoices:   "Multiple options available for requested resource.",
	StatusMovedPermanently:  "Resource has been permanently moved to another URL.",
	StatusFound:             "Resource temporarily found at another URL.",
	StatusSeeOther:          "Resource available at another URL; use GET to retrieve it.",
	StatusNotModified:       "Resource has not been modified since last request.",
	StatusUseProxy:          "Requested resource must be accessed through a proxy.",
	StatusTemporaryRedirect: "Resource is temporarily redirected to another URL.",
	StatusPermanentRedirect: "Resource is permanently redirected to another URL.",

	StatusBadRequest:                  "Request cannot be fulfilled due to client-side error.",
	StatusUnauthorized:                "Authentication is required for this request.",
	StatusPaymentRequired:             "Payment is required to access this resource.",
	StatusForbidden:                   "Client does not have permission to access this resource.",
	StatusNotFound:                    "Requested resource could not be found.",
	StatusMethodNotAllowed:            "HTTP method used is not allowed for this resource.",
	StatusNotAcceptable:               "Server cannot produce a response matching the request.",
	StatusProxyAuthenticationRequired: "Proxy authentication required before proceeding.",
	StatusRequestTimeout:              "Client took too long to send a request.",
	StatusConflict:                    "Request could not be completed due to conflict with resource state.",
	StatusGone:                        "Requested resource is no longer available.",
	StatusLengthRequired:              "Length of the request body is required.",
	StatusPreconditionFailed:          "Precondition in the request failed.",
	StatusPayloadTooLarge:             "Request payload is too large for the server to process.",
	StatusURITooLong:                  "Requested URI is too long for the server to process.",
	StatusUnsupportedMediaType:        "Server does not support the media type in the request.",
	StatusRangeNotSatisfiable:         "Requested range is not satisfiable.",
	StatusExpectationFailed:           "Expectation in request header could not be met.",
	StatusTeapot:                      "A joke status code indicating that the server is a teapot.",
	StatusMisdirectedRequest:          "Request was directed at a server unable to produce a response.",
	StatusUnprocessableEntity:         "Request is well-formed but cannot be processed semantically.",
	StatusLocked:                      "Resource is locked and cannot be accessed.",
	StatusFailedDependency:            "Request failed due to a dependency failure.",
	StatusUpgradeRequired:             "Client must upgrade to a newer protocol version.",
	StatusPreconditionRequired:        "Request requires preconditions to be met.",
	StatusTooManyRequests:             "Client has sent too many requests in a given time.",
	StatusRequestHeaderFieldsTooLarge: "Request headers are too large for the server to process.",
	StatusUnavailableForLegalReasons:  "Resource is unavailable for legal reasons.",

	StatusInternalServerError:           "An unexpected server error occurred.",
	StatusNotImplemented:                "Request method is not supported by the server.",
	StatusBadGateway:                    "Server received an invalid response from an upstream server.",
	StatusServiceUnavailable:            "Server is currently unavailable due to maintenance or overload.",
	StatusGatewayTimeout:                "Upstream server took too long to respond.",
	StatusHTTPVersionNotSupported:       "Server does not support the HTTP version used in the request.",
	StatusVariantAlsoNegotiates:         "Server has detected an internal configuration error.",
	StatusInsufficientStorage:           "Server does not have enough storage to complete the request.",
	StatusLoopDetected:                  "Infinite loop detected while processing request.",
	StatusNotExtended:                   "Further extensions to the request are required.",
	StatusNetworkAuthenticationRequired: "Client must authenticate to gain network access.",
}

// LookupStatusMessage returns the canonical message for an HTTP status code.
// The second return value is false when the code is not in the catalog.
func LookupStatusMessage(code int) (string, bool) {
	msg, ok := statusMessages[code]
	return msg, ok
}

// StatusMessage returns the canonical message for an HTTP status code,
// or an empty string if the code is unknown.
func StatusMessage(code int) string {
	return statusMessages[code]
}

// StatusMessages returns a copy of the status catalog.
func StatusMessages() map[int]string {
	out := make(map[int]string, len(statusMessages))
	for k, v := range statusMessages {
		out[k] = v
	}
	return out
}

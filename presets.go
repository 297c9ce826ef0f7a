package httperror

import "sort"

// Preset is a named, fixed template for a class of HTTP error.
type Preset struct {
	Type    string   `json:"type"`
	Code    string   `json:"code"`
	Status  int      `json:"status"`
	Level   Severity `json:"level"`
	Message string   `json:"message"`
}

// Preset keys available in the preset catalog.
const (
	PresetUnauthorized                  = "UNAUTHORIZED"
	PresetForbidden                     = "FORBIDDEN"
	PresetNotFound                      = "NOT_FOUND"
	PresetInternalServerError           = "INTERNAL_SERVER_ERROR"
	PresetBadRequest                    = "BAD_REQUEST"
	PresetConflict                      = "CONFLICT"
	PresetServiceUnavailable            = "SERVICE_UNAVAILABLE"
	PresetGatewayTimeout                = "GATEWAY_TIMEOUT"
	PresetUnprocessableEntity           = "UNPROCESSABLE_ENTITY"
	PresetTooManyRequests               = "TOO_MANY_REQUESTS"
	PresetPaymentRequired               = "PAYMENT_REQUIRED"
	PresetMethodNotAllowed              = "METHOD_NOT_ALLOWED"
	PresetNotAcceptable                 = "NOT_ACCEPTABLE"
	PresetRequestTimeout                = "REQUEST_TIMEOUT"
	PresetLengthRequired                = "LENGTH_REQUIRED"
	PresetPreconditionFailed            = "PRECONDITION_FAILED"
	PresetPayloadTooLarge               = "PAYLOAD_TOO_LARGE"
	PresetUnsupportedMediaType          = "UNSUPPORTED_MEDIA_TYPE"
	PresetRangeNotSatisfiable           = "RANGE_NOT_SATISFIABLE"
	PresetExpectationFailed             = "EXPECTATION_FAILED"
	PresetTeapot                        = "IM_A_TEAPOT"
	PresetMisdirectedRequest            = "MISDIRECTED_REQUEST"
	PresetLocked                        = "LOCKED"
	PresetFailedDependency              = "FAILED_DEPENDENCY"
	PresetUpgradeRequired               = "UPGRADE_REQUIRED"
	PresetPreconditionRequired          = "PRECONDITION_REQUIRED"
	PresetRequestHeaderFieldsTooLarge   = "REQUEST_HEADER_FIELDS_TOO_LARGE"
	PresetUnavailableForLegalReasons    = "UNAVAILABLE_FOR_LEGAL_REASONS"
	PresetNetworkAuthenticationRequired = "NETWORK_AUTHENTICATION_REQUIRED"
)

// presets is the preset catalog. It is initialized once and never mutated.
var presets = map[string]Preset{
	PresetUnauthorized: {
		Type:    "AUTHORIZATION",
		Code:    "UNAUTHORIZED",
		Status:  StatusUnauthorized,
		Level:   SeverityError,
		Message: "Authentication is required to access this resource.",
	},
	PresetForbidden: {
		Type:    "AUTHORIZATION",
		Code:    "FORBIDDEN",
		Status:  StatusForbidden,
		Level:   SeverityError,
		Message: "You do not have permission to access this resource.",
	},
	PresetNotFound: {
		Type:    "RESOURCE",
		Code:    "NOT_FOUND",
		Status:  StatusNotFound,
		Level:   SeverityError,
		Message: "The requested resource could not be found.",
	},
	PresetInternalServerError: {
		Type:    "SERVER",
		Code:    "INTERNAL_SERVER_ERROR",
		Status:  StatusInternalServerError,
		Level:   SeverityError,
		Message: "An unexpected error occurred on the server.",
	},
	PresetBadRequest: {
		Type:    "CLIENT",
		Code:    "BAD_REQUEST",
		Status:  StatusBadRequest,
		Level:   SeverityError,
		Message: "The request could not be understood or was missing required parameters.",
	},
	PresetConflict: {
		Type:    "CLIENT",
		Code:    "CONFLICT",
		Status:  StatusConflict,
		Level:   SeverityError,
		Message: "The request could not be completed due to a conflict with the current state of the resource.",
	},
	PresetServiceUnavailable: {
		Type:    "SERVER",
		Code:    "SERVICE_UNAVAILABLE",
		Status:  StatusServiceUnavailable,
		Level:   SeverityError,
		Message: "The service is temporarily unavailable. Please try again later.",
	},
	PresetGatewayTimeout: {
		Type:    "SERVER",
		Code:    "GATEWAY_TIMEOUT",
		Status:  StatusGatewayTimeout,
		Level:   SeverityError,
		Message: "The server did not receive a timely response from an upstream server.",
	},
	PresetUnprocessableEntity: {
		Type:    "CLIENT",
		Code:    "UNPROCESSABLE_ENTITY",
		Status:  StatusUnprocessableEntity,
		Level:   SeverityError,
		Message: "The request was well-formed but was unable to be followed due to semantic errors.",
	},
	PresetTooManyRequests: {
		Type:    "CLIENT",
		Code:    "TOO_MANY_REQUESTS",
		Status:  StatusTooManyRequests,
		Level:   SeverityError,
		Message: "You have sent too many requests in a given amount of time.",
	},
	PresetPaymentRequired: {
		Type:    "CLIENT",
		Code:    "PAYMENT_REQUIRED",
		Status:  StatusPaymentRequired,
		Level:   SeverityError,
		Message: "Payment is required to access this resource.",
	},
	PresetMethodNotAllowed: {
		Type:    "CLIENT",
		Code:    "METHOD_NOT_ALLOWED",
		Status:  StatusMethodNotAllowed,
		Level:   SeverityError,
		Message: "The HTTP method used is not allowed for this resource.",
	},
	PresetNotAcceptable: {
		Type:    "CLIENT",
		Code:    "NOT_ACCEPTABLE",
		Status:  StatusNotAcceptable,
		Level:   SeverityError,
		Message: "The requested resource is not available in a format acceptable to the client.",
	},
	PresetRequestTimeout: {
		Type:    "CLIENT",
		Code:    "REQUEST_TIMEOUT",
		Status:  StatusRequestTimeout,
		Level:   SeverityError,
		Message: "The server timed out waiting for the request.",
	},
	PresetLengthRequired: {
		Type:    "CLIENT",
		Code:    "LENGTH_REQUIRED",
		Status:  StatusLengthRequired,
		Level:   SeverityError,
		Message: "The request did not specify the length of its content, which is required by the resource.",
	},
	PresetPreconditionFailed: {
		Type:    "CLIENT",
		Code:    "PRECONDITION_FAILED",
		Status:  StatusPreconditionFailed,
		Level:   SeverityError,
		Message: "The server does not meet one of the preconditions specified by the client.",
	},
	PresetPayloadTooLarge: {
		Type:    "CLIENT",
		Code:    "PAYLOAD_TOO_LARGE",
		Status:  StatusPayloadTooLarge,
		Level:   SeverityError,
		Message: "The request is larger than the server is willing or able to process.",
	},
	PresetUnsupportedMediaType: {
		Type:    "CLIENT",
		Code:    "UNSUPPORTED_MEDIA_TYPE",
		Status:  StatusUnsupportedMediaType,
		Level:   SeverityError,
		Message: "The request entity has a media type which the server or resource does not support.",
	},
	PresetRangeNotSatisfiable: {
		Type:    "CLIENT",
		Code:    "RANGE_NOT_SATISFIABLE",
		Status:  StatusRangeNotSatisfiable,
		Level:   SeverityError,
		Message: "The client has asked for a portion of the file, but the server cannot supply that portion.",
	},
	PresetExpectationFailed: {
		Type:    "CLIENT",
		Code:    "EXPECTATION_FAILED",
		Status:  StatusExpectationFailed,
		Level:   SeverityError,
		Message: "The server cannot meet the requirements of the Expect request-header field.",
	},
	PresetTeapot: {
		Type:    "CLIENT",
		Code:    "IM_A_TEAPOT",
		Status:  StatusTeapot,
		Level:   SeverityError,
		Message: "The server refuses to brew coffee because it is a teapot.",
	},
	PresetMisdirectedRequest: {
		Type:    "CLIENT",
		Code:    "MISDIRECTED_REQUEST",
		Status:  StatusMisdirectedRequest,
		Level:   SeverityError,
		Message: "The request was directed at a server that is not able to produce a response.",
	},
	PresetLocked: {
		Type:    "CLIENT",
		Code:    "LOCKED",
		Status:  StatusLocked,
		Level:   SeverityError,
		Message: "The resource that is being accessed is locked.",
	},
	PresetFailedDependency: {
		Type:    "CLIENT",
		Code:    "FAILED_DEPENDENCY",
		Status:  StatusFailedDependency,
		Level:   SeverityError,
		Message: "The request failed due to failure of a previous request.",
	},
	PresetUpgradeRequired: {
		Type:    "CLIENT",
		Code:    "UPGRADE_REQUIRED",
		Status:  StatusUpgradeRequired,
		Level:   SeverityError,
		Message: "The client should switch to a different protocol.",
	},
	PresetPreconditionRequired: {
		Type:    "CLIENT",
		Code:    "PRECONDITION_REQUIRED",
		Status:  StatusPreconditionRequired,
		Level:   SeverityError,
		Message: "The origin server requires the request to be conditional.",
	},
	PresetRequestHeaderFieldsTooLarge: {
		Type:    "CLIENT",
		Code:    "REQUEST_HEADER_FIELDS_TOO_LARGE",
		Status:  StatusRequestHeaderFieldsTooLarge,
		Level:   SeverityError,
		Message: "The server is unwilling to process the request because its header fields are too large.",
	},
	PresetUnavailableForLegalReasons: {
		Type:    "CLIENT",
		Code:    "UNAVAILABLE_FOR_LEGAL_REASONS",
		Status:  StatusUnavailableForLegalReasons,
		Level:   SeverityError,
		Message: "The resource is unavailable due to legal reasons.",
	},
	PresetNetworkAuthenticationRequired: {
		Type:    "SERVER",
		Code:    "NETWORK_AUTHENTICATION_REQUIRED",
		Status:  StatusNetworkAuthenticationRequired,
		Level:   SeverityError,
		Message: "The client needs to authenticate to gain network access.",
	},
}

// LookupPreset returns the preset registered under key.
// The second return value is false when the key is not in the catalog.
func LookupPreset(key string) (Preset, bool) {
	p, ok := presets[key]
	return p, ok
}

// Presets returns a copy of the preset catalog.
func Presets() map[string]Preset {
	out := make(map[string]Preset, len(presets))
	for k, v := range presets {
		out[k] = v
	}
	return out
}

// PresetKeys returns all preset keys in sorted order.
func PresetKeys() []string {
	keys := make([]string, 0, len(presets))
	for k := range presets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

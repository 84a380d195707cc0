package constvars

const (
	MIMEApplicationJSON    = "application/json"
	MIMEOctetStream        = "application/octet-stream"
	MIMEMultipartForm      = "multipart/form-data"
	MIMETextPlainUTF8      = "text/plain; charset=utf-8"
	MIMEApplicationJSONUTF = "application/json; charset=utf-8"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusRequestTooLarge     = 413
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAccept             = "Accept"
	HeaderAuthorization      = "Authorization"
	HeaderContentType        = "Content-Type"
	HeaderContentDisposition = "Content-Disposition"
	HeaderXRequestID         = "X-Request-ID"
	HeaderXCSRFToken         = "X-CSRF-Token"
	HeaderAdminAPIKey        = "x-api-key"
	HeaderLink               = "Link"
	HeaderRetryAfter         = "Retry-After"
)

const (
	ContentDispositionAttachment = "attachment"
	ContentDispositionFilename   = "filename"
)

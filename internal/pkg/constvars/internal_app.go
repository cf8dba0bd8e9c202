package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
)

const (
	REQUEST_ID_PREFIX = "CARE_SVC_"
)

const (
	CurrencyRSD = "RSD"
)

const (
	ExportFormatXLSX = "xlsx"
	ExportFormatPDF  = "pdf"
)

const (
	StockSourceHome   = "home"
	StockSourceFamily = "family"
)

const (
	StockModeSet = "set"
	StockModeAdd = "add"
)

package errors

// User-facing messages. The dashboard shows these verbatim.
const (
	MsgFetchFailed = "Ошибка получения данных"
	MsgViewsFailed = "Ошибка построения представлений"
)

// ErrorResponse is the error response body for the stats API.
// The dashboard checks the "error" key to decide whether to show a retry prompt.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

package payme

import (
	"encoding/json"
	"fmt"
)

// Method is the closed set of remote procedures in the merchant protocol.
// Dispatch is an exhaustive switch over these constants; anything else is a
// method-not-found error, never a silent fallthrough.
type Method string

const (
	MethodCheckPerformTransaction Method = "CheckPerformTransaction"
	MethodCreateTransaction       Method = "CreateTransaction"
	MethodPerformTransaction      Method = "PerformTransaction"
	MethodCancelTransaction       Method = "CancelTransaction"
	MethodCheckTransaction        Method = "CheckTransaction"
	MethodGetStatement            Method = "GetStatement"
)

// JSON-RPC error codes of the merchant protocol.
const (
	CodeParseError            = -32700
	CodeMethodNotFound        = -32601
	CodeInsufficientPrivilege = -32504
	CodeSystemError           = -32400

	CodeWrongAmount         = -31001
	CodeTransactionNotFound = -31003
	CodeCannotPerform       = -31008
	CodeInvalidAccount      = -31050
)

// RPCRequest is the inbound (and outbound) call envelope.
type RPCRequest struct {
	ID     int64           `json:"id"`
	Method Method          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}

// Error makes RPCError usable as a Go error on the outbound path, where a
// gateway-reported failure must be distinguishable from a transport failure.
func (e *RPCError) Error() string {
	return fmt.Sprintf("payme: rpc error %d: %s", e.Code, e.Message)
}

// RPCResponse carries either a result or an error, never both.
type RPCResponse struct {
	ID     int64     `json:"id"`
	Result any       `json:"result,omitempty"`
	Error  *RPCError `json:"error,omitempty"`
}

func resultResponse(id int64, result any) RPCResponse {
	return RPCResponse{ID: id, Result: result}
}

func errorResponse(id int64, code int, message string) RPCResponse {
	return RPCResponse{ID: id, Error: &RPCError{Code: code, Message: message}}
}

// Per-method parameter schemas. Payloads are decoded into these and
// validated before dispatch; a request that does not fit its schema is
// rejected as a parse error.

type CheckPerformParams struct {
	Amount  int64             `json:"amount"`
	Account map[string]string `json:"account"`
}

type CreateParams struct {
	ID      string            `json:"id"`
	Time    int64             `json:"time"`
	Amount  int64             `json:"amount"`
	Account map[string]string `json:"account"`
}

type PerformParams struct {
	ID string `json:"id"`
}

type CancelParams struct {
	ID     string `json:"id"`
	Reason int    `json:"reason"`
}

type CheckParams struct {
	ID string `json:"id"`
}

type StatementParams struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
}

// Result shapes returned by the dispatcher.

type CheckPerformResult struct {
	Allow bool `json:"allow"`
}

type CreateResult struct {
	CreateTime  int64  `json:"create_time"`
	Transaction string `json:"transaction"`
	State       int    `json:"state"`
}

type PerformResult struct {
	PerformTime int64  `json:"perform_time"`
	Transaction string `json:"transaction"`
	State       int    `json:"state"`
}

type CancelResult struct {
	CancelTime  int64  `json:"cancel_time"`
	Transaction string `json:"transaction"`
	State       int    `json:"state"`
}

type CheckResult struct {
	CreateTime  int64  `json:"create_time"`
	PerformTime int64  `json:"perform_time"`
	CancelTime  int64  `json:"cancel_time"`
	Transaction string `json:"transaction"`
	State       int    `json:"state"`
	Reason      *int   `json:"reason"`
}

type StatementEntry struct {
	ID          string            `json:"id"`
	Time        int64             `json:"time"`
	Amount      int64             `json:"amount"`
	Account     map[string]string `json:"account"`
	CreateTime  int64             `json:"create_time"`
	PerformTime int64             `json:"perform_time"`
	CancelTime  int64             `json:"cancel_time"`
	Transaction string            `json:"transaction"`
	State       int               `json:"state"`
	Reason      *int              `json:"reason"`
}

type StatementResult struct {
	Transactions []StatementEntry `json:"transactions"`
}

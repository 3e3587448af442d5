package click

// Protocol error codes returned in webhook response bodies.
const (
	codeSuccess          = 0
	codeSignatureFailure = -1
	codeBadRequest       = -3

	noteSuccess          = "Success"
	noteSignatureFailure = "SIGN CHECK FAILED"
	noteBadRequest       = "Action not found"
)

// WebhookResponse is the callback reply body. The host returns it verbatim as
// the HTTP response; the gateway inspects the error field, not the status
// code.
type WebhookResponse struct {
	ClickTransID      string `json:"click_trans_id"`
	MerchantTransID   string `json:"merchant_trans_id"`
	MerchantPrepareID int64  `json:"merchant_prepare_id,omitempty"`
	MerchantConfirmID int64  `json:"merchant_confirm_id,omitempty"`
	Error             int    `json:"error"`
	ErrorNote         string `json:"error_note"`
}

func prepareResponse(req WebhookRequest, prepareID int64) WebhookResponse {
	return WebhookResponse{
		ClickTransID:      req.ClickTransID,
		MerchantTransID:   req.MerchantTransID,
		MerchantPrepareID: prepareID,
		Error:             codeSuccess,
		ErrorNote:         noteSuccess,
	}
}

func confirmResponse(req WebhookRequest, confirmID int64) WebhookResponse {
	return WebhookResponse{
		ClickTransID:      req.ClickTransID,
		MerchantTransID:   req.MerchantTransID,
		MerchantConfirmID: confirmID,
		Error:             codeSuccess,
		ErrorNote:         noteSuccess,
	}
}

func failureResponse(req WebhookRequest, code int, note string) WebhookResponse {
	return WebhookResponse{
		ClickTransID:    req.ClickTransID,
		MerchantTransID: req.MerchantTransID,
		Error:           code,
		ErrorNote:       note,
	}
}

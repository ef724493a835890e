// Package elavon implements the Elavon Converge connector: an XML payload
// posted as a single form-urlencoded field (`xmldata=<xml>`), grounded
// directly on spec Scenario S2 since no pack repo exercises Elavon's wire
// format. The (ssl_trans_status, ssl_transaction_type) tuple status mapper
// in §4.6 is implemented verbatim in mapTransactionStatus.
package elavon

import (
	"encoding/xml"

	"payment-connector-engine/internal/apperror"
	"payment-connector-engine/internal/connector"
	"payment-connector-engine/internal/connector/helper"
	"payment-connector-engine/internal/domain"
	"payment-connector-engine/internal/domain/auth"
)

type Config struct {
	BaseURL string
}

// client holds configuration shared by every Elavon flow executor. It is
// not itself a FlowExecutor (see the adyen package doc for why one type
// cannot implement two FlowExecutor instantiations).
type client struct {
	cfg Config
}

func New(cfg Config) connector.Connector {
	c := &client{cfg: cfg}
	return connector.Connector{
		ID:        connector.Elavon,
		Authorize: authorizeExecutor{c},
		PSync:     pSyncExecutor{c},
		Capture:   captureExecutor{c},
		Void:      voidExecutor{c},
		Refund:    refundExecutor{c},
	}
}

// txnRequest is the wire shape posted as the xmldata form field. Only the
// fields a given flow needs are populated; encoding/xml omits empty string
// fields tagged omitempty.
type txnRequest struct {
	XMLName           xml.Name `xml:"txn"`
	SSLMerchantID     string   `xml:"ssl_merchant_id"`
	SSLUserID         string   `xml:"ssl_user_id,omitempty"`
	SSLPin            string   `xml:"ssl_pin"`
	SSLTransactionType string  `xml:"ssl_transaction_type"`
	SSLAmount         string   `xml:"ssl_amount,omitempty"`
	SSLCardNumber     string   `xml:"ssl_card_number,omitempty"`
	SSLExpDate        string   `xml:"ssl_exp_date,omitempty"`
	SSLCVV2CVC2       string   `xml:"ssl_cvv2cvc2,omitempty"`
	SSLTxnID          string   `xml:"ssl_txn_id,omitempty"`
}

// txnResponse is the wire shape of Elavon's XML reply, parsed regardless of
// which flow produced it; each flow reads only the fields it expects.
type txnResponse struct {
	XMLName           xml.Name `xml:"txn"`
	SSLResult         string   `xml:"ssl_result"`
	SSLResultMessage  string   `xml:"ssl_result_message"`
	SSLTransStatus    string   `xml:"ssl_trans_status"`
	SSLTransactionType string  `xml:"ssl_transaction_type"`
	SSLTxnID          string   `xml:"ssl_txn_id"`
	ErrorCode         string   `xml:"errorCode"`
	ErrorMessage      string   `xml:"errorMessage"`
}

// mapTransactionStatus implements spec §4.6's (ssl_trans_status,
// ssl_transaction_type) tuple mapping for Elavon, e.g.
// (STL, Sale) -> Charged, (OPN, AuthOnly) -> Authorized, (FPR, *) -> Failure.
func mapTransactionStatus(transStatus, transactionType string) domain.AttemptStatus {
	switch transStatus {
	case "FPR":
		return domain.AttemptFailure
	case "STL":
		return domain.AttemptCharged
	case "OPN":
		switch transactionType {
		case "AuthOnly", "AUTH_ONLY":
			return domain.AttemptAuthorized
		default:
			return domain.AttemptPending
		}
	case "PEN":
		return domain.AttemptPending
	case "VOD":
		return domain.AttemptVoided
	default:
		return domain.AttemptPending
	}
}

// headersFor implements Elavon's multi-auth-key scheme: merchant/user/pin
// travel in the XML body itself, not in headers, so this only validates the
// descriptor and emits the form content type.
func headersFor(a auth.Descriptor) ([]connector.Header, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return []connector.Header{helper.FormContentType()}, nil
}

func credentials(a auth.Descriptor) (merchantID, userID, pin string) {
	return a.APIKey.ExposeSecret(), a.Key1.ExposeSecret(), a.APISecret.ExposeSecret()
}

func marshalXMLData(req txnRequest) (connector.RequestContent, error) {
	raw, err := xml.Marshal(req)
	if err != nil {
		return connector.RequestContent{}, apperror.NewInvalidArgument("xmldata", err.Error())
	}
	return connector.FormBody(map[string]string{"xmldata": string(raw)}), nil
}

func decodeXMLResponse(body []byte) (txnResponse, error) {
	var out txnResponse
	if err := xml.Unmarshal(body, &out); err != nil {
		return out, apperror.NewResponseDeserialization(err.Error())
	}
	return out, nil
}

func (c *client) getErrorResponse(raw connector.RawResponse) (domain.ErrorResponse, error) {
	if raw.StatusCode >= 500 {
		return domain.UpstreamServerError(raw.StatusCode), nil
	}
	resp, err := decodeXMLResponse(raw.Body)
	if err != nil {
		return domain.ErrorResponse{}, err
	}
	return domain.ErrorResponse{
		Code:    firstNonEmpty(resp.ErrorCode, resp.SSLResult, domain.NoErrorCode),
		Message: firstNonEmpty(resp.ErrorMessage, resp.SSLResultMessage, "upstream rejected the request"),
	}, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

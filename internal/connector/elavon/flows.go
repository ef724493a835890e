package elavon

import (
	"context"

	"payment-connector-engine/internal/apperror"
	"payment-connector-engine/internal/connector"
	"payment-connector-engine/internal/domain"
	"payment-connector-engine/internal/domain/amount"
)

// --- Authorize ------------------------------------------------------------

type authorizeExecutor struct{ c *client }

func (e authorizeExecutor) GetHeaders(rd domain.AuthorizeRouterData) ([]connector.Header, error) {
	return headersFor(rd.Auth)
}

func (e authorizeExecutor) GetURL(rd domain.AuthorizeRouterData) (string, error) {
	return e.c.cfg.BaseURL + "/processxml.do", nil
}

func (e authorizeExecutor) GetHTTPMethod() connector.HTTPMethod { return connector.MethodPOST }

func (e authorizeExecutor) GetRequestBody(rd domain.AuthorizeRouterData) (connector.RequestContent, error) {
	req := rd.Request
	if req.PaymentMethodData.Kind != domain.PaymentMethodCard {
		return connector.RequestContent{}, apperror.NewNotImplemented("elavon: unsupported payment method data")
	}
	merchantID, userID, pin := credentials(rd.Auth)
	txnType := "ccsale"
	if req.CaptureMethod == domain.CaptureManual {
		txnType = "ccauthonly"
	}
	card := req.PaymentMethodData.Card
	return marshalXMLData(txnRequest{
		SSLMerchantID:      merchantID,
		SSLUserID:          userID,
		SSLPin:             pin,
		SSLTransactionType: txnType,
		SSLAmount:          amount.ToMajorUnitString(req.Amount, string(req.Currency)),
		SSLCardNumber:      card.Number.ExposeSecret(),
		SSLExpDate:         card.ExpMonth + card.ExpYear,
		SSLCVV2CVC2:        card.CVC.ExposeSecret(),
	})
}

func (e authorizeExecutor) HandleResponse(ctx context.Context, rd domain.AuthorizeRouterData, raw connector.RawResponse) (domain.AuthorizeRouterData, error) {
	resp, err := decodeXMLResponse(raw.Body)
	if err != nil {
		return rd, err
	}
	status := mapTransactionStatus(resp.SSLTransStatus, resp.SSLTransactionType)
	if resp.SSLResult != "" && resp.SSLResult != "0" {
		rd.Common.Status = domain.AttemptAuthorizationFailed
		rd.Response = domain.Err[domain.PaymentsResponseData](domain.ErrorResponse{
			Code:          firstNonEmpty(resp.SSLResult, domain.NoErrorCode),
			Message:       firstNonEmpty(resp.SSLResultMessage, "payment declined"),
			AttemptStatus: domain.AttemptAuthorizationFailed,
		})
		return rd, nil
	}
	rd.Common.Status = status
	rd.Response = domain.Ok(domain.PaymentsResponseData{
		ResourceID: domain.ConnectorTransactionID(resp.SSLTxnID),
		Status:     status,
	})
	return rd, nil
}

func (e authorizeExecutor) GetErrorResponse(raw connector.RawResponse) (domain.ErrorResponse, error) {
	return e.c.getErrorResponse(raw)
}

// --- PSync ------------------------------------------------------------
//
// Scenario S2: Elavon PSync of a settled Sale. txnquery posts the
// transaction id and receives back its current (ssl_trans_status,
// ssl_transaction_type) pair.

type pSyncExecutor struct{ c *client }

func (e pSyncExecutor) GetHeaders(rd domain.PSyncRouterData) ([]connector.Header, error) {
	return headersFor(rd.Auth)
}

func (e pSyncExecutor) GetURL(rd domain.PSyncRouterData) (string, error) {
	return e.c.cfg.BaseURL + "/processxml.do", nil
}

func (e pSyncExecutor) GetHTTPMethod() connector.HTTPMethod { return connector.MethodPOST }

func (e pSyncExecutor) GetRequestBody(rd domain.PSyncRouterData) (connector.RequestContent, error) {
	merchantID, userID, pin := credentials(rd.Auth)
	return marshalXMLData(txnRequest{
		SSLMerchantID:      merchantID,
		SSLUserID:          userID,
		SSLPin:             pin,
		SSLTransactionType: "txnquery",
		SSLTxnID:           rd.Request.ConnectorTransactionID,
	})
}

func (e pSyncExecutor) HandleResponse(ctx context.Context, rd domain.PSyncRouterData, raw connector.RawResponse) (domain.PSyncRouterData, error) {
	resp, err := decodeXMLResponse(raw.Body)
	if err != nil {
		return rd, err
	}
	status := mapTransactionStatus(resp.SSLTransStatus, resp.SSLTransactionType)
	rd.Common.Status = status
	rd.Response = domain.Ok(domain.PaymentsResponseData{
		ResourceID: domain.ConnectorTransactionID(resp.SSLTxnID),
		Status:     status,
	})
	return rd, nil
}

func (e pSyncExecutor) GetErrorResponse(raw connector.RawResponse) (domain.ErrorResponse, error) {
	return e.c.getErrorResponse(raw)
}

// --- Capture ------------------------------------------------------------

type captureExecutor struct{ c *client }

func (e captureExecutor) GetHeaders(rd domain.CaptureRouterData) ([]connector.Header, error) {
	return headersFor(rd.Auth)
}

func (e captureExecutor) GetURL(rd domain.CaptureRouterData) (string, error) {
	return e.c.cfg.BaseURL + "/processxml.do", nil
}

func (e captureExecutor) GetHTTPMethod() connector.HTTPMethod { return connector.MethodPOST }

func (e captureExecutor) GetRequestBody(rd domain.CaptureRouterData) (connector.RequestContent, error) {
	merchantID, userID, pin := credentials(rd.Auth)
	return marshalXMLData(txnRequest{
		SSLMerchantID:      merchantID,
		SSLUserID:          userID,
		SSLPin:             pin,
		SSLTransactionType: "cccomplete",
		SSLAmount:          amount.ToMajorUnitString(rd.Request.AmountToCapture, string(rd.Request.Currency)),
		SSLTxnID:           rd.Request.ConnectorTransactionID,
	})
}

func (e captureExecutor) HandleResponse(ctx context.Context, rd domain.CaptureRouterData, raw connector.RawResponse) (domain.CaptureRouterData, error) {
	resp, err := decodeXMLResponse(raw.Body)
	if err != nil {
		return rd, err
	}
	rd.Common.Status = domain.AttemptCharged
	rd.Response = domain.Ok(domain.PaymentsResponseData{
		ResourceID:        domain.ConnectorTransactionID(resp.SSLTxnID),
		Status:            domain.AttemptCharged,
		ConnectorMetadata: map[string]string{"prior_transaction_id": rd.Request.ConnectorTransactionID},
	})
	return rd, nil
}

func (e captureExecutor) GetErrorResponse(raw connector.RawResponse) (domain.ErrorResponse, error) {
	return e.c.getErrorResponse(raw)
}

// --- Void ------------------------------------------------------------

type voidExecutor struct{ c *client }

func (e voidExecutor) GetHeaders(rd domain.VoidRouterData) ([]connector.Header, error) {
	return headersFor(rd.Auth)
}

func (e voidExecutor) GetURL(rd domain.VoidRouterData) (string, error) {
	return e.c.cfg.BaseURL + "/processxml.do", nil
}

func (e voidExecutor) GetHTTPMethod() connector.HTTPMethod { return connector.MethodPOST }

func (e voidExecutor) GetRequestBody(rd domain.VoidRouterData) (connector.RequestContent, error) {
	merchantID, userID, pin := credentials(rd.Auth)
	return marshalXMLData(txnRequest{
		SSLMerchantID:      merchantID,
		SSLUserID:          userID,
		SSLPin:             pin,
		SSLTransactionType: "ccvoid",
		SSLTxnID:           rd.Request.ConnectorTransactionID,
	})
}

func (e voidExecutor) HandleResponse(ctx context.Context, rd domain.VoidRouterData, raw connector.RawResponse) (domain.VoidRouterData, error) {
	resp, err := decodeXMLResponse(raw.Body)
	if err != nil {
		return rd, err
	}
	rd.Common.Status = domain.AttemptVoided
	rd.Response = domain.Ok(domain.PaymentsResponseData{
		ResourceID: domain.ConnectorTransactionID(resp.SSLTxnID),
		Status:     domain.AttemptVoided,
	})
	return rd, nil
}

func (e voidExecutor) GetErrorResponse(raw connector.RawResponse) (domain.ErrorResponse, error) {
	return e.c.getErrorResponse(raw)
}

// --- Refund ------------------------------------------------------------

type refundExecutor struct{ c *client }

func (e refundExecutor) GetHeaders(rd domain.RefundRouterData) ([]connector.Header, error) {
	return headersFor(rd.Auth)
}

func (e refundExecutor) GetURL(rd domain.RefundRouterData) (string, error) {
	return e.c.cfg.BaseURL + "/processxml.do", nil
}

func (e refundExecutor) GetHTTPMethod() connector.HTTPMethod { return connector.MethodPOST }

func (e refundExecutor) GetRequestBody(rd domain.RefundRouterData) (connector.RequestContent, error) {
	merchantID, userID, pin := credentials(rd.Auth)
	return marshalXMLData(txnRequest{
		SSLMerchantID:      merchantID,
		SSLUserID:          userID,
		SSLPin:             pin,
		SSLTransactionType: "ccreturn",
		SSLAmount:          amount.ToMajorUnitString(rd.Request.RefundAmount, string(rd.Request.Currency)),
		SSLTxnID:           rd.Request.ConnectorTransactionID,
	})
}

func (e refundExecutor) HandleResponse(ctx context.Context, rd domain.RefundRouterData, raw connector.RawResponse) (domain.RefundRouterData, error) {
	resp, err := decodeXMLResponse(raw.Body)
	if err != nil {
		return rd, err
	}
	// Elavon settles returns in the same batch cycle as sales; treat a
	// clean ssl_result as success rather than leaving it Pending (unlike
	// Adyen, which never confirms a refund synchronously).
	status := domain.RefundSuccess
	if resp.SSLResult != "" && resp.SSLResult != "0" {
		status = domain.RefundFailure
	}
	rd.Common.Status = status
	rd.Response = domain.Ok(domain.RefundsResponseData{
		ConnectorRefundID: resp.SSLTxnID,
		Status:            status,
	})
	return rd, nil
}

func (e refundExecutor) GetErrorResponse(raw connector.RawResponse) (domain.ErrorResponse, error) {
	return e.c.getErrorResponse(raw)
}

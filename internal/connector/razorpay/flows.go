package razorpay

import (
	"context"

	"payment-connector-engine/internal/connector"
	"payment-connector-engine/internal/connector/helper"
	"payment-connector-engine/internal/domain"
)

// --- Authorize ------------------------------------------------------------
//
// Razorpay's model is order-then-pay: the server creates an Order, the
// client completes payment against it out of band, and the server later
// observes the resulting Payment by id. "Authorize" here therefore creates
// the Order and returns it as the resource id pending client-side
// completion (grounded on the teacher's InitiatePayment, which does the
// same and explicitly notes "Razorpay uses client-side integration").

type authorizeExecutor struct{ c *client }

func (e authorizeExecutor) GetHeaders(rd domain.AuthorizeRouterData) ([]connector.Header, error) {
	return headersFor(rd.Auth)
}

func (e authorizeExecutor) GetURL(rd domain.AuthorizeRouterData) (string, error) {
	return helper.BuildURL(e.c.cfg.BaseURL, "/v1/orders"), nil
}

func (e authorizeExecutor) GetHTTPMethod() connector.HTTPMethod { return connector.MethodPOST }

func (e authorizeExecutor) GetRequestBody(rd domain.AuthorizeRouterData) (connector.RequestContent, error) {
	req := rd.Request
	return connector.JSONBody(struct {
		Amount   int64             `json:"amount"`
		Currency string            `json:"currency"`
		Receipt  string            `json:"receipt"`
		Notes    map[string]string `json:"notes,omitempty"`
	}{
		Amount:   req.Amount.ToMinorUnitI64(),
		Currency: string(req.Currency),
		Receipt:  req.RequestRefID,
		Notes:    req.Metadata,
	}), nil
}

func (e authorizeExecutor) HandleResponse(ctx context.Context, rd domain.AuthorizeRouterData, raw connector.RawResponse) (domain.AuthorizeRouterData, error) {
	resp, err := helper.DecodeJSON[struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}](raw.Body)
	if err != nil {
		return rd, err
	}
	rd.Common.Status = domain.AttemptPending
	rd.Response = domain.Ok(domain.PaymentsResponseData{
		ResourceID: domain.ConnectorTransactionID(resp.ID),
		Status:     domain.AttemptPending,
	})
	return rd, nil
}

func (e authorizeExecutor) GetErrorResponse(raw connector.RawResponse) (domain.ErrorResponse, error) {
	return e.c.getErrorResponse(raw)
}

// --- PSync ------------------------------------------------------------
//
// Sync fetches the Payment entity by id (grounded on the teacher's
// ConfirmPayment/GetPaymentStatus, which both delegate to Payment.Fetch).

type pSyncExecutor struct{ c *client }

func (e pSyncExecutor) GetHeaders(rd domain.PSyncRouterData) ([]connector.Header, error) {
	return headersFor(rd.Auth)
}

func (e pSyncExecutor) GetURL(rd domain.PSyncRouterData) (string, error) {
	if err := helper.RequirePathParam("connector_transaction_id", rd.Request.ConnectorTransactionID); err != nil {
		return "", err
	}
	return helper.BuildURL(e.c.cfg.BaseURL, "/v1/payments/"+rd.Request.ConnectorTransactionID), nil
}

func (e pSyncExecutor) GetHTTPMethod() connector.HTTPMethod { return connector.MethodGET }

func (e pSyncExecutor) GetRequestBody(rd domain.PSyncRouterData) (connector.RequestContent, error) {
	return connector.NoBody(), nil
}

func (e pSyncExecutor) HandleResponse(ctx context.Context, rd domain.PSyncRouterData, raw connector.RawResponse) (domain.PSyncRouterData, error) {
	resp, err := helper.DecodeJSON[struct {
		ID      string `json:"id"`
		OrderID string `json:"order_id"`
		Status  string `json:"status"`
	}](raw.Body)
	if err != nil {
		return rd, err
	}
	status := mapPaymentStatus(resp.Status)
	rd.Common.Status = status
	rd.Response = domain.Ok(domain.PaymentsResponseData{
		ResourceID:                   domain.ConnectorTransactionID(resp.ID),
		Status:                       status,
		ConnectorResponseReferenceID: resp.OrderID,
	})
	return rd, nil
}

func (e pSyncExecutor) GetErrorResponse(raw connector.RawResponse) (domain.ErrorResponse, error) {
	return e.c.getErrorResponse(raw)
}

// --- Capture ------------------------------------------------------------
//
// Scenario S3: Razorpay Capture on an authorized payment.
// POST /v1/payments/{id}/capture {amount, currency}.

type captureExecutor struct{ c *client }

func (e captureExecutor) GetHeaders(rd domain.CaptureRouterData) ([]connector.Header, error) {
	return headersFor(rd.Auth)
}

func (e captureExecutor) GetURL(rd domain.CaptureRouterData) (string, error) {
	if err := helper.RequirePathParam("connector_transaction_id", rd.Request.ConnectorTransactionID); err != nil {
		return "", err
	}
	return helper.BuildURL(e.c.cfg.BaseURL, "/v1/payments/"+rd.Request.ConnectorTransactionID+"/capture"), nil
}

func (e captureExecutor) GetHTTPMethod() connector.HTTPMethod { return connector.MethodPOST }

func (e captureExecutor) GetRequestBody(rd domain.CaptureRouterData) (connector.RequestContent, error) {
	return connector.JSONBody(struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}{
		Amount:   rd.Request.AmountToCapture.ToMinorUnitI64(),
		Currency: string(rd.Request.Currency),
	}), nil
}

func (e captureExecutor) HandleResponse(ctx context.Context, rd domain.CaptureRouterData, raw connector.RawResponse) (domain.CaptureRouterData, error) {
	resp, err := helper.DecodeJSON[struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}](raw.Body)
	if err != nil {
		return rd, err
	}
	status := mapPaymentStatus(resp.Status)
	rd.Common.Status = status
	rd.Response = domain.Ok(domain.PaymentsResponseData{
		ResourceID:        domain.ConnectorTransactionID(resp.ID),
		Status:            status,
		ConnectorMetadata: map[string]string{"prior_transaction_id": rd.Request.ConnectorTransactionID},
	})
	return rd, nil
}

func (e captureExecutor) GetErrorResponse(raw connector.RawResponse) (domain.ErrorResponse, error) {
	return e.c.getErrorResponse(raw)
}

// --- Refund ------------------------------------------------------------

type refundExecutor struct{ c *client }

func (e refundExecutor) GetHeaders(rd domain.RefundRouterData) ([]connector.Header, error) {
	return headersFor(rd.Auth)
}

func (e refundExecutor) GetURL(rd domain.RefundRouterData) (string, error) {
	return helper.BuildURL(e.c.cfg.BaseURL, "/v1/payments/"+rd.Request.ConnectorTransactionID+"/refund"), nil
}

func (e refundExecutor) GetHTTPMethod() connector.HTTPMethod { return connector.MethodPOST }

func (e refundExecutor) GetRequestBody(rd domain.RefundRouterData) (connector.RequestContent, error) {
	notes := map[string]string{}
	if rd.Request.RefundReason != "" {
		notes["reason"] = rd.Request.RefundReason
	}
	return connector.JSONBody(struct {
		Amount int64             `json:"amount"`
		Notes  map[string]string `json:"notes,omitempty"`
	}{
		Amount: rd.Request.RefundAmount.ToMinorUnitI64(),
		Notes:  notes,
	}), nil
}

func (e refundExecutor) HandleResponse(ctx context.Context, rd domain.RefundRouterData, raw connector.RawResponse) (domain.RefundRouterData, error) {
	resp, err := helper.DecodeJSON[struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}](raw.Body)
	if err != nil {
		return rd, err
	}
	// Razorpay's refund endpoint returns "processed" synchronously more
	// often than Adyen's async model (mirrored in the teacher's
	// RefundPayment, which maps the synchronous reply straight through
	// MapGatewayStatus rather than hard-coding Pending).
	status := mapRefundStatus(resp.Status)
	rd.Common.Status = status
	rd.Response = domain.Ok(domain.RefundsResponseData{
		ConnectorRefundID: resp.ID,
		Status:            status,
	})
	return rd, nil
}

func (e refundExecutor) GetErrorResponse(raw connector.RawResponse) (domain.ErrorResponse, error) {
	return e.c.getErrorResponse(raw)
}

// --- RSync ------------------------------------------------------------

type rSyncExecutor struct{ c *client }

func (e rSyncExecutor) GetHeaders(rd domain.RSyncRouterData) ([]connector.Header, error) {
	return headersFor(rd.Auth)
}

func (e rSyncExecutor) GetURL(rd domain.RSyncRouterData) (string, error) {
	if err := helper.RequirePathParam("connector_refund_id", rd.Request.ConnectorRefundID); err != nil {
		return "", err
	}
	return helper.BuildURL(e.c.cfg.BaseURL, "/v1/refunds/"+rd.Request.ConnectorRefundID), nil
}

func (e rSyncExecutor) GetHTTPMethod() connector.HTTPMethod { return connector.MethodGET }

func (e rSyncExecutor) GetRequestBody(rd domain.RSyncRouterData) (connector.RequestContent, error) {
	return connector.NoBody(), nil
}

func (e rSyncExecutor) HandleResponse(ctx context.Context, rd domain.RSyncRouterData, raw connector.RawResponse) (domain.RSyncRouterData, error) {
	resp, err := helper.DecodeJSON[struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}](raw.Body)
	if err != nil {
		return rd, err
	}
	status := mapRefundStatus(resp.Status)
	rd.Common.Status = status
	rd.Response = domain.Ok(domain.RefundsResponseData{
		ConnectorRefundID: resp.ID,
		Status:            status,
	})
	return rd, nil
}

func (e rSyncExecutor) GetErrorResponse(raw connector.RawResponse) (domain.ErrorResponse, error) {
	return e.c.getErrorResponse(raw)
}

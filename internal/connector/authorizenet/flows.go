package authorizenet

import (
	"context"

	"payment-connector-engine/internal/apperror"
	"payment-connector-engine/internal/connector"
	"payment-connector-engine/internal/connector/helper"
	"payment-connector-engine/internal/domain"
)

const apiPath = "/xml/v1/request.api"

// --- Authorize ------------------------------------------------------------

type authorizeExecutor struct{ c *client }

func (e authorizeExecutor) GetHeaders(rd domain.AuthorizeRouterData) ([]connector.Header, error) {
	return headersFor(rd.Auth)
}

func (e authorizeExecutor) GetURL(rd domain.AuthorizeRouterData) (string, error) {
	return helper.BuildURL(e.c.cfg.BaseURL, apiPath), nil
}

func (e authorizeExecutor) GetHTTPMethod() connector.HTTPMethod { return connector.MethodPOST }

func (e authorizeExecutor) GetRequestBody(rd domain.AuthorizeRouterData) (connector.RequestContent, error) {
	req := rd.Request
	if req.PaymentMethodData.Kind != domain.PaymentMethodCard {
		return connector.RequestContent{}, apperror.NewNotImplemented("authorizenet: unsupported payment method data")
	}
	operation := "authCaptureTransaction"
	if req.CaptureMethod == domain.CaptureManual {
		operation = "authOnlyTransaction"
	}
	card := req.PaymentMethodData.Card
	var body createTransactionRequest
	body.CreateTransactionRequest.MerchantAuthentication = merchantAuthFor(rd.Auth)
	body.CreateTransactionRequest.RefId = req.RequestRefID
	body.CreateTransactionRequest.TransactionRequest = transactionRequest{
		TransactionType: operation,
		Amount:          amountMajor(req.Amount, string(req.Currency)),
		Payment: &payment{CreditCard: creditCard{
			CardNumber:     card.Number.ExposeSecret(),
			ExpirationDate: card.ExpYear + "-" + card.ExpMonth,
			CardCode:       card.CVC.ExposeSecret(),
		}},
	}
	return connector.JSONBody(body), nil
}

func (e authorizeExecutor) HandleResponse(ctx context.Context, rd domain.AuthorizeRouterData, raw connector.RawResponse) (domain.AuthorizeRouterData, error) {
	resp, err := helper.DecodeJSON[createTransactionResponse](raw.Body)
	if err != nil {
		return rd, err
	}
	operation := "authCaptureTransaction"
	if rd.Request.CaptureMethod == domain.CaptureManual {
		operation = "authOnlyTransaction"
	}
	status := mapStatus(resp.Messages.ResultCode, resp.TransactionResponse.ResponseCode, operation)
	rd.Common.Status = status

	if status == domain.AttemptAuthorizationFailed {
		rd.Response = domain.Err[domain.PaymentsResponseData](domain.ErrorResponse{
			Code:          firstNonEmpty(resp.TransactionResponse.ResponseCode, domain.NoErrorCode),
			Message:       "payment declined",
			AttemptStatus: status,
		})
		return rd, nil
	}
	rd.Response = domain.Ok(domain.PaymentsResponseData{
		ResourceID:                   domain.ConnectorTransactionID(resp.TransactionResponse.TransId),
		Status:                       status,
		ConnectorResponseReferenceID: resp.RefId,
	})
	return rd, nil
}

func (e authorizeExecutor) GetErrorResponse(raw connector.RawResponse) (domain.ErrorResponse, error) {
	return e.c.getErrorResponse(raw)
}

// --- PSync ------------------------------------------------------------

type pSyncExecutor struct{ c *client }

func (e pSyncExecutor) GetHeaders(rd domain.PSyncRouterData) ([]connector.Header, error) {
	return headersFor(rd.Auth)
}

func (e pSyncExecutor) GetURL(rd domain.PSyncRouterData) (string, error) {
	return helper.BuildURL(e.c.cfg.BaseURL, apiPath), nil
}

func (e pSyncExecutor) GetHTTPMethod() connector.HTTPMethod { return connector.MethodPOST }

func (e pSyncExecutor) GetRequestBody(rd domain.PSyncRouterData) (connector.RequestContent, error) {
	var body getTransactionDetailsRequest
	body.GetTransactionDetailsRequest.MerchantAuthentication = merchantAuthFor(rd.Auth)
	body.GetTransactionDetailsRequest.TransId = rd.Request.ConnectorTransactionID
	return connector.JSONBody(body), nil
}

func (e pSyncExecutor) HandleResponse(ctx context.Context, rd domain.PSyncRouterData, raw connector.RawResponse) (domain.PSyncRouterData, error) {
	resp, err := helper.DecodeJSON[getTransactionDetailsResponse](raw.Body)
	if err != nil {
		return rd, err
	}
	status := mapStatus(resp.Messages.ResultCode, resp.Transaction.ResponseCode, resp.Transaction.TransactionType)
	rd.Common.Status = status
	rd.Response = domain.Ok(domain.PaymentsResponseData{
		ResourceID: domain.ConnectorTransactionID(resp.Transaction.TransId),
		Status:     status,
	})
	return rd, nil
}

func (e pSyncExecutor) GetErrorResponse(raw connector.RawResponse) (domain.ErrorResponse, error) {
	return e.c.getErrorResponse(raw)
}

// --- Capture ------------------------------------------------------------
//
// Authorize.Net captures a prior authorization via priorAuthCaptureTransaction
// referencing the original transaction id, rather than an amount-only PUT.

type captureExecutor struct{ c *client }

func (e captureExecutor) GetHeaders(rd domain.CaptureRouterData) ([]connector.Header, error) {
	return headersFor(rd.Auth)
}

func (e captureExecutor) GetURL(rd domain.CaptureRouterData) (string, error) {
	return helper.BuildURL(e.c.cfg.BaseURL, apiPath), nil
}

func (e captureExecutor) GetHTTPMethod() connector.HTTPMethod { return connector.MethodPOST }

func (e captureExecutor) GetRequestBody(rd domain.CaptureRouterData) (connector.RequestContent, error) {
	var body createTransactionRequest
	body.CreateTransactionRequest.MerchantAuthentication = merchantAuthFor(rd.Auth)
	body.CreateTransactionRequest.TransactionRequest = transactionRequest{
		TransactionType: "priorAuthCaptureTransaction",
		Amount:          amountMajor(rd.Request.AmountToCapture, string(rd.Request.Currency)),
		RefTransId:      rd.Request.ConnectorTransactionID,
	}
	return connector.JSONBody(body), nil
}

func (e captureExecutor) HandleResponse(ctx context.Context, rd domain.CaptureRouterData, raw connector.RawResponse) (domain.CaptureRouterData, error) {
	resp, err := helper.DecodeJSON[createTransactionResponse](raw.Body)
	if err != nil {
		return rd, err
	}
	status := mapStatus(resp.Messages.ResultCode, resp.TransactionResponse.ResponseCode, "priorAuthCaptureTransaction")
	rd.Common.Status = status
	rd.Response = domain.Ok(domain.PaymentsResponseData{
		ResourceID:        domain.ConnectorTransactionID(resp.TransactionResponse.TransId),
		Status:            status,
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
	return helper.BuildURL(e.c.cfg.BaseURL, apiPath), nil
}

func (e voidExecutor) GetHTTPMethod() connector.HTTPMethod { return connector.MethodPOST }

func (e voidExecutor) GetRequestBody(rd domain.VoidRouterData) (connector.RequestContent, error) {
	var body createTransactionRequest
	body.CreateTransactionRequest.MerchantAuthentication = merchantAuthFor(rd.Auth)
	body.CreateTransactionRequest.TransactionRequest = transactionRequest{
		TransactionType: "voidTransaction",
		RefTransId:      rd.Request.ConnectorTransactionID,
	}
	return connector.JSONBody(body), nil
}

func (e voidExecutor) HandleResponse(ctx context.Context, rd domain.VoidRouterData, raw connector.RawResponse) (domain.VoidRouterData, error) {
	resp, err := helper.DecodeJSON[createTransactionResponse](raw.Body)
	if err != nil {
		return rd, err
	}
	rd.Common.Status = domain.AttemptVoided
	rd.Response = domain.Ok(domain.PaymentsResponseData{
		ResourceID: domain.ConnectorTransactionID(resp.TransactionResponse.TransId),
		Status:     domain.AttemptVoided,
	})
	return rd, nil
}

func (e voidExecutor) GetErrorResponse(raw connector.RawResponse) (domain.ErrorResponse, error) {
	return e.c.getErrorResponse(raw)
}

// --- Refund ------------------------------------------------------------
//
// Scenario S4: Authorize.Net Refund. refundTransaction with payment: null
// (the API requires the card's last-4 be echoed for card-present refunds,
// but a null payment block is accepted when the original card is on file).

type refundExecutor struct{ c *client }

func (e refundExecutor) GetHeaders(rd domain.RefundRouterData) ([]connector.Header, error) {
	return headersFor(rd.Auth)
}

func (e refundExecutor) GetURL(rd domain.RefundRouterData) (string, error) {
	return helper.BuildURL(e.c.cfg.BaseURL, apiPath), nil
}

func (e refundExecutor) GetHTTPMethod() connector.HTTPMethod { return connector.MethodPOST }

func (e refundExecutor) GetRequestBody(rd domain.RefundRouterData) (connector.RequestContent, error) {
	var body createTransactionRequest
	body.CreateTransactionRequest.MerchantAuthentication = merchantAuthFor(rd.Auth)
	body.CreateTransactionRequest.TransactionRequest = transactionRequest{
		TransactionType: "refundTransaction",
		Amount:          amountMajor(rd.Request.RefundAmount, string(rd.Request.Currency)),
		RefTransId:      rd.Request.ConnectorTransactionID,
		Payment:         nil,
	}
	return connector.JSONBody(body), nil
}

func (e refundExecutor) HandleResponse(ctx context.Context, rd domain.RefundRouterData, raw connector.RawResponse) (domain.RefundRouterData, error) {
	resp, err := helper.DecodeJSON[createTransactionResponse](raw.Body)
	if err != nil {
		return rd, err
	}
	status := domain.RefundFailure
	if resp.Messages.ResultCode == "Ok" && resp.TransactionResponse.ResponseCode == "1" {
		status = domain.RefundSuccess
	}
	rd.Common.Status = status
	rd.Response = domain.Ok(domain.RefundsResponseData{
		ConnectorRefundID: resp.TransactionResponse.TransId,
		Status:            status,
	})
	return rd, nil
}

func (e refundExecutor) GetErrorResponse(raw connector.RawResponse) (domain.ErrorResponse, error) {
	return e.c.getErrorResponse(raw)
}

package adyen

import (
	"context"

	"payment-connector-engine/internal/apperror"
	"payment-connector-engine/internal/connector"
	"payment-connector-engine/internal/connector/helper"
	"payment-connector-engine/internal/domain"
)

// --- PSync ------------------------------------------------------------
//
// Adyen has no GET-by-id endpoint for a payment (mirrored in the pack's
// RealAdyenAdapter.GetPaymentIntent, which can only echo the id back):
// state is normally observed via webhook. This sync implementation issues
// the lookup merchants use to poll modification history; connectors
// without a strong sync surface still implement this method so the
// engine can treat every connector uniformly.

type pSyncExecutor struct{ c *client }

func (e pSyncExecutor) GetHeaders(rd domain.PSyncRouterData) ([]connector.Header, error) {
	return headersFor(rd.Auth)
}

func (e pSyncExecutor) GetURL(rd domain.PSyncRouterData) (string, error) {
	if err := helper.RequirePathParam("connector_transaction_id", rd.Request.ConnectorTransactionID); err != nil {
		return "", err
	}
	return helper.BuildURL(e.c.cfg.BaseURL, "/payments/"+rd.Request.ConnectorTransactionID), nil
}

func (e pSyncExecutor) GetHTTPMethod() connector.HTTPMethod { return connector.MethodGET }

func (e pSyncExecutor) GetRequestBody(rd domain.PSyncRouterData) (connector.RequestContent, error) {
	return connector.NoBody(), nil
}

func (e pSyncExecutor) HandleResponse(ctx context.Context, rd domain.PSyncRouterData, raw connector.RawResponse) (domain.PSyncRouterData, error) {
	resp, err := helper.DecodeJSON[paymentsResponse](raw.Body)
	if err != nil {
		return rd, err
	}
	status := mapResultCode(resp.ResultCode, rd.Common.CaptureMethod)
	rd.Common.Status = status
	rd.Response = domain.Ok(domain.PaymentsResponseData{
		ResourceID:                   domain.ConnectorTransactionID(resp.PSPReference),
		Status:                       status,
		ConnectorResponseReferenceID: resp.MerchantReference,
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
	if err := helper.RequirePathParam("connector_transaction_id", rd.Request.ConnectorTransactionID); err != nil {
		return "", err
	}
	return helper.BuildURL(e.c.cfg.BaseURL, "/payments/"+rd.Request.ConnectorTransactionID+"/captures"), nil
}

func (e captureExecutor) GetHTTPMethod() connector.HTTPMethod { return connector.MethodPOST }

func (e captureExecutor) GetRequestBody(rd domain.CaptureRouterData) (connector.RequestContent, error) {
	return connector.JSONBody(struct {
		MerchantAccount string     `json:"merchantAccount"`
		Amount          amountWire `json:"amount"`
		Reference       string     `json:"reference"`
	}{
		MerchantAccount: e.c.cfg.MerchantAccount,
		Amount: amountWire{
			Value:    rd.Request.AmountToCapture.ToMinorUnitI64(),
			Currency: string(rd.Request.Currency),
		},
		Reference: rd.Request.ConnectorTransactionID,
	}), nil
}

func (e captureExecutor) HandleResponse(ctx context.Context, rd domain.CaptureRouterData, raw connector.RawResponse) (domain.CaptureRouterData, error) {
	resp, err := helper.DecodeJSON[struct {
		PSPReference      string `json:"pspReference"`
		Status            string `json:"status"`
		MerchantReference string `json:"merchantReference"`
	}](raw.Body)
	if err != nil {
		return rd, err
	}
	rd.Common.Status = domain.AttemptCharged
	rd.Response = domain.Ok(domain.PaymentsResponseData{
		ResourceID:                   domain.ConnectorTransactionID(resp.PSPReference),
		Status:                       domain.AttemptCharged,
		ConnectorResponseReferenceID: resp.MerchantReference,
		ConnectorMetadata:            map[string]string{"prior_transaction_id": rd.Request.ConnectorTransactionID},
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
	return helper.BuildURL(e.c.cfg.BaseURL, "/payments/"+rd.Request.ConnectorTransactionID+"/cancels"), nil
}

func (e voidExecutor) GetHTTPMethod() connector.HTTPMethod { return connector.MethodPOST }

func (e voidExecutor) GetRequestBody(rd domain.VoidRouterData) (connector.RequestContent, error) {
	return connector.JSONBody(struct {
		MerchantAccount   string `json:"merchantAccount"`
		OriginalReference string `json:"originalReference"`
		Reference         string `json:"reference,omitempty"`
	}{
		MerchantAccount:   e.c.cfg.MerchantAccount,
		OriginalReference: rd.Request.ConnectorTransactionID,
		Reference:         rd.Request.CancellationReason,
	}), nil
}

func (e voidExecutor) HandleResponse(ctx context.Context, rd domain.VoidRouterData, raw connector.RawResponse) (domain.VoidRouterData, error) {
	resp, err := helper.DecodeJSON[struct {
		PSPReference string `json:"pspReference"`
		Status       string `json:"status"`
	}](raw.Body)
	if err != nil {
		return rd, err
	}
	rd.Common.Status = domain.AttemptVoidInitiated
	rd.Response = domain.Ok(domain.PaymentsResponseData{
		ResourceID: domain.ConnectorTransactionID(resp.PSPReference),
		Status:     domain.AttemptVoidInitiated,
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
	return helper.BuildURL(e.c.cfg.BaseURL, "/payments/"+rd.Request.ConnectorTransactionID+"/refunds"), nil
}

func (e refundExecutor) GetHTTPMethod() connector.HTTPMethod { return connector.MethodPOST }

func (e refundExecutor) GetRequestBody(rd domain.RefundRouterData) (connector.RequestContent, error) {
	return connector.JSONBody(struct {
		MerchantAccount   string     `json:"merchantAccount"`
		OriginalReference string     `json:"originalReference"`
		Amount            amountWire `json:"amount"`
		Reference         string     `json:"reference"`
	}{
		MerchantAccount:   e.c.cfg.MerchantAccount,
		OriginalReference: rd.Request.ConnectorTransactionID,
		Amount: amountWire{
			Value:    rd.Request.RefundAmount.ToMinorUnitI64(),
			Currency: string(rd.Request.Currency),
		},
		Reference: rd.Request.RequestRefID,
	}), nil
}

func (e refundExecutor) HandleResponse(ctx context.Context, rd domain.RefundRouterData, raw connector.RawResponse) (domain.RefundRouterData, error) {
	resp, err := helper.DecodeJSON[struct {
		PSPReference string `json:"pspReference"`
		Status       string `json:"status"`
	}](raw.Body)
	if err != nil {
		return rd, err
	}
	// Adyen refunds are always asynchronous; the synchronous reply only
	// confirms acceptance (mirrored in the pack adapter's CreateRefund,
	// which hard-codes RefundStatusPending on every successful call).
	rd.Common.Status = domain.RefundPending
	rd.Response = domain.Ok(domain.RefundsResponseData{
		ConnectorRefundID: resp.PSPReference,
		Status:            domain.RefundPending,
	})
	return rd, nil
}

func (e refundExecutor) GetErrorResponse(raw connector.RawResponse) (domain.ErrorResponse, error) {
	return e.c.getErrorResponse(raw)
}

// --- SetupMandate ------------------------------------------------------
//
// Adyen has no dedicated mandate-setup endpoint; a zero-amount card
// authorization with recurringProcessingModel=CardOnFile and
// storePaymentMethod=true both authenticates the card and establishes the
// recurring token in one call (mirrored in the pack adapter's
// AttachPaymentMethod comment: "token is returned during a zero-amount
// authorization").

type setupMandateExecutor struct{ c *client }

func (e setupMandateExecutor) GetHeaders(rd domain.SetupMandateRouterData) ([]connector.Header, error) {
	return headersFor(rd.Auth)
}

func (e setupMandateExecutor) GetURL(rd domain.SetupMandateRouterData) (string, error) {
	return helper.BuildURL(e.c.cfg.BaseURL, "/payments"), nil
}

func (e setupMandateExecutor) GetHTTPMethod() connector.HTTPMethod { return connector.MethodPOST }

func (e setupMandateExecutor) GetRequestBody(rd domain.SetupMandateRouterData) (connector.RequestContent, error) {
	req := rd.Request
	if req.PaymentMethodData.Kind != domain.PaymentMethodCard {
		return connector.RequestContent{}, apperror.NewNotImplemented("adyen: unsupported payment method data")
	}
	return connector.JSONBody(struct {
		MerchantAccount          string     `json:"merchantAccount"`
		Amount                   amountWire `json:"amount"`
		Reference                string     `json:"reference"`
		PaymentMethod            cardWire   `json:"paymentMethod"`
		ShopperInteraction       string     `json:"shopperInteraction"`
		RecurringProcessingModel string     `json:"recurringProcessingModel"`
		StorePaymentMethod       bool       `json:"storePaymentMethod"`
		ReturnURL                string     `json:"returnUrl,omitempty"`
	}{
		MerchantAccount: e.c.cfg.MerchantAccount,
		Amount:          amountWire{Value: 0, Currency: string(req.Currency)},
		Reference:       req.RequestRefID,
		PaymentMethod: cardWire{
			Type:        "scheme",
			Number:      req.PaymentMethodData.Card.Number.ExposeSecret(),
			ExpiryMonth: req.PaymentMethodData.Card.ExpMonth,
			ExpiryYear:  req.PaymentMethodData.Card.ExpYear,
			CVC:         req.PaymentMethodData.Card.CVC.ExposeSecret(),
		},
		ShopperInteraction:       "Ecommerce",
		RecurringProcessingModel: "CardOnFile",
		StorePaymentMethod:       true,
		ReturnURL:                req.ReturnURL,
	}), nil
}

func (e setupMandateExecutor) HandleResponse(ctx context.Context, rd domain.SetupMandateRouterData, raw connector.RawResponse) (domain.SetupMandateRouterData, error) {
	resp, err := helper.DecodeJSON[paymentsResponse](raw.Body)
	if err != nil {
		return rd, err
	}
	status := mapResultCode(resp.ResultCode, domain.CaptureAutomatic)
	rd.Common.Status = status
	mandateRef := resp.AdditionalData["recurring.recurringDetailReference"]
	rd.Response = domain.Ok(domain.PaymentsResponseData{
		ResourceID:       domain.ConnectorTransactionID(resp.PSPReference),
		Status:           status,
		MandateReference: mandateRef,
	})
	return rd, nil
}

func (e setupMandateExecutor) GetErrorResponse(raw connector.RawResponse) (domain.ErrorResponse, error) {
	return e.c.getErrorResponse(raw)
}

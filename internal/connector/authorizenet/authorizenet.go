// Package authorizenet implements the Authorize.Net connector. Every flow
// posts a JSON envelope to the single /xml/v1/request.api endpoint (the
// "AIM"/API-Request-Router model Authorize.Net uses regardless of the
// historical xml/v1 path segment — grounded directly on spec Scenario S4
// since no pack repo covers this gateway), carrying merchant credentials in
// the body rather than a header (body-key auth scheme).
package authorizenet

import (
	"payment-connector-engine/internal/connector"
	"payment-connector-engine/internal/connector/helper"
	"payment-connector-engine/internal/domain"
	"payment-connector-engine/internal/domain/amount"
	"payment-connector-engine/internal/domain/auth"
)

// amountMajor renders a Minor amount as the decimal major-unit string
// Authorize.Net's JSON API expects (e.g. "5.00").
func amountMajor(m amount.Minor, currencyCode string) string {
	return amount.ToMajorUnitString(m, currencyCode)
}

type Config struct {
	BaseURL string
}

type client struct {
	cfg Config
}

func New(cfg Config) connector.Connector {
	c := &client{cfg: cfg}
	return connector.Connector{
		ID:        connector.AuthorizeNet,
		Authorize: authorizeExecutor{c},
		PSync:     pSyncExecutor{c},
		Capture:   captureExecutor{c},
		Void:      voidExecutor{c},
		Refund:    refundExecutor{c},
	}
}

// --- wire shapes shared across flows ------------------------------------

type merchantAuth struct {
	Name           string `json:"name"`
	TransactionKey string `json:"transactionKey"`
}

type creditCard struct {
	CardNumber     string `json:"cardNumber"`
	ExpirationDate string `json:"expirationDate"`
	CardCode       string `json:"cardCode,omitempty"`
}

type payment struct {
	CreditCard creditCard `json:"creditCard"`
}

type transactionRequest struct {
	TransactionType string   `json:"transactionType"`
	Amount          string   `json:"amount,omitempty"`
	Payment         *payment `json:"payment,omitempty"`
	RefTransId      string   `json:"refTransId,omitempty"`
}

type createTransactionRequest struct {
	CreateTransactionRequest struct {
		MerchantAuthentication merchantAuth       `json:"merchantAuthentication"`
		RefId                  string             `json:"refId,omitempty"`
		TransactionRequest     transactionRequest `json:"transactionRequest"`
	} `json:"createTransactionRequest"`
}

type getTransactionDetailsRequest struct {
	GetTransactionDetailsRequest struct {
		MerchantAuthentication merchantAuth `json:"merchantAuthentication"`
		TransId                string       `json:"transId"`
	} `json:"getTransactionDetailsRequest"`
}

type messages struct {
	ResultCode string `json:"resultCode"`
	Message    []struct {
		Code string `json:"code"`
		Text string `json:"text"`
	} `json:"message"`
}

type transactionResponse struct {
	TransId      string `json:"transId"`
	ResponseCode string `json:"responseCode"`
	TransStatus  string `json:"transactionStatus,omitempty"`
}

type createTransactionResponse struct {
	TransactionResponse transactionResponse `json:"transactionResponse"`
	Messages            messages            `json:"messages"`
	RefId               string              `json:"refId"`
}

type getTransactionDetailsResponse struct {
	Transaction struct {
		TransId         string `json:"transId"`
		TransactionType string `json:"transactionType"`
		ResponseCode    string `json:"responseCode"`
		TransactionStatus string `json:"transactionStatus"`
	} `json:"transaction"`
	Messages messages `json:"messages"`
}

// mapStatus implements spec §4.6's (messages.result_code,
// transaction_response.response_code, operation) tuple mapping: the same
// Approved outcome maps to Authorized under Authorize-only and Charged
// under Capture/Sale.
func mapStatus(resultCode, responseCode, operation string) domain.AttemptStatus {
	if resultCode != "Ok" {
		return domain.AttemptAuthorizationFailed
	}
	switch responseCode {
	case "1": // Approved
		switch operation {
		case "authOnlyTransaction":
			return domain.AttemptAuthorized
		case "authCaptureTransaction", "priorAuthCaptureTransaction":
			return domain.AttemptCharged
		default:
			return domain.AttemptPending
		}
	case "2": // Declined
		return domain.AttemptAuthorizationFailed
	case "4": // Held for review
		return domain.AttemptPending
	default:
		return domain.AttemptPending
	}
}

func headersFor(a auth.Descriptor) ([]connector.Header, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return []connector.Header{helper.JSONContentType()}, nil
}

func merchantAuthFor(a auth.Descriptor) merchantAuth {
	return merchantAuth{Name: a.APIKey.ExposeSecret(), TransactionKey: a.Key1.ExposeSecret()}
}

func (c *client) getErrorResponse(raw connector.RawResponse) (domain.ErrorResponse, error) {
	if raw.StatusCode >= 500 {
		return domain.UpstreamServerError(raw.StatusCode), nil
	}
	resp, err := helper.DecodeJSON[createTransactionResponse](raw.Body)
	if err != nil {
		return domain.ErrorResponse{}, err
	}
	code := domain.NoErrorCode
	message := "upstream rejected the request"
	if len(resp.Messages.Message) > 0 {
		code = firstNonEmpty(resp.Messages.Message[0].Code, domain.NoErrorCode)
		message = firstNonEmpty(resp.Messages.Message[0].Text, message)
	}
	return domain.ErrorResponse{Code: code, Message: message}, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

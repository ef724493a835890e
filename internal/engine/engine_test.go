package engine

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-connector-engine/internal/apperror"
	"payment-connector-engine/internal/connector"
	"payment-connector-engine/internal/connector/executor"
	"payment-connector-engine/internal/domain"
)

type stubAuthorize struct{ url string }

func (s stubAuthorize) GetHeaders(rd domain.AuthorizeRouterData) ([]connector.Header, error) {
	return nil, nil
}
func (s stubAuthorize) GetURL(rd domain.AuthorizeRouterData) (string, error) { return s.url, nil }
func (s stubAuthorize) GetHTTPMethod() connector.HTTPMethod                 { return connector.MethodPOST }
func (s stubAuthorize) GetRequestBody(rd domain.AuthorizeRouterData) (connector.RequestContent, error) {
	return connector.NoBody(), nil
}
func (s stubAuthorize) HandleResponse(ctx context.Context, rd domain.AuthorizeRouterData, raw connector.RawResponse) (domain.AuthorizeRouterData, error) {
	rd.Response = domain.Ok(domain.PaymentsResponseData{
		ResourceID: domain.ConnectorTransactionID("txn_1"),
		Status:     domain.AttemptCharged,
	})
	return rd, nil
}
func (s stubAuthorize) GetErrorResponse(raw connector.RawResponse) (domain.ErrorResponse, error) {
	return domain.UpstreamServerError(raw.StatusCode), nil
}

func TestEngine_Authorize_Dispatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	reg := connector.New(map[connector.ID]connector.Connector{
		connector.Adyen: {ID: connector.Adyen, Authorize: stubAuthorize{url: srv.URL}},
	})
	eng := New(reg, executor.NewWithClient(resty.New()))

	out, err := eng.Authorize(context.Background(), connector.Adyen, domain.AuthorizeRouterData{})
	require.NoError(t, err)
	require.True(t, out.Response.IsSuccess())
	assert.Equal(t, domain.AttemptCharged, out.Response.Success.Status)
}

func TestEngine_Authorize_NotImplementedWhenFlowMissing(t *testing.T) {
	reg := connector.New(map[connector.ID]connector.Connector{
		connector.Adyen: {ID: connector.Adyen},
	})
	eng := New(reg, executor.New())

	_, err := eng.Authorize(context.Background(), connector.Adyen, domain.AuthorizeRouterData{})
	require.Error(t, err)
	ae, ok := err.(*apperror.Error)
	require.True(t, ok)
	assert.Equal(t, apperror.NotImplemented, ae.Kind)
}

func TestEngine_Authorize_UnknownConnector(t *testing.T) {
	reg := connector.New(map[connector.ID]connector.Connector{})
	eng := New(reg, executor.New())

	_, err := eng.Authorize(context.Background(), connector.ID("nope"), domain.AuthorizeRouterData{})
	require.Error(t, err)
	ae, ok := err.(*apperror.Error)
	require.True(t, ok)
	assert.Equal(t, apperror.InvalidArgument, ae.Kind)
}

func TestEngine_IngestWebhook_UnknownForConnectorWithNoIngestor(t *testing.T) {
	reg := connector.New(map[connector.ID]connector.Connector{
		connector.Elavon: {ID: connector.Elavon},
	})
	eng := New(reg, executor.New())

	out, err := eng.IngestWebhook(context.Background(), connector.Elavon, domain.IncomingWebhookRequestDetails{}, domain.WebhookSecrets{})
	require.NoError(t, err)
	assert.Equal(t, domain.WebhookUnknown, out.EventType)
	assert.False(t, out.SourceVerified)
}

type stubAcceptDispute struct{ url string }

func (s stubAcceptDispute) GetHeaders(rd domain.AcceptDisputeRouterData) ([]connector.Header, error) {
	return nil, nil
}
func (s stubAcceptDispute) GetURL(rd domain.AcceptDisputeRouterData) (string, error) {
	return s.url, nil
}
func (s stubAcceptDispute) GetHTTPMethod() connector.HTTPMethod { return connector.MethodPOST }
func (s stubAcceptDispute) GetRequestBody(rd domain.AcceptDisputeRouterData) (connector.RequestContent, error) {
	return connector.NoBody(), nil
}
func (s stubAcceptDispute) HandleResponse(ctx context.Context, rd domain.AcceptDisputeRouterData, raw connector.RawResponse) (domain.AcceptDisputeRouterData, error) {
	rd.Response = domain.Ok(domain.DisputeResponseData{
		ConnectorDisputeID: rd.Request.ConnectorDisputeID,
		Status:             domain.DisputeAccepted,
	})
	return rd, nil
}
func (s stubAcceptDispute) GetErrorResponse(raw connector.RawResponse) (domain.ErrorResponse, error) {
	return domain.UpstreamServerError(raw.StatusCode), nil
}

func TestEngine_AcceptDispute_Dispatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	reg := connector.New(map[connector.ID]connector.Connector{
		connector.Adyen: {ID: connector.Adyen, AcceptDispute: stubAcceptDispute{url: srv.URL}},
	})
	eng := New(reg, executor.NewWithClient(resty.New()))

	out, err := eng.AcceptDispute(context.Background(), connector.Adyen, domain.AcceptDisputeRouterData{
		Request: domain.AcceptDisputeData{ConnectorDisputeID: "PSP123"},
	})
	require.NoError(t, err)
	require.True(t, out.Response.IsSuccess())
	assert.Equal(t, domain.DisputeAccepted, out.Response.Success.Status)
}

func TestEngine_AcceptDispute_NotImplementedWhenFlowMissing(t *testing.T) {
	reg := connector.New(map[connector.ID]connector.Connector{
		connector.Adyen: {ID: connector.Adyen},
	})
	eng := New(reg, executor.New())

	_, err := eng.AcceptDispute(context.Background(), connector.Adyen, domain.AcceptDisputeRouterData{})
	require.Error(t, err)
	ae, ok := err.(*apperror.Error)
	require.True(t, ok)
	assert.Equal(t, apperror.NotImplemented, ae.Kind)
}

func TestEngine_SubmitEvidence_NotImplementedWhenFlowMissing(t *testing.T) {
	reg := connector.New(map[connector.ID]connector.Connector{
		connector.Razorpay: {ID: connector.Razorpay},
	})
	eng := New(reg, executor.New())

	_, err := eng.SubmitEvidence(context.Background(), connector.Razorpay, domain.SubmitEvidenceRouterData{})
	require.Error(t, err)
	ae, ok := err.(*apperror.Error)
	require.True(t, ok)
	assert.Equal(t, apperror.NotImplemented, ae.Kind)
}

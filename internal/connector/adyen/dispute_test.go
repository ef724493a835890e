package adyen

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-connector-engine/internal/connector"
	"payment-connector-engine/internal/domain"
	"payment-connector-engine/internal/domain/auth"
)

func TestAcceptDisputeExecutor_BuildsRequestAndMapsSuccess(t *testing.T) {
	c := &client{cfg: Config{BaseURL: "https://pal-test.adyen.com", MerchantAccount: "MyMerchant"}}
	e := acceptDisputeExecutor{c}

	rd := domain.AcceptDisputeRouterData{
		Auth:    auth.HeaderKey("test-api-key"),
		Common:  domain.DisputeFlowData{DisputeID: "DSP123"},
		Request: domain.AcceptDisputeData{ConnectorDisputeID: "PSP123"},
	}

	url, err := e.GetURL(rd)
	require.NoError(t, err)
	assert.Equal(t, "https://pal-test.adyen.com/disputes/acceptDispute", url)
	assert.Equal(t, connector.MethodPOST, e.GetHTTPMethod())

	body, err := e.GetRequestBody(rd)
	require.NoError(t, err)
	payload, ok := body.JSON.(struct {
		MerchantAccount     string `json:"merchantAccount"`
		DisputePSPReference string `json:"disputePspReference"`
	})
	require.True(t, ok)
	assert.Equal(t, "MyMerchant", payload.MerchantAccount)
	assert.Equal(t, "PSP123", payload.DisputePSPReference)

	raw := connector.RawResponse{
		StatusCode: http.StatusOK,
		Body:       []byte(`{"disputeServiceResult":{"success":true,"responseMessage":"ok"}}`),
	}
	out, err := e.HandleResponse(context.Background(), rd, raw)
	require.NoError(t, err)
	require.True(t, out.Response.IsSuccess())
	assert.Equal(t, domain.DisputeAccepted, out.Response.Success.Status)
	assert.Equal(t, domain.DisputeAccepted, out.Common.Status)
}

func TestAcceptDisputeExecutor_RejectsEmptyDisputeID(t *testing.T) {
	c := &client{cfg: Config{BaseURL: "https://pal-test.adyen.com", MerchantAccount: "MyMerchant"}}
	e := acceptDisputeExecutor{c}

	rd := domain.AcceptDisputeRouterData{Request: domain.AcceptDisputeData{ConnectorDisputeID: ""}}
	_, err := e.GetRequestBody(rd)
	assert.Error(t, err)
}

func TestSubmitEvidenceExecutor_EncodesTextAndFileEvidence(t *testing.T) {
	c := &client{cfg: Config{BaseURL: "https://pal-test.adyen.com", MerchantAccount: "MyMerchant"}}
	e := submitEvidenceExecutor{c}

	rd := domain.SubmitEvidenceRouterData{
		Common: domain.DisputeFlowData{DisputeID: "DSP123"},
		Request: domain.SubmitEvidenceData{
			ConnectorDisputeID: "PSP123",
			Evidence: []domain.EvidenceDoc{
				{Kind: domain.EvidenceText, Field: "ProofOfDeliveryOrServiceDocument", Text: "delivered"},
				{Kind: domain.EvidenceFile, Field: "ReceiptDocument", FileName: "receipt.pdf", FileData: []byte("pdfbytes"), MIMEType: "application/pdf"},
			},
		},
	}

	body, err := e.GetRequestBody(rd)
	require.NoError(t, err)
	payload, ok := body.JSON.(struct {
		MerchantAccount     string                `json:"merchantAccount"`
		DisputePSPReference string                `json:"disputePspReference"`
		DefenseDocuments    []defenseDocumentWire `json:"defenseDocuments"`
	})
	require.True(t, ok)
	require.Len(t, payload.DefenseDocuments, 2)
	assert.Equal(t, "text/plain", payload.DefenseDocuments[0].ContentType)
	assert.Equal(t, "application/pdf", payload.DefenseDocuments[1].ContentType)

	raw := connector.RawResponse{
		StatusCode: http.StatusOK,
		Body:       []byte(`{"disputeServiceResult":{"success":false,"responseMessage":"rejected"}}`),
	}
	out, err := e.HandleResponse(context.Background(), rd, raw)
	require.NoError(t, err)
	require.True(t, out.Response.IsSuccess())
	assert.Equal(t, domain.DisputeOpened, out.Response.Success.Status)
}

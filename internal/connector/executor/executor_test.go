package executor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-connector-engine/internal/connector"
	"payment-connector-engine/internal/domain"
)

type fakeCommon struct{}
type fakeReq struct{ ID string }
type fakeResp struct{ Status string }

type fakeFlow struct {
	url    string
	method connector.HTTPMethod
}

func (f fakeFlow) GetHeaders(rd domain.RouterData[fakeCommon, fakeReq, fakeResp]) ([]connector.Header, error) {
	return []connector.Header{{Name: "X-Test", Value: "1"}}, nil
}

func (f fakeFlow) GetURL(rd domain.RouterData[fakeCommon, fakeReq, fakeResp]) (string, error) {
	return f.url, nil
}

func (f fakeFlow) GetHTTPMethod() connector.HTTPMethod { return f.method }

func (f fakeFlow) GetRequestBody(rd domain.RouterData[fakeCommon, fakeReq, fakeResp]) (connector.RequestContent, error) {
	return connector.JSONBody(map[string]string{"id": rd.Request.ID}), nil
}

func (f fakeFlow) HandleResponse(ctx context.Context, rd domain.RouterData[fakeCommon, fakeReq, fakeResp], raw connector.RawResponse) (domain.RouterData[fakeCommon, fakeReq, fakeResp], error) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw.Body, &body); err != nil {
		return rd, err
	}
	rd.Response = domain.Ok(fakeResp{Status: body.Status})
	return rd, nil
}

func (f fakeFlow) GetErrorResponse(raw connector.RawResponse) (domain.ErrorResponse, error) {
	return domain.ErrorResponse{Code: "FAKE_ERR", Message: "fake error", StatusCode: raw.StatusCode}, nil
}

func newExecutorAgainst(srv *httptest.Server) *Executor {
	return NewWithClient(resty.New().SetBaseURL(srv.URL))
}

func TestExecuteWith_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"charged"}`))
	}))
	defer srv.Close()

	ex := newExecutorAgainst(srv)
	fe := fakeFlow{url: srv.URL + "/charge", method: connector.MethodPOST}
	rd := domain.RouterData[fakeCommon, fakeReq, fakeResp]{Request: fakeReq{ID: "abc"}}

	out, err := ExecuteWith(context.Background(), ex, fe, rd)
	require.NoError(t, err)
	require.True(t, out.Response.IsSuccess())
	assert.Equal(t, "charged", out.Response.Success.Status)
}

func TestExecuteWith_UpstreamRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"bad"}`))
	}))
	defer srv.Close()

	ex := newExecutorAgainst(srv)
	fe := fakeFlow{url: srv.URL + "/charge", method: connector.MethodPOST}
	rd := domain.RouterData[fakeCommon, fakeReq, fakeResp]{Request: fakeReq{ID: "abc"}}

	out, err := ExecuteWith(context.Background(), ex, fe, rd)
	require.NoError(t, err)
	assert.False(t, out.Response.IsSuccess())
	assert.Equal(t, "FAKE_ERR", out.Response.Error.Code)
	assert.Equal(t, http.StatusBadRequest, out.Response.Error.StatusCode)
}

func TestExecuteWith_NetworkFailureNeverProducesPartialResponse(t *testing.T) {
	ex := New()
	fe := fakeFlow{url: "http://127.0.0.1:1/unreachable", method: connector.MethodGET}
	rd := domain.RouterData[fakeCommon, fakeReq, fakeResp]{Request: fakeReq{ID: "abc"}}

	out, err := ExecuteWith(context.Background(), ex, fe, rd)
	assert.Error(t, err)
	assert.False(t, out.Response.IsSuccess())
	assert.Nil(t, out.Response.Error)
}

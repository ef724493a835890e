// Package executor implements the Request Lifecycle Executor (spec C7):
// build request -> serialize -> send -> classify -> dispatch, the one
// place in the engine that performs network I/O. Grounded on
// go-resty/resty/v2, the HTTP client dependency already present in the
// retrieval pack (bugielektrik-library's go.mod) for exactly this "pooled,
// thread-safe client with per-call timeout and structured body builders"
// shape spec §5 requires of connector integration objects.
package executor

import (
	"context"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"payment-connector-engine/internal/apperror"
	"payment-connector-engine/internal/connector"
	"payment-connector-engine/internal/domain"
)

// DefaultTimeout is the per-connector default from spec §5; overridable
// per flow by constructing an Executor with a different Client timeout.
const DefaultTimeout = 30 * time.Second

// Executor drives one connector's outbound HTTP call. The wrapped
// resty.Client is the one mutable shared resource spec §5 calls out
// (connection pool); Executor itself holds no other state and is safe to
// share across tasks.
type Executor struct {
	client *resty.Client
}

// New builds an Executor around a fresh resty client with the spec
// default timeout. Callers needing a different timeout build their own
// resty client with SetTimeout and pass it to NewWithClient.
func New() *Executor {
	return &Executor{client: resty.New().SetTimeout(DefaultTimeout)}
}

// NewWithClient wraps a caller-supplied resty client, letting
// cmd/server/main.go construct one pooled client shared by every
// connector (spec §5: "the HTTP client is a pooled resource, typically
// one per process").
func NewWithClient(c *resty.Client) *Executor {
	return &Executor{client: c}
}

// Execute runs the full lifecycle for one FlowExecutor instantiation
// against rd, returning the mutated RouterData with either Response.Success
// or Response.Error populated (spec C7 steps 1-6). It never returns both a
// non-nil error and a populated RouterData.Response: a non-nil error means
// the failure happened before any canonical response could be produced at
// all (used by the caller to decide RPC status vs. an OK-with-error-body
// response), while a populated RouterData.Response.Error represents an
// UpstreamRejected/UpstreamServerError outcome meant to travel inside an
// OK RPC response.
func Execute[Common any, Req any, Resp any](
	ctx context.Context,
	fe connector.FlowExecutor[Common, Req, Resp],
	rd domain.RouterData[Common, Req, Resp],
) (domain.RouterData[Common, Req, Resp], error) {
	return ExecuteWith(ctx, New(), fe, rd)
}

// ExecuteWith is Execute parameterised over a caller-owned Executor, so
// the engine can share one pooled client across every connector instead
// of dialing a fresh one per call.
func ExecuteWith[Common any, Req any, Resp any](
	ctx context.Context,
	ex *Executor,
	fe connector.FlowExecutor[Common, Req, Resp],
	rd domain.RouterData[Common, Req, Resp],
) (domain.RouterData[Common, Req, Resp], error) {
	// Step 1: build request.
	reqURL, err := fe.GetURL(rd)
	if err != nil {
		return rd, err
	}
	if _, perr := url.Parse(reqURL); perr != nil {
		return rd, apperror.NewInvalidArgument("url", perr.Error())
	}
	headers, err := fe.GetHeaders(rd)
	if err != nil {
		return rd, err
	}
	body, err := fe.GetRequestBody(rd)
	if err != nil {
		return rd, err
	}

	// Step 2: serialize body per RequestContent tag and issue the call.
	req := ex.client.R().SetContext(ctx)
	for _, h := range headers {
		req.SetHeader(h.Name, h.Value)
	}

	var resp *resty.Response
	var sendErr error
	switch body.Kind {
	case connector.ContentJSON:
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(body.JSON)
	case connector.ContentFormURLEncoded:
		req.SetHeader("Content-Type", "application/x-www-form-urlencoded")
		form := url.Values{}
		for k, v := range body.FormValues {
			form.Set(k, v)
		}
		req.SetBody(form.Encode())
	case connector.ContentXML:
		req.SetHeader("Content-Type", "application/xml")
		req.SetBody([]byte(body.XML))
	case connector.ContentFormData:
		for _, part := range body.FormDataPart {
			if part.FileName != "" {
				req.SetFileReader(part.FieldName, part.FileName, newByteReader(part.Data))
			} else {
				req.SetFormData(map[string]string{part.FieldName: string(part.Data)})
			}
		}
	case connector.ContentRawBytes:
		req.SetBody(body.RawBytes)
	case connector.ContentNone:
		// no body to attach
	}

	// Step 3: send.
	switch fe.GetHTTPMethod() {
	case connector.MethodGET:
		resp, sendErr = req.Get(reqURL)
	case connector.MethodPOST:
		resp, sendErr = req.Post(reqURL)
	case connector.MethodPUT:
		resp, sendErr = req.Put(reqURL)
	case connector.MethodDELETE:
		resp, sendErr = req.Delete(reqURL)
	default:
		return rd, apperror.NewInvalidArgument("http_method", "unsupported method")
	}

	if sendErr != nil {
		// Connect failure, TLS failure, timeout, or context cancellation:
		// no partial canonical response is ever produced (spec testable
		// property #7).
		if ctx.Err() != nil {
			return rd, apperror.NewNetwork(ctx.Err())
		}
		return rd, apperror.NewNetwork(sendErr)
	}

	raw := connector.RawResponse{
		StatusCode: resp.StatusCode(),
		Headers:    flattenHeader(resp.Header()),
		Body:       resp.Body(),
	}

	// Step 5 (optional preprocess hook).
	if hook, ok := fe.(connector.PreprocessHook); ok {
		pre, perr := hook.PreprocessResponseBytes(raw.Body)
		if perr != nil {
			return rd, apperror.NewResponseDeserialization(perr.Error())
		}
		raw.Body = pre
	}

	// Step 4: classify and dispatch.
	if raw.StatusCode >= 200 && raw.StatusCode < 300 {
		return fe.HandleResponse(ctx, rd, raw)
	}

	errResp, herr := fe.GetErrorResponse(raw)
	if herr != nil {
		if raw.StatusCode >= 500 {
			errResp = domain.UpstreamServerError(raw.StatusCode)
		} else {
			return rd, apperror.NewResponseDeserialization(herr.Error())
		}
	}
	errResp.StatusCode = raw.StatusCode
	rd.Response = domain.Err[Resp](errResp)
	return rd, nil
}

func flattenHeader(h map[string][]string) map[string]string {
	out := make(map[string]string, len(h))
	for k, vs := range h {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}

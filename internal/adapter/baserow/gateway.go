package baserow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-openapi/runtime"
	httptransport "github.com/go-openapi/runtime/client"
	"github.com/go-openapi/strfmt"
	"github.com/sm8ta/webike_inventory/internal/core/ports"
)

// Row is a table row as Baserow returns it with user field names.
type Row map[string]interface{}

type rowPage struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Row   `json:"results"`
}

type errorPayload struct {
	Error  string      `json:"error"`
	Detail interface{} `json:"detail"`
}

type ErrorKind int

const (
	// TransportError means no response was received.
	TransportError ErrorKind = iota + 1
	// BackendError means Baserow answered with a non-2xx status.
	BackendError
)

func (k ErrorKind) String() string {
	switch k {
	case TransportError:
		return "transport"
	case BackendError:
		return "backend"
	}
	return "unknown"
}

// RemoteError is the single error type produced by the gateway.
type RemoteError struct {
	Kind    ErrorKind
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("baserow %s error (%d %s): %s", e.Kind, e.Status, e.Code, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("baserow %s error: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("baserow %s error (%d): %s", e.Kind, e.Status, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

type GatewayConfig struct {
	URL         string
	Token       string
	TokenScheme string
	Timeout     time.Duration
	// GenericMessage is used when the backend gives no message of its own.
	GenericMessage string
}

type Gateway struct {
	runtime *httptransport.Runtime
	auth    runtime.ClientAuthInfoWriter
	schemes []string
	timeout time.Duration
	generic string
	logger  ports.LoggerPort
	metrics ports.MetricsPort
}

func NewGateway(cfg GatewayConfig, logger ports.LoggerPort, metrics ports.MetricsPort) (*Gateway, error) {
	const op = "baserow.NewGateway"

	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%s: base url %q has no host", op, cfg.URL)
	}
	scheme := u.Scheme
	if scheme == "" {
		scheme = "https"
	}

	schemes := []string{scheme}
	rt := httptransport.New(u.Host, u.Path, schemes)

	var auth runtime.ClientAuthInfoWriter
	if strings.EqualFold(cfg.TokenScheme, "Bearer") {
		auth = httptransport.BearerToken(cfg.Token)
	} else {
		tokenScheme := cfg.TokenScheme
		if tokenScheme == "" {
			tokenScheme = "Token"
		}
		auth = httptransport.APIKeyAuth("Authorization", "header", tokenScheme+" "+cfg.Token)
	}

	generic := cfg.GenericMessage
	if generic == "" {
		generic = "An error occurred."
	}

	return &Gateway{
		runtime: rt,
		auth:    auth,
		schemes: schemes,
		timeout: cfg.Timeout,
		generic: generic,
		logger:  logger,
		metrics: metrics,
	}, nil
}

func (g *Gateway) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return g.do(ctx, http.MethodGet, path, query, nil, out)
}

func (g *Gateway) Post(ctx context.Context, path string, body, out interface{}) error {
	return g.do(ctx, http.MethodPost, path, nil, body, out)
}

func (g *Gateway) Patch(ctx context.Context, path string, body, out interface{}) error {
	return g.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (g *Gateway) Delete(ctx context.Context, path string) error {
	return g.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (g *Gateway) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	start := time.Now()
	status := 0

	params := runtime.ClientRequestWriterFunc(func(req runtime.ClientRequest, _ strfmt.Registry) error {
		if g.timeout > 0 {
			if err := req.SetTimeout(g.timeout); err != nil {
				return err
			}
		}
		// ask Baserow for field names instead of field_1234 identifiers
		if err := req.SetQueryParam("user_field_names", "true"); err != nil {
			return err
		}
		for name, values := range query {
			if err := req.SetQueryParam(name, values...); err != nil {
				return err
			}
		}
		if body != nil {
			return req.SetBodyParam(body)
		}
		return nil
	})

	reader := runtime.ClientResponseReaderFunc(func(resp runtime.ClientResponse, consumer runtime.Consumer) (interface{}, error) {
		status = resp.Code()
		if status >= 200 && status < 300 {
			if out == nil || status == http.StatusNoContent {
				return nil, nil
			}
			if err := consumer.Consume(resp.Body(), out); err != nil && !errors.Is(err, io.EOF) {
				return nil, &RemoteError{Kind: BackendError, Status: status, Message: g.generic, Err: err}
			}
			return nil, nil
		}
		return nil, g.backendError(resp, consumer)
	})

	_, err := g.runtime.Submit(&runtime.ClientOperation{
		ID:                 method + " " + path,
		Method:             method,
		PathPattern:        path,
		ProducesMediaTypes: []string{runtime.JSONMime},
		ConsumesMediaTypes: []string{runtime.JSONMime},
		Schemes:            g.schemes,
		AuthInfo:           g.auth,
		Params:             params,
		Reader:             reader,
		Context:            ctx,
	})

	elapsed := time.Since(start)
	g.metrics.RecordRemoteCall(method, status, elapsed)

	if err == nil {
		g.logger.Debug("Baserow request done", map[string]interface{}{
			"method":      method,
			"path":        path,
			"status":      status,
			"duration_ms": elapsed.Milliseconds(),
		})
		return nil
	}

	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		remoteErr = &RemoteError{Kind: TransportError, Message: g.generic, Err: err}
	}

	g.logger.Warn("Baserow request failed", map[string]interface{}{
		"method":      method,
		"path":        path,
		"status":      status,
		"kind":        remoteErr.Kind.String(),
		"code":        remoteErr.Code,
		"error":       remoteErr.Error(),
		"duration_ms": elapsed.Milliseconds(),
	})

	return remoteErr
}

func (g *Gateway) backendError(resp runtime.ClientResponse, consumer runtime.Consumer) *RemoteError {
	remoteErr := &RemoteError{
		Kind:    BackendError,
		Status:  resp.Code(),
		Message: g.generic,
	}

	var payload errorPayload
	if err := consumer.Consume(resp.Body(), &payload); err != nil {
		return remoteErr
	}

	remoteErr.Code = payload.Error
	if detail, ok := payload.Detail.(string); ok && detail != "" {
		remoteErr.Message = detail
	} else if payload.Error != "" {
		remoteErr.Message = payload.Error
	}
	return remoteErr
}

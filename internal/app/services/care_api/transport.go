package care_api

import (
	"bytes"
	"carehome-service/internal/app/observability/metrics"
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/exceptions"
	"carehome-service/internal/pkg/utils"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const maxErrorBodyPreview = 300

type TransportConfig struct {
	BaseUrl           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// Transport is the single path every care backend call takes. It attaches the
// session bearer token, throttles outbound traffic, retries once after a token
// refresh on 401 and maps backend statuses onto CustomError.
type Transport struct {
	BaseUrl string
	Client  *http.Client
	Limiter *rate.Limiter
	Log     *zap.Logger
}

func NewTransport(cfg TransportConfig, logger *zap.Logger) *Transport {
	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Transport{
		BaseUrl: strings.TrimRight(cfg.BaseUrl, "/"),
		Client:  &http.Client{Timeout: cfg.Timeout},
		Limiter: limiter,
		Log:     logger,
	}
}

// Call describes one backend request. Without a Session the request carries
// Token as is, or no Authorization header when Token is empty.
type Call struct {
	Method   string
	Path     string
	Query    url.Values
	Body     interface{}
	Resource string
	Session  *session.Session
	Token    string
	Cookies  []*http.Cookie
}

type Result struct {
	StatusCode int
	Header     http.Header
	Cookies    []*http.Cookie
}

// Cookie returns the named cookie set by the backend, or nil.
func (r *Result) Cookie(name string) *http.Cookie {
	for _, cookie := range r.Cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func (t *Transport) Do(ctx context.Context, call Call, out interface{}) (*Result, error) {
	requestID := utils.GetRequestID(ctx)

	var payload []byte
	if call.Body != nil {
		var err error
		payload, err = json.Marshal(call.Body)
		if err != nil {
			t.Log.Error("careTransport.Do error marshaling JSON",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingResourceKey, call.Resource),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
	}

	token := call.Token
	if call.Session != nil {
		var err error
		token, err = call.Session.Token(ctx)
		if err != nil {
			return nil, err
		}
	}

	resp, body, err := t.send(ctx, call, payload, token)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == constvars.StatusUnauthorized && call.Session != nil {
		t.Log.Info("careTransport.Do backend rejected token, refreshing once",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, call.Resource),
		)
		err = call.Session.Refresh(ctx, token)
		if err != nil {
			return nil, err
		}
		token, err = call.Session.Token(ctx)
		if err != nil {
			return nil, err
		}
		resp, body, err = t.send(ctx, call, payload, token)
		if err != nil {
			return nil, err
		}
	}

	result := &Result{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Cookies:    resp.Cookies(),
	}

	err = statusError(resp.StatusCode, call.Resource, body)
	if err != nil {
		t.Log.Error("careTransport.Do backend returned error status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, call.Resource),
			zap.String(constvars.LoggingMethodKey, call.Method),
			zap.String(constvars.LoggingEndpointKey, call.Path),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return result, err
	}

	if out != nil && len(bytes.TrimSpace(body)) > 0 {
		err = json.Unmarshal(body, out)
		if err != nil {
			t.Log.Error("careTransport.Do error decoding response",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingResourceKey, call.Resource),
				zap.Error(err),
			)
			return result, exceptions.ErrDecodeResponse(err, call.Resource)
		}
	}

	return result, nil
}

func (t *Transport) send(ctx context.Context, call Call, payload []byte, token string) (*http.Response, []byte, error) {
	requestID := utils.GetRequestID(ctx)

	if t.Limiter != nil {
		err := t.Limiter.Wait(ctx)
		if err != nil {
			return nil, nil, exceptions.ErrServerDeadlineExceeded(err)
		}
	}

	endpoint := t.BaseUrl + call.Path
	if len(call.Query) > 0 {
		endpoint += "?" + call.Query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, endpoint, reader)
	if err != nil {
		t.Log.Error("careTransport.send error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if payload != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	for _, cookie := range call.Cookies {
		req.AddCookie(cookie)
	}

	startTime := time.Now()
	resp, err := t.Client.Do(req)
	if err != nil {
		metrics.ObserveBackendRequest(call.Resource, call.Method, 0, time.Since(startTime))
		t.Log.Error("careTransport.send error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, endpoint),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	duration := time.Since(startTime)
	metrics.ObserveBackendRequest(call.Resource, call.Method, resp.StatusCode, duration)
	if err != nil {
		return nil, nil, exceptions.ErrSendHTTPRequest(err)
	}

	t.Log.Debug("careTransport.send completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, call.Method),
		zap.String(constvars.LoggingURLKey, endpoint),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, duration),
	)
	return resp, body, nil
}

func statusError(statusCode int, resource string, body []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	cause := errors.New(backendMessage(statusCode, body))
	switch statusCode {
	case constvars.StatusUnauthorized:
		return exceptions.ErrTokenInvalidOrExpired(cause)
	case constvars.StatusForbidden:
		return exceptions.ErrCareForbidden(cause, resource)
	case constvars.StatusNotFound:
		return exceptions.ErrCareResourceNotFound(cause, resource)
	case constvars.StatusBadRequest, constvars.StatusUnprocessableEntity, constvars.StatusConflict:
		return exceptions.ErrCareValidation(cause, resource)
	default:
		return exceptions.ErrCareUnexpectedStatus(cause, statusCode, resource)
	}
}

// backendMessage extracts a human readable reason from an error body.
func backendMessage(statusCode int, body []byte) string {
	var response care_dto.ErrorResponse
	if err := json.Unmarshal(body, &response); err == nil {
		switch {
		case len(response.Errors) > 0:
			return strings.Join(response.Errors, "; ")
		case response.Message != "":
			return response.Message
		case response.Error != "":
			return response.Error
		}
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return http.StatusText(statusCode)
	}
	if len(text) > maxErrorBodyPreview {
		text = text[:maxErrorBodyPreview]
	}
	return text
}

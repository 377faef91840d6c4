package timetable

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/interfaces"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
	"github.com/secmon-lab/rollcall/pkg/domain/model/timetable"
	"github.com/secmon-lab/rollcall/pkg/utils/errutil"
	"github.com/secmon-lab/rollcall/pkg/utils/logging"
	"golang.org/x/time/rate"
)

const (
	rpcPath       = "/WebUntis/jsonrpc.do"
	sessionCookie = "JSESSIONID"

	// element type of a class in getTimetable
	elementTypeClass = 1
)

// Client talks JSON-RPC to a WebUntis compatible scheduling server. All
// calls made through one Client share a single rate limiter.
type Client struct {
	http       *resty.Client
	limiter    *rate.Limiter
	school     string
	user       string
	password   string
	clientName string
	seq        atomic.Int64
}

var _ interfaces.TimetableClient = &Client{}

type Option func(*Client)

// WithRateLimit caps upstream requests per second. A non-positive rps
// disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(timeout)
	}
}

func WithClientName(name string) Option {
	return func(c *Client) {
		c.clientName = name
	}
}

func New(baseURL, school, user, password string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(30*time.Second).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json"),
		limiter:    rate.NewLimiter(rate.Limit(10), 10),
		school:     school,
		user:       user,
		password:   password,
		clientName: "rollcall",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type rpcRequest struct {
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	JSONRPC string `json:"jsonrpc"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (c *Client) call(ctx context.Context, session *timetable.Session, method string, params any, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return goerr.Wrap(err, "rate limiter wait aborted", goerr.TV(errutil.MethodKey, method))
	}

	if params == nil {
		params = map[string]any{}
	}
	body := rpcRequest{
		ID:      strconv.FormatInt(c.seq.Add(1), 10),
		Method:  method,
		Params:  params,
		JSONRPC: "2.0",
	}

	var resp rpcResponse
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("school", c.school).
		SetBody(body).
		SetResult(&resp).
		ForceContentType("application/json")
	if session != nil {
		req.SetCookie(&http.Cookie{Name: sessionCookie, Value: session.ID})
	}

	logging.From(ctx).Debug("calling timetable", slog.String("method", method))
	httpResp, err := req.Post(rpcPath)
	if err != nil {
		return goerr.Wrap(err, "timetable request failed",
			goerr.TV(errutil.MethodKey, method),
			goerr.T(errs.TagExternal))
	}
	if httpResp.IsError() {
		return goerr.New("timetable returned error status",
			goerr.TV(errutil.MethodKey, method),
			goerr.TV(errutil.HTTPStatusKey, httpResp.StatusCode()),
			goerr.T(errs.TagExternal))
	}
	if resp.Error != nil {
		return goerr.New("timetable rpc error",
			goerr.TV(errutil.MethodKey, method),
			goerr.V("code", resp.Error.Code),
			goerr.V("message", resp.Error.Message),
			goerr.T(errs.TagExternal))
	}

	if result != nil {
		if err := json.Unmarshal(resp.Result, result); err != nil {
			return goerr.Wrap(err, "failed to decode timetable result",
				goerr.TV(errutil.MethodKey, method),
				goerr.T(errs.TagExternal))
		}
	}
	return nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/tribunal/internal/client/models"
	"github.com/dmitrijs2005/tribunal/internal/common"
	"github.com/dmitrijs2005/tribunal/internal/logging"
)

// envelope is the part shared by every JSON response of the API.
type envelope struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

type RESTClient struct {
	http  *resty.Client
	log   logging.Logger
	debug bool

	mu    sync.RWMutex
	token func() string
}

type Option func(*RESTClient)

func WithLogger(l logging.Logger) Option {
	return func(c *RESTClient) { c.log = l }
}

func WithTokenSource(f func() string) Option {
	return func(c *RESTClient) { c.token = f }
}

// WithDebug dumps every request and response to the logger at debug level.
func WithDebug(on bool) Option {
	return func(c *RESTClient) { c.debug = on }
}

func NewRESTClient(baseURL string, timeout time.Duration, opts ...Option) *RESTClient {
	c := &RESTClient{log: logging.Nop()}
	for _, o := range opts {
		o(c)
	}

	c.http = resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout).
		SetLogger(restyLogger{log: c.log}).
		SetDebug(c.debug).
		OnBeforeRequest(c.beforeRequest)

	return c
}

// SetTokenSource installs the function that yields the bearer token attached
// to requests which do not carry one explicitly.
func (c *RESTClient) SetTokenSource(f func() string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = f
}

func (c *RESTClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.token == nil {
		return ""
	}
	return c.token()
}

func (c *RESTClient) beforeRequest(_ *resty.Client, r *resty.Request) error {
	r.SetHeader(common.RequestIDHeaderName, uuid.NewString())
	if r.Header.Get(common.AuthorizationHeaderName) != "" {
		return nil
	}
	if tok := c.currentToken(); tok != "" {
		r.SetHeader(common.AuthorizationHeaderName, common.BearerPrefix+tok)
	}
	return nil
}

func (c *RESTClient) request(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx)
}

// do executes the request and maps transport failures and non-2xx
// responses. Only successful responses are returned.
func (c *RESTClient) do(op, method, path string, r *resty.Request) (*resty.Response, error) {
	start := time.Now()
	resp, err := r.Execute(method, path)
	requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	if err != nil {
		requestsTotal.WithLabelValues(op, "error").Inc()
		c.log.Debug(r.Context(), "api call failed", "op", op, "error", err)
		return nil, fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
	}

	requestsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode())).Inc()

	if !resp.IsSuccess() {
		return nil, decodeError(op, resp)
	}
	return resp, nil
}

func decodeError(op string, resp *resty.Response) error {
	var env envelope
	_ = json.Unmarshal(resp.Body(), &env)
	msg := env.Error
	if msg == "" {
		msg = env.Message
	}
	return &APIError{Op: op, Status: resp.StatusCode(), Message: msg}
}

// decode unmarshals a successful JSON body into out. A body flagged with
// success=false is reported as an APIError even under a 2xx status.
func decode(op string, resp *resty.Response, out any) error {
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	if env.Success != nil && !*env.Success {
		return &APIError{Op: op, Status: resp.StatusCode(), Message: env.Error}
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func (c *RESTClient) get(ctx context.Context, op, path string, out any, prepare func(*resty.Request)) error {
	r := c.request(ctx)
	if prepare != nil {
		prepare(r)
	}
	resp, err := c.do(op, resty.MethodGet, path, r)
	if err != nil {
		return err
	}
	return decode(op, resp, out)
}

func withBearer(token string) func(*resty.Request) {
	return func(r *resty.Request) {
		r.SetHeader(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
}

func withID(id int64) func(*resty.Request) {
	return func(r *resty.Request) {
		r.SetPathParam("id", strconv.FormatInt(id, 10))
	}
}

func (c *RESTClient) Login(ctx context.Context, username, password string) (models.Session, error) {
	const op = "login"
	r := c.request(ctx).SetBody(map[string]string{"username": username, "password": password})
	resp, err := c.do(op, resty.MethodPost, "/auth/login", r)
	if err != nil {
		return models.Session{}, err
	}

	var out models.Session
	if err := decode(op, resp, &out); err != nil {
		return models.Session{}, err
	}
	if out.Token == "" {
		return models.Session{}, fmt.Errorf("%s: %w", op, common.ErrMissingField)
	}
	return out, nil
}

func (c *RESTClient) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	const op = "register"
	resp, err := c.do(op, resty.MethodPost, "/auth/register", c.request(ctx).SetBody(req))
	if err != nil {
		return models.User{}, err
	}

	var out struct {
		User models.User `json:"user"`
	}
	if err := decode(op, resp, &out); err != nil {
		return models.User{}, err
	}
	return out.User, nil
}

func (c *RESTClient) Profile(ctx context.Context, token string) (models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.get(ctx, "profile", "/auth/profile", &out, withBearer(token)); err != nil {
		return models.User{}, err
	}
	return out.User, nil
}

func (c *RESTClient) UpdateProfile(ctx context.Context, token string, upd models.ProfileUpdate) (models.User, error) {
	const op = "update_profile"
	r := c.request(ctx).SetBody(upd)
	withBearer(token)(r)
	resp, err := c.do(op, resty.MethodPut, "/auth/profile", r)
	if err != nil {
		return models.User{}, err
	}

	var out struct {
		User models.User `json:"user"`
	}
	if err := decode(op, resp, &out); err != nil {
		return models.User{}, err
	}
	return out.User, nil
}

func (c *RESTClient) SearchCases(ctx context.Context, filters models.SearchFilters, page, perPage int) (models.CasePage, error) {
	params := filters.Params()
	params["page"] = strconv.Itoa(page)
	params["per_page"] = strconv.Itoa(perPage)

	var out models.CasePage
	err := c.get(ctx, "search_cases", "/cases/search", &out, func(r *resty.Request) {
		r.SetQueryParams(params)
	})
	return out, err
}

func (c *RESTClient) GetCase(ctx context.Context, id int64) (models.Case, error) {
	var out struct {
		Case models.Case `json:"case"`
	}
	if err := c.get(ctx, "get_case", "/cases/{id}", &out, withID(id)); err != nil {
		return models.Case{}, err
	}
	return out.Case, nil
}

func (c *RESTClient) CaseTypes(ctx context.Context) ([]models.Option, error) {
	var out struct {
		CaseTypes []models.Option `json:"case_types"`
	}
	err := c.get(ctx, "case_types", "/cases/types", &out, nil)
	return out.CaseTypes, err
}

func (c *RESTClient) CaseStatuses(ctx context.Context) ([]models.Option, error) {
	var out struct {
		Statuses []models.Option `json:"statuses"`
	}
	err := c.get(ctx, "case_statuses", "/cases/statuses", &out, nil)
	return out.Statuses, err
}

func (c *RESTClient) Hearings(ctx context.Context, filters models.HearingFilters) ([]models.Hearing, error) {
	var out struct {
		Hearings []models.Hearing `json:"hearings"`
	}
	err := c.get(ctx, "hearings", "/hearings", &out, func(r *resty.Request) {
		r.SetQueryParams(filters.Params())
	})
	return out.Hearings, err
}

func (c *RESTClient) FormCategories(ctx context.Context) ([]models.FormCategory, error) {
	var out struct {
		Categories []models.FormCategory `json:"categories"`
	}
	err := c.get(ctx, "form_categories", "/forms/categories", &out, nil)
	return out.Categories, err
}

func (c *RESTClient) ListForms(ctx context.Context, category, search string) (models.Catalog, error) {
	params := map[string]string{}
	if category != "" {
		params["category"] = category
	}
	if search != "" {
		params["search"] = search
	}

	var out models.Catalog
	err := c.get(ctx, "list_forms", "/forms", &out, func(r *resty.Request) {
		r.SetQueryParams(params)
	})
	return out, err
}

func (c *RESTClient) GetForm(ctx context.Context, id int64) (models.Form, error) {
	var out struct {
		Form models.Form `json:"form"`
	}
	if err := c.get(ctx, "get_form", "/forms/{id}", &out, withID(id)); err != nil {
		return models.Form{}, err
	}
	return out.Form, nil
}

// DownloadForm returns the raw document body of a 2xx response.
func (c *RESTClient) DownloadForm(ctx context.Context, id int64) ([]byte, error) {
	r := c.request(ctx).SetHeader("Accept", "application/pdf, application/json")
	withID(id)(r)
	resp, err := c.do("download_form", resty.MethodGet, "/forms/{id}/download", r)
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// Ping probes the cheapest public endpoint.
func (c *RESTClient) Ping(ctx context.Context) error {
	_, err := c.do("ping", resty.MethodGet, "/cases/types", c.request(ctx))
	return err
}

func (c *RESTClient) Close() error {
	c.http.GetClient().CloseIdleConnections()
	return nil
}

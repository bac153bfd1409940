package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/scheduler-web/internal/domain/appointment"
	"github.com/BruksfildServices01/scheduler-web/internal/httperr"
	"github.com/BruksfildServices01/scheduler-web/internal/logging"
)

const (
	DefaultTimeout = 10 * time.Second

	resourcePath = "/agendamentos"
	maxBodyBytes = 1 << 20
)

type AppointmentHTTPRepository struct {
	client  *http.Client
	baseURL string
	logger  logging.Logger
}

var _ domain.Repository = (*AppointmentHTTPRepository)(nil)

func NewAppointmentHTTPRepository(
	baseURL string,
	timeout time.Duration,
	logger logging.Logger,
) *AppointmentHTTPRepository {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &AppointmentHTTPRepository{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *AppointmentHTTPRepository) List(ctx context.Context) ([]domain.Appointment, error) {
	var out []domain.Appointment
	if err := r.do(ctx, http.MethodGet, resourcePath, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Appointment{}
	}
	return out, nil
}

func (r *AppointmentHTTPRepository) Create(
	ctx context.Context,
	d domain.Draft,
) (*domain.Appointment, error) {

	var created domain.Appointment
	if err := r.do(ctx, http.MethodPost, resourcePath, d, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *AppointmentHTTPRepository) Delete(ctx context.Context, id int64) error {
	path := resourcePath + "/" + strconv.FormatInt(id, 10)
	return r.do(ctx, http.MethodDelete, path, nil, nil)
}

// --------------------------------------------------
// Transport
// --------------------------------------------------

func (r *AppointmentHTTPRepository) do(
	ctx context.Context,
	method string,
	path string,
	in any,
	out any,
) error {

	fail := func(kind httperr.Kind, err error) *httperr.APIError {
		return &httperr.APIError{Kind: kind, Method: method, Path: path, Err: err}
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			r.logger.Errorf("api request error: %s %s: %v", method, path, err)
			return fail(httperr.KindRequest, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, body)
	if err != nil {
		r.logger.Errorf("api request error: %s %s: %v", method, path, err)
		return fail(httperr.KindRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		kind := classify(err)
		r.logger.Errorf("api no response: %s %s (%s): %v", method, path, kind, err)
		return fail(kind, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		kind := classify(err)
		r.logger.Errorf("api read error: %s %s (%s): %v", method, path, kind, err)
		return fail(kind, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := fail(httperr.KindResponse, nil)
		apiErr.Status = resp.StatusCode

		apiErr.Body = decodeErrorBody(raw)
		r.logger.Errorf("api error response: %s %s status=%d body=%s", method, path, resp.StatusCode, raw)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		r.logger.Errorf("api decode error: %s %s: %v", method, path, err)
		return fail(httperr.KindRequest, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// decodeErrorBody keeps the message even when "errors" is not a field map.
func decodeErrorBody(raw []byte) *httperr.APIBody {
	var payload httperr.APIBody
	if json.Unmarshal(raw, &payload) == nil {
		return &payload
	}

	var msg struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &msg) != nil {
		return nil
	}
	return &httperr.APIBody{Message: msg.Message}
}

func classify(err error) httperr.Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return httperr.KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return httperr.KindTimeout
	}
	if errors.Is(err, context.Canceled) {
		return httperr.KindRequest
	}
	return httperr.KindNetwork
}

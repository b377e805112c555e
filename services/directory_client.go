package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"frontdesk/constants"
	"frontdesk/dto"
	apperrors "frontdesk/errors"
	"frontdesk/models"
)

// DirectoryClient talks to the remote booking directory.
type DirectoryClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewDirectoryClient creates a client with the given request timeout.
func NewDirectoryClient(baseURL string, timeout time.Duration) *DirectoryClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &DirectoryClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// MonthlyAvailability calls GET /availability/monthly.
func (c *DirectoryClient) MonthlyAvailability(ctx context.Context, year int, month time.Month, categoryID string) ([]models.RoomCategoryDay, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	q.Set("month", strconv.Itoa(int(month)))
	if categoryID != "" && !strings.EqualFold(categoryID, constants.CategoryAll) {
		q.Set("categoryId", categoryID)
	}

	env, err := c.do(ctx, http.MethodGet, "/availability/monthly?"+q.Encode(), TokenFrom(ctx), "", nil)
	if err != nil {
		return nil, err
	}
	var records []models.RoomCategoryDay
	if err := env.DecodeList(&records); err != nil {
		return nil, &apperrors.RemoteError{Message: "monthly availability không đúng định dạng", Err: err}
	}
	return records, nil
}

// DateDetail calls GET /availability/date.
func (c *DirectoryClient) DateDetail(ctx context.Context, date string) (*dto.DateDetail, error) {
	env, err := c.do(ctx, http.MethodGet, "/availability/date?date="+url.QueryEscape(date), TokenFrom(ctx), "", nil)
	if err != nil {
		return nil, err
	}
	var detail dto.DateDetail
	if err := env.DecodeData(&detail); err != nil {
		return nil, &apperrors.RemoteError{Message: "date detail không đúng định dạng", Err: err}
	}
	if detail.Date == "" {
		detail.Date = date
	}
	return &detail, nil
}

// Categories calls GET /room-categories.
func (c *DirectoryClient) Categories(ctx context.Context) ([]dto.RoomCategoryResponse, error) {
	env, err := c.do(ctx, http.MethodGet, "/room-categories", TokenFrom(ctx), "", nil)
	if err != nil {
		return nil, err
	}
	var categories []dto.RoomCategoryResponse
	if err := env.DecodeList(&categories); err != nil {
		return nil, &apperrors.RemoteError{Message: "room categories không đúng định dạng", Err: err}
	}
	return categories, nil
}

// Dispatch sends a status update, check-in or check-out.
func (c *DirectoryClient) Dispatch(ctx context.Context, token string, req models.MutationRequest) (*models.MutationResult, error) {
	method, path := http.MethodPut, "/roomStatus"
	switch req.Kind {
	case constants.MutationCheckIn:
		method, path = http.MethodPost, "/checkin"
	case constants.MutationCheckOut:
		method, path = http.MethodPost, "/checkout"
	}

	body := dto.StatusUpdateRequest{
		TargetID:     req.TargetID,
		DesiredState: req.DesiredState,
		Notes:        req.Notes,
	}
	env, err := c.do(ctx, method, path, token, req.IdempotencyKey, body)
	if err != nil {
		return nil, err
	}

	result := &models.MutationResult{TargetID: req.TargetID, State: req.DesiredState, Data: env.Data}
	var echoed struct {
		TargetID string `json:"targetId"`
		State    string `json:"state"`
	}
	if len(env.Data) > 0 && json.Unmarshal(env.Data, &echoed) == nil {
		if echoed.TargetID != "" {
			result.TargetID = echoed.TargetID
		}
		if echoed.State != "" {
			result.State = echoed.State
		}
	}
	return result, nil
}

// RefreshToken calls POST /auth/refresh and returns the new token.
func (c *DirectoryClient) RefreshToken(ctx context.Context, token string) (string, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/refresh", token, "", nil)
	if err != nil {
		return "", err
	}
	var out dto.RefreshSessionResponse
	if err := env.DecodeData(&out); err != nil {
		// some deployments answer {success, newToken} without a data field
		if err := json.Unmarshal(env.Raw, &out); err != nil {
			return "", &apperrors.RemoteError{Message: "refresh không đúng định dạng", Err: err}
		}
	}
	if out.NewToken == "" {
		return "", apperrors.NewAppError(apperrors.ErrCodeAuthExpired, "không nhận được token mới", nil)
	}
	return out.NewToken, nil
}

func (c *DirectoryClient) do(ctx context.Context, method, path, token, idempotencyKey string, payload interface{}) (dto.Envelope, error) {
	if c.baseURL == "" {
		return dto.Envelope{}, &apperrors.RemoteError{Message: "DIRECTORY_BASE_URL chưa được cấu hình"}
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return dto.Envelope{}, fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return dto.Envelope{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return dto.Envelope{}, &apperrors.RemoteError{Message: "không gọi được directory", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return dto.Envelope{}, &apperrors.RemoteError{StatusCode: resp.StatusCode, Message: "không đọc được response", Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return dto.Envelope{}, apperrors.ErrUnauthorized
	}

	env, decodeErr := dto.DecodeEnvelope(raw)
	if resp.StatusCode >= 400 {
		msg := http.StatusText(resp.StatusCode)
		if decodeErr == nil && env.Error != "" {
			msg = env.Error
		}
		return dto.Envelope{}, &apperrors.RemoteError{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return dto.Envelope{}, &apperrors.RemoteError{StatusCode: resp.StatusCode, Message: "response không phải JSON", Err: decodeErr}
	}
	if !env.Success {
		return dto.Envelope{}, &apperrors.RemoteError{StatusCode: resp.StatusCode, Message: env.Error}
	}
	return env, nil
}

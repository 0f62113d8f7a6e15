package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/lamvt/thiepmoi/pkg/domain"
)

// CreateGraduateRequest is the payload for creating a new graduate.
type CreateGraduateRequest struct {
	Name               string         `json:"name"`
	Degree             string         `json:"degree"`
	Department         string         `json:"department"`
	GraduationAt       time.Time      `json:"graduation_datetime"`
	Venue              domain.Venue   `json:"venue"`
	InvitationTemplate string         `json:"invitation_template,omitempty"`
	Contact            domain.Contact `json:"contact"`
	PhotoURLs          []string       `json:"photo_urls,omitempty"`
}

// Client is the invitation-service API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// VerifyInvitation exchanges a 6-digit code for the verified-guest payload.
// The code must already pass domain.ValidCode; the client does not resend
// malformed codes the server would reject anyway.
func (c *Client) VerifyInvitation(ctx context.Context, code string) (*domain.VerifiedGuest, error) {
	var guest domain.VerifiedGuest
	body := map[string]string{"invitation_code": code}
	if err := c.post(ctx, "/invitations/verify", body, &guest); err != nil {
		return nil, fmt.Errorf("client.VerifyInvitation: %w", err)
	}
	return &guest, nil
}

// Chat proxies one guest question to the graduate's chatbot and returns the reply text.
func (c *Client) Chat(ctx context.Context, graduateID, message string) (string, error) {
	var out struct {
		Response string `json:"response"`
	}
	body := map[string]string{"message": message}
	if err := c.post(ctx, "/graduates/"+url.PathEscape(graduateID)+"/chat", body, &out); err != nil {
		return "", fmt.Errorf("client.Chat: %w", err)
	}
	return out.Response, nil
}

// ListGraduates fetches all graduates.
func (c *Client) ListGraduates(ctx context.Context) ([]domain.Graduate, error) {
	var grads []domain.Graduate
	if err := c.get(ctx, "/graduates", &grads); err != nil {
		return nil, fmt.Errorf("client.ListGraduates: %w", err)
	}
	return grads, nil
}

// CreateGraduate creates a graduate record and returns its id.
func (c *Client) CreateGraduate(ctx context.Context, req CreateGraduateRequest) (string, error) {
	var out struct {
		GraduateID string `json:"graduate_id"`
	}
	if err := c.post(ctx, "/graduates", req, &out); err != nil {
		return "", fmt.Errorf("client.CreateGraduate: %w", err)
	}
	return out.GraduateID, nil
}

// UpdateGraduatePhotos attaches uploaded photo URLs to an existing graduate.
func (c *Client) UpdateGraduatePhotos(ctx context.Context, graduateID string, photoURLs []string) error {
	body := map[string][]string{"photo_urls": photoURLs}
	if err := c.doRequest(ctx, http.MethodPut, "/graduates/"+url.PathEscape(graduateID), body, nil); err != nil {
		return fmt.Errorf("client.UpdateGraduatePhotos: %w", err)
	}
	return nil
}

// UploadPhoto uploads one image file as multipart/form-data and returns
// the stored photo URL. Uploads are issued one at a time by callers; each
// is independently fallible.
func (c *Client) UploadPhoto(ctx context.Context, graduateID, filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("client.UploadPhoto: %w", err)
	}
	defer f.Close() //nolint:errcheck

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return "", fmt.Errorf("client.UploadPhoto: form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("client.UploadPhoto: read %s: %w", filePath, err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("client.UploadPhoto: %w", err)
	}

	path := "/graduates/" + url.PathEscape(graduateID) + "/photos"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return "", fmt.Errorf("client.UploadPhoto: create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("client.UploadPhoto: do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("client.UploadPhoto: %w", errorFromResponse(resp))
	}
	var out struct {
		PhotoURL string `json:"photo_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("client.UploadPhoto: decode response: %w", err)
	}
	return out.PhotoURL, nil
}

// CreateInvitations issues one invitation code per guest name in a single call.
func (c *Client) CreateInvitations(ctx context.Context, graduateID string, guestNames []string) ([]domain.Invitation, error) {
	var out struct {
		Invitations []domain.Invitation `json:"invitations"`
	}
	body := struct {
		GraduateID string   `json:"graduate_id"`
		GuestNames []string `json:"guest_names"`
	}{GraduateID: graduateID, GuestNames: guestNames}
	if err := c.post(ctx, "/invitations", body, &out); err != nil {
		return nil, fmt.Errorf("client.CreateInvitations: %w", err)
	}
	return out.Invitations, nil
}

// ListInvitations fetches invitations issued for one graduate.
func (c *Client) ListInvitations(ctx context.Context, graduateID string) ([]domain.Invitation, error) {
	params := url.Values{}
	params.Set("graduate_id", graduateID)

	var invites []domain.Invitation
	if err := c.get(ctx, "/invitations?"+params.Encode(), &invites); err != nil {
		return nil, fmt.Errorf("client.ListInvitations: %w", err)
	}
	return invites, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		return errorFromResponse(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// errorFromResponse builds an *HTTPError from a non-2xx response, extracting
// the backend's "detail" field when the body carries one.
func errorFromResponse(resp *http.Response) error {
	respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
	if readErr != nil {
		return &HTTPError{StatusCode: resp.StatusCode, Detail: fmt.Sprintf("failed to read body: %v", readErr)}
	}
	var apiErr struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Detail != "" {
		return &HTTPError{StatusCode: resp.StatusCode, Detail: apiErr.Detail}
	}
	return &HTTPError{StatusCode: resp.StatusCode, Detail: string(respBody)}
}

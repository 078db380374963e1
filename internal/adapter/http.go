package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
	"github.com/go-resty/resty/v2"
)

const componentWelcome = "welcome"

type httpNotesClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPNotesClient builds a [NotesClient] for the server at address. The
// address may omit the scheme, http is assumed. Redirects are not followed so
// that the ids carried by 303 responses can be read.
func NewHTTPNotesClient(address string, timeout time.Duration, logger *logger.Logger) (NotesClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, timeout)
	client.SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}))

	return &httpNotesClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpNotesClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpNotesClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpNotesClient) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return h.authenticate(ctx, "/api/auth/register", credentials)
}

func (h *httpNotesClient) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return h.authenticate(ctx, "/api/auth/login", credentials)
}

func (h *httpNotesClient) authenticate(ctx context.Context, endpoint string, credentials models.Credentials) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post(endpoint)
	if err != nil {
		return models.User{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("read issued token: %w", err)
	}
	h.SetToken(token)

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode user: %w", err)
	}

	h.logger.Debug().Int64("user_id", user.UserID).Str("endpoint", endpoint).Msg("authenticated")
	return user, nil
}

func (h *httpNotesClient) Home(ctx context.Context, filters models.Filters) (models.HomeView, error) {
	req := h.authedRequest(ctx)
	setFilters(req, filters)

	var view models.HomeView
	component, err := h.getPage(req, "/", &view)
	if err != nil {
		return models.HomeView{}, err
	}
	if component == componentWelcome {
		return models.HomeView{}, ErrGuest
	}

	return view, nil
}

func (h *httpNotesClient) ListNotes(ctx context.Context, query NotesQuery) (NotesIndex, error) {
	req := h.authedRequest(ctx)
	setFilters(req, query.Filters)
	if query.Page > 0 {
		req.SetQueryParam("page", strconv.Itoa(query.Page))
	}
	if query.PerPage > 0 {
		req.SetQueryParam("per_page", strconv.Itoa(query.PerPage))
	}

	var index NotesIndex
	if _, err := h.getPage(req, "/notes", &index); err != nil {
		return NotesIndex{}, err
	}

	return index, nil
}

func (h *httpNotesClient) GetNote(ctx context.Context, id int64) (models.Note, error) {
	var props struct {
		Note models.Note `json:"note"`
	}
	if _, err := h.getPage(h.authedRequest(ctx), notePath(id), &props); err != nil {
		return models.Note{}, err
	}

	return props.Note, nil
}

func (h *httpNotesClient) CreateNote(ctx context.Context, request models.CreateNoteRequest) (int64, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/notes")
	if err != nil {
		return 0, fmt.Errorf("create note request: %w", err)
	}

	return redirectID(resp)
}

func (h *httpNotesClient) UpdateNote(ctx context.Context, request models.UpdateNoteRequest) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Put(notePath(request.ID))
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}

	var props struct {
		Note models.Note `json:"note"`
	}
	if _, err = decodePage(resp, &props); err != nil {
		return models.Note{}, err
	}

	return props.Note, nil
}

func (h *httpNotesClient) DeleteNote(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(notePath(id))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	_, err = redirectLocation(resp)
	return err
}

func (h *httpNotesClient) ListFolders(ctx context.Context) ([]models.Folder, error) {
	var props struct {
		Folders []models.Folder `json:"folders"`
	}
	if _, err := h.getPage(h.authedRequest(ctx), "/folders", &props); err != nil {
		return nil, err
	}

	return props.Folders, nil
}

func (h *httpNotesClient) GetFolder(ctx context.Context, id int64) (models.FolderView, error) {
	var view models.FolderView
	if _, err := h.getPage(h.authedRequest(ctx), folderPath(id), &view); err != nil {
		return models.FolderView{}, err
	}

	return view, nil
}

func (h *httpNotesClient) CreateFolder(ctx context.Context, request models.CreateFolderRequest) (int64, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/folders")
	if err != nil {
		return 0, fmt.Errorf("create folder request: %w", err)
	}

	return redirectID(resp)
}

func (h *httpNotesClient) UpdateFolder(ctx context.Context, request models.UpdateFolderRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Put(folderPath(request.ID))
	if err != nil {
		return fmt.Errorf("update folder request: %w", err)
	}

	_, err = redirectLocation(resp)
	return err
}

func (h *httpNotesClient) DeleteFolder(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(folderPath(id))
	if err != nil {
		return fmt.Errorf("delete folder request: %w", err)
	}

	_, err = redirectLocation(resp)
	return err
}

func (h *httpNotesClient) DownloadAttachment(ctx context.Context, noteID, attachmentID int64) (Attachment, error) {
	resp, err := h.authedRequest(ctx).
		SetDoNotParseResponse(true).
		Get(notePath(noteID) + "/attachments/" + strconv.FormatInt(attachmentID, 10))
	if err != nil {
		return Attachment{}, fmt.Errorf("download attachment request: %w", err)
	}

	body := resp.RawBody()
	if resp.StatusCode() >= http.StatusMultipleChoices {
		defer body.Close()
		return Attachment{}, mapRawHTTPError(resp.StatusCode(), body)
	}

	attachment := Attachment{
		ContentType: resp.Header().Get("Content-Type"),
		Body:        body,
	}
	if _, params, err := mime.ParseMediaType(resp.Header().Get("Content-Disposition")); err == nil {
		attachment.Filename = params["filename"]
	}

	return attachment, nil
}

func (h *httpNotesClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpNotesClient) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus
	resp, err := h.client.R().SetContext(ctx).SetResult(&status).Get("/health-check")
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthStatus{}, err
	}

	return status, nil
}

func (h *httpNotesClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", utils.BearerHeader(token))
	}
	return req
}

// getPage performs a GET and decodes the page props into dst.
func (h *httpNotesClient) getPage(req *resty.Request, endpoint string, dst any) (string, error) {
	resp, err := req.Get(endpoint)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", endpoint, err)
	}

	return decodePage(resp, dst)
}

func decodePage(resp *resty.Response, dst any) (string, error) {
	if err := mapHTTPError(resp); err != nil {
		return "", err
	}

	var page struct {
		Component string          `json:"component"`
		Props     json.RawMessage `json:"props"`
	}
	if err := json.Unmarshal(resp.Body(), &page); err != nil {
		return "", fmt.Errorf("decode page: %w", err)
	}
	if err := json.Unmarshal(page.Props, dst); err != nil {
		return "", fmt.Errorf("decode %s props: %w", page.Component, err)
	}

	return page.Component, nil
}

func redirectLocation(resp *resty.Response) (string, error) {
	if resp.StatusCode() != http.StatusSeeOther {
		if err := mapHTTPError(resp); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: status %d", ErrUnexpectedResponse, resp.StatusCode())
	}

	location := resp.Header().Get("Location")
	if location == "" {
		return "", fmt.Errorf("%w: redirect without location", ErrUnexpectedResponse)
	}

	return location, nil
}

// redirectID reads the id of a created resource from the last segment of the
// redirect location.
func redirectID(resp *resty.Response) (int64, error) {
	location, err := redirectLocation(resp)
	if err != nil {
		return 0, err
	}

	u, err := url.Parse(location)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}

	id, err := strconv.ParseInt(path.Base(u.Path), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: no id in location %q", ErrUnexpectedResponse, location)
	}

	return id, nil
}

func setFilters(req *resty.Request, filters models.Filters) {
	if filters.Search != "" {
		req.SetQueryParam("search", filters.Search)
	}
	if filters.Folder != nil {
		req.SetQueryParam("folder", strconv.FormatInt(*filters.Folder, 10))
	}
}

func notePath(id int64) string {
	return "/notes/" + strconv.FormatInt(id, 10)
}

func folderPath(id int64) string {
	return "/folders/" + strconv.FormatInt(id, 10)
}

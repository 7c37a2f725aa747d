package intra

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Grihladin/42Connect/internal/config"
	"github.com/Grihladin/42Connect/internal/logger"
	"github.com/Grihladin/42Connect/internal/utils"
	"github.com/Grihladin/42Connect/models"
)

// defaultPageSize is the page[size] parameter sent with every collection
// request. A page shorter than this is the last one.
const defaultPageSize = 100

// apiClient implements [API] with a resty client rooted at the intra v2
// base URL.
type apiClient struct {
	http   *utils.HTTPClient
	logger *logger.Logger
}

// NewAPI constructs the intra API client from cfg.
func NewAPI(cfg config.OAuth, log *logger.Logger) API {
	return &apiClient{
		http:   utils.NewHTTPClient(cfg.APIBaseURL),
		logger: log,
	}
}

// Me implements [API].
func (c *apiClient) Me(ctx context.Context, accessToken string) (models.RemoteProfile, error) {
	var profile models.RemoteProfile
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&profile).
		Get("/me")
	if err != nil {
		return models.RemoteProfile{}, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	if !resp.IsSuccess() {
		c.logger.Error().Str("func", "*apiClient.Me").
			Int("status", resp.StatusCode()).Msg("profile request rejected")
		return models.RemoteProfile{}, fmt.Errorf("%w: /me returned %d", ErrUpstreamUnavailable, resp.StatusCode())
	}
	return profile, nil
}

// ProjectsUsers implements [API].
func (c *apiClient) ProjectsUsers(ctx context.Context, accessToken string, userID int64) ([]models.RemoteProjectUser, error) {
	return fetchAll[models.RemoteProjectUser](ctx, c, accessToken, "/projects_users", map[string]string{
		"filter[user_id]": strconv.FormatInt(userID, 10),
		"include":         "project",
	})
}

// CursusUsers implements [API].
func (c *apiClient) CursusUsers(ctx context.Context, accessToken string, userID int64) ([]models.RemoteCursusUser, error) {
	return fetchAll[models.RemoteCursusUser](ctx, c, accessToken, "/cursus_users", map[string]string{
		"filter[user_id]": strconv.FormatInt(userID, 10),
		"include":         "cursus",
	})
}

// fetchAll drains a paginated collection endpoint, preserving the
// upstream order across pages. Pagination stops when a page comes back
// empty or shorter than defaultPageSize. Any non-success page aborts
// the whole fetch so callers never see a partial collection.
func fetchAll[T any](ctx context.Context, c *apiClient, accessToken, path string, params map[string]string) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		var batch []T
		req := c.http.R().
			SetContext(ctx).
			SetAuthToken(accessToken).
			SetQueryParam("page[size]", strconv.Itoa(defaultPageSize)).
			SetQueryParam("page[number]", strconv.Itoa(page)).
			SetResult(&batch)
		for k, v := range params {
			req.SetQueryParam(k, v)
		}

		resp, err := req.Get(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
		}
		if !resp.IsSuccess() {
			c.logger.Error().Str("func", "intra.fetchAll").
				Str("path", path).Int("page", page).
				Int("status", resp.StatusCode()).Msg("collection page rejected")
			return nil, fmt.Errorf("%w: %s page %d returned %d", ErrUpstreamUnavailable, path, page, resp.StatusCode())
		}

		all = append(all, batch...)
		if len(batch) < defaultPageSize {
			return all, nil
		}
	}
}

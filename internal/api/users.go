package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/reviewdeck/adminctl/internal/models"
)

// UserListParams are the optional query parameters of the users service.
// Zero values are omitted from the request.
type UserListParams struct {
	Search    string
	Status    string
	Role      string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Pagination is the server-side pagination metadata of a users listing.
// Total may exceed the number of returned records.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// userAPIRecord mirrors the users service wire shape. Optional fields are
// pointers so normalization can give each one a defined default.
type userAPIRecord struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	Name        *string `json:"name"`
	Role        string  `json:"role"`
	Status      string  `json:"status"`
	ReviewCount *int    `json:"reviewCount"`
	CreatedAt   string  `json:"createdAt"`
}

type userListResponse struct {
	Data       []userAPIRecord `json:"data"`
	Pagination Pagination      `json:"pagination"`
}

// ListUsers fetches one page of users. The returned records are normalized:
// a missing name becomes "", a missing status becomes "active", a missing
// review count becomes 0, and JoinedAt is taken from createdAt.
func (c *Client) ListUsers(ctx context.Context, token string, params UserListParams) ([]models.UserRecord, Pagination, error) {
	q := url.Values{}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.Role != "" {
		q.Set("role", params.Role)
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.SortBy != "" {
		q.Set("sortBy", params.SortBy)
	}
	if params.SortOrder != "" {
		q.Set("sortOrder", params.SortOrder)
	}

	endpoint := c.usersURL + "/users"
	if encoded := q.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var resp userListResponse
	if _, err := c.do(ctx, http.MethodGet, endpoint, token, nil, &resp); err != nil {
		return nil, Pagination{}, err
	}

	records := make([]models.UserRecord, 0, len(resp.Data))
	for _, u := range resp.Data {
		records = append(records, normalizeUser(u))
	}

	p := resp.Pagination
	if p.Total == 0 && len(records) > 0 {
		// Backend without server-side pagination: the page is the whole set.
		p = Pagination{Page: 1, Limit: len(records), Total: len(records), TotalPages: 1}
	}
	return records, p, nil
}

func normalizeUser(u userAPIRecord) models.UserRecord {
	r := models.UserRecord{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		Status:   u.Status,
		JoinedAt: u.CreatedAt,
	}
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.ReviewCount != nil {
		r.ReviewCount = *u.ReviewCount
	}
	if r.Status == "" {
		r.Status = models.UserStatusActive
	}
	return r
}

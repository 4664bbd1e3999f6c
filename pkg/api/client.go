package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/arjunaarunatheym-jpg/MddrcFinanceHR-sub001/pkg/whttp"
)

// Client talks to the MDDRC platform API. Every method issues exactly one
// request: no retries, no backoff. A failed call is terminal for that
// attempt and the caller decides whether to try again.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Token:   token,
	}
}

// APIError carries the HTTP status and the most specific failure detail the
// response offered.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Detail)
}

// errorDetail extracts a human-readable failure message from a response
// body: the JSON detail/message fields first, then an HTML page title
// (gateways and proxies answer with HTML), then a generic fallback.
func errorDetail(res *whttp.WHTTPRes, fallback string) string {
	if d := gjson.Get(res.BodyString, "detail").String(); d != "" {
		return d
	}
	if m := gjson.Get(res.BodyString, "message").String(); m != "" {
		return m
	}
	if res.HTTPTitle != "" {
		return res.HTTPTitle
	}
	return fallback
}

func (c *Client) buildURL(path string, query url.Values) string {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, contentType string) (*whttp.WHTTPRes, error) {
	req := &whttp.WHTTPReq{
		Method:      method,
		URL:         c.buildURL(path, query),
		Body:        body,
		ContentType: contentType,
		Headers: []whttp.WHTTPHeader{
			{Name: "Authorization", Value: "Bearer " + c.Token},
		},
	}

	res, err := whttp.SendHTTPRequest(req, c.HTTPClient)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if res.StatusCode >= 400 {
		return nil, &APIError{
			Status: res.StatusCode,
			Detail: errorDetail(res, fmt.Sprintf("%s %s failed", method, path)),
		}
	}
	return res, nil
}

// getJSON issues a GET and decodes the response body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	res, err := c.do(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(res.BodyBytes, out)
}

// sendJSON issues a mutating request with a JSON payload, decoding the
// response into out when out is non-nil.
func (c *Client) sendJSON(ctx context.Context, method, path string, query url.Values, payload any, out any) error {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return err
		}
	}
	res, err := c.do(ctx, method, path, query, body, "application/json")
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(res.BodyBytes, out)
}

// uploadFile issues a multipart POST with one file part named "file".
func (c *Client) uploadFile(ctx context.Context, path, filename string, content io.Reader) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, content); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	_, err = c.do(ctx, http.MethodPost, path, nil, buf.Bytes(), mw.FormDataContentType())
	return err
}

// download issues a GET and returns the raw response bytes, for binary
// endpoints like spreadsheet exports.
func (c *Client) download(ctx context.Context, path string, query url.Values) ([]byte, error) {
	res, err := c.do(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return nil, err
	}
	return res.BodyBytes, nil
}

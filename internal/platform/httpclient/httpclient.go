package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultTimeout = 10 * time.Second

// Pet es la forma JSON que devuelve el servicio.
type Pet struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Available bool   `json:"available"`
	Gender    string `json:"gender"`
}

// APIError representa una respuesta no-2xx con el cuerpo de error del servicio.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("petstore: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("petstore: status=%d: %s", e.StatusCode, e.Message)
}

// Client habla con la API de mascotas de un servicio en ejecución.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// New valida baseURL y arma un Client con el timeout dado (o DefaultTimeout).
func New(baseURL string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	u, err := url.ParseRequestURI(strings.TrimSpace(baseURL))
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(u.String(), "/"),
	}, nil
}

// List devuelve las mascotas; query puede traer category/name/available/gender.
func (c *Client) List(ctx context.Context, query url.Values) ([]Pet, error) {
	path := "/pets"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var out []Pet
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id string) (Pet, error) {
	var out Pet
	err := c.do(ctx, http.MethodGet, "/pets/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) Create(ctx context.Context, p Pet) (Pet, error) {
	var out Pet
	err := c.do(ctx, http.MethodPost, "/pets", p, &out)
	return out, err
}

func (c *Client) Update(ctx context.Context, id string, p Pet) (Pet, error) {
	var out Pet
	err := c.do(ctx, http.MethodPut, "/pets/"+url.PathEscape(id), p, &out)
	return out, err
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/pets/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Purchase(ctx context.Context, id string) (Pet, error) {
	var out Pet
	err := c.do(ctx, http.MethodPut, "/pets/"+url.PathEscape(id)+"/purchase", nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if c == nil || c.HTTP == nil {
		return errors.New("httpclient: nil client")
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var eb struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &eb) == nil && eb.Message != "" {
			apiErr.Message = eb.Message
		} else {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

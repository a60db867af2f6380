// Package client es el cliente Go de la API de repuestos.
//
// La sesión es explícita: Login devuelve una *Session y cada llamada protegida
// la recibe como argumento. Logout la invalida localmente.
package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
)

// ErrNoSession se devuelve cuando se llama a una ruta protegida sin sesión activa.
var ErrNoSession = errors.New("client: sesión no iniciada")

// APIError error devuelto por la API con su cuerpo {"error", "code"}.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
}

// Session credenciales de un usuario autenticado.
type Session struct {
	Token string           `json:"token"`
	User  dto.UserResponse `json:"user"`
}

// Active indica si la sesión tiene token.
func (s *Session) Active() bool {
	return s != nil && s.Token != ""
}

// Client envuelve un cliente resty apuntando a la API.
type Client struct {
	http *resty.Client
}

// New construye el cliente para baseURL (ej. http://localhost:4000).
func New(baseURL string) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15*time.Second).
		SetHeader("Accept", "application/json")
	return &Client{http: rc}
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx).SetError(&dto.ErrorResponse{})
}

func (c *Client) authed(ctx context.Context, s *Session) (*resty.Request, error) {
	if !s.Active() {
		return nil, ErrNoSession
	}
	return c.request(ctx).SetAuthToken(s.Token), nil
}

func check(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if !resp.IsError() {
		return nil
	}
	apiErr := &APIError{Status: resp.StatusCode(), Message: resp.Status()}
	if body, ok := resp.Error().(*dto.ErrorResponse); ok && body.Error != "" {
		apiErr.Code = body.Code
		apiErr.Message = body.Error
	}
	return apiErr
}

// Register crea un usuario nuevo.
func (c *Client) Register(ctx context.Context, username, password string) (*dto.UserResponse, error) {
	var out dto.RegisterResponse
	err := check(c.request(ctx).
		SetBody(dto.RegisterRequest{Username: username, Password: password}).
		SetResult(&out).
		Post("/api/users/register"))
	if err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Login autentica y devuelve la sesión a pasar en las llamadas siguientes.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	var out dto.LoginResponse
	err := check(c.request(ctx).
		SetBody(dto.LoginRequest{Username: username, Password: password}).
		SetResult(&out).
		Post("/api/users/login"))
	if err != nil {
		return nil, err
	}
	return &Session{Token: out.Token, User: out.User}, nil
}

// Logout descarta la sesión. La API no guarda estado de sesión.
func (c *Client) Logout(s *Session) {
	if s == nil {
		return
	}
	s.Token = ""
	s.User = dto.UserResponse{}
}

// History historial unificado de movimientos; limit <= 0 trae todo.
func (c *Client) History(ctx context.Context, s *Session, limit int) (*dto.MovementHistoryResponse, error) {
	req, err := c.authed(ctx, s)
	if err != nil {
		return nil, err
	}
	var out dto.MovementHistoryResponse
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}
	if err := check(req.SetResult(&out).Get("/api/dashboard/history")); err != nil {
		return nil, err
	}
	return &out, nil
}

// Summary totales del tablero.
func (c *Client) Summary(ctx context.Context, s *Session) (*dto.DashboardSummaryDTO, error) {
	req, err := c.authed(ctx, s)
	if err != nil {
		return nil, err
	}
	var out dto.DashboardSummaryDTO
	if err := check(req.SetResult(&out).Get("/api/dashboard/summary")); err != nil {
		return nil, err
	}
	return &out, nil
}

// Replenishment lista de reposición; threshold <= 0 usa el umbral del servidor.
func (c *Client) Replenishment(ctx context.Context, s *Session, threshold int) ([]dto.ReplenishmentSuggestionDTO, error) {
	req, err := c.authed(ctx, s)
	if err != nil {
		return nil, err
	}
	var out []dto.ReplenishmentSuggestionDTO
	if threshold > 0 {
		req.SetQueryParam("threshold", strconv.Itoa(threshold))
	}
	if err := check(req.SetResult(&out).Get("/api/dashboard/replenishment")); err != nil {
		return nil, err
	}
	return out, nil
}

// StockReport descarga el reporte de existencias en PDF.
func (c *Client) StockReport(ctx context.Context, s *Session) ([]byte, error) {
	req, err := c.authed(ctx, s)
	if err != nil {
		return nil, err
	}
	resp, err := req.SetHeader("Accept", "application/pdf").Get("/api/reports/stock.pdf")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

package client

import (
	"context"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
)

// resource operaciones CRUD genéricas sobre /api/<path>.
type resource[Resp any] struct {
	c    *Client
	path string
}

func (r resource[Resp]) create(ctx context.Context, s *Session, body any) (*Resp, error) {
	req, err := r.c.authed(ctx, s)
	if err != nil {
		return nil, err
	}
	var out Resp
	if err := check(req.SetBody(body).SetResult(&out).Post(r.path)); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r resource[Resp]) list(ctx context.Context, s *Session) ([]Resp, error) {
	req, err := r.c.authed(ctx, s)
	if err != nil {
		return nil, err
	}
	var out []Resp
	if err := check(req.SetResult(&out).Get(r.path)); err != nil {
		return nil, err
	}
	return out, nil
}

func (r resource[Resp]) get(ctx context.Context, s *Session, id string) (*Resp, error) {
	req, err := r.c.authed(ctx, s)
	if err != nil {
		return nil, err
	}
	var out Resp
	if err := check(req.SetPathParam("id", id).SetResult(&out).Get(r.path + "/{id}")); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r resource[Resp]) update(ctx context.Context, s *Session, id string, body any) (*Resp, error) {
	req, err := r.c.authed(ctx, s)
	if err != nil {
		return nil, err
	}
	var out Resp
	if err := check(req.SetPathParam("id", id).SetBody(body).SetResult(&out).Put(r.path + "/{id}")); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r resource[Resp]) delete(ctx context.Context, s *Session, id string) error {
	req, err := r.c.authed(ctx, s)
	if err != nil {
		return err
	}
	return check(req.SetPathParam("id", id).Delete(r.path + "/{id}"))
}

func (c *Client) spareParts() resource[dto.SparePartResponse] {
	return resource[dto.SparePartResponse]{c: c, path: "/api/spareparts"}
}

func (c *Client) stockIns() resource[dto.StockInResponse] {
	return resource[dto.StockInResponse]{c: c, path: "/api/stockin"}
}

func (c *Client) stockOuts() resource[dto.StockOutResponse] {
	return resource[dto.StockOutResponse]{c: c, path: "/api/stockout"}
}

// CreateSparePart registra un repuesto.
func (c *Client) CreateSparePart(ctx context.Context, s *Session, in dto.CreateSparePartRequest) (*dto.SparePartResponse, error) {
	return c.spareParts().create(ctx, s, in)
}

// ListSpareParts lista el catálogo.
func (c *Client) ListSpareParts(ctx context.Context, s *Session) ([]dto.SparePartResponse, error) {
	return c.spareParts().list(ctx, s)
}

// GetSparePart obtiene un repuesto por ID.
func (c *Client) GetSparePart(ctx context.Context, s *Session, id string) (*dto.SparePartResponse, error) {
	return c.spareParts().get(ctx, s, id)
}

// UpdateSparePart actualización parcial.
func (c *Client) UpdateSparePart(ctx context.Context, s *Session, id string, in dto.UpdateSparePartRequest) (*dto.SparePartResponse, error) {
	return c.spareParts().update(ctx, s, id, in)
}

// DeleteSparePart elimina un repuesto.
func (c *Client) DeleteSparePart(ctx context.Context, s *Session, id string) error {
	return c.spareParts().delete(ctx, s, id)
}

// CreateStockIn registra una entrada.
func (c *Client) CreateStockIn(ctx context.Context, s *Session, in dto.CreateStockInRequest) (*dto.StockInResponse, error) {
	return c.stockIns().create(ctx, s, in)
}

// ListStockIn lista las entradas.
func (c *Client) ListStockIn(ctx context.Context, s *Session) ([]dto.StockInResponse, error) {
	return c.stockIns().list(ctx, s)
}

// GetStockIn obtiene una entrada por ID.
func (c *Client) GetStockIn(ctx context.Context, s *Session, id string) (*dto.StockInResponse, error) {
	return c.stockIns().get(ctx, s, id)
}

// UpdateStockIn edita una entrada.
func (c *Client) UpdateStockIn(ctx context.Context, s *Session, id string, in dto.UpdateStockInRequest) (*dto.StockInResponse, error) {
	return c.stockIns().update(ctx, s, id, in)
}

// DeleteStockIn elimina una entrada.
func (c *Client) DeleteStockIn(ctx context.Context, s *Session, id string) error {
	return c.stockIns().delete(ctx, s, id)
}

// CreateStockOut registra una salida.
func (c *Client) CreateStockOut(ctx context.Context, s *Session, in dto.CreateStockOutRequest) (*dto.StockOutResponse, error) {
	return c.stockOuts().create(ctx, s, in)
}

// ListStockOut lista las salidas.
func (c *Client) ListStockOut(ctx context.Context, s *Session) ([]dto.StockOutResponse, error) {
	return c.stockOuts().list(ctx, s)
}

// GetStockOut obtiene una salida por ID.
func (c *Client) GetStockOut(ctx context.Context, s *Session, id string) (*dto.StockOutResponse, error) {
	return c.stockOuts().get(ctx, s, id)
}

// UpdateStockOut edita una salida.
func (c *Client) UpdateStockOut(ctx context.Context, s *Session, id string, in dto.UpdateStockOutRequest) (*dto.StockOutResponse, error) {
	return c.stockOuts().update(ctx, s, id, in)
}

// DeleteStockOut elimina una salida.
func (c *Client) DeleteStockOut(ctx context.Context, s *Session, id string) error {
	return c.stockOuts().delete(ctx, s, id)
}

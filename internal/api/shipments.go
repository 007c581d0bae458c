package api

import "context"

// ListCouriers 可用物流供应商列表
func (c *Client) ListCouriers(ctx context.Context) ([]Courier, error) {
	var couriers []Courier
	if err := c.getAuthed(ctx, "shipments/list", nil, &couriers); err != nil {
		return nil, err
	}
	return couriers, nil
}

// ShipmentOptions 查询各供应商的运费报价
func (c *Client) ShipmentOptions(ctx context.Context, req ShipmentOptionRequest) (ShipmentRates, error) {
	var rates ShipmentRates
	if err := c.postAuthed(ctx, "calculators/shipmentoption", req, &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

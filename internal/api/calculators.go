package api

import "context"

// CalculateCart 整车结算
// 按卖家拆分运费与优惠后的应付金额
func (c *Client) CalculateCart(ctx context.Context, req CalculateCartRequest) (*CartCalculation, error) {
	var calc CartCalculation
	if err := c.postAuthed(ctx, "calculators/calculatecart", req, &calc); err != nil {
		return nil, err
	}
	return &calc, nil
}

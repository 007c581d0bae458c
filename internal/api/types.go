package api

// ProductImage 商品图片
type ProductImage struct {
	ID             uint   `json:"id"`
	ImagePublicID  string `json:"image_public_id"`
	ImageSecureURL string `json:"image_secure_url"`
	ProductID      uint   `json:"product_id"`
}

// SellerInfo 商品附带的卖家摘要
type SellerInfo struct {
	StoreName     string `json:"store_name,omitempty"`
	StoreImageURL string `json:"store_image_url,omitempty"`
	StoreDistrict string `json:"store_district,omitempty"`
	ProvinceID    uint   `json:"province_id,omitempty"`
}

// Product 商品列表条目
type Product struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       Money          `json:"price"`
	AvgRating   float64        `json:"avg_rating"`
	CategoryID  uint           `json:"category_id"`
	SoldQty     int            `json:"sold_qty"`
	Images      []ProductImage `json:"image_url"`
	SellerInfo  SellerInfo     `json:"seller_info"`
}

// ProductDetail 商品详情
type ProductDetail struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       Money          `json:"price"`
	AvgRating   float64        `json:"avg_rating"`
	SoldQty     int            `json:"sold_qty"`
	Stock       int            `json:"stock"`
	WeightKG    Money          `json:"weight_kg"`
	VolumeM3    Money          `json:"volume_m3"`
	SellerID    uint           `json:"seller_id"`
	Images      []ProductImage `json:"image_url"`
	SellerInfo  SellerInfo     `json:"seller_info"`
	Reviews     []Review       `json:"reviews"`
}

// Review 商品评价
type Review struct {
	ID        uint    `json:"id"`
	ProductID uint    `json:"product_id"`
	Rating    float64 `json:"rating"`
	Review    string  `json:"review"`
	CreatedAt string  `json:"created_at"`
	Fullname  string  `json:"fullname,omitempty"`
}

// ProductPage 商品分页结果
type ProductPage struct {
	CurrentPage int       `json:"current_page"`
	Products    []Product `json:"products"`
	TotalItems  int       `json:"total_items"`
	TotalPage   int       `json:"total_page"`
}

// Category 商品类目
type Category struct {
	ID           uint   `json:"id"`
	CategoryName string `json:"category_name"`
}

// Province 省份
type Province struct {
	ID       uint   `json:"id"`
	Province string `json:"province"`
}

// District 区县
type District struct {
	ID         uint   `json:"id"`
	District   string `json:"district"`
	ProvinceID uint   `json:"province_id"`
}

// SellerAddress 卖家地址摘要
type SellerAddress struct {
	DistrictID   uint   `json:"district_id"`
	DistrictName string `json:"district_name"`
	IsActive     int    `json:"is_active"`
	PostalCode   string `json:"postal_code"`
	ProvinceID   uint   `json:"province_id"`
	ProvinceName string `json:"province_name"`
}

// SellerProfile 卖家公开信息
type SellerProfile struct {
	ID               uint            `json:"id"`
	StoreName        string          `json:"store_name"`
	StoreDescription string          `json:"store_description"`
	StoreImageURL    string          `json:"store_image_url"`
	Addresses        []SellerAddress `json:"addresses"`
}

// sellerProfileEnvelope 卖家公开信息外层
type sellerProfileEnvelope struct {
	Seller SellerProfile `json:"seller"`
}

// CartItemDetail 购物车条目中的商品快照
type CartItemDetail struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	Price      Money      `json:"price"`
	Stock      int        `json:"stock"`
	WeightKG   Money      `json:"weight_kg"`
	IsActive   int        `json:"is_active"`
	CategoryID uint       `json:"category_id"`
	SellerID   uint       `json:"seller_id"`
	ImageURL   string     `json:"image_url"`
	SellerInfo SellerInfo `json:"seller_info"`
}

// CartItem 购物车条目
type CartItem struct {
	DetailProduct CartItemDetail `json:"detail_product"`
	Quantity      int            `json:"quantity"`
	SubTotal      Money          `json:"sub_total"`
}

// Cart 购物车
type Cart struct {
	Items      []CartItem `json:"items"`
	TotalPrice Money      `json:"total_price"`
}

// CartChange 购物车写请求的一项
type CartChange struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// Address 收货地址
type Address struct {
	ID           uint   `json:"id"`
	AddressLine  string `json:"address_line"`
	AddressType  string `json:"address_type"`
	DistrictID   uint   `json:"district_id"`
	DistrictName string `json:"district_name"`
	PhoneNumber  string `json:"phone_number"`
	PostalCode   string `json:"postal_code"`
	ProvinceID   uint   `json:"province_id"`
	ProvinceName string `json:"province_name"`
	ReceiverName string `json:"receiver_name"`
	RtRw         string `json:"rt_rw"`
	IsActive     int    `json:"is_active,omitempty"`
}

// AddressInput 地址创建与更新请求
type AddressInput struct {
	UserID       uint   `json:"user_id,omitempty"`
	AddressLine  string `json:"address_line"`
	AddressType  string `json:"address_type"`
	DistrictID   uint   `json:"district_id"`
	PhoneNumber  string `json:"phone_number"`
	PostalCode   string `json:"postal_code"`
	ProvinceID   uint   `json:"province_id"`
	ReceiverName string `json:"receiver_name"`
	RtRw         string `json:"rt_rw"`
	IsActive     int    `json:"is_active"`
}

// Courier 物流供应商
type Courier struct {
	ID         uint   `json:"id"`
	VendorName string `json:"vendor_name"`
}

// ShipmentOption 单个物流报价
type ShipmentOption struct {
	Cost        Money  `json:"cost"`
	Description string `json:"description"`
	ETD         string `json:"etd"`
	Service     string `json:"service"`
}

// ShipmentRates 按供应商分组的物流报价
type ShipmentRates map[string][]ShipmentOption

// ShipmentOptionRequest 物流报价请求
type ShipmentOptionRequest struct {
	SellerID              uint `json:"seller_id"`
	TotalWeightGram       int  `json:"total_weight_gram"`
	UserSelectedAddressID uint `json:"user_selected_address_id"`
}

// CourierSelection 已选定的物流方案
type CourierSelection struct {
	SelectedCourier string `json:"selected_courier"`
	SelectedService string `json:"selected_service"`
	SellerID        uint   `json:"seller_id"`
}

// CalculationItem 结算明细中的商品行
type CalculationItem struct {
	DetailProduct     CartItemDetail `json:"detail_product"`
	SellerID          uint           `json:"seller_id"`
	Quantity          int            `json:"quantity"`
	SubTotal          Money          `json:"sub_total"`
	SubVolume         string         `json:"sub_volume"`
	SubVolumeToWeight string         `json:"sub_volume_to_weight"`
	SubWeight         string         `json:"sub_weight"`
}

// SellerCalculation 按卖家拆分的结算结果
type SellerCalculation struct {
	ETD                      string            `json:"etd"`
	FinalPrice               Money             `json:"final_price"`
	Items                    []CalculationItem `json:"items"`
	SellerAddressID          uint              `json:"seller_address_id"`
	Service                  string            `json:"service"`
	ShipmentFee              Money             `json:"shipment_fee"`
	TotalPriceBeforeShipment Money             `json:"total_price_before_shipment"`
	TotalWeightGram          string            `json:"total_weight_gram"`
	VendorName               string            `json:"vendor_name"`
}

// CartCalculation 整车结算结果
type CartCalculation struct {
	AllFinalPrice    Money                        `json:"all_final_price"`
	FinalCalculation map[string]SellerCalculation `json:"final_calculation"`
}

// CalculateCartRequest 整车结算请求
// 下单请求与结算请求共用同一形状
type CalculateCartRequest struct {
	Carts                 []CartChange       `json:"carts"`
	SelectedCourier       []CourierSelection `json:"selected_courier"`
	UserSelectedAddressID uint               `json:"user_selected_address_id"`
}

// PaymentData 支付跳转信息
type PaymentData struct {
	RedirectURL string `json:"redirect_url"`
	Token       string `json:"token"`
}

// CreateTransactionResult 下单结果
type CreateTransactionResult struct {
	Message     string      `json:"message"`
	PaymentData PaymentData `json:"payment_data"`
}

// ProductOrderInfo 交易中的商品快照
type ProductOrderInfo struct {
	ImageURL string `json:"image_url"`
	IsActive int    `json:"is_active"`
	Name     string `json:"name"`
	Price    Money  `json:"price"`
}

// ProductOrder 交易中的商品行
type ProductOrder struct {
	ProductID      uint             `json:"product_id"`
	ProductInfo    ProductOrderInfo `json:"product_info"`
	ProductOrderID uint             `json:"product_order_id"`
	Quantity       int              `json:"quantity"`
}

// Transaction 交易
type Transaction struct {
	ID                    string         `json:"id"`
	CreatedAt             string         `json:"created_at"`
	UpdatedAt             string         `json:"updated_at"`
	GrossAmount           Money          `json:"gross_amount"`
	Information           string         `json:"information"`
	PaymentLink           string         `json:"payment_link"`
	ProductOrders         []ProductOrder `json:"product_orders"`
	SellerID              uint           `json:"seller_id"`
	SellerInfo            SellerInfo     `json:"seller_info"`
	TotalDiscount         Money          `json:"total_discount"`
	TransactionStatus     int            `json:"transaction_status"`
	TransactionStatusName string         `json:"transaction_status_name"`
	UserID                uint           `json:"user_id"`
	UserSellerVoucherID   uint           `json:"user_seller_voucher_id"`
}

// TransactionPage 交易分页结果
type TransactionPage struct {
	CurrentPage  int           `json:"current_page"`
	TotalItems   int           `json:"total_items"`
	TotalPage    int           `json:"total_page"`
	Transactions []Transaction `json:"transactions"`
}

// ProductReviewInput 单个商品的评价
type ProductReviewInput struct {
	ProductID uint   `json:"product_id"`
	Rating    int    `json:"rating"`
	Review    string `json:"review"`
}

// VoucherDetail 卖家优惠券详情
type VoucherDetail struct {
	ID                uint   `json:"id"`
	Title             string `json:"title"`
	SellerID          uint   `json:"seller_id"`
	DiscountType      int    `json:"discount_type"`
	DiscountTypeName  string `json:"discount_type_name,omitempty"`
	Percentage        int    `json:"percentage"`
	MaxDiscountAmount Money  `json:"max_discount_amount"`
	MinPurchaseAmount Money  `json:"min_purchase_amount"`
	UsageLimit        int    `json:"usage_limit"`
	StartDate         string `json:"start_date"`
	ExpiryDate        string `json:"expiry_date"`
	IsActive          int    `json:"is_active"`
	CreatedAt         string `json:"created_at"`
}

// UserVoucher 用户已领取的优惠券
type UserVoucher struct {
	ID                  uint          `json:"id"`
	IsUsed              int           `json:"is_used"`
	SellerVoucherDetail VoucherDetail `json:"seller_voucher_detail"`
	SellerVoucherID     uint          `json:"seller_voucher_id"`
	UserID              uint          `json:"user_id"`
}

// User 用户资料
type User struct {
	ID          uint   `json:"id"`
	Fullname    string `json:"fullname"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	ImageURL    string `json:"image_url"`
	Balance     Money  `json:"balance"`
}

// userEnvelope users/me 响应外层
type userEnvelope struct {
	User User `json:"user"`
}

// messageResult 通用消息响应
type messageResult struct {
	Message string `json:"message"`
}

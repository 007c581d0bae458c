package constants

// 交易状态常量（后端 SmallInt 枚举）
const (
	TransactionStatusWaitingForPayment = 1
	TransactionStatusPaymentSuccess    = 2
	TransactionStatusPreparedBySeller  = 3
	TransactionStatusOnDelivery        = 4
	TransactionStatusDelivered         = 5
	TransactionStatusCanceled          = 6
)

// 交易状态名称常量
const (
	TransactionStatusNameWaitingForPayment = "WAITING_FOR_PAYMENT"
	TransactionStatusNamePaymentSuccess    = "PAYMENT_SUCCESS"
	TransactionStatusNamePreparedBySeller  = "PREPARED_BY_SELLER"
	TransactionStatusNameOnDelivery        = "ON_DELIVERY"
	TransactionStatusNameDelivered         = "DELIVERED"
	TransactionStatusNameCanceled          = "CANCELED"
)

// TransactionStatusName 返回状态码对应的名称，未知状态返回空串
func TransactionStatusName(status int) string {
	switch status {
	case TransactionStatusWaitingForPayment:
		return TransactionStatusNameWaitingForPayment
	case TransactionStatusPaymentSuccess:
		return TransactionStatusNamePaymentSuccess
	case TransactionStatusPreparedBySeller:
		return TransactionStatusNamePreparedBySeller
	case TransactionStatusOnDelivery:
		return TransactionStatusNameOnDelivery
	case TransactionStatusDelivered:
		return TransactionStatusNameDelivered
	case TransactionStatusCanceled:
		return TransactionStatusNameCanceled
	default:
		return ""
	}
}

// 排序参数常量
const (
	SortDateNewest = "newest"
	SortDateLatest = "latest"
	SortAsc        = "asc"
	SortDesc       = "desc"
)

// 本地存储键常量
const (
	StoreKeyAccessToken          = "user_access_token"
	StoreKeyClaimedVouchers      = "claimed_vouchers"
	StoreKeyReviewedTransactions = "reviewed_transactions"
)

// 评分边界（半星粒度由前端展示层处理）
const (
	ReviewRatingMin = 0
	ReviewRatingMax = 5
)

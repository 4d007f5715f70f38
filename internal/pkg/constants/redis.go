package constants

// Redis key formats
const (
	KeyDeviceTokens = "devices:tokens:%s" // Format: devices:tokens:{user_id}
)

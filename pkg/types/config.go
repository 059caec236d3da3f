package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"30"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string `envconfig:"LOG_FORMAT" default:""`

	// Document store: "postgres" or "dynamodb"
	StoreBackend string `envconfig:"STORE_BACKEND" default:"postgres"`
	DatabaseURL  string `envconfig:"DATABASE_URL"`

	DynamoResidentsTable string `envconfig:"DYNAMODB_RESIDENTS_TABLE" default:"residents"`
	DynamoReportsTable   string `envconfig:"DYNAMODB_REPORTS_TABLE" default:"reports"`

	// Optional endpoint override for local DynamoDB / S3-compatible stores.
	// Static credentials are only used together with the override.
	AWSEndpointURL     string `envconfig:"AWS_ENDPOINT_URL"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`

	// Photo storage: "s3" or "supabase"
	PhotoBackend    string `envconfig:"PHOTO_BACKEND" default:"s3"`
	S3BucketName    string `envconfig:"S3_BUCKET_NAME"`
	S3PublicBaseURL string `envconfig:"S3_PUBLIC_BASE_URL"`
	MaxPhotoBytes   int64  `envconfig:"MAX_PHOTO_BYTES" default:"10485760"` // 10 MiB

	SupabaseProjectID  string `envconfig:"SUPABASE_PROJECT_ID"`
	SupabaseAPIKey     string `envconfig:"SUPABASE_API_KEY"`
	SupabaseBucketName string `envconfig:"SUPABASE_BUCKET_NAME" default:"reports"`

	// Flash cookie keys (base64 encoded)
	// openssl rand -base64 32
	FlashCookieName string `envconfig:"FLASH_COOKIE_NAME" default:"flash"`
	FlashHashKey    string `envconfig:"FLASH_HASH_KEY"`  // 32 or 64 bytes
	FlashBlockKey   string `envconfig:"FLASH_BLOCK_KEY"` // 16, 24, or 32 bytes

	DefaultDistrict string `envconfig:"DEFAULT_DISTRICT" default:"Arau"`
}

const (
	StoreBackendPostgres = "postgres"
	StoreBackendDynamoDB = "dynamodb"

	PhotoBackendS3       = "s3"
	PhotoBackendSupabase = "supabase"
)

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

package model

// ================ Config ================
type GenerationModelConfig struct {
	APIKey         string  `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL        string  `envconfig:"GEMINI_BASE_URL"`
	Model          string  `envconfig:"GENERATION_MODEL" default:"gemini-2.5-flash"`
	MaxTokens      int     `envconfig:"GENERATION_MAX_TOKENS" default:"512"`
	Temperature    float32 `envconfig:"GENERATION_TEMPERATURE" default:"0.8"`
	ThinkingBudget int32   `envconfig:"GENERATION_THINKING_BUDGET" default:"0"`
}

type CatalogCacheConfig struct {
	TTL string `envconfig:"CATALOG_CACHE_TTL" default:"5m"`
}

type UploadConfig struct {
	Dir          string `envconfig:"UPLOAD_DIR" default:"uploads"`
	PublicPrefix string `envconfig:"UPLOAD_PUBLIC_PREFIX" default:"/uploads"`
	MaxDimension int    `envconfig:"UPLOAD_MAX_DIMENSION" default:"2000"`
	MaxBytes     int64  `envconfig:"UPLOAD_MAX_BYTES" default:"10485760"`
}

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultBcryptCost        = 12
	defaultTokenTTL          = 24 * time.Hour
	defaultMaxFailedAttempts = 5
	defaultLockDuration      = 30 * time.Minute

	defaultUploadDir          = "uploads"
	defaultUploadPublicURL    = "/uploads"
	defaultImageMaxSize       = "5MiB"
	defaultDocumentMaxSize    = "10MiB"
	defaultImageWidth         = 400
	defaultImageHeight        = 500
	defaultImageQuality       = 90
	defaultAnalyticsRetention = 90 * 24 * time.Hour
	defaultPruneInterval      = time.Hour
	defaultSummaryCacheTTL    = 5 * time.Minute
	defaultSummaryWindowDays  = 30
	defaultTopN               = 5
	defaultMaxTextLength      = 500
	defaultRequestsPerMinute  = 100
	defaultQRCodeSize         = 256
	defaultSlowQueryThreshold = 200 * time.Millisecond
	defaultConnectAttempts    = 5
	defaultConnectBackoff     = time.Second
	defaultPoolMonitor        = 5 * time.Second
	defaultPoolWaitWarn       = 50 * time.Millisecond
)

// Upload providers
const (
	UploadProviderFile   = "file"
	UploadProviderBucket = "bucket"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// TrustProxy resolves the client address from X-Forwarded-For
		TrustProxy  bool     `json:"trustProxy" yaml:"trustProxy"`
		CORSOrigins []string `json:"corsOrigins" yaml:"corsOrigins"`
		Timeouts    struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Migrations run embedded schema migrations on startup when enabled
	Migrations struct {
		AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	} `json:"migrations" yaml:"migrations"`

	// Database tunes query logging, startup and pool monitoring
	Database struct {
		SlowQueryThreshold  time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
		ConnectAttempts     int           `json:"connectAttempts" yaml:"connectAttempts"`
		ConnectBackoff      time.Duration `json:"connectBackoff" yaml:"connectBackoff"`
		PoolMonitorInterval time.Duration `json:"poolMonitorInterval" yaml:"poolMonitorInterval"`
		PoolWaitWarn        time.Duration `json:"poolWaitWarn" yaml:"poolWaitWarn"`
	} `json:"database" yaml:"database"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Security *SecurityConfig `json:"security" yaml:"security"`

	Upload *UploadConfig `json:"upload" yaml:"upload"`

	// Redis backs the analytics summary cache; in-process cache when empty
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Analytics *AnalyticsConfig `json:"analytics" yaml:"analytics"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// PubSub configuration for contact message events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Site struct {
		BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	} `json:"site" yaml:"site"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL          time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	MaxFailedAttempts int           `json:"maxFailedAttempts" yaml:"maxFailedAttempts"`
	LockDuration      time.Duration `json:"lockDuration" yaml:"lockDuration"`
	Admin             AdminSeed     `json:"admin" yaml:"admin"`
}

// AdminSeed is the credential created on startup when none exists.
// An empty password disables seeding.
type AdminSeed struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Email    string `json:"email" yaml:"email"`
}

// SecurityConfig defines network access rules for sensitive routes
type SecurityConfig struct {
	// AdminAllowList is a comma separated list of IPs and CIDR blocks
	AdminAllowList string `json:"adminAllowList" yaml:"adminAllowList"`
}

// UploadConfig defines where uploaded assets are stored and how they are constrained
type UploadConfig struct {
	// Provider is "file" for a local directory or "bucket" for a gocloud bucket URL
	Provider        string `json:"provider" yaml:"provider"`
	Dir             string `json:"dir" yaml:"dir"`
	BucketURL       string `json:"bucketUrl" yaml:"bucketUrl"`
	PublicBaseURL   string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	ImageMaxSize    string `json:"imageMaxSize" yaml:"imageMaxSize"`
	DocumentMaxSize string `json:"documentMaxSize" yaml:"documentMaxSize"`
	ImageWidth      int    `json:"imageWidth" yaml:"imageWidth"`
	ImageHeight     int    `json:"imageHeight" yaml:"imageHeight"`
	ImageQuality    int    `json:"imageQuality" yaml:"imageQuality"`
}

// ImageMaxBytes returns the parsed image size limit.
func (c *UploadConfig) ImageMaxBytes() int64 {
	return parseSize(c.ImageMaxSize, defaultImageMaxSize)
}

// DocumentMaxBytes returns the parsed document size limit.
func (c *UploadConfig) DocumentMaxBytes() int64 {
	return parseSize(c.DocumentMaxSize, defaultDocumentMaxSize)
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// AnalyticsConfig defines visitor event retention and aggregation settings
type AnalyticsConfig struct {
	Retention         time.Duration `json:"retention" yaml:"retention"`
	PruneInterval     time.Duration `json:"pruneInterval" yaml:"pruneInterval"`
	SummaryCacheTTL   time.Duration `json:"summaryCacheTTL" yaml:"summaryCacheTTL"`
	SummaryWindowDays int           `json:"summaryWindowDays" yaml:"summaryWindowDays"`
	TopN              int           `json:"topN" yaml:"topN"`
	MaxTextLength     int           `json:"maxTextLength" yaml:"maxTextLength"`
}

// RateLimitConfig limits public write endpoints per client IP
type RateLimitConfig struct {
	RequestsPerMinute int `json:"requestsPerMinute" yaml:"requestsPerMinute"`
	Burst             int `json:"burst" yaml:"burst"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines share QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Env vars override YAML. Each segment is aligned with the existing YAML key,
	// e.g. UPLOAD_IMAGEMAXSIZE -> upload.imageMaxSize.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Database.SlowQueryThreshold <= 0 {
		cfg.Database.SlowQueryThreshold = defaultSlowQueryThreshold
	}
	if cfg.Database.ConnectAttempts <= 0 {
		cfg.Database.ConnectAttempts = defaultConnectAttempts
	}
	if cfg.Database.ConnectBackoff <= 0 {
		cfg.Database.ConnectBackoff = defaultConnectBackoff
	}
	if cfg.Database.PoolMonitorInterval <= 0 {
		cfg.Database.PoolMonitorInterval = defaultPoolMonitor
	}
	if cfg.Database.PoolWaitWarn <= 0 {
		cfg.Database.PoolWaitWarn = defaultPoolWaitWarn
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}
	if cfg.Auth.MaxFailedAttempts <= 0 {
		cfg.Auth.MaxFailedAttempts = defaultMaxFailedAttempts
	}
	if cfg.Auth.LockDuration <= 0 {
		cfg.Auth.LockDuration = defaultLockDuration
	}
	if cfg.Auth.Admin.Username == "" {
		cfg.Auth.Admin.Username = "admin"
	}

	if cfg.Security == nil {
		cfg.Security = &SecurityConfig{}
	}

	if cfg.Upload == nil {
		cfg.Upload = &UploadConfig{}
	}
	if cfg.Upload.Provider == "" {
		cfg.Upload.Provider = UploadProviderFile
	}
	if cfg.Upload.Dir == "" {
		cfg.Upload.Dir = defaultUploadDir
	}
	if cfg.Upload.PublicBaseURL == "" {
		cfg.Upload.PublicBaseURL = defaultUploadPublicURL
	}
	if cfg.Upload.ImageMaxSize == "" {
		cfg.Upload.ImageMaxSize = defaultImageMaxSize
	}
	if cfg.Upload.DocumentMaxSize == "" {
		cfg.Upload.DocumentMaxSize = defaultDocumentMaxSize
	}
	if cfg.Upload.ImageWidth <= 0 {
		cfg.Upload.ImageWidth = defaultImageWidth
	}
	if cfg.Upload.ImageHeight <= 0 {
		cfg.Upload.ImageHeight = defaultImageHeight
	}
	if cfg.Upload.ImageQuality <= 0 || cfg.Upload.ImageQuality > 100 {
		cfg.Upload.ImageQuality = defaultImageQuality
	}

	if cfg.Analytics == nil {
		cfg.Analytics = &AnalyticsConfig{}
	}
	if cfg.Analytics.Retention <= 0 {
		cfg.Analytics.Retention = defaultAnalyticsRetention
	}
	if cfg.Analytics.PruneInterval <= 0 {
		cfg.Analytics.PruneInterval = defaultPruneInterval
	}
	if cfg.Analytics.SummaryCacheTTL <= 0 {
		cfg.Analytics.SummaryCacheTTL = defaultSummaryCacheTTL
	}
	if cfg.Analytics.SummaryWindowDays <= 0 {
		cfg.Analytics.SummaryWindowDays = defaultSummaryWindowDays
	}
	if cfg.Analytics.TopN <= 0 {
		cfg.Analytics.TopN = defaultTopN
	}
	if cfg.Analytics.MaxTextLength <= 0 {
		cfg.Analytics.MaxTextLength = defaultMaxTextLength
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.RequestsPerMinute <= 0 {
		cfg.RateLimit.RequestsPerMinute = defaultRequestsPerMinute
	}
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = cfg.RateLimit.RequestsPerMinute
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
}

func parseSize(raw, fallback string) int64 {
	size, err := bytes.Parse(raw)
	if err != nil || size <= 0 {
		size, _ = bytes.Parse(fallback)
	}

	return size
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds read replicas from POSTGRES_REPLICAS_{index}_{field}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}

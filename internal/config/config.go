package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Pipeline            Pipeline            `mapstructure:",squash"`
	TikTok              TikTok              `mapstructure:",squash"`
	Secrets             Secrets             `mapstructure:",squash"`
	Auth                Auth                `mapstructure:",squash"`
	CampaignInsightSync CampaignInsightSync `mapstructure:",squash"`
	AdInsightSync       AdInsightSync       `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Pipeline identifies the tenant and the run to execute. Layer and Mode
// drive one-shot batch runs; with an empty Layer the service stays up
// running the schedulers and the admin API.
type Pipeline struct {
	Company    string `mapstructure:"company"`
	Project    string `mapstructure:"project"`
	Platform   string `mapstructure:"platform"`
	Department string `mapstructure:"department"`
	Account    string `mapstructure:"account"`
	Layer      string `mapstructure:"layer"`
	Mode       string `mapstructure:"mode"`
}

type TikTok struct {
	URL            string `mapstructure:"tiktok_url"`
	AccessToken    string `mapstructure:"tiktok_access_token"`
	AdvertiserID   string `mapstructure:"tiktok_advertiser_id"`
	PageSize       int    `mapstructure:"tiktok_page_size"`
	MaxAttempts    int    `mapstructure:"tiktok_max_attempts"`
	RetryDelaySecs int    `mapstructure:"tiktok_retry_delay_seconds"`
	TimeoutSeconds int    `mapstructure:"tiktok_timeout_seconds"`
}

type Secrets struct {
	URL    string `mapstructure:"secrets_url"`
	APIKey string `mapstructure:"secrets_api_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type CampaignInsightSync struct {
	CronSchedule        string `mapstructure:"campaign_insight_sync_cron"`
	Mode                string `mapstructure:"campaign_insight_sync_mode"`
	RequestDelaySeconds int    `mapstructure:"campaign_insight_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"campaign_insight_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"campaign_insight_sync_enabled"`
}

type AdInsightSync struct {
	CronSchedule        string `mapstructure:"ad_insight_sync_cron"`
	Mode                string `mapstructure:"ad_insight_sync_mode"`
	RequestDelaySeconds int    `mapstructure:"ad_insight_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"ad_insight_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"ad_insight_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("COMPANY", "")
	viper.SetDefault("PROJECT", "")
	viper.SetDefault("PLATFORM", "tiktok")
	viper.SetDefault("DEPARTMENT", "")
	viper.SetDefault("ACCOUNT", "")
	viper.SetDefault("LAYER", "")
	viper.SetDefault("MODE", "last3days")

	viper.SetDefault("TIKTOK_URL", "https://business-api.tiktok.com/open_api/v1.3")
	viper.SetDefault("TIKTOK_ACCESS_TOKEN", "") // ONLY LOCAL
	viper.SetDefault("TIKTOK_ADVERTISER_ID", "")
	viper.SetDefault("TIKTOK_PAGE_SIZE", 1000)
	viper.SetDefault("TIKTOK_MAX_ATTEMPTS", 2)
	viper.SetDefault("TIKTOK_RETRY_DELAY_SECONDS", 1)
	viper.SetDefault("TIKTOK_TIMEOUT_SECONDS", 60)

	viper.SetDefault("SECRETS_URL", "")
	viper.SetDefault("SECRETS_API_KEY", "")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Insight sync defaults
	viper.SetDefault("CAMPAIGN_INSIGHT_SYNC_CRON", "0 3 * * *")
	viper.SetDefault("CAMPAIGN_INSIGHT_SYNC_MODE", "last3days")
	viper.SetDefault("CAMPAIGN_INSIGHT_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("CAMPAIGN_INSIGHT_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("CAMPAIGN_INSIGHT_SYNC_ENABLED", false)

	viper.SetDefault("AD_INSIGHT_SYNC_CRON", "0 4 * * *")
	viper.SetDefault("AD_INSIGHT_SYNC_MODE", "last3days")
	viper.SetDefault("AD_INSIGHT_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("AD_INSIGHT_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("AD_INSIGHT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Load the .env file with godotenv before viper sees anything
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// Credentials come from the secrets service when one is configured,
	// env vars otherwise (local runs).
	if config.Secrets.URL != "" {
		secretsClient := NewSecretsClient(config)

		if config.TikTok.AccessToken == "" {
			token, err := secretsClient.GetSecret(config.AccessTokenSecretName())
			if err != nil {
				logrus.Error("Error fetching access token secret:", err)
				return nil, err
			}
			config.TikTok.AccessToken = token
		}

		if config.TikTok.AdvertiserID == "" {
			advertiserID, err := secretsClient.GetSecret(config.AdvertiserIDSecretName())
			if err != nil {
				logrus.Error("Error fetching advertiser id secret:", err)
				return nil, err
			}
			config.TikTok.AdvertiserID = advertiserID
		}
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// AccessTokenSecretName follows the warehouse naming convention shared with
// the other platform pipelines.
func (c *Config) AccessTokenSecretName() string {
	return fmt.Sprintf("%s_secret_all_%s_token_access_user", c.Pipeline.Company, c.Pipeline.Platform)
}

func (c *Config) AdvertiserIDSecretName() string {
	return fmt.Sprintf("%s_secret_%s_%s_account_id_%s",
		c.Pipeline.Company, c.Pipeline.Department, c.Pipeline.Platform, c.Pipeline.Account)
}

// RawDataset and friends name the warehouse schemas the way the loaders of
// the other platforms do, so the marts can be discovered by convention.
func (c *Config) RawDataset() string {
	return fmt.Sprintf("%s_dataset_%s_api_raw", c.Pipeline.Company, c.Pipeline.Platform)
}

func (c *Config) StagingDataset() string {
	return fmt.Sprintf("%s_dataset_%s_api_staging", c.Pipeline.Company, c.Pipeline.Platform)
}

func (c *Config) MartDataset() string {
	return fmt.Sprintf("%s_dataset_%s_api_mart", c.Pipeline.Company, c.Pipeline.Platform)
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not resolve the current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env file loaded from:", location)
			return
		}
	}

	logrus.Warn("Could not load a .env file from any known location")
}

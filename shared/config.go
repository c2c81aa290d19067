package shared

import (
	"encoding/json"
	"log"
	"os"

	"github.com/tailscale/hujson"
)

const (
	configVarName  = "CONFIG"                // If set, will load config.json from this path and not from devConfigPath
	secretsVarName = "SECRETS"               // If set, will load secrets.json from this path and not from devSecretsPath
	devConfigPath  = "dev/config.dev.jsonc"  // Path to config.json in development environment
	devSecretsPath = "dev/secrets.dev.jsonc" // Path to secrets.json in development environment
)

type Config struct {
	Secrets              Secrets     `json:"-"`
	LogFile              string      `json:"log_file"`
	LogLevel             string      `json:"log_level"`
	ServicePort          uint        `json:"service_port"`
	DbFile               string      `json:"db_file"`
	PdsHost              string      `json:"pds_host"`
	PublicApiHost        string      `json:"public_api_host"`
	ChatHost             string      `json:"chat_host"`
	JetstreamHost        string      `json:"jetstream_host"`
	PingIntervalSec      uint        `json:"ping_interval_sec"`
	ReconnectIntervalSec uint        `json:"reconnect_interval_sec"`
	PollIntervalSec      uint        `json:"poll_interval_sec"`
	FollowerFetchRetries uint        `json:"follower_fetch_retries"`
	ProfileDir           string      `json:"profile_dir"`
	ProfileKeepDays      int         `json:"profile_keep_days"`
	Bots                 []BotConfig `json:"bots"`
}

// BotConfig is the static identity of one bot in the farm. The app password
// lives in the secrets file, keyed by username.
type BotConfig struct {
	Username  string      `json:"username"`
	Did       string      `json:"did"`
	Replies   []ReplyRule `json:"replies"`
	ConsentDm *ConsentDm  `json:"consent_dm"`
}

type ReplyRule struct {
	Keyword  string   `json:"keyword"`
	Exclude  []string `json:"exclude"`
	Messages []string `json:"messages"`
}

// ConsentDm configures the opt-in workflow: the question we DM to new
// followers, and the exact reply text that counts as a yes.
type ConsentDm struct {
	ConsentQuestion string `json:"consent_question"`
	ConsentAnswer   string `json:"consent_answer"`
}

type Secrets struct {
	AppPasswords map[string]string `json:"app_passwords"`
	MetricsAuth  string            `json:"metrics_auth"`
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)
	return &config
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
